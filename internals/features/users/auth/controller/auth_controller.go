// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	authDTO "kampusku_backend/internals/features/users/auth/dto"
	authModel "kampusku_backend/internals/features/users/auth/model"
	authService "kampusku_backend/internals/features/users/auth/service"
	helper "kampusku_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

// ================= REGISTER =================
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var existing authModel.UserModel
	err := ctrl.DB.Where("user_email = ?", req.UserEmail).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check email")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := authModel.UserModel{
		UserName:     req.UserName,
		UserEmail:    req.UserEmail,
		UserPassword: string(hashed),
		UserRole:     constants.RoleStudent,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "Registered", authDTO.ToUserResponse(&user))
}

// ================= LOGIN =================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var user authModel.UserModel
	if err := ctrl.DB.Where("user_email = ?", req.UserEmail).First(&user).Error; err != nil {
		// Same message as the password branch so the endpoint doesn't leak
		// which emails exist.
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.UserPassword)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, exp, err := authService.CreateAccessToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign token")
	}

	return helper.JsonOK(c, "Logged in", authDTO.LoginResponse{
		AccessToken: token,
		ExpiresAt:   exp,
		User:        authDTO.ToUserResponse(&user),
	})
}

// ================= LOGOUT =================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	raw, _ := c.Locals("raw_token").(string)
	if strings.TrimSpace(raw) == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	// Expiry from claims so the blacklist row lives exactly as long as the token.
	expiredAt := time.Now().Add(24 * time.Hour)
	if claims, ok := c.Locals("jwt_claims").(jwt.MapClaims); ok {
		if v, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(v), 0)
		}
	}

	if err := authService.BlacklistToken(ctrl.DB, raw, expiredAt); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to revoke token")
	}
	return helper.JsonOK(c, "Logged out", nil)
}

// ================= ME =================
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var user authModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonOK(c, "ok", authDTO.ToUserResponse(&user))
}
