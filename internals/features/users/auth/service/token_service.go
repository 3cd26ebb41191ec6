// file: internals/features/users/auth/service/token_service.go
package service

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	model "kampusku_backend/internals/features/users/auth/model"
)

const defaultAccessTTLMinutes = 60

func accessTTL() time.Duration {
	if v := configs.GetEnv("ACCESS_TOKEN_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Minute
		}
	}
	return defaultAccessTTLMinutes * time.Minute
}

// CreateAccessToken signs an HS256 token carrying id + role.
func CreateAccessToken(u *model.UserModel) (string, time.Time, error) {
	exp := time.Now().Add(accessTTL())
	claims := jwt.MapClaims{
		"id":   u.UserID.String(),
		"role": u.UserRole,
		"exp":  exp.Unix(),
		"iat":  time.Now().Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// BlacklistToken stores the raw token until its expiry so logout is effective
// before the JWT would lapse on its own.
func BlacklistToken(db *gorm.DB, raw string, expiredAt time.Time) error {
	row := model.TokenBlacklistModel{
		TokenBlacklistToken:     raw,
		TokenBlacklistExpiredAt: expiredAt,
	}
	return db.Create(&row).Error
}

// IsTokenBlacklisted reports whether the raw token has been revoked.
func IsTokenBlacklisted(db *gorm.DB, raw string) (bool, error) {
	var n int64
	err := db.Model(&model.TokenBlacklistModel{}).
		Where("token_blacklist_token = ?", raw).
		Count(&n).Error
	return n > 0, err
}
