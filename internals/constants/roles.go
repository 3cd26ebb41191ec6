package constants

import "fmt"

const (
	RoleAdmin     = "admin"
	RoleProfessor = "professor"
	RoleStudent   = "student"
)

var AllRoles = []string{RoleAdmin, RoleProfessor, RoleStudent}

// Error message templates for role guards
const (
	ErrOnlyAdminsCanAccess     = "❌ Only admins may access %s."
	ErrOnlyProfessorsCanAccess = "❌ Only professors may access %s."
	ErrOnlyStudentsCanAccess   = "❌ Only students may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorProfessor(feature string) string {
	return fmt.Sprintf(ErrOnlyProfessorsCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}
