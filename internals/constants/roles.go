package constants

import "fmt"

// Role names used in JWT claims and the users table
const (
	RoleAdmin = "admin"
	RoleCoach = "coach"
)

// DefaultSessionCount is the session quota a non-admin caller gets when
// enrolling a player; only admins may set an arbitrary count.
const DefaultSessionCount float64 = 8

// Role error message templates
const (
	ErrOnlyAdminsCanAccess  = "❌ Only admins may access the %s feature."
	ErrOnlyStaffCanAccess   = "❌ Only coaches or admins may access the %s feature."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}
