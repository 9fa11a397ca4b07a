package constants

import "fmt"

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess = "❌ Only admins may access the %s feature."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

var (
	AllRoles = []string{
		RoleAdmin,
		RoleCustomer,
	}
	AdminOnly = []string{
		RoleAdmin,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
