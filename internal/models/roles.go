package models

// Named roles understood by the authorization subsystem. Custom roles
// may exist in the store; they fall back to permission-derived access.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
	RoleUser   = "user"
)

// Permission strings used by the catalog back office.
const (
	PermCreateCar = "create:car"
	PermReadCar   = "read:car"
	PermUpdateCar = "update:car"
	PermDeleteCar = "delete:car"

	PermReadAttribute   = "read:attribute"
	PermUpdateAttribute = "update:attribute"

	PermReadInquiry   = "read:inquiry"
	PermUpdateInquiry = "update:inquiry"

	PermManageUsers = "manage:users"
)

// ValidRoles lists the roles the management endpoints accept.
var ValidRoles = []string{RoleAdmin, RoleEditor, RoleViewer, RoleUser}

// IsValidRole reports whether role is one of the named roles.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// DefaultPermissions returns the canonical permission set for a role.
// A user's permissions are reset to this set whenever the role changes
// or the user is created without an explicit permission list; the set
// may then be customized per user.
func DefaultPermissions(role string) []string {
	switch role {
	case RoleAdmin:
		return []string{
			PermCreateCar, PermReadCar, PermUpdateCar, PermDeleteCar,
			PermReadAttribute, PermUpdateAttribute,
			PermReadInquiry, PermUpdateInquiry,
			PermManageUsers,
		}
	case RoleEditor:
		return []string{
			PermCreateCar, PermReadCar, PermUpdateCar,
			PermReadAttribute,
			PermReadInquiry, PermUpdateInquiry,
		}
	case RoleViewer:
		return []string{PermReadCar, PermReadAttribute, PermReadInquiry}
	default:
		return []string{}
	}
}
