package auth

import "github.com/Husnainn01/mizhuo-sub000/internal/models"

// AccessLevel is the coarse authorization tier derived per request
// from a token's role and permissions. It is never stored.
type AccessLevel int

const (
	LevelNone AccessLevel = iota
	LevelViewer
	LevelEditor
	LevelAdmin
)

// String returns the tier name for logging.
func (l AccessLevel) String() string {
	switch l {
	case LevelAdmin:
		return "admin"
	case LevelEditor:
		return "editor"
	case LevelViewer:
		return "viewer"
	default:
		return "none"
	}
}

// AtLeast reports whether the level meets the given minimum tier.
func (l AccessLevel) AtLeast(min AccessLevel) bool {
	return l >= min
}

// ResolveAccess maps a role plus an optional permission set to an
// access tier. An explicit named role always wins; permission-derived
// levels exist only so custom roles carrying elevated capability
// strings still resolve to a usable tier.
func ResolveAccess(role string, permissions []string) AccessLevel {
	switch role {
	case models.RoleAdmin:
		return LevelAdmin
	case models.RoleEditor:
		return LevelEditor
	case models.RoleViewer:
		return LevelViewer
	}
	if hasAny(permissions, models.PermCreateCar, models.PermUpdateCar) {
		return LevelEditor
	}
	if hasAny(permissions, models.PermReadCar) {
		return LevelViewer
	}
	return LevelNone
}

func hasAny(set []string, wanted ...string) bool {
	for _, p := range set {
		for _, w := range wanted {
			if p == w {
				return true
			}
		}
	}
	return false
}
