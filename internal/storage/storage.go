package storage

import (
	"context"
	"errors"

	"github.com/Husnainn01/mizhuo-sub000/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures the persistence operations the auth subsystem and
// the back-office user management need. Users are never deleted here;
// deletion belongs to the wider admin surface.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	// UpdateUserRole changes the role and resets permissions to the new
	// role's canonical set.
	UpdateUserRole(ctx context.Context, id, role string) (models.User, error)
	UpdateUserPermissions(ctx context.Context, id string, permissions []string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}
