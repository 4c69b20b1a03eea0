package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/Husnainn01/mizhuo-sub000/internal/models"
	"github.com/Husnainn01/mizhuo-sub000/internal/storage"
)

// CredentialVerifier checks a submitted email/password pair against
// the stored bcrypt hash. It is read-only: no lockout counters, no
// audit writes.
type CredentialVerifier struct {
	store storage.UserStore
}

// NewCredentialVerifier constructs the verifier.
func NewCredentialVerifier(store storage.UserStore) *CredentialVerifier {
	return &CredentialVerifier{store: store}
}

// Verify looks the user up by email and compares the password. It
// returns storage.ErrNotFound for an unknown email and
// ErrInvalidCredentials for a hash mismatch; handlers must collapse
// both into one generic response so callers cannot probe which emails
// exist. The bcrypt comparison is constant-time.
func (v *CredentialVerifier) Verify(ctx context.Context, email, password string) (models.User, error) {
	user, err := v.store.FindByEmail(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}
