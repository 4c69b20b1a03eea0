package models

import "time"

// User captures application-facing fields for a dealership account.
// ID is the hex form of the store's ObjectID; the stored document
// shape lives in the storage layer. The password hash is bcrypt and
// never serialized to clients.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Permissions  []string  `json:"permissions,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SessionUser is the trimmed identity returned by the login and
// session-check endpoints.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session returns the client-safe view of the user.
func (u User) Session() SessionUser {
	return SessionUser{ID: u.ID, Email: u.Email, Role: u.Role}
}
