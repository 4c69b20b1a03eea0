package handlers

import (
	"net/http"

	"github.com/Husnainn01/mizhuo-sub000/internal/auth"
	"github.com/Husnainn01/mizhuo-sub000/internal/models"
	"github.com/Husnainn01/mizhuo-sub000/internal/models/dto"
)

// SessionHandler exposes the two read-only session-check endpoints.
// Both read the token from the session cookie only; bearer headers are
// deliberately not honored, because the constrained decoder's trust
// model depends on the cookie having been issued by this process.
//
// /api/auth/session runs the full cryptographic verifier and is the
// endpoint callers should prefer. /api/auth/session-edge runs the
// unsigned structural decoder and exists only for execution contexts
// that cannot load the crypto routine.
type SessionHandler struct {
	full        auth.Verifier
	constrained auth.Verifier
}

// NewSessionHandler constructs the handler with both verifier
// implementations.
func NewSessionHandler(full, constrained auth.Verifier) *SessionHandler {
	return &SessionHandler{full: full, constrained: constrained}
}

// Register attaches the session routes to the mux.
func (h *SessionHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/auth/session", h.check(h.full))
	mux.HandleFunc("/api/auth/session-edge", h.check(h.constrained))
}

func (h *SessionHandler) check(verifier auth.Verifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		token, ok := auth.Token(r)
		if !ok {
			authError(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		claims, err := verifier.VerifyToken(token)
		if err != nil {
			// expired, malformed, and invalid all collapse to one outcome
			authError(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		respondJSON(w, http.StatusOK, dto.SessionResponse{
			Success: true,
			User:    models.SessionUser{ID: claims.UserID, Email: claims.Email, Role: claims.Role},
		})
	}
}
