package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/Husnainn01/mizhuo-sub000/internal/auth"
	"github.com/Husnainn01/mizhuo-sub000/internal/models/dto"
	"github.com/Husnainn01/mizhuo-sub000/internal/storage"
)

// genericCredentialError is returned verbatim for both unknown emails
// and wrong passwords, preventing user enumeration.
const genericCredentialError = "invalid email or password"

// AuthHandler owns the login and logout endpoints for both the public
// site and the admin back office.
type AuthHandler struct {
	credentials *auth.CredentialVerifier
	tokens      *auth.TokenManager
	cookies     *auth.CookieManager
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(credentials *auth.CredentialVerifier, tokens *auth.TokenManager, cookies *auth.CookieManager) *AuthHandler {
	return &AuthHandler{credentials: credentials, tokens: tokens, cookies: cookies}
}

// Register attaches auth routes to the mux.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/auth/login", h.handleLogin)
	mux.HandleFunc("/api/admin/login", h.handleAdminLogin)
	mux.HandleFunc("/api/auth/logout", h.handleLogout)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, auth.LevelNone)
}

// handleAdminLogin is the back-office login surface: valid credentials
// with an access level of none are authenticated but not welcome here.
func (h *AuthHandler) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, auth.LevelViewer)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request, minLevel auth.AccessLevel) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		authError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		authError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.credentials.Verify(r.Context(), email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound), errors.Is(err, auth.ErrInvalidCredentials):
			authError(w, http.StatusUnauthorized, genericCredentialError)
		default:
			log.Printf("login: verify credentials for %s: %v", email, err)
			authError(w, http.StatusInternalServerError, "failed to sign in")
		}
		return
	}

	if !auth.ResolveAccess(user.Role, user.Permissions).AtLeast(minLevel) {
		authError(w, http.StatusForbidden, "account not permitted on this surface")
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		log.Printf("login: issue token for %s: %v", email, err)
		authError(w, http.StatusInternalServerError, "failed to sign in")
		return
	}

	h.cookies.Set(w, token)
	respondJSON(w, http.StatusOK, dto.LoginResponse{Success: true, User: user.Session()})
}

// handleLogout deletes the session cookie. The token itself stays
// valid until expiry; sessions are stateless and nothing is revoked.
func (h *AuthHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.cookies.Clear(w)
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
