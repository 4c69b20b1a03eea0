package handlers

import (
	"net/http"

	"github.com/Husnainn01/mizhuo-sub000/internal/auth"
	"github.com/Husnainn01/mizhuo-sub000/internal/middleware"
)

// AdminHandler serves the skeleton back-office endpoints the route
// guard protects. Page rendering belongs to the front end; these
// endpoints return the session context the pages hydrate from.
type AdminHandler struct{}

// NewAdminHandler constructs the handler.
func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// Register attaches the back-office routes to the mux.
func (h *AdminHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/admin/login", h.handleLoginPage)
	mux.HandleFunc("/admin/dashboard", h.handlePage("dashboard"))
	mux.HandleFunc("/admin/settings", h.handlePage("settings"))
	mux.HandleFunc("/admin/cars/", h.handlePage("cars"))
}

func (h *AdminHandler) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"page": "login"})
}

func (h *AdminHandler) handlePage(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			// unreachable behind the guard; kept for direct-mount safety
			authError(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"page":  name,
			"user":  map[string]string{"id": claims.UserID, "email": claims.Email, "role": claims.Role},
			"level": auth.ResolveAccess(claims.Role, claims.Permissions).String(),
		})
	}
}
