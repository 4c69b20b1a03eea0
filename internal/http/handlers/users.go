package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Husnainn01/mizhuo-sub000/internal/http/respond"
	"github.com/Husnainn01/mizhuo-sub000/internal/models"
	"github.com/Husnainn01/mizhuo-sub000/internal/models/dto"
	"github.com/Husnainn01/mizhuo-sub000/internal/storage"
)

// UserAdminHandler owns the back-office user management endpoints.
// Tier enforcement happens in the route guard; these handlers assume
// an admin-tier session.
type UserAdminHandler struct {
	store storage.UserStore
}

// NewUserAdminHandler constructs the handler.
func NewUserAdminHandler(store storage.UserStore) *UserAdminHandler {
	return &UserAdminHandler{store: store}
}

// Register attaches the user management routes to the mux.
func (h *UserAdminHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/admin/users", h.handleUsers)
	mux.HandleFunc("/admin/users/", h.handleUserByID)
}

func (h *UserAdminHandler) handleUsers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listUsers(w, r)
	case http.MethodPost:
		h.createUser(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *UserAdminHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		log.Printf("list users: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	respond.JSON(w, http.StatusOK, "users", users)
}

func (h *UserAdminHandler) createUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || len(req.Password) < 8 {
		respond.Error(w, http.StatusBadRequest, "email and a password of at least 8 characters are required")
		return
	}
	if !models.IsValidRole(req.Role) {
		respond.Error(w, http.StatusBadRequest, "invalid role")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("create user: hash password: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	// an omitted permission list means the role's canonical set
	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Permissions:  req.Permissions,
	}
	created, err := h.store.CreateUser(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			respond.Error(w, http.StatusConflict, "user already exists")
		default:
			log.Printf("create user: %v", err)
			respond.Error(w, http.StatusInternalServerError, "failed to create user")
		}
		return
	}
	respond.JSON(w, http.StatusCreated, "user created", created)
}

// handleUserByID routes /admin/users/{id}/role and
// /admin/users/{id}/permissions.
func (h *UserAdminHandler) handleUserByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/admin/users/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" {
		respond.Error(w, http.StatusNotFound, "not found")
		return
	}
	id := parts[0]

	switch parts[1] {
	case "role":
		h.updateRole(w, r, id)
	case "permissions":
		h.updatePermissions(w, r, id)
	default:
		respond.Error(w, http.StatusNotFound, "not found")
	}
}

func (h *UserAdminHandler) updateRole(w http.ResponseWriter, r *http.Request, id string) {
	var req dto.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if !models.IsValidRole(req.Role) {
		respond.Error(w, http.StatusBadRequest, "invalid role")
		return
	}
	// the store resets permissions to the new role's canonical set
	updated, err := h.store.UpdateUserRole(r.Context(), id, req.Role)
	if err != nil {
		h.updateError(w, id, err)
		return
	}
	respond.JSON(w, http.StatusOK, "role updated", updated)
}

func (h *UserAdminHandler) updatePermissions(w http.ResponseWriter, r *http.Request, id string) {
	var req struct {
		Permissions []string `json:"permissions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	updated, err := h.store.UpdateUserPermissions(r.Context(), id, req.Permissions)
	if err != nil {
		h.updateError(w, id, err)
		return
	}
	respond.JSON(w, http.StatusOK, "permissions updated", updated)
}

func (h *UserAdminHandler) updateError(w http.ResponseWriter, id string, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		respond.Error(w, http.StatusNotFound, "user not found")
		return
	}
	log.Printf("update user %s: %v", id, err)
	respond.Error(w, http.StatusInternalServerError, "failed to update user")
}
