package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Husnainn01/mizhuo-sub000/internal/models"
)

func newUserAdminMux(t *testing.T) (*http.ServeMux, *memoryUserStore) {
	t.Helper()
	store := seedStore(t)
	mux := http.NewServeMux()
	NewUserAdminHandler(store).Register(mux)
	return mux, store
}

func TestCreateUserDefaultsPermissionsFromRole(t *testing.T) {
	mux, store := newUserAdminMux(t)
	rec := postJSON(t, mux, "/admin/users", `{"email":"new@mizhuo.example","password":"longenough","role":"viewer"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	created := store.byEmail["new@mizhuo.example"]
	want := models.DefaultPermissions(models.RoleViewer)
	if len(created.Permissions) != len(want) {
		t.Fatalf("permissions = %v, want canonical viewer set %v", created.Permissions, want)
	}
	if created.PasswordHash == "longenough" {
		t.Fatal("password must be stored hashed")
	}
}

func TestCreateUserValidation(t *testing.T) {
	mux, _ := newUserAdminMux(t)
	cases := []struct {
		name string
		body string
		want int
	}{
		{"short password", `{"email":"a@b.c","password":"short","role":"viewer"}`, http.StatusBadRequest},
		{"bad role", `{"email":"a@b.c","password":"longenough","role":"overlord"}`, http.StatusBadRequest},
		{"duplicate email", `{"email":"editor@mizhuo.example","password":"longenough","role":"viewer"}`, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if rec := postJSON(t, mux, "/admin/users", tc.body); rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestUpdateRoleResetsPermissions(t *testing.T) {
	mux, store := newUserAdminMux(t)
	editor := store.byEmail["editor@mizhuo.example"]

	r := httptest.NewRequest(http.MethodPut, "/admin/users/"+editor.ID+"/role", strings.NewReader(`{"role":"admin"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, r)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	updated := store.byEmail["editor@mizhuo.example"]
	if updated.Role != models.RoleAdmin {
		t.Fatalf("role = %q, want admin", updated.Role)
	}
	want := models.DefaultPermissions(models.RoleAdmin)
	if len(updated.Permissions) != len(want) {
		t.Fatalf("permissions = %v, want canonical admin set", updated.Permissions)
	}
}

func TestUpdateRoleUnknownUser(t *testing.T) {
	mux, _ := newUserAdminMux(t)
	r := httptest.NewRequest(http.MethodPut, "/admin/users/64f1000000000000000000ff/role", strings.NewReader(`{"role":"admin"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, r)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestListUsers(t *testing.T) {
	mux, _ := newUserAdminMux(t)
	r := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, r)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Data []models.User `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Data) != 2 {
		t.Fatalf("expected 2 users, got %d", len(body.Data))
	}
	for _, u := range body.Data {
		if u.PasswordHash != "" {
			t.Fatal("password hash must never serialize")
		}
	}
}
