package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Husnainn01/mizhuo-sub000/internal/auth"
	"github.com/Husnainn01/mizhuo-sub000/internal/models"
)

const guardSecret = "guard-test-secret"

func newGuard(t *testing.T) (http.Handler, *auth.TokenManager) {
	t.Helper()
	tokens, err := auth.NewTokenManager(guardSecret, auth.DefaultTokenTTL)
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}
	rules, err := CompileRules([]Rule{
		{Pattern: "/admin/users", MinLevel: auth.LevelAdmin},
		{Pattern: "/admin/cars/:id/edit", MinLevel: auth.LevelEditor},
	})
	if err != nil {
		t.Fatalf("CompileRules: %v", err)
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ClaimsFromContext(r.Context()); ok {
			w.Header().Set("X-Authenticated", "yes")
		}
		w.WriteHeader(http.StatusOK)
	})

	guard := Guard(GuardConfig{
		Prefix:      "/admin",
		LoginPath:   "/admin/login",
		LandingPath: "/admin/dashboard",
		Rules:       rules,
	}, tokens, auth.NewCookieManager(false, auth.DefaultTokenTTL), next)

	return guard, tokens
}

func issueFor(t *testing.T, tokens *auth.TokenManager, role string) string {
	t.Helper()
	token, err := tokens.Issue(models.User{ID: "64f1c0ffee0123456789abcd", Email: "u@mizhuo.example", Role: role})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	return token
}

func doGuarded(t *testing.T, guard http.Handler, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	guard.ServeHTTP(rec, r)
	return rec
}

func wantRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != location {
		t.Fatalf("Location = %q, want %q", got, location)
	}
}

func TestGuardNoCookieRedirectsToLogin(t *testing.T) {
	guard, _ := newGuard(t)
	wantRedirect(t, doGuarded(t, guard, "/admin/dashboard", ""), "/admin/login")
}

func TestGuardBadTokenRedirectsToLogin(t *testing.T) {
	guard, _ := newGuard(t)
	rec := doGuarded(t, guard, "/admin/dashboard", "not.a.token")
	wantRedirect(t, rec, "/admin/login")

	// the dead cookie is cleared on the way out
	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.CookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected the invalid cookie to be cleared")
	}
}

func TestGuardAdminPathNeedsAdminTier(t *testing.T) {
	guard, tokens := newGuard(t)
	// authenticated but under-privileged: landing page, not login
	wantRedirect(t, doGuarded(t, guard, "/admin/users", issueFor(t, tokens, models.RoleEditor)), "/admin/dashboard")

	rec := doGuarded(t, guard, "/admin/users", issueFor(t, tokens, models.RoleAdmin))
	if rec.Code != http.StatusOK {
		t.Fatalf("admin should pass, got %d", rec.Code)
	}
}

func TestGuardEditorPathRejectsViewer(t *testing.T) {
	guard, tokens := newGuard(t)
	wantRedirect(t, doGuarded(t, guard, "/admin/cars/64f1/edit", issueFor(t, tokens, models.RoleViewer)), "/admin/dashboard")

	for _, role := range []string{models.RoleEditor, models.RoleAdmin} {
		rec := doGuarded(t, guard, "/admin/cars/64f1/edit", issueFor(t, tokens, role))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s should pass editor-tier path, got %d", role, rec.Code)
		}
	}
}

func TestGuardUnruledPathAllowsAnyAuthenticated(t *testing.T) {
	guard, tokens := newGuard(t)
	rec := doGuarded(t, guard, "/admin/dashboard", issueFor(t, tokens, models.RoleViewer))
	if rec.Code != http.StatusOK {
		t.Fatalf("viewer should reach unruled path, got %d", rec.Code)
	}
	if rec.Header().Get("X-Authenticated") != "yes" {
		t.Fatal("claims missing from request context")
	}
}

func TestGuardLoginPage(t *testing.T) {
	guard, tokens := newGuard(t)

	// already authenticated: away from the login page
	wantRedirect(t, doGuarded(t, guard, "/admin/login", issueFor(t, tokens, models.RoleViewer)), "/admin/dashboard")

	// unauthenticated: the login page itself is reachable
	if rec := doGuarded(t, guard, "/admin/login", ""); rec.Code != http.StatusOK {
		t.Fatalf("login page must be reachable without a session, got %d", rec.Code)
	}
}

func TestGuardIgnoresPathsOutsidePrefix(t *testing.T) {
	guard, _ := newGuard(t)
	if rec := doGuarded(t, guard, "/api/cars", ""); rec.Code != http.StatusOK {
		t.Fatalf("public path must pass through, got %d", rec.Code)
	}
}
