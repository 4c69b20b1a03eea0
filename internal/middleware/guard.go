package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Husnainn01/mizhuo-sub000/internal/auth"
)

type claimsContextKey struct{}

// ClaimsFromContext returns the verified token claims the Guard placed
// on the request, if any.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey{}).(*auth.Claims)
	return claims, ok
}

// GuardConfig describes the protected area of the site: which prefix
// the Guard owns, where unauthenticated users are sent, where
// under-privileged but authenticated users land, and the tier rules.
type GuardConfig struct {
	// Prefix is the protected path prefix, e.g. "/admin". Requests
	// outside it pass through untouched.
	Prefix string
	// LoginPath is the login page under the prefix; it is reachable
	// without a session, but a valid session redirects away from it.
	LoginPath string
	// LandingPath is where authenticated but under-privileged requests
	// are redirected. Must itself require no more than LevelViewer.
	LandingPath string
	// Rules is the ordered tier rule table for paths under Prefix.
	// Paths matching no rule require only an authenticated session.
	Rules *RuleTable
}

// Guard is the route access controller for the admin back office. Per
// request it extracts the session cookie, verifies it, resolves the
// access tier, and enforces the rule table, redirecting on failure.
// Authentication failures redirect to the login page; authorization
// failures redirect to the landing page, because the user is known,
// just under-privileged.
func Guard(cfg GuardConfig, verifier auth.Verifier, cookies *auth.CookieManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if path != cfg.Prefix && !strings.HasPrefix(path, cfg.Prefix+"/") {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := auth.Token(r)
		var claims *auth.Claims
		if ok {
			var err error
			claims, err = verifier.VerifyToken(token)
			if err != nil {
				// dead cookie; drop it so the next request is clean
				cookies.Clear(w)
				claims = nil
			}
		}

		if path == cfg.LoginPath {
			if claims != nil {
				http.Redirect(w, r, cfg.LandingPath, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		if claims == nil {
			http.Redirect(w, r, cfg.LoginPath, http.StatusFound)
			return
		}

		level := auth.ResolveAccess(claims.Role, claims.Permissions)
		if min, matched := cfg.Rules.MinLevel(path); matched && !level.AtLeast(min) {
			http.Redirect(w, r, cfg.LandingPath, http.StatusFound)
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
