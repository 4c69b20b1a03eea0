package auth

import (
	"net/http"
	"time"
)

// CookieName carries the session token. The name is shared with the
// site front end.
const CookieName = "auth_token"

// CookieManager writes and clears the session cookie. It is purely a
// response-header operation; the token inside stays valid until expiry
// even after Clear (stateless sessions, no revocation).
type CookieManager struct {
	secure bool
	maxAge time.Duration
}

// NewCookieManager constructs a manager. secure should be true in
// production deployments; maxAge must match the token lifetime.
func NewCookieManager(secure bool, maxAge time.Duration) *CookieManager {
	return &CookieManager{secure: secure, maxAge: maxAge}
}

// Set writes the session cookie with the subsystem's fixed attributes:
// HttpOnly, SameSite=Lax, Path=/, Max-Age equal to the token lifetime.
func (c *CookieManager) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear deletes the session cookie.
func (c *CookieManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Token extracts the session token from the request cookie, returning
// false when the cookie is absent.
func Token(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
