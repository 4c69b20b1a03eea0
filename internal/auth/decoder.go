package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// UnverifiedDecoder extracts the claims of a token WITHOUT verifying
// its signature. It exists for execution contexts that cannot run the
// full HMAC verification routine and checks structure and expiry only.
//
// Trust precondition: the payload is trusted solely because this
// process issued the token and delivered it in an HttpOnly, HTTPS-only
// cookie. The decoder must never be reachable for tokens arriving over
// any other channel (e.g. an Authorization header); behind anything
// weaker, an attacker can mint arbitrary claims by base64-encoding a
// payload of their choosing.
type UnverifiedDecoder struct {
	now func() time.Time
}

// NewUnverifiedDecoder returns a decoder using the real clock.
func NewUnverifiedDecoder() *UnverifiedDecoder {
	return &UnverifiedDecoder{now: time.Now}
}

// VerifyToken splits the compact form into its three dot-separated
// segments, base64url-decodes and parses the payload, and checks exp
// against the current time. The signature segment is ignored.
func (d *UnverifiedDecoder) VerifyToken(token string) (*Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, ErrMalformedToken
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, ErrMalformedToken
	}
	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, ErrMalformedToken
	}
	if claims.ExpiresAt == nil {
		return nil, ErrMalformedToken
	}
	if !d.now().Before(claims.ExpiresAt.Time) {
		return nil, ErrExpiredToken
	}
	return &claims, nil
}
