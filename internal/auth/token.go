package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Husnainn01/mizhuo-sub000/internal/models"
)

// DefaultTokenTTL is the session validity window. The cookie Max-Age
// must match it exactly.
const DefaultTokenTTL = 7 * 24 * time.Hour

// Claims is the token payload. Field names are part of the wire
// contract shared with the site front end; do not rename them.
type Claims struct {
	UserID      string   `json:"userId"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions,omitempty"`
	jwt.RegisteredClaims
}

// Verifier checks a token string and returns its claims. Two
// implementations exist: TokenManager performs full cryptographic
// verification, UnverifiedDecoder performs a structural decode for
// execution contexts without crypto library access.
type Verifier interface {
	VerifyToken(token string) (*Claims, error)
}

// TokenManager issues and verifies signed session tokens for
// authenticated accounts.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager creates a manager with the provided secret and token
// lifetime. An empty secret is a configuration error and is rejected
// here so it is fatal at startup, never per-request.
func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("auth: signing secret must not be empty")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// TTL returns the validity window tokens are issued with.
func (t *TokenManager) TTL() time.Duration {
	return t.ttl
}

// Issue signs a token carrying the user's identity and authorization
// claims, expiring at now plus the configured lifetime. The token is
// self-contained and never persisted server-side; once issued it stays
// valid until expiry regardless of logout.
func (t *TokenManager) Issue(user models.User) (string, error) {
	now := t.now()
	claims := Claims{
		UserID:      user.ID,
		Email:       user.Email,
		Role:        user.Role,
		Permissions: user.Permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// VerifyToken validates the signature and expiry of a token and
// returns its claims. Failures map onto ErrExpiredToken or
// ErrInvalidToken; callers surface both as one unauthenticated outcome
// so clients cannot tell which check failed.
func (t *TokenManager) VerifyToken(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired(), jwt.WithTimeFunc(t.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
