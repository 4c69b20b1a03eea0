package auth

import (
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/Husnainn01/mizhuo-sub000/internal/models"
)

func TestDecoderRoundTrip(t *testing.T) {
	tm := newTestManager(t)
	user := testUser()
	token, err := tm.Issue(user)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := NewUnverifiedDecoder().VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email || claims.Role != user.Role {
		t.Fatalf("claims mismatch: got %+v", claims)
	}
}

func TestDecoderRejectsMalformedTokens(t *testing.T) {
	d := NewUnverifiedDecoder()
	badPayload := "x." + base64.RawURLEncoding.EncodeToString([]byte("{not json")) + ".y"
	noExp := "x." + base64.RawURLEncoding.EncodeToString([]byte(`{"userId":"1","email":"a@b.c","role":"admin"}`)) + ".y"

	cases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"two segments", "a.b"},
		{"four segments", "a.b.c.d"},
		{"payload not base64url", "x.!!!.y"},
		{"payload not json", badPayload},
		{"missing exp", noExp},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := d.VerifyToken(tc.token); !errors.Is(err, ErrMalformedToken) {
				t.Fatalf("want ErrMalformedToken, got %v", err)
			}
		})
	}
}

func TestDecoderRejectsExpiredToken(t *testing.T) {
	tm := newTestManager(t)
	tm.now = func() time.Time { return time.Now().Add(-30 * 24 * time.Hour) }
	token, err := tm.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := NewUnverifiedDecoder().VerifyToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("want ErrExpiredToken, got %v", err)
	}
}

// TestDecoderAcceptsTamperedPayload pins the decoder's documented
// integrity gap: because the signature segment is never checked, a
// tampered but unexpired payload is accepted. The decoder is only safe
// behind the process's own HTTPS-only cookie issuance; this test
// exists so the gap stays a deliberate trade-off, not an accident.
func TestDecoderAcceptsTamperedPayload(t *testing.T) {
	tm := newTestManager(t)
	token, err := tm.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	tampered := tamperPayload(t, token)

	claims, err := NewUnverifiedDecoder().VerifyToken(tampered)
	if err != nil {
		t.Fatalf("decoder rejected tampered token: %v", err)
	}
	if claims.Role != models.RoleAdmin || claims.Email != "attacker@evil.example" {
		t.Fatalf("expected forged claims to be trusted, got %+v", claims)
	}

	// the full verifier must reject the same token
	if _, err := tm.VerifyToken(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("full verifier must reject tampered token, got %v", err)
	}
}
