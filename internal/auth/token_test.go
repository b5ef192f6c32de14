package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/empowerup/empowerup-api/internal/core/domain"
)

func TestCodec_RoundTrip(t *testing.T) {
	c := NewCodec("user-secret", time.Hour)

	token, err := c.Encode("user_42", false)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	claims, err := c.Decode(token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if claims.UserID != "user_42" {
		t.Fatalf("expected user_42, got %q", claims.UserID)
	}
	if claims.Admin {
		t.Fatalf("admin flag should not be set")
	}
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		t.Fatalf("expected iat and exp to be populated")
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != time.Hour {
		t.Fatalf("expected 1h lifetime, got %s", got)
	}
}

func TestCodec_DefaultTTL(t *testing.T) {
	c := NewCodec("user-secret", 0)

	token, err := c.Encode("user_1", false)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	claims, err := c.Decode(token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != DefaultTTL {
		t.Fatalf("expected 7d lifetime, got %s", got)
	}
}

func TestCodec_TamperDetection(t *testing.T) {
	c := NewCodec("user-secret", time.Hour)

	token, err := c.Encode("user_42", false)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	// Flip one byte somewhere in the payload segment.
	raw := []byte(token)
	i := len(raw) / 2
	if raw[i] == 'A' {
		raw[i] = 'B'
	} else {
		raw[i] = 'A'
	}

	if _, err := c.Decode(string(raw)); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestCodec_Expiry(t *testing.T) {
	base := time.Now()
	c := NewCodec("user-secret", time.Second)
	c.now = func() time.Time { return base }

	token, err := c.Encode("user_42", false)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	// Still valid just inside the window.
	if _, err := c.Decode(token); err != nil {
		t.Fatalf("expected token to be valid, got %v", err)
	}

	// Advance the clock 2s past issuance.
	c.now = func() time.Time { return base.Add(2 * time.Second) }
	if _, err := c.Decode(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestCodec_CrossSecretIsolation(t *testing.T) {
	userCodec := NewCodec("user-secret", time.Hour)
	adminCodec := NewCodec("admin-secret", time.Hour)

	userToken, err := userCodec.Encode("user_42", false)
	if err != nil {
		t.Fatalf("encode user token: %v", err)
	}
	adminToken, err := adminCodec.Encode("root", true)
	if err != nil {
		t.Fatalf("encode admin token: %v", err)
	}

	if _, err := userCodec.Decode(adminToken); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("admin token must not verify under user secret, got %v", err)
	}
	if _, err := adminCodec.Decode(userToken); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("user token must not verify under admin secret, got %v", err)
	}
}

func TestCodec_GarbageInput(t *testing.T) {
	c := NewCodec("user-secret", time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		if _, err := c.Decode(tok); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid for %q, got %v", tok, err)
		}
	}
}
