package config

import (
	"net/http"
	"testing"
	"time"
)

func setRequiredSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("USER_TOKEN_SECRET", "user-secret")
	t.Setenv("ADMIN_TOKEN_SECRET", "admin-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredSecrets(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Auth.TokenTTL != 168*time.Hour {
		t.Fatalf("token ttl = %s, want 168h", cfg.Auth.TokenTTL)
	}
	if cfg.RateLimit.Limit != 100 || cfg.RateLimit.Window != 900*time.Second {
		t.Fatalf("rate limit defaults = %d/%s, want 100/900s", cfg.RateLimit.Limit, cfg.RateLimit.Window)
	}
	if cfg.RateLimit.Backend != "redis" {
		t.Fatalf("rate limit backend = %q, want redis", cfg.RateLimit.Backend)
	}
	if cfg.Session.CookieName != "empowerup_session" {
		t.Fatalf("cookie name = %q", cfg.Session.CookieName)
	}
	if cfg.Session.SameSiteMode() != http.SameSiteLaxMode {
		t.Fatalf("default samesite must be Lax")
	}
	if cfg.Redis.Password != "" {
		t.Fatalf("redis password should default empty, got %q", cfg.Redis.Password)
	}
}

func TestLoad_RequiresSecrets(t *testing.T) {
	t.Setenv("USER_TOKEN_SECRET", "")
	t.Setenv("ADMIN_TOKEN_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when token secrets are missing")
	}
}

func TestLoad_RejectsSharedSecret(t *testing.T) {
	t.Setenv("USER_TOKEN_SECRET", "same")
	t.Setenv("ADMIN_TOKEN_SECRET", "same")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when user and admin secrets match")
	}
}

func TestSessionConfig_SameSiteMode(t *testing.T) {
	cases := []struct {
		value string
		want  http.SameSite
	}{
		{"lax", http.SameSiteLaxMode},
		{"strict", http.SameSiteStrictMode},
		{"none", http.SameSiteNoneMode},
		{"STRICT", http.SameSiteStrictMode},
		{"", http.SameSiteLaxMode},
		{"bogus", http.SameSiteLaxMode},
	}

	for _, tc := range cases {
		got := SessionConfig{SameSite: tc.value}.SameSiteMode()
		if got != tc.want {
			t.Fatalf("SameSiteMode(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}
