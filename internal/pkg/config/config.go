package config

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// CORSOrigins is the comma-separated list of allowed browser origins.
	CORSOrigins []string `env:"CORS_ORIGINS, default=http://localhost:3000"`

	Auth      AuthConfig
	RateLimit RateLimitConfig
	Session   SessionConfig
	Mongo     MongoConfig
	Redis     RedisConfig
}

type AuthConfig struct {
	// UserSecret signs ordinary user tokens; AdminSecret signs admin tokens.
	// The two must differ so neither keying can impersonate the other.
	UserSecret  string        `env:"USER_TOKEN_SECRET"`
	AdminSecret string        `env:"ADMIN_TOKEN_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL, default=168h"`
}

type RateLimitConfig struct {
	Limit  int           `env:"RATE_LIMIT_COUNT,  default=100"`
	Window time.Duration `env:"RATE_LIMIT_WINDOW, default=900s"`
	// Backend selects the counter store: "redis" (shared, multi-instance) or
	// "memory" (single instance only).
	Backend string `env:"RATE_LIMIT_BACKEND, default=redis"`
}

type SessionConfig struct {
	CookieName string        `env:"SESSION_COOKIE, default=empowerup_session"`
	TTL        time.Duration `env:"SESSION_TTL,    default=168h"`
	Secure     bool          `env:"SESSION_SECURE, default=false"`
	// SameSite is the cookie policy: "lax", "strict" or "none". Lax is the
	// default so a cross-origin SPA still sends the cookie on top-level
	// navigations; "none" is for fully cross-site setups and forces Secure.
	SameSite string `env:"SESSION_SAMESITE, default=lax"`
}

// SameSiteMode translates the configured policy to its http constant.
// Unrecognised values fall back to Lax.
func (s SessionConfig) SameSiteMode() http.SameSite {
	switch strings.ToLower(strings.TrimSpace(s.SameSite)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

type MongoConfig struct {
	URI         string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database    string `env:"MONGO_DB,  default=empowerup"`
	MaxPoolSize uint64 `env:"MONGO_MAX_POOL_SIZE, default=0"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Auth.UserSecret == "" || cfg.Auth.AdminSecret == "" {
		return nil, fmt.Errorf("config: USER_TOKEN_SECRET and ADMIN_TOKEN_SECRET are required")
	}
	if cfg.Auth.UserSecret == cfg.Auth.AdminSecret {
		return nil, fmt.Errorf("config: user and admin token secrets must differ")
	}
	return &cfg, nil
}
