package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/empowerup/empowerup-api/internal/api/metrics"
	"github.com/empowerup/empowerup-api/internal/core/ports"
)

// RateLimit guards a route group with a sliding-window limiter. A blocked
// request gets the platform envelope with a human-readable retry hint; being
// throttled is normal traffic shaping, not a fault, so blocks are not logged
// as errors. Limiter backend failures fail open: availability over strictness.
func RateLimit(limiter ports.RateLimiter, limit int, window time.Duration, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := ClientKey(c.RealIP(), c.Request().UserAgent())

			decision, err := limiter.Allow(c.Request().Context(), key, limit, window)
			if err != nil {
				log.Error().Err(err).Str("path", c.Path()).Msg("rate limiter unavailable, failing open")
				return next(c)
			}

			if !decision.Allowed {
				metrics.RateLimitDecisionsTotal.WithLabelValues("blocked").Inc()
				minutes := int(math.Ceil(window.Minutes()))
				return c.JSON(http.StatusTooManyRequests, map[string]any{
					"success": false,
					"message": fmt.Sprintf("Muitas tentativas. Tente novamente em %d minutos.", minutes),
				})
			}

			metrics.RateLimitDecisionsTotal.WithLabelValues("allowed").Inc()
			return next(c)
		}
	}
}

// ClientKey derives the rate-limit key from the source IP and user agent.
// A coarse proxy for "one client": shared NATs collide and rotating agents
// split, which is accepted for abuse throttling (not accounting).
func ClientKey(ip, userAgent string) string {
	sum := sha256.Sum256([]byte(ip + userAgent))
	return hex.EncodeToString(sum[:])
}
