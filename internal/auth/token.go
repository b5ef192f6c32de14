// Package auth implements the signed bearer-token codec used for both
// ordinary user sessions and admin access. Tokens are self-contained: no
// server-side state is consulted to verify one.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/empowerup/empowerup-api/internal/core/domain"
)

// DefaultTTL is the lifetime of a user token when none is configured.
const DefaultTTL = 7 * 24 * time.Hour // 604800s

// Claims is the only claim shape this service signs or accepts.
type Claims struct {
	jwt.RegisteredClaims

	UserID string `json:"user_id,omitempty"`
	Admin  bool   `json:"admin,omitempty"`
}

// Codec signs and verifies tokens under a single secret. The service runs two
// instances with distinct secrets, one for user tokens and one for admin
// tokens, so a token minted under one keying can never verify under the
// other.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec builds a Codec for the given secret. A non-positive ttl falls back
// to DefaultTTL.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Encode mints a signed token for userID. The admin flag is only ever set by
// the admin login flow, which uses the admin-secret codec.
func (c *Codec) Encode(userID string, admin bool) (string, error) {
	now := c.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		UserID: userID,
		Admin:  admin,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Decode verifies a token and returns its claims. Failures collapse to two
// sentinels: domain.ErrTokenExpired for a well-signed token past its expiry,
// domain.ErrTokenInvalid for everything else (bad signature, wrong secret,
// malformed input, unexpected algorithm). Decode has no side effects and
// never panics on hostile input.
func (c *Codec) Decode(token string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)

	claims := &Claims{}
	parsed, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", domain.ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
