package domain

import "errors"

var (
	// ErrTokenInvalid covers malformed tokens, wrong-secret signatures and any
	// other parse failure that is not an expiry.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrTokenExpired is returned when a structurally valid token is past its exp.
	ErrTokenExpired = errors.New("token expired")

	// ErrNotAuthenticated is the single failure the resolver exposes to clients,
	// regardless of the underlying cause.
	ErrNotAuthenticated = errors.New("not authenticated")

	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrForbidden          = errors.New("forbidden")

	ErrPostNotFound  = errors.New("post not found")
	ErrGroupNotFound = errors.New("group not found")
	ErrEventNotFound = errors.New("event not found")

	// ErrSessionNotFound marks a missing or expired server-side session.
	ErrSessionNotFound = errors.New("session not found")
)
