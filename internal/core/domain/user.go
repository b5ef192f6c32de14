package domain

import "time"

const (
	RoleEntrepreneur = "entrepreneur"
	RoleClient       = "client"
	RoleAdmin        = "admin"
)

// ValidRole reports whether role is one a user may register with.
// Admin accounts are provisioned out of band, never via the public API.
func ValidRole(role string) bool {
	return role == RoleEntrepreneur || role == RoleClient
}

// User models a registered member of the community.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Handle       string    `json:"handle"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Bio          string    `json:"bio,omitempty"`
	Company      string    `json:"company,omitempty"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
