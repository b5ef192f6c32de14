package domain

import "time"

// Audit actions recorded by the platform's mutating operations.
const (
	AuditUserRegistered = "user.registered"
	AuditUserLoggedIn   = "user.logged_in"
	AuditPostCreated    = "post.created"
	AuditPostDeleted    = "post.deleted"
	AuditGroupCreated   = "group.created"
	AuditGroupJoined    = "group.joined"
	AuditGroupLeft      = "group.left"
	AuditEventCreated   = "event.created"
)

// AuditEntry is one line of the platform audit trail, shown on the admin
// dashboard as recent activity.
type AuditEntry struct {
	ID        string    `json:"id"`
	ActorID   string    `json:"actor_id"`
	Action    string    `json:"action"`
	TargetID  string    `json:"target_id,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
