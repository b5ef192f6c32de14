package ports

import (
	"context"

	"github.com/empowerup/empowerup-api/internal/core/domain"
)

// AuditRepository defines persistence for the audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
	Recent(ctx context.Context, limit int) ([]*domain.AuditEntry, error)
}

// AuditRecorder accepts audit entries for asynchronous persistence.
// Record must never block the request path beyond queue backpressure.
type AuditRecorder interface {
	Record(entry domain.AuditEntry)
}
