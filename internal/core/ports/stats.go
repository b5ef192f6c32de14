package ports

import (
	"context"

	"github.com/empowerup/empowerup-api/internal/core/domain"
)

// DashboardStats aggregates the counters and recent activity shown on the
// admin dashboard.
type DashboardStats struct {
	Users          int64                `json:"users"`
	Posts          int64                `json:"posts"`
	Groups         int64                `json:"groups"`
	Events         int64                `json:"events"`
	RecentActivity []*domain.AuditEntry `json:"recent_activity"`
}

type StatsService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}
