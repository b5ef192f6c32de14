package service

import (
	"context"

	"github.com/empowerup/empowerup-api/internal/core/ports"
)

const recentActivityLimit = 10

// StatsService aggregates the counters shown on the admin dashboard.
type StatsService struct {
	users  ports.UserRepository
	posts  ports.PostRepository
	groups ports.GroupRepository
	events ports.EventRepository
	audit  ports.AuditRepository
}

func NewStatsService(
	users ports.UserRepository,
	posts ports.PostRepository,
	groups ports.GroupRepository,
	events ports.EventRepository,
	audit ports.AuditRepository,
) *StatsService {
	return &StatsService{users: users, posts: posts, groups: groups, events: events, audit: audit}
}

func (s *StatsService) Dashboard(ctx context.Context) (*ports.DashboardStats, error) {
	stats := &ports.DashboardStats{}

	var err error
	if stats.Users, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Posts, err = s.posts.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Groups, err = s.groups.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Events, err = s.events.Count(ctx); err != nil {
		return nil, err
	}

	stats.RecentActivity, err = s.audit.Recent(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
