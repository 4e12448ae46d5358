package service

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"association-admin-backend/internal/domain"
	"association-admin-backend/internal/repository"
)

// recentLoginWindow is the trailing window for the "recently connected" count.
const recentLoginWindow = 7 * 24 * time.Hour

type dashboardService struct {
	userRepo repository.UserRepository
}

func NewDashboardService(userRepo repository.UserRepository) DashboardService {
	return &dashboardService{userRepo: userRepo}
}

func (s *dashboardService) GetDashboard(ctx context.Context, page, limit int32) (*Dashboard, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	members, total, err := s.userRepo.ListMembers(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	stats, err := s.computeStats(ctx)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Members:    members,
		Stats:      *stats,
		Pagination: NewPage(page, limit, total),
	}, nil
}

// computeStats runs the independent count queries concurrently; they are all
// read-only and have no ordering dependency.
func (s *dashboardService) computeStats(ctx context.Context) (*domain.MemberStats, error) {
	stats := &domain.MemberStats{}
	since := time.Now().UTC().Add(-recentLoginWindow)

	counts := []struct {
		dest *int64
		run  func(context.Context) (int64, error)
	}{
		{&stats.TotalMembers, s.userRepo.CountMembers},
		{&stats.WithCredentials, s.userRepo.CountWithCredentials},
		{&stats.WithSubmittedForm, s.userRepo.CountWithSubmittedForm},
		{&stats.Approved, func(ctx context.Context) (int64, error) {
			return s.userRepo.CountByStatus(ctx, domain.UserStatusApproved)
		}},
		{&stats.Pending, func(ctx context.Context) (int64, error) {
			return s.userRepo.CountByStatus(ctx, domain.UserStatusPending)
		}},
		{&stats.Rejected, func(ctx context.Context) (int64, error) {
			return s.userRepo.CountByStatus(ctx, domain.UserStatusRejected)
		}},
		{&stats.RecentlyConnected, func(ctx context.Context) (int64, error) {
			return s.userRepo.CountRecentLogins(ctx, since)
		}},
	}

	var wg sync.WaitGroup
	errs := make([]error, len(counts))
	for i, c := range counts {
		wg.Add(1)
		go func(i int, dest *int64, run func(context.Context) (int64, error)) {
			defer wg.Done()
			n, err := run(ctx)
			if err != nil {
				errs[i] = err
				return
			}
			*dest = n
		}(i, c.dest, c.run)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("failed to compute member stats: %w", err)
		}
	}

	stats.CredentialsRate = Percentage(stats.WithCredentials, stats.TotalMembers)
	stats.FormSubmissionRate = Percentage(stats.WithSubmittedForm, stats.TotalMembers)
	return stats, nil
}

// Percentage returns part/total as a whole percentage rounded to nearest,
// and 0 when total is 0.
func Percentage(part, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
