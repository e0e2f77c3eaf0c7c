package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/corvo-marketing/agency-console/internal/core/domain"
	"github.com/corvo-marketing/agency-console/internal/core/ports"
)

// ReportService feeds the pure aggregation core from the repositories.
type ReportService struct {
	users   ports.UserRepository
	clients ports.ClientRepository
	tasks   ports.TaskRepository
	now     func() time.Time
	logger  zerolog.Logger
}

func NewReportService(
	users ports.UserRepository,
	clients ports.ClientRepository,
	tasks ports.TaskRepository,
	logger zerolog.Logger,
) *ReportService {
	return &ReportService{
		users:   users,
		clients: clients,
		tasks:   tasks,
		now:     time.Now,
		logger:  logger,
	}
}

// WithClock replaces the wall clock, keeping report output deterministic
// under test.
func (s *ReportService) WithClock(now func() time.Time) *ReportService {
	s.now = now
	return s
}

// currentMonth derives the default selection from the injected clock.
func (s *ReportService) currentMonth() ports.MonthSelection {
	t := s.now()
	return ports.MonthSelection{Year: t.Year(), Month: int(t.Month()) - 1}
}

// Dashboard computes the month's metrics for the caller. A nil month
// defaults to the current one.
func (s *ReportService) Dashboard(ctx context.Context, caller ports.Caller, month *ports.MonthSelection) (*ports.Dashboard, error) {
	sel := s.currentMonth()
	if month != nil {
		sel = *month
	}

	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: list tasks: %w", err)
	}
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: list clients: %w", err)
	}

	d := buildDashboard(tasks, clients, caller, sel)
	s.logger.Debug().
		Str("user_id", caller.UserID).
		Str("role", string(caller.Role)).
		Int("year", sel.Year).
		Int("month", sel.Month).
		Msg("dashboard computed")
	return d, nil
}

// TeamPerformance returns the admin-only per-user summary for the month.
func (s *ReportService) TeamPerformance(ctx context.Context, caller ports.Caller, month *ports.MonthSelection) ([]ports.TeamPerformanceRow, error) {
	if !CanViewAdminMetrics(caller) {
		return nil, domain.ErrForbidden
	}

	sel := s.currentMonth()
	if month != nil {
		sel = *month
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("team performance: list users: %w", err)
	}
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("team performance: list clients: %w", err)
	}
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("team performance: list tasks: %w", err)
	}

	return buildTeamPerformance(users, clients, tasks, sel), nil
}

// Notifications classifies the caller's open tasks against the clock.
func (s *ReportService) Notifications(ctx context.Context, caller ports.Caller) ([]ports.Notification, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("notifications: list tasks: %w", err)
	}
	return classifyNotifications(tasks, s.now(), caller.UserID), nil
}
