package service

import (
	"context"

	"github.com/courtbook/backend/config"
	"github.com/courtbook/backend/internal/domains/bookings/repository"
	"github.com/courtbook/backend/pkg/logger"
	"github.com/courtbook/backend/pkg/postgres"
)

type SchedulerService interface {
	PurgeCanceledBookings(ctx context.Context) error
}

type schedulerService struct {
	db     postgres.PgxIface
	repo   repository.Querier
	cfg    *config.Config
	logger logger.Interface
}

func NewScheduler(db postgres.PgxIface, r repository.Querier, cfg *config.Config, l logger.Interface) SchedulerService {
	return &schedulerService{
		db:     db,
		repo:   r,
		cfg:    cfg,
		logger: l,
	}
}

const schedulerIdentifier = "service - booking scheduler - %s"

// PurgeCanceledBookings drops canceled bookings older than the configured
// retention window. Runs from the cron schedule in config.
func (s *schedulerService) PurgeCanceledBookings(ctx context.Context) error {
	retentionDays := s.cfg.Schedule.BookingsRetentionDays

	if err := s.repo.PurgeCanceledBookings(ctx, s.db, int32(retentionDays)); err != nil {
		s.logger.Error(schedulerIdentifier, "purge - error purging canceled bookings: %w", err)

		return err
	}

	s.logger.Info(schedulerIdentifier, "purge - removed canceled bookings older than %d days", retentionDays)

	return nil
}
