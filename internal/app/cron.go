package app

import (
	"context"

	"github.com/courtbook/backend/config"
	"github.com/courtbook/backend/internal/domains/bookings/service"
	"github.com/courtbook/backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

func Cron(scheduler service.SchedulerService, cfg *config.Config, l logger.Interface) {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(cfg.Schedule.BookingsRetention, func() {
		ctx := context.WithoutCancel(context.Background())

		if err := scheduler.PurgeCanceledBookings(ctx); err != nil {
			l.Error("Cron job - PurgeCanceledBookings failed: %v", err)
		}
	})

	if err != nil {
		l.Error("Cron job - AddFunc failed: %v", err)

		return
	}

	c.Start()
}
