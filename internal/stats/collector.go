// Package stats periodically refreshes domain gauges from the database.
package stats

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/userhive/usersvc/internal/metrics"
	"github.com/userhive/usersvc/internal/repository"
)

type Collector struct {
	repo   repository.UserRepository
	logger *slog.Logger
	sched  cron.Schedule
}

// NewCollector parses the standard cron spec and returns a collector
// that updates the users_total gauge on that schedule.
func NewCollector(repo repository.UserRepository, logger *slog.Logger, spec string) (*Collector, error) {
	sched, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, err
	}
	return &Collector{
		repo:   repo,
		logger: logger.With("component", "stats_collector"),
		sched:  sched,
	}, nil
}

// Start runs until ctx is cancelled. An immediate refresh happens on
// startup so the gauge is never unset while the service is up.
func (c *Collector) Start(ctx context.Context) {
	c.logger.Info("stats collector started")
	c.refresh(ctx)

	for {
		next := c.sched.Next(time.Now())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			c.logger.Info("stats collector shut down")
			return
		case <-timer.C:
			c.refresh(ctx)
		}
	}
}

func (c *Collector) refresh(ctx context.Context) {
	count, err := c.repo.Count(ctx)
	if err != nil {
		c.logger.Error("count users", "error", err)
		return
	}
	metrics.UsersTotal.Set(float64(count))
}
