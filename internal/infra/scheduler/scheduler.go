// Package scheduler drives the poll loop on a cron cadence.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Clock abstracts wall time. The production clock is the runtime one;
// tests substitute their own so nothing ever sleeps for real.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time                         { return time.Now() }
func (systemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// SystemClock returns a Clock backed by the runtime.
func SystemClock() Clock { return systemClock{} }

// PollScheduler runs a single job on a cron schedule. The first run fires
// immediately on Run; every later one waits for the next schedule tick.
type PollScheduler struct {
	spec     string
	schedule cron.Schedule
	clock    Clock
	logger   *logrus.Entry
}

// NewPollScheduler parses spec with the standard 5-field cron parser, which
// also accepts descriptors like "@every 10m" and "@hourly".
func NewPollScheduler(spec string, clock Clock, logger *logrus.Entry) (*PollScheduler, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid poll spec %q: %w", spec, err)
	}

	return &PollScheduler{
		spec:     spec,
		schedule: schedule,
		clock:    clock,
		logger:   logger,
	}, nil
}

// Run executes cycle now and then on every schedule tick until ctx is
// canceled. It returns ctx.Err() once asked to stop.
func (s *PollScheduler) Run(ctx context.Context, cycle func(context.Context)) error {
	s.logger.WithField("spec", s.spec).Info("Poll scheduler started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Poll scheduler stopped")
			return ctx.Err()
		default:
		}

		cycle(ctx)

		now := s.clock.Now()
		next := s.schedule.Next(now)
		s.logger.WithField("next_run", next.Format(time.RFC3339)).Debug("Cycle finished, waiting for next tick")

		select {
		case <-ctx.Done():
			s.logger.Info("Poll scheduler stopped")
			return ctx.Err()
		case <-s.clock.After(next.Sub(now)):
		}
	}
}
