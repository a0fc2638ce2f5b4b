// Package scheduler runs the background maintenance jobs of the API: the sweep of
// associations left dangling by racing deletes and the pruning of idle rate-limit buckets.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/Rosvend/REST-Api-NoSQL/internal/logging"
	"github.com/Rosvend/REST-Api-NoSQL/internal/middleware"
	"github.com/Rosvend/REST-Api-NoSQL/internal/repository"
	"github.com/Rosvend/REST-Api-NoSQL/internal/services"
	"github.com/go-co-op/gocron"
)

// LimiterCleanupInterval is how often idle rate-limit buckets are dropped
const LimiterCleanupInterval = time.Minute

const sweepTimeout = 30 * time.Second

// Scheduler owns the gocron scheduler and the dependencies of its jobs
type Scheduler struct {
	asociaciones  repository.CompuestoMedicamentoRepository
	limiter       *middleware.RateLimiter
	sweepInterval time.Duration
	log           *logging.Logger
	scheduler     *gocron.Scheduler
}

// New creates a scheduler. A zero sweepInterval disables the orphan sweep and a nil
// limiter disables the bucket cleanup.
func New(
	asociaciones repository.CompuestoMedicamentoRepository,
	limiter *middleware.RateLimiter,
	sweepInterval time.Duration,
	log *logging.Logger,
) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	return &Scheduler{
		asociaciones:  asociaciones,
		limiter:       limiter,
		sweepInterval: sweepInterval,
		log:           log.With("component", "scheduler"),
		scheduler:     s,
	}
}

// Start registers the jobs and runs them asynchronously. The sweep runs once right away.
func (s *Scheduler) Start() error {
	if s.sweepInterval > 0 {
		if _, err := s.scheduler.Every(s.sweepInterval).Do(s.sweepOrphans); err != nil {
			return fmt.Errorf("failed to schedule orphan sweep: %w", err)
		}
		s.log.Info("Scheduled orphan sweep", "interval", s.sweepInterval.String())
	}

	if s.limiter != nil {
		if _, err := s.scheduler.Every(LimiterCleanupInterval).WaitForSchedule().Do(s.cleanupLimiter); err != nil {
			return fmt.Errorf("failed to schedule rate limiter cleanup: %w", err)
		}
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and waits for running jobs
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// Jobs returns the number of registered jobs
func (s *Scheduler) Jobs() int {
	return len(s.scheduler.Jobs())
}

func (s *Scheduler) sweepOrphans() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	if _, err := services.SweepOrphans(ctx, s.asociaciones, s.log); err != nil {
		s.log.Error("Failed to sweep orphaned associations", "error", err)
	}
}

func (s *Scheduler) cleanupLimiter() {
	if removed := s.limiter.Cleanup(); removed > 0 {
		s.log.Debug("Removed idle rate limit buckets", "count", removed, "remaining", s.limiter.Clients())
	}
}
