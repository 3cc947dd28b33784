package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/property-market-engine/internal/metrics"
)

// Scheduler periodically sweeps properties left awaiting analysis.
type Scheduler struct {
	cron    *cron.Cron
	engine  *Engine
	log     *slog.Logger
	timeout time.Duration

	sweepEntryID cron.EntryID
}

// NewScheduler creates a Scheduler that runs the pending sweep every
// interval. Each run is bounded by timeout when it is positive.
func NewScheduler(
	eng *Engine,
	interval time.Duration,
	timeout time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	s := &Scheduler{
		cron:    c,
		engine:  eng,
		log:     log,
		timeout: timeout,
	}

	id, err := c.AddFunc("@every "+interval.String(), s.runSweep)
	if err != nil {
		return nil, err
	}
	s.sweepEntryID = id

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
	s.SyncNextRunTimestamp()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// SyncNextRunTimestamp publishes the next sweep time as a gauge.
func (s *Scheduler) SyncNextRunTimestamp() {
	next := s.cron.Entry(s.sweepEntryID).Next
	if !next.IsZero() {
		metrics.SweepNextRunTimestamp.Set(float64(next.Unix()))
	}
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runSweep() {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	defer s.SyncNextRunTimestamp()

	s.log.Info("scheduled sweep starting")
	summary, err := s.engine.RunPendingAnalyses(ctx)
	if err != nil {
		s.log.Error("scheduled sweep failed",
			"analyzed", summary.Analyzed,
			"failed", summary.Failed,
			"error", err,
		)
	}
}
