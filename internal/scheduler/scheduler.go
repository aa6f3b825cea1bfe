// Package scheduler provides cron-based refreshing of the catalog snapshot.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Refresher reloads a read copy from its backing store.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Config holds the scheduler configuration
type Config struct {
	// Schedule is a five-field cron expression (e.g., "*/5 * * * *" for every five minutes)
	Schedule string
	// Timeout bounds a single refresh
	Timeout time.Duration
	// Enabled determines if the scheduler should run
	Enabled bool
}

// DefaultConfig returns the default scheduler configuration
func DefaultConfig() Config {
	return Config{
		Schedule: "*/5 * * * *",
		Timeout:  30 * time.Second,
		Enabled:  true,
	}
}

// Scheduler periodically refreshes the catalog
type Scheduler struct {
	cron      *cron.Cron
	refresher Refresher
	config    Config
	logger    *slog.Logger
	entryID   cron.EntryID
}

// New creates a new Scheduler instance
func New(cfg Config, refresher Refresher, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}

	return &Scheduler{
		cron:      cron.New(cron.WithSeconds()),
		refresher: refresher,
		config:    cfg,
		logger:    logger,
	}
}

// Start begins the scheduler
func (s *Scheduler) Start() error {
	if !s.config.Enabled {
		s.logger.Info("catalog refresh disabled, skipping scheduler start")
		return nil
	}

	// Seconds field first; the configured expression has five fields
	entryID, err := s.cron.AddFunc("0 "+s.config.Schedule, s.runRefreshJob)
	if err != nil {
		return err
	}

	s.entryID = entryID
	s.cron.Start()

	s.logger.Info("scheduler started",
		slog.String("schedule", s.config.Schedule),
		slog.Duration("timeout", s.config.Timeout),
	)

	return nil
}

// Stop stops the scheduler. The returned context is done once a running job finishes.
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("stopping scheduler")
	return s.cron.Stop()
}

// RunNow triggers an immediate refresh in the background
func (s *Scheduler) RunNow() {
	go s.runRefreshJob()
}

func (s *Scheduler) runRefreshJob() {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.Timeout)
	defer cancel()

	start := time.Now()
	err := s.refresher.Refresh(ctx)
	duration := time.Since(start)

	if err != nil {
		s.logger.Error("catalog refresh failed",
			slog.String("error", err.Error()),
			slog.Duration("duration", duration),
		)
		return
	}

	s.logger.Debug("catalog refresh completed", slog.Duration("duration", duration))
}

// NextRunTime returns the next scheduled run time
func (s *Scheduler) NextRunTime() time.Time {
	if s.entryID == 0 {
		return time.Time{}
	}
	return s.cron.Entry(s.entryID).Next
}

// LastRunTime returns the last run time
func (s *Scheduler) LastRunTime() time.Time {
	if s.entryID == 0 {
		return time.Time{}
	}
	return s.cron.Entry(s.entryID).Prev
}

// IsRunning returns true if a job is scheduled
func (s *Scheduler) IsRunning() bool {
	return s.cron != nil && len(s.cron.Entries()) > 0
}
