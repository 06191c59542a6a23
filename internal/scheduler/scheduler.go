package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron"
	"github.com/rupakcs/socialsync/internal/models"
	"github.com/rupakcs/socialsync/internal/repository"
	"github.com/rupakcs/socialsync/internal/transfer"
)

const defaultInterval = "1h"

var cronSpecs = map[string]string{
	"15m": "0 */15 * * * *",
	"30m": "0 */30 * * * *",
	"1h":  "@hourly",
	"6h":  "0 0 */6 * * *",
	"24h": "0 0 0 * * *",
}

var intervalDurations = map[string]time.Duration{
	"15m": 15 * time.Minute,
	"30m": 30 * time.Minute,
	"1h":  time.Hour,
	"6h":  6 * time.Hour,
	"24h": 24 * time.Hour,
}

// SyncRunner is the slice of the sync service the scheduler needs.
type SyncRunner interface {
	Sync(ctx context.Context, platformName, syncType string) *transfer.SyncResult
}

// Scheduler owns the active triggers, at most one per platform. Trigger state
// is process-local; persisted config is the source of truth and
// InitializeAutoSync rebuilds the triggers from it at startup.
type Scheduler struct {
	runner SyncRunner
	ac     repository.ApiConfigRepository

	mu   sync.Mutex
	jobs map[string]*cron.Cron
}

func New(runner SyncRunner, ac repository.ApiConfigRepository) *Scheduler {
	return &Scheduler{
		runner: runner,
		ac:     ac,
		jobs:   make(map[string]*cron.Cron),
	}
}

// SchedulePlatformSync installs the recurring trigger for a platform,
// replacing any existing one. Unrecognized interval tokens fall back to
// hourly.
func (s *Scheduler) SchedulePlatformSync(platformName, interval string) error {
	s.StopPlatformSync(platformName)

	c := cron.New()
	err := c.AddFunc(cronSpecFor(interval), func() {
		s.runScheduledSync(platformName, interval)
	})
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	c.Start()

	s.mu.Lock()
	s.jobs[platformName] = c
	s.mu.Unlock()

	// Seed the display estimate so status pages have a value before the
	// first firing.
	if err := s.ac.SetNextSyncAt(context.Background(), platformName, time.Now().Add(durationFor(interval))); err != nil {
		slog.Info(err.Error())
	}

	return nil
}

// StopPlatformSync cancels the platform's trigger if one is active. A sync
// already in flight runs to completion.
func (s *Scheduler) StopPlatformSync(platformName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.jobs[platformName]; ok {
		c.Stop()
		delete(s.jobs, platformName)
	}
}

// InitializeAutoSync rebuilds triggers from persisted config at process
// start.
func (s *Scheduler) InitializeAutoSync(ctx context.Context) error {
	configs, err := s.ac.List(ctx)
	if err != nil {
		return err
	}

	for _, cfg := range configs {
		if !cfg.AutoSyncEnabled {
			continue
		}
		interval := cfg.SyncInterval
		if interval == "" {
			interval = defaultInterval
		}
		if err := s.SchedulePlatformSync(cfg.Platform, interval); err != nil {
			slog.Info(err.Error())
		}
	}

	return nil
}

// StopAllAutoSync tears down every trigger, used on shutdown signals.
func (s *Scheduler) StopAllAutoSync() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for platformName, c := range s.jobs {
		c.Stop()
		delete(s.jobs, platformName)
	}
}

// AutoSyncStatus projects trigger state over the known platform set.
func (s *Scheduler) AutoSyncStatus() []transfer.AutoSyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	statuses := make([]transfer.AutoSyncStatus, 0, len(models.SupportedPlatforms))
	for _, platformName := range models.SupportedPlatforms {
		_, active := s.jobs[platformName]
		statuses = append(statuses, transfer.AutoSyncStatus{
			Platform: platformName,
			Active:   active,
		})
	}
	return statuses
}

// runScheduledSync is the firing callback. Failures are logged and contained
// here, one platform's bad day never touches the others' triggers.
func (s *Scheduler) runScheduledSync(platformName, interval string) {
	ctx := context.Background()

	result := s.runner.Sync(ctx, platformName, models.SyncTypeAuto)
	if !result.Success {
		slog.Info("scheduled sync failed for " + platformName + ": " + result.Error)
	}

	// Wall-clock estimate for display. The cron entry owns the real next
	// fire time, which can drift from this under load.
	if err := s.ac.SetNextSyncAt(ctx, platformName, time.Now().Add(durationFor(interval))); err != nil {
		slog.Info(err.Error())
	}
}

func cronSpecFor(interval string) string {
	if spec, ok := cronSpecs[interval]; ok {
		return spec
	}
	return cronSpecs[defaultInterval]
}

func durationFor(interval string) time.Duration {
	if d, ok := intervalDurations[interval]; ok {
		return d
	}
	return intervalDurations[defaultInterval]
}
