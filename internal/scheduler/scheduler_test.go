package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/rupakcs/socialsync/internal/models"
	"github.com/rupakcs/socialsync/internal/transfer"
)

type fakeRunner struct {
	calls []string
}

func (f *fakeRunner) Sync(ctx context.Context, platformName, syncType string) *transfer.SyncResult {
	f.calls = append(f.calls, platformName+"/"+syncType)
	return &transfer.SyncResult{Success: true, Platform: platformName, MetricsUpdated: []string{}}
}

type fakeConfigRepo struct {
	configs []*models.ApiConfig

	nextSyncSet []string
}

func (f *fakeConfigRepo) GetByPlatform(ctx context.Context, platform string) (*models.ApiConfig, bool, error) {
	for _, cfg := range f.configs {
		if cfg.Platform == platform {
			return cfg, true, nil
		}
	}
	return nil, false, nil
}

func (f *fakeConfigRepo) List(ctx context.Context) ([]*models.ApiConfig, error) {
	return f.configs, nil
}

func (f *fakeConfigRepo) SetLastSyncAt(ctx context.Context, platform string, lastSyncAt time.Time) error {
	return nil
}

func (f *fakeConfigRepo) SetNextSyncAt(ctx context.Context, platform string, nextSyncAt time.Time) error {
	f.nextSyncSet = append(f.nextSyncSet, platform)
	return nil
}

func (f *fakeConfigRepo) SetAutoSync(ctx context.Context, platform string, enabled bool, interval string) error {
	return nil
}

func activePlatforms(s *Scheduler) map[string]bool {
	active := make(map[string]bool)
	for _, st := range s.AutoSyncStatus() {
		if st.Active {
			active[st.Platform] = true
		}
	}
	return active
}

func TestCronSpecFor(t *testing.T) {
	tests := []struct {
		interval string
		expected string
	}{
		{"15m", "0 */15 * * * *"},
		{"30m", "0 */30 * * * *"},
		{"1h", "@hourly"},
		{"6h", "0 0 */6 * * *"},
		{"24h", "0 0 0 * * *"},
		{"", "@hourly"},
		{"45m", "@hourly"},
	}

	for _, tt := range tests {
		if got := cronSpecFor(tt.interval); got != tt.expected {
			t.Errorf("cronSpecFor(%q) = %q, expected %q", tt.interval, got, tt.expected)
		}
	}
}

func TestDurationFor(t *testing.T) {
	tests := []struct {
		interval string
		expected time.Duration
	}{
		{"15m", 15 * time.Minute},
		{"30m", 30 * time.Minute},
		{"1h", time.Hour},
		{"6h", 6 * time.Hour},
		{"24h", 24 * time.Hour},
		{"weekly", time.Hour},
	}

	for _, tt := range tests {
		if got := durationFor(tt.interval); got != tt.expected {
			t.Errorf("durationFor(%q) = %v, expected %v", tt.interval, got, tt.expected)
		}
	}
}

func TestScheduleReplacesExistingTrigger(t *testing.T) {
	ac := &fakeConfigRepo{}
	s := New(&fakeRunner{}, ac)
	defer s.StopAllAutoSync()

	if err := s.SchedulePlatformSync("facebook", "15m"); err != nil {
		t.Fatalf("SchedulePlatformSync() returned error: %v", err)
	}
	if err := s.SchedulePlatformSync("facebook", "1h"); err != nil {
		t.Fatalf("reschedule returned error: %v", err)
	}

	active := activePlatforms(s)
	if len(active) != 1 || !active["facebook"] {
		t.Errorf("expected exactly one active trigger for facebook, got %v", active)
	}

	// Each schedule call seeds the next-run estimate.
	if len(ac.nextSyncSet) != 2 {
		t.Errorf("expected 2 next_sync_at writes, got %d", len(ac.nextSyncSet))
	}
}

func TestStopPlatformSync(t *testing.T) {
	s := New(&fakeRunner{}, &fakeConfigRepo{})
	defer s.StopAllAutoSync()

	s.SchedulePlatformSync("twitter", "1h")
	s.StopPlatformSync("twitter")

	if active := activePlatforms(s); len(active) != 0 {
		t.Errorf("expected no active triggers, got %v", active)
	}

	// Stopping an inactive platform is a no-op.
	s.StopPlatformSync("twitter")
}

func TestStopAllAutoSync(t *testing.T) {
	s := New(&fakeRunner{}, &fakeConfigRepo{})

	s.SchedulePlatformSync("facebook", "1h")
	s.SchedulePlatformSync("youtube", "6h")
	s.StopAllAutoSync()

	for _, st := range s.AutoSyncStatus() {
		if st.Active {
			t.Errorf("%s still active after StopAllAutoSync", st.Platform)
		}
	}
}

func TestInitializeAutoSync(t *testing.T) {
	ac := &fakeConfigRepo{configs: []*models.ApiConfig{
		{Platform: "facebook", AutoSyncEnabled: true, SyncInterval: "15m"},
		{Platform: "twitter", AutoSyncEnabled: false, SyncInterval: "1h"},
		{Platform: "youtube", AutoSyncEnabled: true},
	}}
	s := New(&fakeRunner{}, ac)
	defer s.StopAllAutoSync()

	if err := s.InitializeAutoSync(context.Background()); err != nil {
		t.Fatalf("InitializeAutoSync() returned error: %v", err)
	}

	active := activePlatforms(s)
	if !active["facebook"] {
		t.Error("facebook should be scheduled")
	}
	if !active["youtube"] {
		t.Error("youtube should be scheduled with the default interval")
	}
	if active["twitter"] {
		t.Error("twitter has auto sync disabled and must not be scheduled")
	}
}

func TestAutoSyncStatusCoversAllPlatforms(t *testing.T) {
	s := New(&fakeRunner{}, &fakeConfigRepo{})

	statuses := s.AutoSyncStatus()
	if len(statuses) != len(models.SupportedPlatforms) {
		t.Fatalf("expected %d entries, got %d", len(models.SupportedPlatforms), len(statuses))
	}
	for _, st := range statuses {
		if st.Active {
			t.Errorf("%s reported active with no triggers installed", st.Platform)
		}
	}
}

func TestRunScheduledSyncRecordsEstimate(t *testing.T) {
	runner := &fakeRunner{}
	ac := &fakeConfigRepo{}
	s := New(runner, ac)

	s.runScheduledSync("facebook", "15m")

	if len(runner.calls) != 1 || runner.calls[0] != "facebook/auto" {
		t.Errorf("runner calls = %v, expected one auto sync for facebook", runner.calls)
	}
	if len(ac.nextSyncSet) != 1 || ac.nextSyncSet[0] != "facebook" {
		t.Errorf("next_sync_at writes = %v", ac.nextSyncSet)
	}
}
