package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rupakcs/socialsync/internal/models"
	"github.com/rupakcs/socialsync/internal/platform"
	"github.com/rupakcs/socialsync/internal/repository"
	"github.com/rupakcs/socialsync/internal/transfer"
)

// ClientFactory resolves a platform identifier to its client.
type ClientFactory interface {
	Client(name string) (platform.Client, error)
}

type SyncService interface {
	Sync(ctx context.Context, platformName, syncType string) *transfer.SyncResult
}

type syncService struct {
	factory ClientFactory
	an      repository.AnalyticsRepository
	sl      repository.SyncLogRepository
	ac      repository.ApiConfigRepository

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSyncService(
	factory ClientFactory,
	an repository.AnalyticsRepository,
	sl repository.SyncLogRepository,
	ac repository.ApiConfigRepository) SyncService {
	return &syncService{
		factory: factory,
		an:      an,
		sl:      sl,
		ac:      ac,
		locks:   make(map[string]*sync.Mutex),
	}
}

// Sync runs one end-to-end attempt for a platform. Every error is converted
// into a failed result plus a log entry, nothing escapes to the caller. The
// per-platform lock keeps a manual trigger from overlapping a scheduled one.
func (s *syncService) Sync(ctx context.Context, platformName, syncType string) *transfer.SyncResult {
	lock := s.platformLock(platformName)
	lock.Lock()
	defer lock.Unlock()

	return s.run(ctx, platformName, syncType)
}

func (s *syncService) run(ctx context.Context, platformName, syncType string) *transfer.SyncResult {
	client, err := s.factory.Client(platformName)
	if err != nil {
		return s.fail(ctx, platformName, syncType, err)
	}

	cfg, err := client.LoadConfig(ctx)
	if err != nil {
		return s.fail(ctx, platformName, syncType, err)
	}

	// Manual-mode platforms are administered by hand and must never be
	// overwritten by automation. Still audited.
	if cfg.IsManualMode {
		s.writeLog(ctx, platformName, syncType, models.SyncStatusSuccess, []string{}, "")
		return &transfer.SyncResult{
			Success:        true,
			Platform:       platformName,
			MetricsUpdated: []string{},
		}
	}

	if !cfg.IsConfigured() {
		return s.fail(ctx, platformName, syncType, &platform.NotConfiguredError{Platform: platformName})
	}

	raw, err := client.FetchAnalytics(ctx, cfg)
	if err != nil {
		return s.fail(ctx, platformName, syncType, err)
	}

	snapshot := normalizeSnapshot(platformName, raw)
	updated := updatedMetrics(raw)

	if err := s.an.Upsert(ctx, snapshot); err != nil {
		return s.fail(ctx, platformName, syncType, err)
	}

	s.writeLog(ctx, platformName, syncType, models.SyncStatusSuccess, updated, "")

	if err := s.ac.SetLastSyncAt(ctx, platformName, time.Now()); err != nil {
		slog.Info(err.Error())
	}

	return &transfer.SyncResult{
		Success:        true,
		Platform:       platformName,
		MetricsUpdated: updated,
	}
}

func (s *syncService) fail(ctx context.Context, platformName, syncType string, cause error) *transfer.SyncResult {
	s.writeLog(ctx, platformName, syncType, models.SyncStatusFailed, []string{}, cause.Error())
	return &transfer.SyncResult{
		Success:        false,
		Platform:       platformName,
		MetricsUpdated: []string{},
		Error:          cause.Error(),
	}
}

// writeLog records the attempt on both paths. A log write failure must not
// turn a finished sync into an error, so it is only logged.
func (s *syncService) writeLog(ctx context.Context, platformName, syncType, status string, metricsUpdated []string, errorMessage string) {
	id, err := gonanoid.New()
	if err != nil {
		slog.Info(err.Error())
		return
	}

	entry := &models.SyncLog{
		ID:             id,
		Platform:       platformName,
		SyncType:       syncType,
		Status:         status,
		MetricsUpdated: metricsUpdated,
		ErrorMessage:   errorMessage,
	}
	if err := s.sl.Create(ctx, entry); err != nil {
		slog.Info(err.Error())
	}
}

func (s *syncService) platformLock(platformName string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[platformName]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[platformName] = lock
	}
	return lock
}

// normalizeSnapshot maps the raw payload into the snapshot shape. Metrics a
// platform does not report stay zero, never null.
func normalizeSnapshot(platformName string, raw *platform.RawMetrics) *models.Analytics {
	return &models.Analytics{
		Platform:       platformName,
		FollowersCount: raw.Followers,
		EngagementRate: raw.EngagementRate,
		Impressions:    raw.Impressions,
		Likes:          raw.Likes,
		Shares:         raw.Shares,
		Comments:       raw.Comments,
		PostsCount:     raw.Posts,
		SyncedAt:       time.Now(),
	}
}

// updatedMetrics lists the metric names whose fetched value was non-zero.
func updatedMetrics(raw *platform.RawMetrics) []string {
	updated := []string{}
	if raw.Followers != 0 {
		updated = append(updated, "followers")
	}
	if raw.EngagementRate != 0 {
		updated = append(updated, "engagementRate")
	}
	if raw.Impressions != 0 {
		updated = append(updated, "impressions")
	}
	if raw.Likes != 0 {
		updated = append(updated, "likes")
	}
	if raw.Shares != 0 {
		updated = append(updated, "shares")
	}
	if raw.Comments != 0 {
		updated = append(updated, "comments")
	}
	if raw.Posts != 0 {
		updated = append(updated, "posts")
	}
	return updated
}
