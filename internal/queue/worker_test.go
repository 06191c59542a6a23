package queue

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rupakcs/socialsync/internal/models"
	"github.com/rupakcs/socialsync/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSyncService struct {
	platforms []string
	syncTypes []string
	succeed   bool
}

func (s *recordingSyncService) Sync(ctx context.Context, platformName, syncType string) *transfer.SyncResult {
	s.platforms = append(s.platforms, platformName)
	s.syncTypes = append(s.syncTypes, syncType)
	result := &transfer.SyncResult{
		Success:        s.succeed,
		Platform:       platformName,
		MetricsUpdated: []string{},
	}
	if !s.succeed {
		result.Error = "token expired"
	}
	return result
}

func syncTask(t *testing.T, payload SyncPlatformPayload) *asynq.Task {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return asynq.NewTask(TaskTypeSyncPlatform, raw)
}

func TestHandleSyncPlatformTask(t *testing.T) {
	svc := &recordingSyncService{succeed: true}
	q := NewQueue(svc, nil)

	task := syncTask(t, SyncPlatformPayload{Platform: "facebook", SyncType: models.SyncTypeManual})

	err := q.HandleSyncPlatformTask(context.Background(), task)
	require.NoError(t, err)

	assert.Equal(t, []string{"facebook"}, svc.platforms)
	assert.Equal(t, []string{models.SyncTypeManual}, svc.syncTypes)
}

func TestHandleSyncPlatformTaskFailedSyncDoesNotRetry(t *testing.T) {
	svc := &recordingSyncService{succeed: false}
	q := NewQueue(svc, nil)

	task := syncTask(t, SyncPlatformPayload{Platform: "twitter", SyncType: models.SyncTypeAuto})

	// The sync log already records the failure; returning an error here would
	// make asynq retry an attempt that is final.
	err := q.HandleSyncPlatformTask(context.Background(), task)
	assert.NoError(t, err)
	assert.Len(t, svc.platforms, 1)
}

func TestHandleSyncPlatformTaskBadPayload(t *testing.T) {
	svc := &recordingSyncService{succeed: true}
	q := NewQueue(svc, nil)

	task := asynq.NewTask(TaskTypeSyncPlatform, []byte("not-json"))

	err := q.HandleSyncPlatformTask(context.Background(), task)
	assert.Error(t, err)
	assert.Empty(t, svc.platforms)
}
