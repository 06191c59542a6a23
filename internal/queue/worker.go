package queue

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"
)

// HandleSyncPlatformTask runs one queued sync. A failed sync is already
// recorded in the sync log, so the task itself succeeds and asynq does not
// retry it.
func (q *Queue) HandleSyncPlatformTask(ctx context.Context, task *asynq.Task) error {
	var payload SyncPlatformPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	result := q.s.Sync(ctx, payload.Platform, payload.SyncType)
	if !result.Success {
		slog.Info("queued sync failed for " + payload.Platform + ": " + result.Error)
	}

	return nil
}
