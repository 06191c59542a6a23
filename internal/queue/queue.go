package queue

import (
	"context"
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
	"github.com/rupakcs/socialsync/internal/models"
)

func EnqueueSync(asynqClient *asynq.Client, payload SyncPlatformPayload) error {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypeSyncPlatform, taskPayload)

	_, err = asynqClient.Enqueue(task)
	if err != nil {
		return err
	}

	log.Printf("Sync task enqueued: %+v", payload)
	return nil
}

// EnqueueSyncAll fans out one task per stored platform config. Manual-mode
// platforms still get a task, the orchestrator short-circuits them so the
// attempt stays auditable.
func EnqueueSyncAll(ctx context.Context, asynqClient *asynq.Client, q *Queue) (int, error) {
	configs, err := q.ac.List(ctx)
	if err != nil {
		return 0, err
	}

	queued := 0
	for _, cfg := range configs {
		payload := SyncPlatformPayload{
			Platform: cfg.Platform,
			SyncType: models.SyncTypeManual,
		}
		if err := EnqueueSync(asynqClient, payload); err != nil {
			log.Printf("Error enqueueing sync for %s: %v", cfg.Platform, err)
			continue
		}
		queued++
	}

	return queued, nil
}
