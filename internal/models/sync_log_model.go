package models

import "time"

const (
	SyncTypeAuto   = "auto"
	SyncTypeManual = "manual"

	SyncStatusSuccess = "success"
	SyncStatusFailed  = "failed"
)

// SyncLog is an append-only audit record, one per sync attempt.
type SyncLog struct {
	ID             string    `db:"id" json:"id"`
	Platform       string    `db:"platform" json:"platform"`
	SyncType       string    `db:"sync_type" json:"sync_type"`
	Status         string    `db:"status" json:"status"`
	MetricsUpdated []string  `db:"metrics_updated" json:"metrics_updated"`
	ErrorMessage   string    `db:"error_message" json:"error_message,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
