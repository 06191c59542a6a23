package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/lib/pq"
	"github.com/rupakcs/socialsync/internal/models"
)

type SyncLogRepository interface {
	Create(ctx context.Context, entry *models.SyncLog) error
	ListByPlatform(ctx context.Context, platform string, limit int) ([]*models.SyncLog, error)
}

type syncLogRepository struct {
	db *sql.DB
}

func NewSyncLogRepository(db *sql.DB) SyncLogRepository {
	return &syncLogRepository{db: db}
}

// Create appends one audit entry. Entries are never updated or deleted.
func (r *syncLogRepository) Create(ctx context.Context, entry *models.SyncLog) error {
	query := `
		INSERT INTO social_media_sync_logs (id, platform, sync_type, status, metrics_updated, error_message)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.Platform,
		entry.SyncType,
		entry.Status,
		pq.Array(entry.MetricsUpdated),
		entry.ErrorMessage,
	)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *syncLogRepository) ListByPlatform(ctx context.Context, platform string, limit int) ([]*models.SyncLog, error) {
	query := `SELECT id, platform, sync_type, status, metrics_updated, error_message, created_at
			FROM social_media_sync_logs
			WHERE platform = $1
			ORDER BY created_at DESC
			LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, platform, limit)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var entries []*models.SyncLog
	for rows.Next() {
		var entry models.SyncLog
		var metrics pq.StringArray
		err := rows.Scan(&entry.ID, &entry.Platform, &entry.SyncType, &entry.Status,
			&metrics, &entry.ErrorMessage, &entry.CreatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		entry.MetricsUpdated = metrics
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return entries, nil
}
