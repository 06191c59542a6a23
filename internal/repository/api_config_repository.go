package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/rupakcs/socialsync/internal/models"
)

type ApiConfigRepository interface {
	GetByPlatform(ctx context.Context, platform string) (*models.ApiConfig, bool, error)
	List(ctx context.Context) ([]*models.ApiConfig, error)
	SetLastSyncAt(ctx context.Context, platform string, lastSyncAt time.Time) error
	SetNextSyncAt(ctx context.Context, platform string, nextSyncAt time.Time) error
	SetAutoSync(ctx context.Context, platform string, enabled bool, interval string) error
}

type apiConfigRepository struct {
	db *sql.DB
}

func NewApiConfigRepository(db *sql.DB) ApiConfigRepository {
	return &apiConfigRepository{db: db}
}

func (r *apiConfigRepository) GetByPlatform(ctx context.Context, platform string) (*models.ApiConfig, bool, error) {
	query := `SELECT id, platform, api_key, client_id, client_secret, is_manual_mode,
			auto_sync_enabled, sync_interval, last_sync_at, next_sync_at, created_at, updated_at
			FROM social_media_api_configs WHERE platform = $1`
	row := r.db.QueryRowContext(ctx, query, platform)

	var ac models.ApiConfig
	err := row.Scan(&ac.ID, &ac.Platform, &ac.ApiKey, &ac.ClientID, &ac.ClientSecret,
		&ac.IsManualMode, &ac.AutoSyncEnabled, &ac.SyncInterval, &ac.LastSyncAt,
		&ac.NextSyncAt, &ac.CreatedAt, &ac.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}

	return &ac, true, nil
}

func (r *apiConfigRepository) List(ctx context.Context) ([]*models.ApiConfig, error) {
	query := `SELECT id, platform, api_key, client_id, client_secret, is_manual_mode,
			auto_sync_enabled, sync_interval, last_sync_at, next_sync_at, created_at, updated_at
			FROM social_media_api_configs`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var configs []*models.ApiConfig
	for rows.Next() {
		var ac models.ApiConfig
		err := rows.Scan(&ac.ID, &ac.Platform, &ac.ApiKey, &ac.ClientID, &ac.ClientSecret,
			&ac.IsManualMode, &ac.AutoSyncEnabled, &ac.SyncInterval, &ac.LastSyncAt,
			&ac.NextSyncAt, &ac.CreatedAt, &ac.UpdatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		configs = append(configs, &ac)
	}

	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return configs, nil
}

func (r *apiConfigRepository) SetLastSyncAt(ctx context.Context, platform string, lastSyncAt time.Time) error {
	query := `
		UPDATE social_media_api_configs
		SET last_sync_at = $2,
			updated_at = CURRENT_TIMESTAMP
		WHERE platform = $1
	`
	_, err := r.db.ExecContext(ctx, query, platform, lastSyncAt)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *apiConfigRepository) SetNextSyncAt(ctx context.Context, platform string, nextSyncAt time.Time) error {
	query := `
		UPDATE social_media_api_configs
		SET next_sync_at = $2,
			updated_at = CURRENT_TIMESTAMP
		WHERE platform = $1
	`
	_, err := r.db.ExecContext(ctx, query, platform, nextSyncAt)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *apiConfigRepository) SetAutoSync(ctx context.Context, platform string, enabled bool, interval string) error {
	query := `
		UPDATE social_media_api_configs
		SET auto_sync_enabled = $2,
			sync_interval = COALESCE(NULLIF($3, ''), sync_interval),
			updated_at = CURRENT_TIMESTAMP
		WHERE platform = $1
	`
	_, err := r.db.ExecContext(ctx, query, platform, enabled, interval)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
