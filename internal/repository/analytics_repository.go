package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/rupakcs/socialsync/internal/models"
)

type AnalyticsRepository interface {
	Upsert(ctx context.Context, a *models.Analytics) error
	GetByPlatform(ctx context.Context, platform string) (*models.Analytics, bool, error)
	List(ctx context.Context) ([]*models.Analytics, error)
}

type analyticsRepository struct {
	db *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// Upsert overwrites the platform's snapshot. One row per platform, the sync
// log carries the history.
func (r *analyticsRepository) Upsert(ctx context.Context, a *models.Analytics) error {
	query := `
		INSERT INTO social_media_analytics (
			platform,
			followers_count,
			engagement_rate,
			impressions,
			likes,
			shares,
			comments,
			posts_count,
			synced_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (platform) DO UPDATE
		SET followers_count = EXCLUDED.followers_count,
			engagement_rate = EXCLUDED.engagement_rate,
			impressions = EXCLUDED.impressions,
			likes = EXCLUDED.likes,
			shares = EXCLUDED.shares,
			comments = EXCLUDED.comments,
			posts_count = EXCLUDED.posts_count,
			synced_at = EXCLUDED.synced_at
	`
	_, err := r.db.ExecContext(ctx, query,
		a.Platform,
		a.FollowersCount,
		a.EngagementRate,
		a.Impressions,
		a.Likes,
		a.Shares,
		a.Comments,
		a.PostsCount,
		a.SyncedAt,
	)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *analyticsRepository) GetByPlatform(ctx context.Context, platform string) (*models.Analytics, bool, error) {
	query := `SELECT id, platform, followers_count, engagement_rate, impressions, likes,
			shares, comments, posts_count, synced_at
			FROM social_media_analytics WHERE platform = $1`
	row := r.db.QueryRowContext(ctx, query, platform)

	var a models.Analytics
	err := row.Scan(&a.ID, &a.Platform, &a.FollowersCount, &a.EngagementRate, &a.Impressions,
		&a.Likes, &a.Shares, &a.Comments, &a.PostsCount, &a.SyncedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}

	return &a, true, nil
}

func (r *analyticsRepository) List(ctx context.Context) ([]*models.Analytics, error) {
	query := `SELECT id, platform, followers_count, engagement_rate, impressions, likes,
			shares, comments, posts_count, synced_at
			FROM social_media_analytics ORDER BY platform`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var snapshots []*models.Analytics
	for rows.Next() {
		var a models.Analytics
		err := rows.Scan(&a.ID, &a.Platform, &a.FollowersCount, &a.EngagementRate, &a.Impressions,
			&a.Likes, &a.Shares, &a.Comments, &a.PostsCount, &a.SyncedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		snapshots = append(snapshots, &a)
	}
	return snapshots, nil
}
