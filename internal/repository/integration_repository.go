package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/rupakcs/socialsync/internal/models"
)

type IntegrationRepository interface {
	GetByPlatform(ctx context.Context, platform string) (*models.Integration, bool, error)
	ListExpiring(ctx context.Context, before time.Time) ([]*models.Integration, error)
	SetTokens(ctx context.Context, platform, accessToken, refreshToken string, expiresAt time.Time) error
}

type integrationRepository struct {
	db *sql.DB
}

func NewIntegrationRepository(db *sql.DB) IntegrationRepository {
	return &integrationRepository{db: db}
}

func (r *integrationRepository) GetByPlatform(ctx context.Context, platform string) (*models.Integration, bool, error) {
	query := `SELECT id, platform, account_id, account_name, access_token, refresh_token,
			token_expires_at, created_at, updated_at
			FROM social_media_integrations WHERE platform = $1`
	row := r.db.QueryRowContext(ctx, query, platform)

	var in models.Integration
	err := row.Scan(&in.ID, &in.Platform, &in.AccountID, &in.AccountName, &in.AccessToken,
		&in.RefreshToken, &in.TokenExpiresAt, &in.CreatedAt, &in.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}

	return &in, true, nil
}

func (r *integrationRepository) ListExpiring(ctx context.Context, before time.Time) ([]*models.Integration, error) {
	query := `SELECT id, platform, account_id, account_name, access_token, refresh_token,
			token_expires_at, created_at, updated_at
			FROM social_media_integrations
			WHERE token_expires_at < $1 AND refresh_token <> ''`
	rows, err := r.db.QueryContext(ctx, query, before)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var integrations []*models.Integration
	for rows.Next() {
		var in models.Integration
		err := rows.Scan(&in.ID, &in.Platform, &in.AccountID, &in.AccountName, &in.AccessToken,
			&in.RefreshToken, &in.TokenExpiresAt, &in.CreatedAt, &in.UpdatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		integrations = append(integrations, &in)
	}

	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return integrations, nil
}

// SetTokens rotates credentials after a refresh. Empty values keep the stored
// column so a refresh response without a new refresh token does not wipe the
// old one.
func (r *integrationRepository) SetTokens(ctx context.Context, platform, accessToken, refreshToken string, expiresAt time.Time) error {
	query := `
		UPDATE social_media_integrations
		SET access_token = COALESCE(NULLIF($2, ''), access_token),
			refresh_token = COALESCE(NULLIF($3, ''), refresh_token),
			token_expires_at = COALESCE($4, token_expires_at),
			updated_at = CURRENT_TIMESTAMP
		WHERE platform = $1
	`
	_, err := r.db.ExecContext(ctx, query, platform, accessToken, refreshToken, expiresAt)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
