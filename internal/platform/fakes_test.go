package platform

import (
	"context"
	"time"

	"github.com/rupakcs/socialsync/internal/models"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

type fakeApiConfigRepo struct {
	cfg *models.ApiConfig
	err error

	lastSyncSet []time.Time
	nextSyncSet []time.Time
}

func (f *fakeApiConfigRepo) GetByPlatform(ctx context.Context, platform string) (*models.ApiConfig, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	return f.cfg, f.cfg != nil, nil
}

func (f *fakeApiConfigRepo) List(ctx context.Context) ([]*models.ApiConfig, error) {
	if f.cfg == nil {
		return nil, nil
	}
	return []*models.ApiConfig{f.cfg}, nil
}

func (f *fakeApiConfigRepo) SetLastSyncAt(ctx context.Context, platform string, lastSyncAt time.Time) error {
	f.lastSyncSet = append(f.lastSyncSet, lastSyncAt)
	return nil
}

func (f *fakeApiConfigRepo) SetNextSyncAt(ctx context.Context, platform string, nextSyncAt time.Time) error {
	f.nextSyncSet = append(f.nextSyncSet, nextSyncAt)
	return nil
}

func (f *fakeApiConfigRepo) SetAutoSync(ctx context.Context, platform string, enabled bool, interval string) error {
	return nil
}

type storedTokens struct {
	accessToken  string
	refreshToken string
	expiresAt    time.Time
}

type fakeIntegrationRepo struct {
	integ *models.Integration
	err   error

	tokensSet []storedTokens
}

func (f *fakeIntegrationRepo) GetByPlatform(ctx context.Context, platform string) (*models.Integration, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	return f.integ, f.integ != nil, nil
}

func (f *fakeIntegrationRepo) ListExpiring(ctx context.Context, before time.Time) ([]*models.Integration, error) {
	if f.integ == nil {
		return nil, nil
	}
	return []*models.Integration{f.integ}, nil
}

func (f *fakeIntegrationRepo) SetTokens(ctx context.Context, platform, accessToken, refreshToken string, expiresAt time.Time) error {
	f.tokensSet = append(f.tokensSet, storedTokens{
		accessToken:  accessToken,
		refreshToken: refreshToken,
		expiresAt:    expiresAt,
	})
	return nil
}
