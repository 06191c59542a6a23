package job

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rupakcs/socialsync/internal/models"
	"github.com/rupakcs/socialsync/internal/platform"
	"github.com/rupakcs/socialsync/internal/repository"
)

// TokenRefreshJob proactively rotates OAuth tokens that are about to expire
// so scheduled syncs rarely hit a 401 at all. The request-level
// refresh-and-retry in the platform clients remains the safety net.
type TokenRefreshJob struct {
	in      repository.IntegrationRepository
	factory *platform.Factory
}

func NewTokenRefreshJob(in repository.IntegrationRepository, factory *platform.Factory) *TokenRefreshJob {
	return &TokenRefreshJob{
		in:      in,
		factory: factory,
	}
}

func (j *TokenRefreshJob) RefreshTokens() {
	ctx := context.Background()

	expiringBefore := time.Now().Add(30 * time.Minute)

	integrations, err := j.in.ListExpiring(ctx, expiringBefore)
	if err != nil {
		slog.Info(err.Error())
		return
	}

	var wg sync.WaitGroup

	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	for _, integ := range integrations {
		if !models.IsSupportedPlatform(integ.Platform) {
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(platformName string) {
			defer wg.Done()
			defer func() { <-semaphore }()

			client, err := j.factory.Client(platformName)
			if err != nil {
				slog.Info(err.Error())
				return
			}

			cfg, err := client.LoadConfig(ctx)
			if err != nil {
				slog.Info("unable to load config for " + platformName)
				return
			}

			if err := client.RefreshAccessToken(ctx, cfg); err != nil {
				slog.Info("unable to refresh tokens for " + platformName)
			}
		}(integ.Platform)
	}

	wg.Wait()
}
