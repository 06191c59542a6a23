package platform

import (
	"context"
	"net/http"
	"time"

	"github.com/rupakcs/socialsync/internal/repository"
	"github.com/rupakcs/socialsync/pkg/utils"
)

const requestTimeout = 30 * time.Second

// baseClient carries what every platform client shares: the persistence
// boundary, secret handling and the authenticated HTTP plumbing.
type baseClient struct {
	platform  string
	secretKey string
	ac        repository.ApiConfigRepository
	in        repository.IntegrationRepository
	http      *http.Client
}

func newBaseClient(platform string, deps Deps) baseClient {
	return baseClient{
		platform:  platform,
		secretKey: deps.AppConfig.SecretKey,
		ac:        deps.ApiConfigs,
		in:        deps.Integrations,
		http:      &http.Client{Timeout: requestTimeout},
	}
}

func (b *baseClient) Platform() string {
	return b.platform
}

// LoadConfig reads both persistence records fresh, decrypts the secret
// fields and derives the auth method from which credential is populated.
// Config is never cached across syncs so credential rotation takes effect on
// the next run.
func (b *baseClient) LoadConfig(ctx context.Context) (*Config, error) {
	apiCfg, hasCfg, err := b.ac.GetByPlatform(ctx, b.platform)
	if err != nil {
		return nil, err
	}

	integ, hasIntegration, err := b.in.GetByPlatform(ctx, b.platform)
	if err != nil {
		return nil, err
	}

	if !hasCfg && !hasIntegration {
		return nil, &ConfigurationError{Platform: b.platform, Reason: "no api config or integration record"}
	}

	cfg := &Config{Platform: b.platform}

	if hasCfg {
		cfg.ClientID = apiCfg.ClientID
		cfg.IsManualMode = apiCfg.IsManualMode
		cfg.AutoSyncEnabled = apiCfg.AutoSyncEnabled
		cfg.SyncInterval = apiCfg.SyncInterval

		cfg.ClientSecret, err = b.decrypt(apiCfg.ClientSecret)
		if err != nil {
			return nil, &ConfigurationError{Platform: b.platform, Reason: "cannot decrypt client secret"}
		}
		cfg.ApiKey, err = b.decrypt(apiCfg.ApiKey)
		if err != nil {
			return nil, &ConfigurationError{Platform: b.platform, Reason: "cannot decrypt api key"}
		}
	}

	if hasIntegration {
		cfg.AccountID = integ.AccountID
		cfg.AccountName = integ.AccountName
		cfg.TokenExpiresAt = integ.TokenExpiresAt

		cfg.AccessToken, err = b.decrypt(integ.AccessToken)
		if err != nil {
			return nil, &ConfigurationError{Platform: b.platform, Reason: "cannot decrypt access token"}
		}
		cfg.RefreshToken, err = b.decrypt(integ.RefreshToken)
		if err != nil {
			return nil, &ConfigurationError{Platform: b.platform, Reason: "cannot decrypt refresh token"}
		}
	}

	switch {
	case cfg.AccessToken != "" || cfg.RefreshToken != "":
		cfg.AuthMethod = AuthMethodOAuth
	case cfg.ApiKey != "":
		cfg.AuthMethod = AuthMethodApiKey
	case hasIntegration:
		cfg.AuthMethod = AuthMethodOAuth
	default:
		cfg.AuthMethod = AuthMethodApiKey
	}

	return cfg, nil
}

func (b *baseClient) decrypt(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	return utils.Decrypt(value, []byte(b.secretKey))
}

// persistTokens writes the rotated tokens back encrypted. The in-memory
// Config already carries the new plaintext values for the retried request.
func (b *baseClient) persistTokens(ctx context.Context, cfg *Config) error {
	encryptedAccess, err := utils.Encrypt([]byte(cfg.AccessToken), []byte(b.secretKey))
	if err != nil {
		return err
	}

	var encryptedRefresh string
	if cfg.RefreshToken != "" {
		encryptedRefresh, err = utils.Encrypt([]byte(cfg.RefreshToken), []byte(b.secretKey))
		if err != nil {
			return err
		}
	}

	return b.in.SetTokens(ctx, b.platform, encryptedAccess, encryptedRefresh, cfg.TokenExpiresAt)
}
