package platform

import (
	"context"
	"fmt"

	config "github.com/rupakcs/socialsync/configs"
	"github.com/rupakcs/socialsync/internal/models"
	"github.com/rupakcs/socialsync/internal/repository"
)

// Client is what every platform integration implements. LoadConfig must be
// called first; the Config it returns is passed to the other methods so
// decrypted credentials never outlive one sync.
type Client interface {
	Platform() string
	LoadConfig(ctx context.Context) (*Config, error)
	FetchAnalytics(ctx context.Context, cfg *Config) (*RawMetrics, error)
	RefreshAccessToken(ctx context.Context, cfg *Config) error
}

type Deps struct {
	AppConfig    config.Config
	ApiConfigs   repository.ApiConfigRepository
	Integrations repository.IntegrationRepository
}

// NewClient maps a platform identifier to its implementation.
func NewClient(platform string, deps Deps) (Client, error) {
	switch platform {
	case models.PlatformYoutube:
		return newYoutubeClient(deps), nil
	case models.PlatformFacebook:
		return newFacebookClient(deps), nil
	case models.PlatformInstagram:
		return newInstagramClient(deps), nil
	case models.PlatformLinkedin:
		return newLinkedinClient(deps), nil
	case models.PlatformTwitter:
		return newTwitterClient(deps), nil
	}
	return nil, fmt.Errorf("unsupported platform: %s", platform)
}

type Factory struct {
	deps Deps
}

func NewFactory(deps Deps) *Factory {
	return &Factory{deps: deps}
}

func (f *Factory) Client(platform string) (Client, error) {
	return NewClient(platform, f.deps)
}
