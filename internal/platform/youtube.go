package platform

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

type youtubeClient struct {
	baseClient
}

func newYoutubeClient(deps Deps) *youtubeClient {
	return &youtubeClient{baseClient: newBaseClient("youtube", deps)}
}

// FetchAnalytics reads channel statistics through the YouTube Data API. The
// SDK surfaces auth failures as googleapi errors, so the single
// refresh-and-retry law is applied here instead of in doAuthenticated.
func (c *youtubeClient) FetchAnalytics(ctx context.Context, cfg *Config) (*RawMetrics, error) {
	metrics, err := c.fetchChannelStats(ctx, cfg)
	if err == nil {
		return metrics, nil
	}

	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) || apiErr.Code != http.StatusUnauthorized {
		return nil, &UpstreamError{Platform: c.platform, Err: err}
	}

	if cfg.AuthMethod != AuthMethodOAuth {
		return nil, ErrAuthExpired
	}

	if err := c.RefreshAccessToken(ctx, cfg); err != nil {
		return nil, err
	}

	metrics, err = c.fetchChannelStats(ctx, cfg)
	if err != nil {
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusUnauthorized {
			return nil, ErrAuthExpired
		}
		return nil, &UpstreamError{Platform: c.platform, Err: err}
	}
	return metrics, nil
}

func (c *youtubeClient) fetchChannelStats(ctx context.Context, cfg *Config) (*RawMetrics, error) {
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.AccessToken}))
	svc, err := youtube.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	resp, err := svc.Channels.List([]string{"statistics"}).Mine(true).Do()
	if err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, errors.New("no channel found for authorized account")
	}

	stats := resp.Items[0].Statistics
	return &RawMetrics{
		Followers:   int64(stats.SubscriberCount),
		Impressions: int64(stats.ViewCount),
		Posts:       int64(stats.VideoCount),
	}, nil
}

func (c *youtubeClient) RefreshAccessToken(ctx context.Context, cfg *Config) error {
	if cfg.RefreshToken == "" {
		return ErrAuthExpired
	}

	conf := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Scopes:       []string{"https://www.googleapis.com/auth/youtube.readonly"},
		Endpoint:     google.Endpoint,
	}

	tokenSource := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})

	token, err := tokenSource.Token()
	if err != nil {
		slog.Info(err.Error())
		return ErrAuthExpired
	}

	cfg.AccessToken = token.AccessToken
	if token.RefreshToken != "" {
		cfg.RefreshToken = token.RefreshToken
	}
	cfg.TokenExpiresAt = token.Expiry

	return c.persistTokens(ctx, cfg)
}
