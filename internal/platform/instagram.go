package platform

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rupakcs/socialsync/internal/transfer"
)

const instagramGraphURL = "https://graph.instagram.com/v19.0"

type instagramClient struct {
	baseClient
	baseURL string
}

func newInstagramClient(deps Deps) *instagramClient {
	return &instagramClient{
		baseClient: newBaseClient("instagram", deps),
		baseURL:    instagramGraphURL,
	}
}

func (c *instagramClient) FetchAnalytics(ctx context.Context, cfg *Config) (*RawMetrics, error) {
	resp, err := c.doAuthenticated(ctx, cfg, c.RefreshAccessToken, func() (*http.Request, error) {
		endpoint := fmt.Sprintf("%s/me?fields=followers_count,media_count", c.baseURL)
		return http.NewRequest(http.MethodGet, endpoint, nil)
	})
	if err != nil {
		return nil, err
	}

	var profile transfer.InstagramProfileResponse
	if err := c.decodeResponse(resp, &profile); err != nil {
		return nil, err
	}

	return &RawMetrics{
		Followers: profile.FollowersCount,
		Posts:     profile.MediaCount,
	}, nil
}

// RefreshAccessToken uses the ig_refresh_token flow: the long-lived token
// refreshes itself as long as it has not fully expired.
func (c *instagramClient) RefreshAccessToken(ctx context.Context, cfg *Config) error {
	params := url.Values{}
	params.Set("grant_type", "ig_refresh_token")
	params.Set("access_token", cfg.AccessToken)

	endpoint := fmt.Sprintf("%s/refresh_access_token?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &UpstreamError{Platform: c.platform, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ErrAuthExpired
	}

	var token transfer.InstagramRefreshResponse
	if err := decodeBody(resp, &token); err != nil {
		return &UpstreamError{Platform: c.platform, Err: err}
	}

	cfg.AccessToken = token.AccessToken
	cfg.TokenExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)

	return c.persistTokens(ctx, cfg)
}
