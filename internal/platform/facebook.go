package platform

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rupakcs/socialsync/internal/transfer"
)

const facebookGraphURL = "https://graph.facebook.com/v19.0"

type facebookClient struct {
	baseClient
	baseURL string
}

func newFacebookClient(deps Deps) *facebookClient {
	return &facebookClient{
		baseClient: newBaseClient("facebook", deps),
		baseURL:    facebookGraphURL,
	}
}

func (c *facebookClient) FetchAnalytics(ctx context.Context, cfg *Config) (*RawMetrics, error) {
	resp, err := c.doAuthenticated(ctx, cfg, c.RefreshAccessToken, func() (*http.Request, error) {
		endpoint := fmt.Sprintf("%s/%s?fields=followers_count,fan_count", c.baseURL, cfg.AccountID)
		return http.NewRequest(http.MethodGet, endpoint, nil)
	})
	if err != nil {
		return nil, err
	}

	var page transfer.FacebookPageResponse
	if err := c.decodeResponse(resp, &page); err != nil {
		return nil, err
	}

	return &RawMetrics{
		Followers: page.FollowersCount,
		Likes:     page.FanCount,
	}, nil
}

// RefreshAccessToken runs the fb_exchange_token flow. Facebook long-lived
// tokens are refreshed by exchanging the current token, there is no separate
// refresh token.
func (c *facebookClient) RefreshAccessToken(ctx context.Context, cfg *Config) error {
	params := url.Values{}
	params.Set("grant_type", "fb_exchange_token")
	params.Set("client_id", cfg.ClientID)
	params.Set("client_secret", cfg.ClientSecret)
	params.Set("fb_exchange_token", cfg.AccessToken)

	endpoint := fmt.Sprintf("%s/oauth/access_token?%s", c.baseURL, params.Encode())

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

	var token transfer.FacebookTokenResponse
	if err := decodeBody(resp, &token); err != nil {
		return &UpstreamError{Platform: c.platform, Err: err}
	}

	cfg.AccessToken = token.AccessToken
	cfg.TokenExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)

	return c.persistTokens(ctx, cfg)
}
