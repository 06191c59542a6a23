package platform

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rupakcs/socialsync/internal/transfer"
)

const (
	linkedinApiURL   = "https://api.linkedin.com/v2"
	linkedinTokenURL = "https://www.linkedin.com/oauth/v2/accessToken"
)

type linkedinClient struct {
	baseClient
	baseURL  string
	tokenURL string
}

func newLinkedinClient(deps Deps) *linkedinClient {
	return &linkedinClient{
		baseClient: newBaseClient("linkedin", deps),
		baseURL:    linkedinApiURL,
		tokenURL:   linkedinTokenURL,
	}
}

func (c *linkedinClient) FetchAnalytics(ctx context.Context, cfg *Config) (*RawMetrics, error) {
	resp, err := c.doAuthenticated(ctx, cfg, c.RefreshAccessToken, func() (*http.Request, error) {
		endpoint := fmt.Sprintf("%s/networkSizes/urn:li:organization:%s?edgeType=CompanyFollowedByMember", c.baseURL, cfg.AccountID)
		return http.NewRequest(http.MethodGet, endpoint, nil)
	})
	if err != nil {
		return nil, err
	}

	var network transfer.LinkedinNetworkResponse
	if err := c.decodeResponse(resp, &network); err != nil {
		return nil, err
	}

	return &RawMetrics{
		Followers: network.FirstDegreeSize,
	}, nil
}

func (c *linkedinClient) RefreshAccessToken(ctx context.Context, cfg *Config) error {
	if cfg.RefreshToken == "" {
		return ErrAuthExpired
	}

	data := url.Values{}
	data.Set("grant_type", "refresh_token")
	data.Set("refresh_token", cfg.RefreshToken)
	data.Set("client_id", cfg.ClientID)
	data.Set("client_secret", cfg.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return &UpstreamError{Platform: c.platform, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ErrAuthExpired
	}

	var token transfer.LinkedinTokenResponse
	if err := decodeBody(resp, &token); err != nil {
		return &UpstreamError{Platform: c.platform, Err: err}
	}

	cfg.AccessToken = token.AccessToken
	if token.RefreshToken != "" {
		cfg.RefreshToken = token.RefreshToken
	}
	cfg.TokenExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)

	return c.persistTokens(ctx, cfg)
}
