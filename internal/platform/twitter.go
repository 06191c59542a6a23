package platform

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rupakcs/socialsync/internal/transfer"
)

const twitterApiURL = "https://api.twitter.com/2"

// twitterClient authenticates with a static bearer key. There is nothing to
// refresh, so a 401 is always terminal.
type twitterClient struct {
	baseClient
	baseURL string
}

func newTwitterClient(deps Deps) *twitterClient {
	return &twitterClient{
		baseClient: newBaseClient("twitter", deps),
		baseURL:    twitterApiURL,
	}
}

func (c *twitterClient) FetchAnalytics(ctx context.Context, cfg *Config) (*RawMetrics, error) {
	resp, err := c.doAuthenticated(ctx, cfg, c.RefreshAccessToken, func() (*http.Request, error) {
		endpoint := fmt.Sprintf("%s/users/%s?user.fields=public_metrics", c.baseURL, cfg.AccountID)
		return http.NewRequest(http.MethodGet, endpoint, nil)
	})
	if err != nil {
		return nil, err
	}

	var user transfer.TwitterUserResponse
	if err := c.decodeResponse(resp, &user); err != nil {
		return nil, err
	}

	return &RawMetrics{
		Followers: user.Data.PublicMetrics.FollowersCount,
		Likes:     user.Data.PublicMetrics.LikeCount,
		Posts:     user.Data.PublicMetrics.TweetCount,
	}, nil
}

func (c *twitterClient) RefreshAccessToken(ctx context.Context, cfg *Config) error {
	return ErrAuthExpired
}
