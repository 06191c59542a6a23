package platform

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

// doAuthenticated sends a bearer-authenticated request and applies the
// refresh law: on a 401 with OAuth credentials it refreshes once, retries
// once, and surfaces a second 401 as ErrAuthExpired. API-key 401s are
// terminal immediately since static keys cannot be refreshed.
//
// makeReq builds a fresh request per attempt so a retry never reuses a
// consumed body.
func (b *baseClient) doAuthenticated(ctx context.Context, cfg *Config, refresh func(context.Context, *Config) error, makeReq func() (*http.Request, error)) (*http.Response, error) {
	resp, err := b.send(ctx, cfg, makeReq)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	resp.Body.Close()

	if cfg.AuthMethod != AuthMethodOAuth {
		return nil, ErrAuthExpired
	}

	if err := refresh(ctx, cfg); err != nil {
		return nil, err
	}

	resp, err = b.send(ctx, cfg, makeReq)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		return nil, ErrAuthExpired
	}
	return resp, nil
}

func (b *baseClient) send(ctx context.Context, cfg *Config, makeReq func() (*http.Request, error)) (*http.Response, error) {
	req, err := makeReq()
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	req = req.WithContext(ctx)

	token := cfg.AccessToken
	if cfg.AuthMethod == AuthMethodApiKey {
		token = cfg.ApiKey
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := b.http.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return nil, &UpstreamError{Platform: b.platform, Err: err}
	}
	return resp, nil
}

func (b *baseClient) decodeResponse(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &UpstreamError{Platform: b.platform, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		slog.Info(err.Error())
		return &UpstreamError{Platform: b.platform, Err: err}
	}
	return nil
}

// decodeBody is for callers that manage the response lifecycle themselves,
// token endpoints mostly.
func decodeBody(resp *http.Response, out interface{}) error {
	return json.NewDecoder(resp.Body).Decode(out)
}
