package platform

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rupakcs/socialsync/pkg/utils"
)

func TestNewClientFactory(t *testing.T) {
	deps := testDeps(&fakeApiConfigRepo{}, &fakeIntegrationRepo{})

	tests := []struct {
		platform string
		wantErr  bool
	}{
		{platform: "youtube"},
		{platform: "facebook"},
		{platform: "instagram"},
		{platform: "linkedin"},
		{platform: "twitter"},
		{platform: "myspace", wantErr: true},
		{platform: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			client, err := NewClient(tt.platform, deps)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error for unsupported platform")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewClient() returned error: %v", err)
			}
			if client.Platform() != tt.platform {
				t.Errorf("Platform() = %q, expected %q", client.Platform(), tt.platform)
			}
		})
	}
}

func TestTwitterFetchAnalytics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer static-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{
			"data": {
				"id": "42",
				"username": "acme",
				"public_metrics": {
					"followers_count": 980,
					"tweet_count": 215,
					"like_count": 14
				}
			}
		}`))
	}))
	defer srv.Close()

	c := newTwitterClient(testDeps(&fakeApiConfigRepo{}, &fakeIntegrationRepo{}))
	c.baseURL = srv.URL
	c.http = srv.Client()

	cfg := &Config{Platform: "twitter", AuthMethod: AuthMethodApiKey, ApiKey: "static-key", AccountID: "42"}

	metrics, err := c.FetchAnalytics(context.Background(), cfg)
	if err != nil {
		t.Fatalf("FetchAnalytics() returned error: %v", err)
	}

	if metrics.Followers != 980 {
		t.Errorf("Followers = %d, expected 980", metrics.Followers)
	}
	if metrics.Posts != 215 {
		t.Errorf("Posts = %d, expected 215", metrics.Posts)
	}
	if metrics.Likes != 14 {
		t.Errorf("Likes = %d, expected 14", metrics.Likes)
	}
	if metrics.Impressions != 0 || metrics.Shares != 0 || metrics.Comments != 0 {
		t.Errorf("unreported metrics should stay zero: %+v", metrics)
	}
}

func TestTwitterRefreshIsTerminal(t *testing.T) {
	c := newTwitterClient(testDeps(&fakeApiConfigRepo{}, &fakeIntegrationRepo{}))

	err := c.RefreshAccessToken(context.Background(), &Config{AuthMethod: AuthMethodApiKey})
	if !errors.Is(err, ErrAuthExpired) {
		t.Fatalf("expected ErrAuthExpired, got %v", err)
	}
}

func TestFacebookFetchWithTokenRefresh(t *testing.T) {
	in := &fakeIntegrationRepo{}

	var pageRequests, tokenRequests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth/access_token" {
			tokenRequests++
			w.Write([]byte(`{"access_token": "fresh-token", "token_type": "bearer", "expires_in": 5184000}`))
			return
		}

		pageRequests++
		if r.Header.Get("Authorization") != "Bearer fresh-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"id": "page-1", "followers_count": 3200, "fan_count": 2900}`))
	}))
	defer srv.Close()

	c := newFacebookClient(testDeps(&fakeApiConfigRepo{}, in))
	c.baseURL = srv.URL
	c.http = srv.Client()

	cfg := &Config{
		Platform:     "facebook",
		AuthMethod:   AuthMethodOAuth,
		ClientID:     "cid",
		ClientSecret: "csecret",
		AccessToken:  "stale-token",
		AccountID:    "page-1",
	}

	metrics, err := c.FetchAnalytics(context.Background(), cfg)
	if err != nil {
		t.Fatalf("FetchAnalytics() returned error: %v", err)
	}

	if pageRequests != 2 {
		t.Errorf("expected 2 page requests (one retry), got %d", pageRequests)
	}
	if tokenRequests != 1 {
		t.Errorf("expected 1 token exchange, got %d", tokenRequests)
	}
	if metrics.Followers != 3200 {
		t.Errorf("Followers = %d, expected 3200", metrics.Followers)
	}
	if metrics.Likes != 2900 {
		t.Errorf("Likes = %d, expected 2900", metrics.Likes)
	}

	if len(in.tokensSet) != 1 {
		t.Fatalf("expected rotated tokens to be persisted once, got %d writes", len(in.tokensSet))
	}
	decrypted, err := utils.Decrypt(in.tokensSet[0].accessToken, []byte(testSecretKey))
	if err != nil || decrypted != "fresh-token" {
		t.Errorf("persisted token decrypts to %q (err %v), expected fresh-token", decrypted, err)
	}
}

func TestFacebookRefreshRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := newFacebookClient(testDeps(&fakeApiConfigRepo{}, &fakeIntegrationRepo{}))
	c.baseURL = srv.URL
	c.http = srv.Client()

	cfg := &Config{Platform: "facebook", AuthMethod: AuthMethodOAuth, AccessToken: "stale"}

	err := c.RefreshAccessToken(context.Background(), cfg)
	if !errors.Is(err, ErrAuthExpired) {
		t.Fatalf("expected ErrAuthExpired, got %v", err)
	}
}

func TestInstagramFetchAnalytics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "ig-1", "username": "acme", "followers_count": 5400, "media_count": 310}`))
	}))
	defer srv.Close()

	c := newInstagramClient(testDeps(&fakeApiConfigRepo{}, &fakeIntegrationRepo{}))
	c.baseURL = srv.URL
	c.http = srv.Client()

	cfg := &Config{Platform: "instagram", AuthMethod: AuthMethodOAuth, AccessToken: "tok"}

	metrics, err := c.FetchAnalytics(context.Background(), cfg)
	if err != nil {
		t.Fatalf("FetchAnalytics() returned error: %v", err)
	}

	if metrics.Followers != 5400 {
		t.Errorf("Followers = %d, expected 5400", metrics.Followers)
	}
	if metrics.Posts != 310 {
		t.Errorf("Posts = %d, expected 310", metrics.Posts)
	}
}

func TestLinkedinRefreshWithoutToken(t *testing.T) {
	c := newLinkedinClient(testDeps(&fakeApiConfigRepo{}, &fakeIntegrationRepo{}))

	err := c.RefreshAccessToken(context.Background(), &Config{AuthMethod: AuthMethodOAuth})
	if !errors.Is(err, ErrAuthExpired) {
		t.Fatalf("expected ErrAuthExpired, got %v", err)
	}
}

func TestLinkedinFetchAnalytics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"firstDegreeSize": 780}`))
	}))
	defer srv.Close()

	c := newLinkedinClient(testDeps(&fakeApiConfigRepo{}, &fakeIntegrationRepo{}))
	c.baseURL = srv.URL
	c.http = srv.Client()

	cfg := &Config{Platform: "linkedin", AuthMethod: AuthMethodOAuth, AccessToken: "tok", AccountID: "123"}

	metrics, err := c.FetchAnalytics(context.Background(), cfg)
	if err != nil {
		t.Fatalf("FetchAnalytics() returned error: %v", err)
	}

	if metrics.Followers != 780 {
		t.Errorf("Followers = %d, expected 780", metrics.Followers)
	}
}
