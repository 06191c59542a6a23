package platform

import "time"

const (
	AuthMethodOAuth  = "oauth"
	AuthMethodApiKey = "apiKey"
)

// Config is the decrypted, in-memory view of a platform connection. It lives
// only for the duration of one sync and is never written back as plaintext.
type Config struct {
	Platform        string
	AuthMethod      string
	ClientID        string
	ClientSecret    string
	AccessToken     string
	RefreshToken    string
	TokenExpiresAt  time.Time
	ApiKey          string
	AccountID       string
	AccountName     string
	IsManualMode    bool
	AutoSyncEnabled bool
	SyncInterval    string
}

// IsConfigured reports whether the active credential is present: OAuth needs
// an access token or a refresh token, API key needs a non-empty key.
func (c *Config) IsConfigured() bool {
	switch c.AuthMethod {
	case AuthMethodOAuth:
		return c.AccessToken != "" || c.RefreshToken != ""
	case AuthMethodApiKey:
		return c.ApiKey != ""
	}
	return false
}

// RawMetrics is the per-platform fetch result before normalization. Fields a
// platform does not report stay zero.
type RawMetrics struct {
	Followers      int64
	EngagementRate float64
	Impressions    int64
	Likes          int64
	Shares         int64
	Comments       int64
	Posts          int64
}
