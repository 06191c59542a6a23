package platform

import "testing"

func TestConfigIsConfigured(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expected bool
	}{
		{
			name:     "oauth with access token",
			cfg:      Config{AuthMethod: AuthMethodOAuth, AccessToken: "tok"},
			expected: true,
		},
		{
			name:     "oauth with refresh token only",
			cfg:      Config{AuthMethod: AuthMethodOAuth, RefreshToken: "ref"},
			expected: true,
		},
		{
			name:     "oauth with no tokens",
			cfg:      Config{AuthMethod: AuthMethodOAuth},
			expected: false,
		},
		{
			name:     "api key present",
			cfg:      Config{AuthMethod: AuthMethodApiKey, ApiKey: "key"},
			expected: true,
		},
		{
			name:     "api key empty",
			cfg:      Config{AuthMethod: AuthMethodApiKey},
			expected: false,
		},
		{
			name:     "api key method ignores oauth tokens",
			cfg:      Config{AuthMethod: AuthMethodApiKey, AccessToken: "tok"},
			expected: false,
		},
		{
			name:     "unknown method",
			cfg:      Config{AuthMethod: "basic", ApiKey: "key", AccessToken: "tok"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.IsConfigured(); got != tt.expected {
				t.Errorf("IsConfigured() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
