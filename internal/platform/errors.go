package platform

import (
	"errors"
	"fmt"
)

// ErrAuthExpired means the credential is no longer usable: either a 401 that
// survived the single refresh-and-retry, or a refresh token that was itself
// rejected. It is terminal for the current sync attempt.
var ErrAuthExpired = errors.New("access token expired")

// ConfigurationError means the stored records for a platform are missing or
// unreadable. Not retried.
type ConfigurationError struct {
	Platform string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s is not configured: %s", e.Platform, e.Reason)
}

// NotConfiguredError means records exist but hold no usable credential.
type NotConfiguredError struct {
	Platform string
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("%s has no active credential", e.Platform)
}

// UpstreamError wraps a network, HTTP or parse failure from the platform API.
// The next scheduled firing is the retry mechanism.
type UpstreamError struct {
	Platform   string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s upstream request failed: %v", e.Platform, e.Err)
	}
	return fmt.Sprintf("%s upstream request failed with status %d", e.Platform, e.StatusCode)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
