package transfer

// SyncResult is the uniform outcome of one sync attempt. Callers never need
// to distinguish where a failure came from beyond Error.
type SyncResult struct {
	Success        bool     `json:"success"`
	Platform       string   `json:"platform"`
	MetricsUpdated []string `json:"metrics_updated"`
	Error          string   `json:"error,omitempty"`
}

type ScheduleRequest struct {
	Interval string `json:"interval"`
}

type AutoSyncStatus struct {
	Platform string `json:"platform"`
	Active   bool   `json:"active"`
}
