package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncSubmissionsAccepted(game string)
	IncSubmissionsDuplicate(game string)
	IncSubmissionsUnmatched()
	ObserveIngestDuration(duration float64)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}

// MetricsStore persists simple named counters across restarts, next to the
// game results. Prometheus counters reset with the process; these do not.
type MetricsStore interface {
	Increment(key string)
	GetAll() (map[string]int, error)
}
