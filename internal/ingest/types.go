package ingest

import (
	"github.com/mauv0809/nyt-rankbot/internal/metrics"
	"github.com/mauv0809/nyt-rankbot/internal/pubsub"
)

// Service handles the business logic of turning messages into stored results
// and keeping the channel informed.
type Service struct {
	store        Store
	notifier     Notifier
	metrics      metrics.Metrics
	metricsStore metrics.MetricsStore
	pubsub       pubsub.PubSubClient
}

// Persistent counter keys kept in the metrics table.
const (
	counterAccepted  = "submissions_accepted"
	counterDuplicate = "submissions_duplicate"
	counterUnmatched = "submissions_unmatched"
)
