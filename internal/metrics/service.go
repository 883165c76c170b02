package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		SubmissionsAccepted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rankbot_submissions_accepted_total",
			Help: "The total number of accepted score submissions, per game.",
		}, []string{"game"}),
		SubmissionsDuplicate: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rankbot_submissions_duplicate_total",
			Help: "The total number of submissions rejected as duplicates, per game.",
		}, []string{"game"}),
		SubmissionsUnmatched: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rankbot_submissions_unmatched_total",
			Help: "The total number of messages that matched no game pattern.",
		}),
		IngestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rankbot_ingest_duration_seconds",
			Help:    "The duration of handling a single submission.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rankbot_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rankbot_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rankbot_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.SubmissionsAccepted,
		s.SubmissionsDuplicate,
		s.SubmissionsUnmatched,
		s.IngestDuration,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncSubmissionsAccepted(game string) {
	s.SubmissionsAccepted.WithLabelValues(game).Inc()
}

func (s *Service) IncSubmissionsDuplicate(game string) {
	s.SubmissionsDuplicate.WithLabelValues(game).Inc()
}

func (s *Service) IncSubmissionsUnmatched() {
	s.SubmissionsUnmatched.Inc()
}

func (s *Service) ObserveIngestDuration(duration float64) {
	s.IngestDuration.Observe(duration)
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
