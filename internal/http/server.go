package http

import (
	"net/http"

	"github.com/mauv0809/nyt-rankbot/internal/config"
	"github.com/mauv0809/nyt-rankbot/internal/ingest"
	"github.com/mauv0809/nyt-rankbot/internal/metrics"
	"github.com/mauv0809/nyt-rankbot/internal/notifier"
	"github.com/mauv0809/nyt-rankbot/internal/pubsub"
	"github.com/mauv0809/nyt-rankbot/internal/scores"
)

func NewServer(store scores.ScoreStore, ingestSvc *ingest.Service, metricsSvc metrics.Metrics, metricsStore metrics.MetricsStore, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Ingest:         ingestSvc,
		Metrics:        metricsSvc,
		MetricsStore:   metricsStore,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/counters", Chain(s.CountersHandler(), paramsMiddleware))
	s.Router.Handle("/results", Chain(s.ListResultsHandler(), paramsMiddleware))
	s.Router.Handle("/scoreboard", Chain(s.ScoreboardHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearHandler(), paramsMiddleware))
	s.Router.Handle("/add", Chain(s.ManualAddHandler(), paramsMiddleware))
	s.Router.Handle("/notify-scoreboard", Chain(s.NotifyScoreboardHandler(), paramsMiddleware))
	s.Router.Handle("/slack/events", Chain(s.SlackEventsHandler(), paramsMiddleware))
	s.Router.Handle("/slack/command/scoreboard", Chain(s.ScoreboardCommandHandler(), paramsMiddleware))
	s.Router.Handle("/slack/command/clear", Chain(s.ClearCommandHandler(), paramsMiddleware))
	s.Router.Handle("/slack/command/add", Chain(s.AddCommandHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
