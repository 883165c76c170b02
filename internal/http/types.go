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

type Server struct {
	Store          scores.ScoreStore
	Ingest         *ingest.Service
	Metrics        metrics.Metrics
	MetricsStore   metrics.MetricsStore
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
