package http

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/nyt-rankbot/internal/pubsub"
	"github.com/mauv0809/nyt-rankbot/internal/report"
	"github.com/mauv0809/nyt-rankbot/internal/scores"
	slackapi "github.com/slack-go/slack"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// CountersHandler exposes the persistent submission counters.
func (s *Server) CountersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counters, err := s.MetricsStore.GetAll()
		if err != nil {
			log.Error("Failed to read counters", "error", err)
			http.Error(w, "Failed to read counters", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(counters); err != nil {
			log.Error("Failed to encode counters", "error", err)
		}
	}
}

func (s *Server) ListResultsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := s.Store.GetAll()
		if err != nil {
			log.Error("Failed to list results", "error", err)
			http.Error(w, "Failed to list results", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(results); err != nil {
			log.Error("Failed to encode results", "error", err)
		}
	}
}

// ScoreboardHandler returns the plain-text scoreboard for the given date
// (today when omitted).
func (s *Server) ScoreboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref, err := dateParam(r, "date")
		if err != nil {
			http.Error(w, "Invalid 'date' parameter, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		today, daily, monthly, err := s.Ingest.Scoreboard(ref)
		if err != nil {
			log.Error("Failed to build scoreboard", "error", err)
			http.Error(w, "Failed to build scoreboard", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, report.Format(today, daily, monthly))
	}
}

func (s *Server) ClearHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref, err := dateParam(r, "date")
		if err != nil {
			http.Error(w, "Invalid 'date' parameter, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		user := r.URL.Query().Get("user")

		deleted, err := s.Ingest.Clear(ref, user, isDryRunFromContext(r))
		if err != nil {
			log.Error("Failed to clear scores", "error", err)
			http.Error(w, "Failed to clear scores", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Cleared %d results for %s", deleted, ref.Format("2006-01-02"))
	}
}

func (s *Server) ManualAddHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := r.URL.Query().Get("user")
		game := r.URL.Query().Get("game")
		scoreStr := r.URL.Query().Get("score")
		if user == "" || game == "" || scoreStr == "" {
			http.Error(w, "Required parameters: user, game, score", http.StatusBadRequest)
			return
		}
		score, err := strconv.Atoi(scoreStr)
		if err != nil {
			http.Error(w, "Invalid 'score' parameter", http.StatusBadRequest)
			return
		}
		ref, err := dateParam(r, "date")
		if err != nil {
			http.Error(w, "Invalid 'date' parameter, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		parsed, err := scores.ParseGame(game)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		err = s.Ingest.ManualAdd(user, game, score, ref, isDryRunFromContext(r))
		switch {
		case errors.Is(err, scores.ErrDuplicateSubmission):
			http.Error(w, fmt.Sprintf("%s has already submitted a score for '%s' on %s", user, parsed, ref.Format("2006-01-02")), http.StatusConflict)
		case err != nil:
			log.Error("Failed to add score", "error", err)
			http.Error(w, "Failed to add score", http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, "Score added for %s in %s: %d", user, parsed, score)
		}
	}
}

// NotifyScoreboardHandler is the pub/sub push endpoint for scoreboard refresh
// events published after accepted submissions.
func (s *Server) NotifyScoreboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received scoreboard refresh push", "body", string(bodyBytes))

		// The push wrapper carries the base64-encoded MessagePack payload.
		var pubsubMsg struct {
			Subscription string `json:"subscription"`
			Message      struct {
				Data string `json:"data"`
			} `json:"message"`
		}
		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 payload", "error", err)
			http.Error(w, "Invalid payload", http.StatusBadRequest)
			return
		}

		var event pubsub.ScoreboardRefreshEvent
		if err := s.pubsub.ProcessMessage(rawData, &event); err != nil {
			log.Error("Failed to decode scoreboard refresh event", "error", err)
			http.Error(w, "Invalid event", http.StatusBadRequest)
			return
		}

		log.Info("Processing scoreboard refresh", "eventID", event.EventID, "user", event.User, "game", event.Game)
		if err := s.Ingest.SendScoreboard(event.Date, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to send scoreboard", "error", err, "eventID", event.EventID)
			http.Error(w, "Failed to send scoreboard", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	}
}

// dateParam reads a YYYY-MM-DD query parameter, defaulting to today (UTC).
func dateParam(r *http.Request, key string) (time.Time, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return scores.Day(time.Now()), nil
	}
	return time.ParseInLocation("2006-01-02", value, time.UTC)
}

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg slackapi.Message) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Error("Failed to encode slack message to JSON", "error", err)
	}
}
