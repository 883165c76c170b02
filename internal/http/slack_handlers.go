package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/nyt-rankbot/internal/scores"
	slackapi "github.com/slack-go/slack"
)

// SlackEventsHandler receives the Events API callbacks. Share messages posted
// in the configured channel are fed into ingestion; everything else is
// acknowledged and dropped.
func (s *Server) SlackEventsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}

		var eventPayload struct {
			Type      string `json:"type"`
			Challenge string `json:"challenge,omitempty"`
			Event     struct {
				Type    string `json:"type"`
				SubType string `json:"subtype,omitempty"`
				Channel string `json:"channel,omitempty"`
				User    string `json:"user,omitempty"`
				BotID   string `json:"bot_id,omitempty"`
				Text    string `json:"text,omitempty"`
			} `json:"event,omitempty"`
		}

		if err := json.Unmarshal(bodyBytes, &eventPayload); err != nil {
			log.Error("Failed to unmarshal event payload", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		// Handle challenge verification (for initial webhook setup)
		if eventPayload.Type == "url_verification" {
			w.Header().Set("Content-Type", "text/plain")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(eventPayload.Challenge))
			return
		}

		if eventPayload.Type == "event_callback" {
			log.Info("Received event", "type", eventPayload.Event.Type)

			// Filter for our specific channel only
			if eventPayload.Event.Channel != s.Cfg.Slack.ChannelID {
				log.Info("Ignoring event from different channel", "channel", eventPayload.Event.Channel)
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("OK"))
				return
			}

			// Only plain user messages carry puzzle results. Bot messages and
			// edits would otherwise loop our own notifications back in.
			if eventPayload.Event.Type == "message" && eventPayload.Event.BotID == "" && eventPayload.Event.SubType == "" {
				user := s.Notifier.ResolveUserName(eventPayload.Event.User)
				if err := s.Ingest.HandleMessage(user, eventPayload.Event.Text, isDryRunFromContext(r)); err != nil {
					log.Error("Failed to handle message", "error", err, "user", user)
					// Don't return error to Slack to avoid retries
				}
			}
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}

// ScoreboardCommandHandler returns a handler for the /scoreboard Slack command.
func (s *Server) ScoreboardCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		today, daily, monthly, err := s.Ingest.Scoreboard(time.Now())
		if err != nil {
			http.Error(w, "Failed to build scoreboard", http.StatusInternalServerError)
			log.Error("Failed to build scoreboard", "error", err)
			return
		}

		msg, err := s.Notifier.FormatScoreboardResponse(today, daily, monthly)
		if err != nil {
			http.Error(w, "Failed to format scoreboard", http.StatusInternalServerError)
			log.Error("Failed to format scoreboard", "error", err)
			return
		}

		slackMsg, ok := msg.(slackapi.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			log.Error("Failed to cast message to slack.Message")
			return
		}

		respondWithSlackMsg(w, slackMsg)
	}
}

// ClearCommandHandler returns a handler for the /clear-scores Slack command.
// The command text optionally names a single user to clear; empty clears the
// whole day.
func (s *Server) ClearCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		user := strings.TrimSpace(r.FormValue("text"))

		log.Info("Received clear command", "user", user)

		deleted, err := s.Ingest.Clear(time.Now(), user, isDryRunFromContext(r))
		if err != nil {
			http.Error(w, "Failed to clear scores", http.StatusInternalServerError)
			log.Error("Failed to clear scores", "error", err)
			return
		}

		text := fmt.Sprintf("Scores cleared for %s (%d removed) 🗑️!", time.Now().UTC().Format("2006-01-02"), deleted)
		msg, err := s.Notifier.FormatTextResponse(text)
		if err != nil {
			http.Error(w, "Failed to format response", http.StatusInternalServerError)
			log.Error("Failed to format response", "error", err)
			return
		}

		slackMsg, ok := msg.(slackapi.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			log.Error("Failed to cast message to slack.Message")
			return
		}

		respondWithSlackMsg(w, slackMsg)
	}
}

// AddCommandHandler returns a handler for the /add-score Slack command.
// Expects the command text as "<user> <game> <score>".
func (s *Server) AddCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}

		fields := strings.Fields(r.FormValue("text"))
		if len(fields) != 3 {
			http.Error(w, "Usage: /add-score <user> <game> <score>", http.StatusBadRequest)
			return
		}
		user, game := fields[0], fields[1]
		score, err := strconv.Atoi(fields[2])
		if err != nil {
			http.Error(w, "Score must be a number.", http.StatusBadRequest)
			return
		}

		log.Info("Received add command", "user", user, "game", game, "score", score)

		var text string
		parsed, err := scores.ParseGame(game)
		if err != nil {
			text = fmt.Sprintf("Unknown game '%s'. Try wordle, connections or mini.", game)
		} else {
			switch err := s.Ingest.ManualAdd(user, game, score, time.Now(), isDryRunFromContext(r)); {
			case errors.Is(err, scores.ErrDuplicateSubmission):
				text = fmt.Sprintf("%s has already submitted a score for '%s' today 🤨!", user, parsed)
			case err != nil:
				http.Error(w, "Failed to add score", http.StatusInternalServerError)
				log.Error("Failed to add score", "error", err)
				return
			default:
				text = fmt.Sprintf("Score added for %s in %s: %d", user, parsed, score)
			}
		}

		msg, err := s.Notifier.FormatTextResponse(text)
		if err != nil {
			http.Error(w, "Failed to format response", http.StatusInternalServerError)
			log.Error("Failed to format response", "error", err)
			return
		}

		slackMsg, ok := msg.(slackapi.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			log.Error("Failed to cast message to slack.Message")
			return
		}

		respondWithSlackMsg(w, slackMsg)
	}
}
