package stream_changes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

const (
	msgStreamingUnsupported = "потоковая передача не поддерживается"

	subscriberBuffer  = 64
	heartbeatInterval = 15 * time.Second
)

type Handler struct {
	subscriber ChangeSubscriber
	heartbeat  time.Duration
	done       chan struct{}
	closeOnce  sync.Once
	logger     Logger
}

func NewHandler(subscriber ChangeSubscriber, logger Logger) *Handler {
	return &Handler{
		subscriber: subscriber,
		heartbeat:  heartbeatInterval,
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Close завершает все открытые потоки. Вызывается при остановке сервера:
// Shutdown не отменяет контексты запросов и иначе ждал бы потоки до таймаута
func (h *Handler) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
	})
}

// Handle GET /api/v1/changes
// Query params: session (optional) - присылать изменения выбора только этой сессии.
// Изменения занятости приходят всем подписчикам.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.Error("GET /changes - ResponseWriter does not support flushing")
		handlers.RespondError(w, http.StatusInternalServerError, msgStreamingUnsupported)
		return
	}

	sessionID := r.URL.Query().Get("session")

	// поток живет дольше WriteTimeout сервера
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	changes, unsubscribe := h.subscriber.Subscribe(subscriberBuffer)
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	h.logger.Info("GET /changes - Subscriber connected: session=%q", sessionID)

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.logger.Info("GET /changes - Subscriber disconnected: session=%q", sessionID)
			return

		case <-h.done:
			return

		case change, ok := <-changes:
			if !ok {
				return
			}
			if !matches(change, sessionID) {
				continue
			}
			if err := writeEvent(w, change); err != nil {
				h.logger.Warn("GET /changes - Failed to write event: %v", err)
				return
			}
			flusher.Flush()

		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func matches(change domain.Change, sessionID string) bool {
	if sessionID == "" || change.Kind != domain.ChangeSelection {
		return true
	}
	return change.SessionID == sessionID
}

func writeEvent(w http.ResponseWriter, change domain.Change) error {
	payload, err := json.Marshal(toEvent(change))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", change.Kind, payload)
	return err
}
