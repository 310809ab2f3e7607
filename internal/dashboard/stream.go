package dashboard

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"shopdash/internal/changefeed"
	"shopdash/internal/metrics"
)

const (
	streamBuffer      = 16
	heartbeatInterval = 15 * time.Second
)

// Streamer pushes order change events to dashboard clients over
// server-sent events.
type Streamer struct {
	hub    *changefeed.Hub
	logger *zap.Logger
}

func NewStreamer(hub *changefeed.Hub, logger *zap.Logger) *Streamer {
	return &Streamer{
		hub:    hub,
		logger: logger,
	}
}

func (s *Streamer) HandleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	events, cancel := s.hub.Subscribe(streamBuffer)
	defer cancel()

	metrics.SSESubscribers.Inc()
	defer metrics.SSESubscribers.Dec()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, open := <-events:
			if !open {
				return
			}
			data, err := json.Marshal(event)
			if err != nil {
				s.logger.Error("marshalling stream event", zap.Error(err))
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, data)
			flusher.Flush()
		case <-heartbeat.C:
			// Comment line keeps proxies from idling the connection out.
			fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()
		}
	}
}
