package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/agendafacil/booking-platform/internal/domain/entities"
	"github.com/agendafacil/booking-platform/internal/domain/providers"
)

const streamHeartbeatInterval = 30 * time.Second

// StreamHandler handles Server-Sent Events for real-time domain updates
type StreamHandler struct {
	eventBus  providers.EventBus
	heartbeat time.Duration
}

// NewStreamHandler creates a new SSE stream handler
func NewStreamHandler(eventBus providers.EventBus) *StreamHandler {
	return &StreamHandler{
		eventBus:  eventBus,
		heartbeat: streamHeartbeatInterval,
	}
}

// Stream handles SSE connections for a single event channel
// GET /events/{channel}
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	channel := r.PathValue("channel")
	if channel != providers.EventChannelAppointments && channel != providers.EventChannelReviews {
		respondWithError(w, http.StatusBadRequest, "unknown event channel")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	// Set headers for SSE
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	eventChan, err := h.eventBus.Subscribe(r.Context(), channel)
	if err != nil {
		log.Warn().Err(err).Str("channel", channel).Msg("failed to subscribe to event channel")
		respondWithError(w, http.StatusInternalServerError, "failed to subscribe")
		return
	}

	// Create client channel and start forwarding
	clientChan := make(chan *entities.Event, 10)
	go h.forwardEvents(r.Context(), eventChan, clientChan)

	// Send initial connection event
	h.sendEvent(w, "connected", map[string]interface{}{
		"channel":   channel,
		"timestamp": time.Now().UTC(),
	})
	flusher.Flush()

	// Keep connection alive and send events
	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			log.Debug().Str("channel", channel).Msg("stream client disconnected")
			return
		case <-ticker.C:
			h.sendEvent(w, "heartbeat", map[string]interface{}{
				"timestamp": time.Now().UTC(),
			})
			flusher.Flush()
		case event := <-clientChan:
			if event == nil {
				continue
			}
			h.sendEvent(w, event.Type, event)
			flusher.Flush()
		}
	}
}

// forwardEvents forwards events from the event bus to a client channel
func (h *StreamHandler) forwardEvents(ctx context.Context, eventChan <-chan *entities.Event, clientChan chan<- *entities.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-eventChan:
			if !ok {
				return
			}
			select {
			case clientChan <- event:
			default:
				// Client channel full, skip event.
			}
		}
	}
}

// sendEvent sends an SSE event to the client
func (h *StreamHandler) sendEvent(w http.ResponseWriter, eventType string, data interface{}) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		log.Warn().Err(err).Msg("failed to marshal stream event")
		return
	}

	fmt.Fprintf(w, "event: %s\n", eventType)
	fmt.Fprintf(w, "data: %s\n\n", jsonData)
}
