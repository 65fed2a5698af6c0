package watch_availability

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/m04kA/JMN-BookingService/internal/api/handlers"
	getAvailability "github.com/m04kA/JMN-BookingService/internal/api/handlers/get_availability"
)

const msgStreamingUnsupported = "потоковая передача не поддерживается"

type Handler struct {
	feed   AvailabilityFeed
	logger Logger
}

func NewHandler(feed AvailabilityFeed, logger Logger) *Handler {
	return &Handler{
		feed:   feed,
		logger: logger,
	}
}

// Handle GET /api/v1/availability/stream
//
// Server-Sent Events: при подписке клиент сразу получает текущий снимок,
// дальше — каждое изменение. Отстающий клиент получает только последний
// снимок, промежуточные не копятся.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.Error("GET /availability/stream - ResponseWriter does not support flushing")
		handlers.RespondError(w, http.StatusInternalServerError, msgStreamingUnsupported)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	snapshots, release := h.feed.Subscribe()
	defer release()

	h.logger.Info("GET /availability/stream - Client subscribed")

	for {
		select {
		case <-r.Context().Done():
			h.logger.Info("GET /availability/stream - Client disconnected")
			return

		case snap, ok := <-snapshots:
			if !ok {
				return
			}

			payload, err := json.Marshal(getAvailability.FromSnapshot(snap))
			if err != nil {
				h.logger.Error("GET /availability/stream - Failed to marshal snapshot: %v", err)
				continue
			}

			if _, err := fmt.Fprintf(w, "event: availability\ndata: %s\n\n", payload); err != nil {
				h.logger.Warn("GET /availability/stream - Failed to write event: %v", err)
				return
			}
			flusher.Flush()
		}
	}
}
