package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Cheertaboi/storefront-service/internal/api/middleware"
	"github.com/Cheertaboi/storefront-service/internal/notify"
)

const (
	eventBuffer       = 16
	defaultKeepAlive  = 25 * time.Second
	sseConnectComment = ": connected\n\n"
)

// EventsHandler relays a device's cart and session signals as server-sent
// events.
type EventsHandler struct {
	bus       *notify.Bus
	keepAlive time.Duration
	log       *slog.Logger
}

func NewEventsHandler(bus *notify.Bus, keepAlive time.Duration, log *slog.Logger) *EventsHandler {
	if keepAlive <= 0 {
		keepAlive = defaultKeepAlive
	}
	return &EventsHandler{bus: bus, keepAlive: keepAlive, log: log}
}

// Stream handles GET /events. A slow client misses signals rather than
// blocking the mutation that published them.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "streaming_unsupported"})
		return
	}

	device := middleware.DeviceID(r.Context())
	signals := make(chan notify.Signal, eventBuffer)
	unsubscribe := h.bus.Subscribe(device, func(e notify.Event) {
		select {
		case signals <- e.Signal:
		default:
			h.log.Warn("dropping event for slow client", "device", device, "signal", e.Signal)
		}
	})
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprint(w, sseConnectComment)
	flusher.Flush()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case sig := <-signals:
			if _, err := fmt.Fprintf(w, "event: %s\ndata: {}\n\n", sig); err != nil {
				return
			}
			flusher.Flush()
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
