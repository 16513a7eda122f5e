package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/shivang-jani/bitsjob-search-frontend/internal/events"
)

const pingInterval = 15 * time.Second

// EventsHandler streams portal events to the UI over SSE. Pings keep
// intermediaries from closing an otherwise idle stream.
func (d *Deps) EventsHandler(w http.ResponseWriter, r *http.Request) {
	fl, ok := w.(http.Flusher)
	if !ok {
		WriteError(w, r, http.StatusInternalServerError, "internal_error", "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := d.Hub.Subscribe()
	defer d.Hub.Unsubscribe(ch)

	reqID := RequestIDFrom(r.Context())
	fmt.Fprintf(w, "data: %s\n\n", events.MakeEvent(reqID, events.TypePing, 1, nil))
	fl.Flush()

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			fmt.Fprintf(w, "data: %s\n\n", events.MakeEvent(reqID, events.TypePing, 1, nil))
			fl.Flush()
		case evt, open := <-ch:
			if !open {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", evt)
			fl.Flush()
		}
	}
}
