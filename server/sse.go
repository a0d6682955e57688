package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-pkgz/lgr"
)

// eventsHandler streams ingestion completion events over SSE. Each event
// carries the batch counts and the newly promoted articles; clients refresh
// their item list on receipt instead of polling.
func (s *Server) eventsHandler(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		RenderError(w, r, fmt.Errorf("streaming not supported"), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	events, unsubscribe := s.scheduler.Subscribe()
	defer unsubscribe()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			payload := map[string]interface{}{
				"feeds_fetched": ev.Result.FeedsFetched,
				"feeds_failed":  ev.Result.FeedsFailed,
				"new_items":     ev.Result.NewItems,
				"promoted":      toArticlesJSON(ev.Promoted),
				"items":         toItemsJSON(ev.Items),
			}
			data, err := json.Marshal(payload)
			if err != nil {
				lgr.Printf("[WARN] failed to marshal sse event: %v", err)
				continue
			}
			if _, err := fmt.Fprintf(w, "event: ingest\ndata: %s\n\n", data); err != nil {
				return // client gone
			}
			flusher.Flush()
		}
	}
}
