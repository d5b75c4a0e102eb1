package http

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/mind-engage/mindengage-mcq/internal/eventlog"
)

type eventView struct {
	Seq       int64           `json:"seq"`
	Type      string          `json:"type"`
	Key       string          `json:"key,omitempty"`
	Data      json.RawMessage `json:"data"`
	CreatedAt int64           `json:"created_at"`
}

// GET /api/events?limit=N: recent imports, clears and submissions, newest first.
func EventsHandler(events eventlog.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 50
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 || n > 500 {
				writeError(w, http.StatusBadRequest, "limit must be between 1 and 500")
				return
			}
			limit = n
		}
		evs, err := events.Recent(r.Context(), limit)
		if err != nil {
			log.Printf("events: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to load events")
			return
		}
		out := make([]eventView, 0, len(evs))
		for _, e := range evs {
			data := json.RawMessage(e.DataJSON)
			if !json.Valid(data) {
				data = json.RawMessage("{}")
			}
			out = append(out, eventView{Seq: e.Seq, Type: e.Type, Key: e.Key, Data: data, CreatedAt: e.CreatedAt})
		}
		writeJSON(w, http.StatusOK, out)
	}
}
