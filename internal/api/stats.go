package api

import (
	"net/http"
	"time"

	"flighttrack/logbook/internal/common"
)

// FlightSummary handles GET /api/v1/stats/summary. An optional asOf
// query parameter (RFC 3339) pins the aggregation windows; without it
// the summary is relative to now and may be served from cache.
func (h *Handlers) FlightSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var asOf time.Time
		if qs := r.URL.Query().Get("asOf"); qs != "" {
			parsed, err := time.Parse(time.RFC3339, qs)
			if err != nil {
				common.RespondError(w, initTime, err, "Invalid asOf parameter, expected RFC 3339", http.StatusBadRequest)
				return
			}
			asOf = parsed
		}

		summary, err := h.deps.Services.Stats.Summary(r.Context(), ownerID(r), asOf)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Summary built", summary)
	}
}
