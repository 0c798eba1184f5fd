package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"flighttrack/logbook/internal/common"
	"flighttrack/logbook/internal/constants"
	"flighttrack/logbook/internal/models/dtos"
	"flighttrack/logbook/internal/services"
)

// ImportFlights handles POST /api/v1/flights/import. The body is a JSON
// array of loosely keyed records. The overwrite query parameter is
// tri-state: absent means undecided, and a batch with id collisions is
// rejected with 409 so the caller can confirm and retry with
// overwrite=true or keep existing records with overwrite=false.
func (h *Handlers) ImportFlights() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var raw []map[string]any
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body, expected a JSON array of records", http.StatusBadRequest)
			return
		}

		var overwrite *bool
		switch r.URL.Query().Get("overwrite") {
		case "":
		case "true":
			v := true
			overwrite = &v
		case "false":
			v := false
			overwrite = &v
		default:
			common.RespondError(w, initTime, nil, "Invalid overwrite parameter", http.StatusBadRequest)
			return
		}

		result, err := h.deps.Services.Import.ImportFlights(r.Context(), ownerID(r), raw, overwrite)
		if err != nil {
			var lbErr *services.LogbookError
			if errors.As(err, &lbErr) && lbErr.Code == constants.ErrCodeImportCollision {
				resp := dtos.APIResponse{
					Status:       string(constants.APIStatusError),
					Message:      lbErr.Message,
					ResponseTime: common.GetResponseTime(initTime),
					Data:         map[string]int{"collisions": lbErr.Collisions},
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusConflict)
				_ = json.NewEncoder(w).Encode(resp)
				return
			}
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Import completed", result)
	}
}
