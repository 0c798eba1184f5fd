package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"flighttrack/logbook/internal/common"
	"flighttrack/logbook/internal/constants"
)

// ListFlights handles GET /api/v1/flights
func (h *Handlers) ListFlights() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		records, err := h.deps.Services.Logbook.ListFlights(r.Context(), ownerID(r))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Flights fetched", records)
	}
}

// SaveFlight handles POST /api/v1/flights. The body is a loosely keyed
// record; alias resolution and id synthesis happen in the service.
func (h *Handlers) SaveFlight() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		var raw map[string]any
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		rec, err := h.deps.Services.Logbook.SaveFlight(r.Context(), ownerID(r), raw)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Flight saved", rec, http.StatusCreated)
	}
}

// UpdateFlight handles PUT /api/v1/flights/{id}. The path id wins over
// any id carried in the body, so the update targets exactly one record.
func (h *Handlers) UpdateFlight() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id := chi.URLParam(r, "id")
		if id == "" {
			common.RespondError(w, initTime, nil, constants.GetErrorMessage(constants.ErrCodeBadRequest), http.StatusBadRequest)
			return
		}

		var raw map[string]any
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}
		// a JSON null body decodes to a nil map
		if raw == nil {
			raw = map[string]any{}
		}
		raw["id"] = id

		rec, err := h.deps.Services.Logbook.SaveFlight(r.Context(), ownerID(r), raw)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Flight updated", rec)
	}
}

// DeleteFlight handles DELETE /api/v1/flights/{id}
func (h *Handlers) DeleteFlight() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id := chi.URLParam(r, "id")
		if err := h.deps.Services.Logbook.DeleteFlight(r.Context(), ownerID(r), id); err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Flight deleted", nil)
	}
}

// ClearFlights handles DELETE /api/v1/flights
func (h *Handlers) ClearFlights() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		if err := h.deps.Services.Logbook.ClearFlights(r.Context(), ownerID(r)); err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Flights cleared", nil)
	}
}

// SeedDemoFlights handles POST /api/v1/flights/demo
func (h *Handlers) SeedDemoFlights() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		records, err := h.deps.Services.Logbook.SeedDemoFlights(r.Context(), ownerID(r))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Demo flights created", records, http.StatusCreated)
	}
}
