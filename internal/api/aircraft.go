package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"flighttrack/logbook/internal/common"
)

// ListAircraft handles GET /api/v1/aircrafts
func (h *Handlers) ListAircraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		list, err := h.deps.Services.Logbook.ListAircraft(r.Context(), ownerID(r))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Aircraft fetched", list)
	}
}

// AddAircraft handles POST /api/v1/aircrafts
func (h *Handlers) AddAircraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		var body struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		if err := h.deps.Services.Logbook.AddAircraft(r.Context(), ownerID(r), body.Name); err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Aircraft added", nil, http.StatusCreated)
	}
}

// DeleteAircraft handles DELETE /api/v1/aircrafts/{name}
func (h *Handlers) DeleteAircraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		name := chi.URLParam(r, "name")
		if err := h.deps.Services.Logbook.DeleteAircraft(r.Context(), ownerID(r), name); err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Aircraft deleted", nil)
	}
}
