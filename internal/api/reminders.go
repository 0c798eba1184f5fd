package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"flighttrack/logbook/internal/common"
	"flighttrack/logbook/internal/models/entities"
)

// ListReminders handles GET /api/v1/reminders
func (h *Handlers) ListReminders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		reminders, err := h.deps.Services.Reminders.ListReminders(r.Context(), ownerID(r))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Reminders fetched", reminders)
	}
}

// SaveReminder handles POST /api/v1/reminders
func (h *Handlers) SaveReminder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		var rem entities.Reminder
		if err := json.NewDecoder(r.Body).Decode(&rem); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		saved, err := h.deps.Services.Reminders.SaveReminder(r.Context(), ownerID(r), rem)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Reminder saved", saved, http.StatusCreated)
	}
}

// DeleteReminder handles DELETE /api/v1/reminders/{id}
func (h *Handlers) DeleteReminder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id := chi.URLParam(r, "id")
		if err := h.deps.Services.Reminders.DeleteReminder(r.Context(), ownerID(r), id); err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Reminder deleted", nil)
	}
}

// UpcomingReminders handles GET /api/v1/reminders/upcoming. It returns
// the unseen reminders due tomorrow, for the client's banner.
func (h *Handlers) UpcomingReminders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		due, err := h.deps.Services.Reminders.Upcoming(r.Context(), ownerID(r), time.Now())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Upcoming reminders fetched", due)
	}
}

// AcknowledgeReminders handles POST /api/v1/reminders/ack
func (h *Handlers) AcknowledgeReminders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		var body struct {
			IDs []string `json:"ids"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		if err := h.deps.Services.Reminders.Acknowledge(r.Context(), ownerID(r), body.IDs); err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Reminders acknowledged", nil)
	}
}
