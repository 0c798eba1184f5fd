package api

import (
	"bytes"
	"net/http"
	"time"

	"flighttrack/logbook/internal/common"
)

// ExportFlightsJSON handles GET /api/v1/export/flights.json
func (h *Handlers) ExportFlightsJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		records, err := h.deps.Services.Export.Flights(r.Context(), ownerID(r))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Flights exported", records)
	}
}

// ExportFlightsCSV handles GET /api/v1/export/flights.csv. The file is
// buffered before writing so a mid-export failure still yields a clean
// JSON error instead of a truncated download.
func (h *Handlers) ExportFlightsCSV() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var buf bytes.Buffer
		if err := h.deps.Services.Export.WriteCSV(r.Context(), ownerID(r), &buf); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="flights.csv"`)
		_, _ = buf.WriteTo(w)
	}
}

// ExportFlightsXLSX handles GET /api/v1/export/flights.xlsx
func (h *Handlers) ExportFlightsXLSX() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var buf bytes.Buffer
		if err := h.deps.Services.Export.WriteXLSX(r.Context(), ownerID(r), &buf); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="flights.xlsx"`)
		_, _ = buf.WriteTo(w)
	}
}

// ExportSnapshot handles GET /api/v1/export/snapshot, the full backup
// payload with flights, aircraft and reminders.
func (h *Handlers) ExportSnapshot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		snap, err := h.deps.Services.Export.Snapshot(r.Context(), ownerID(r))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Snapshot exported", snap)
	}
}
