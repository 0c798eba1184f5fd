package dtos

import (
	"flighttrack/logbook/internal/models/entities"
	"flighttrack/logbook/internal/stats"
)

// APIResponse is the standard JSON envelope for every endpoint.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

// ImportResult reports the outcome of a flight import.
type ImportResult struct {
	ImportedCount int  `json:"imported_count"`
	Collisions    int  `json:"collisions"`
	TotalRecords  int  `json:"total_records"`
	Overwrite     bool `json:"overwrite"`
}

// SummaryResponse wraps the aggregated statistics with response metadata.
type SummaryResponse struct {
	Summary  stats.Summary   `json:"summary"`
	Metadata SummaryMetadata `json:"metadata"`
}

type SummaryMetadata struct {
	RecordCount int    `json:"record_count"`
	AsOf        string `json:"as_of"`
	GeneratedAt string `json:"generated_at"`
	Cached      bool   `json:"cached"`
}

// Snapshot is the full per-owner backup payload.
type Snapshot struct {
	Flights   []entities.FlightRecord `json:"flights"`
	Aircrafts []entities.Aircraft     `json:"aircrafts"`
	Reminders []entities.Reminder     `json:"reminders"`
}
