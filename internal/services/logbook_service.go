package services

import (
	"context"
	"fmt"
	"time"

	"flighttrack/logbook/internal/common"
	"flighttrack/logbook/internal/constants"
	"flighttrack/logbook/internal/db/repositories"
	"flighttrack/logbook/internal/logging"
	"flighttrack/logbook/internal/metrics"
	"flighttrack/logbook/internal/models/entities"
	gormModels "flighttrack/logbook/internal/models/gorm"
	"flighttrack/logbook/internal/normalize"
)

// LogbookService is the record-store adapter for flights and the saved
// aircraft list. Writes invalidate the owner's cached summary; nothing is
// retried, and a failed write leaves cached state untouched.
type LogbookService struct {
	flights  *repositories.FlightRepository
	aircraft *repositories.AircraftRepository
	cache    common.CacheInterface
	metrics  *metrics.MetricsRegistry
}

func NewLogbookService(
	flights *repositories.FlightRepository,
	aircraft *repositories.AircraftRepository,
	cache common.CacheInterface,
	metricsReg *metrics.MetricsRegistry,
) *LogbookService {
	return &LogbookService{
		flights:  flights,
		aircraft: aircraft,
		cache:    cache,
		metrics:  metricsReg,
	}
}

// ListFlights returns the owner's canonical record set.
func (s *LogbookService) ListFlights(ctx context.Context, ownerID string) ([]entities.FlightRecord, error) {
	if ownerID == "" {
		return nil, NewLogbookError(constants.ErrCodeUnavailable, nil)
	}

	rows, err := s.flights.ListAll(ctx, ownerID)
	if err != nil {
		return nil, NewLogbookError(constants.ErrCodePersistence, err)
	}

	records := make([]entities.FlightRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.ToEntity())
	}
	return records, nil
}

// SaveFlight normalizes a loosely-typed payload and upserts it. The
// record's aircraft name is implicitly added to the owner's list.
func (s *LogbookService) SaveFlight(ctx context.Context, ownerID string, raw map[string]any) (*entities.FlightRecord, error) {
	if ownerID == "" {
		return nil, NewLogbookError(constants.ErrCodeUnavailable, nil)
	}

	rec := normalize.Record(raw)

	if err := s.flights.Upsert(ctx, gormModels.FlightFromEntity(ownerID, rec)); err != nil {
		return nil, NewLogbookError(constants.ErrCodePersistence, err)
	}

	if rec.Aircraft != "" {
		if err := s.aircraft.Add(ctx, ownerID, rec.Aircraft); err != nil {
			// the flight itself is saved; a failed list update is not fatal
			logging.Warn("Failed to register aircraft", "owner_id", ownerID, "error", err.Error())
		}
	}

	if s.metrics != nil {
		s.metrics.FlightsSavedTotal.Inc()
	}
	s.invalidateSummary(ownerID)
	return &rec, nil
}

// DeleteFlight removes one record by id.
func (s *LogbookService) DeleteFlight(ctx context.Context, ownerID, id string) error {
	if ownerID == "" {
		return NewLogbookError(constants.ErrCodeUnavailable, nil)
	}

	deleted, err := s.flights.Delete(ctx, ownerID, id)
	if err != nil {
		return NewLogbookError(constants.ErrCodePersistence, err)
	}
	if !deleted {
		return NewLogbookError(constants.ErrCodeNotFound, fmt.Errorf("flight %s", id))
	}

	s.invalidateSummary(ownerID)
	return nil
}

// ClearFlights deletes every flight record of the owner.
func (s *LogbookService) ClearFlights(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		return NewLogbookError(constants.ErrCodeUnavailable, nil)
	}

	if err := s.flights.DeleteAll(ctx, ownerID); err != nil {
		return NewLogbookError(constants.ErrCodePersistence, err)
	}

	s.invalidateSummary(ownerID)
	return nil
}

// SeedDemoFlights loads the demo entries: one flight now, one tomorrow.
func (s *LogbookService) SeedDemoFlights(ctx context.Context, ownerID string) ([]entities.FlightRecord, error) {
	now := time.Now()
	demo := []map[string]any{
		{
			"aircraft": "Cessna 182", "crew": "Pilot A", "durationHours": "2",
			"departure": "IST", "arrival": "ANK", "date": now.Format(time.RFC3339),
			"flightType": "training",
		},
		{
			"aircraft": "Piper PA-28", "crew": "Pilot B", "durationHours": "1.2",
			"departure": "ESB", "arrival": "IZM", "date": now.Add(24 * time.Hour).Format(time.RFC3339),
			"flightType": "check",
		},
	}

	var seeded []entities.FlightRecord
	for _, raw := range demo {
		rec, err := s.SaveFlight(ctx, ownerID, raw)
		if err != nil {
			return seeded, err
		}
		seeded = append(seeded, *rec)
	}
	return seeded, nil
}

// ListAircraft returns the owner's saved aircraft names.
func (s *LogbookService) ListAircraft(ctx context.Context, ownerID string) ([]entities.Aircraft, error) {
	if ownerID == "" {
		return nil, NewLogbookError(constants.ErrCodeUnavailable, nil)
	}

	rows, err := s.aircraft.ListAll(ctx, ownerID)
	if err != nil {
		return nil, NewLogbookError(constants.ErrCodePersistence, err)
	}

	aircrafts := make([]entities.Aircraft, 0, len(rows))
	for _, row := range rows {
		aircrafts = append(aircrafts, row.ToEntity())
	}
	return aircrafts, nil
}

// AddAircraft explicitly saves an aircraft name.
func (s *LogbookService) AddAircraft(ctx context.Context, ownerID, name string) error {
	if ownerID == "" {
		return NewLogbookError(constants.ErrCodeUnavailable, nil)
	}
	if err := s.aircraft.Add(ctx, ownerID, name); err != nil {
		return NewLogbookError(constants.ErrCodePersistence, err)
	}
	return nil
}

// DeleteAircraft removes a saved aircraft name.
func (s *LogbookService) DeleteAircraft(ctx context.Context, ownerID, name string) error {
	if ownerID == "" {
		return NewLogbookError(constants.ErrCodeUnavailable, nil)
	}

	deleted, err := s.aircraft.Delete(ctx, ownerID, name)
	if err != nil {
		return NewLogbookError(constants.ErrCodePersistence, err)
	}
	if !deleted {
		return NewLogbookError(constants.ErrCodeNotFound, fmt.Errorf("aircraft %q", name))
	}
	return nil
}

func (s *LogbookService) invalidateSummary(ownerID string) {
	if s.cache != nil {
		s.cache.Delete(string(constants.CachePrefixSummary) + ownerID)
	}
}
