package services

import (
	"context"

	"flighttrack/logbook/internal/common"
	"flighttrack/logbook/internal/constants"
	"flighttrack/logbook/internal/db/repositories"
	"flighttrack/logbook/internal/logging"
	"flighttrack/logbook/internal/metrics"
	"flighttrack/logbook/internal/models/dtos"
	"flighttrack/logbook/internal/models/entities"
	gormModels "flighttrack/logbook/internal/models/gorm"
	"flighttrack/logbook/internal/normalize"
	"flighttrack/logbook/internal/reconcile"
)

// ImportService merges decoded import batches into the owner's record set.
// Collision handling is batch-level: one overwrite decision covers the
// whole import, so a batch with unconfirmed collisions persists nothing.
type ImportService struct {
	flights  *repositories.FlightRepository
	aircraft *repositories.AircraftRepository
	cache    common.CacheInterface
	metrics  *metrics.MetricsRegistry
}

func NewImportService(
	flights *repositories.FlightRepository,
	aircraft *repositories.AircraftRepository,
	cache common.CacheInterface,
	metricsReg *metrics.MetricsRegistry,
) *ImportService {
	return &ImportService{
		flights:  flights,
		aircraft: aircraft,
		cache:    cache,
		metrics:  metricsReg,
	}
}

// ImportFlights reconciles a raw batch into the stored set. overwrite is
// tri-state: nil means the caller has not decided yet, and the call fails
// with IMPORT_COLLISION when any incoming id collides with an existing
// record. An empty batch fails with IMPORT_EMPTY and changes nothing.
func (s *ImportService) ImportFlights(ctx context.Context, ownerID string, raw []map[string]any, overwrite *bool) (*dtos.ImportResult, error) {
	if ownerID == "" {
		return nil, NewLogbookError(constants.ErrCodeUnavailable, nil)
	}
	if len(raw) == 0 {
		return nil, NewLogbookError(constants.ErrCodeImportEmpty, nil)
	}

	rows, err := s.flights.ListAll(ctx, ownerID)
	if err != nil {
		return nil, NewLogbookError(constants.ErrCodePersistence, err)
	}
	existing := make([]entities.FlightRecord, 0, len(rows))
	for _, row := range rows {
		existing = append(existing, row.ToEntity())
	}

	incoming := normalize.Batch(raw)
	collisions := reconcile.CollisionCount(existing, incoming)

	if collisions > 0 {
		if s.metrics != nil {
			s.metrics.ImportCollisionsTotal.Add(float64(collisions))
		}
		if overwrite == nil {
			lbErr := NewLogbookError(constants.ErrCodeImportCollision, nil)
			lbErr.Collisions = collisions
			return nil, lbErr
		}
	}

	ow := overwrite != nil && *overwrite
	res := reconcile.Merge(existing, incoming, ow)

	// the applied set commits atomically: a failed write aborts the whole
	// import and leaves the stored set unchanged
	applied := make([]gormModels.Flight, 0, len(res.Applied))
	for _, rec := range res.Applied {
		applied = append(applied, gormModels.FlightFromEntity(ownerID, rec))
	}
	if err := s.flights.UpsertAll(ctx, applied); err != nil {
		return nil, NewLogbookError(constants.ErrCodePersistence, err)
	}

	for _, rec := range res.Applied {
		if rec.Aircraft != "" {
			if err := s.aircraft.Add(ctx, ownerID, rec.Aircraft); err != nil {
				logging.Warn("Failed to register imported aircraft", "owner_id", ownerID, "error", err.Error())
			}
		}
	}

	if s.metrics != nil {
		s.metrics.FlightsImportedTotal.Add(float64(res.ImportedCount))
	}
	if s.cache != nil {
		s.cache.Delete(string(constants.CachePrefixSummary) + ownerID)
	}

	logging.Info("Import completed",
		"owner_id", ownerID,
		"imported", res.ImportedCount,
		"collisions", collisions,
		"overwrite", ow,
	)

	return &dtos.ImportResult{
		ImportedCount: res.ImportedCount,
		Collisions:    collisions,
		TotalRecords:  len(res.Merged),
		Overwrite:     ow,
	}, nil
}
