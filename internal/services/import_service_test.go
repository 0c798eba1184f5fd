package services

import (
	"context"
	"errors"
	"testing"

	"flighttrack/logbook/internal/common"
	"flighttrack/logbook/internal/constants"
	"flighttrack/logbook/internal/db/repositories"
)

func boolPtr(v bool) *bool { return &v }

func newTestImportService(t *testing.T) (*ImportService, *LogbookService) {
	db := setupTestDB(t)
	flights := repositories.NewFlightRepository(db)
	aircraft := repositories.NewAircraftRepository(db)
	cache := common.NewCacheService(300, 600)
	return NewImportService(flights, aircraft, cache, nil),
		NewLogbookService(flights, aircraft, cache, nil)
}

func TestImportService_EmptyBatchRejected(t *testing.T) {
	svc, logbook := newTestImportService(t)
	ctx := context.Background()

	if _, err := logbook.SaveFlight(ctx, testOwner, map[string]any{"aircraft": "C172", "durationHours": 1}); err != nil {
		t.Fatalf("SaveFlight failed: %v", err)
	}

	_, err := svc.ImportFlights(ctx, testOwner, nil, nil)
	var lbErr *LogbookError
	if !errors.As(err, &lbErr) || lbErr.Code != constants.ErrCodeImportEmpty {
		t.Fatalf("Expected IMPORT_EMPTY, got %v", err)
	}

	// existing set unchanged
	records, _ := logbook.ListFlights(ctx, testOwner)
	if len(records) != 1 {
		t.Errorf("Expected existing records untouched, got %d", len(records))
	}
}

func TestImportService_CollisionWithoutDecision(t *testing.T) {
	svc, logbook := newTestImportService(t)
	ctx := context.Background()

	saved, err := logbook.SaveFlight(ctx, testOwner, map[string]any{"aircraft": "Cessna 172", "durationHours": 2})
	if err != nil {
		t.Fatalf("SaveFlight failed: %v", err)
	}

	batch := []map[string]any{
		{"id": saved.ID, "aircraft": "Piper PA-28", "durationHours": 5},
		{"aircraft": "Diamond DA40", "durationHours": 1},
	}

	_, err = svc.ImportFlights(ctx, testOwner, batch, nil)
	var lbErr *LogbookError
	if !errors.As(err, &lbErr) || lbErr.Code != constants.ErrCodeImportCollision {
		t.Fatalf("Expected IMPORT_COLLISION, got %v", err)
	}
	if lbErr.Collisions != 1 {
		t.Errorf("Expected 1 collision, got %d", lbErr.Collisions)
	}

	// two-phase confirm: nothing persists until the caller decides
	records, _ := logbook.ListFlights(ctx, testOwner)
	if len(records) != 1 {
		t.Errorf("Expected unconfirmed import to persist nothing, got %d records", len(records))
	}
	if records[0].Aircraft != "Cessna 172" {
		t.Errorf("Expected existing record untouched, got %q", records[0].Aircraft)
	}
}

func TestImportService_OverwriteTrueReplaces(t *testing.T) {
	svc, logbook := newTestImportService(t)
	ctx := context.Background()

	saved, err := logbook.SaveFlight(ctx, testOwner, map[string]any{"aircraft": "Cessna 172", "durationHours": 2})
	if err != nil {
		t.Fatalf("SaveFlight failed: %v", err)
	}

	batch := []map[string]any{
		{"id": saved.ID, "aircraft": "Piper PA-28", "durationHours": 5},
	}

	result, err := svc.ImportFlights(ctx, testOwner, batch, boolPtr(true))
	if err != nil {
		t.Fatalf("ImportFlights failed: %v", err)
	}
	if result.ImportedCount != 1 {
		t.Errorf("Expected 1 imported, got %d", result.ImportedCount)
	}
	if result.Collisions != 1 {
		t.Errorf("Expected 1 collision reported, got %d", result.Collisions)
	}

	records, _ := logbook.ListFlights(ctx, testOwner)
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0].Aircraft != "Piper PA-28" || records[0].DurationHours != 5 {
		t.Errorf("Expected colliding record replaced, got %+v", records[0])
	}
}

func TestImportService_OverwriteFalseKeepsExisting(t *testing.T) {
	svc, logbook := newTestImportService(t)
	ctx := context.Background()

	saved, err := logbook.SaveFlight(ctx, testOwner, map[string]any{"aircraft": "Cessna 172", "durationHours": 2})
	if err != nil {
		t.Fatalf("SaveFlight failed: %v", err)
	}

	batch := []map[string]any{
		{"id": saved.ID, "aircraft": "Piper PA-28", "durationHours": 5},
		{"aircraft": "Diamond DA40", "durationHours": 1},
	}

	result, err := svc.ImportFlights(ctx, testOwner, batch, boolPtr(false))
	if err != nil {
		t.Fatalf("ImportFlights failed: %v", err)
	}
	if result.ImportedCount != 1 {
		t.Errorf("Expected only the non-colliding record imported, got %d", result.ImportedCount)
	}
	if result.TotalRecords != 2 {
		t.Errorf("Expected 2 total records, got %d", result.TotalRecords)
	}

	records, _ := logbook.ListFlights(ctx, testOwner)
	byAircraft := make(map[string]float64)
	for _, rec := range records {
		byAircraft[rec.Aircraft] = rec.DurationHours
	}
	if byAircraft["Cessna 172"] != 2 {
		t.Errorf("Expected existing record kept, got %v", byAircraft)
	}
	if byAircraft["Diamond DA40"] != 1 {
		t.Errorf("Expected new record appended, got %v", byAircraft)
	}
}

func TestImportService_NoCollisionIgnoresOverwrite(t *testing.T) {
	svc, logbook := newTestImportService(t)
	ctx := context.Background()

	batch := []map[string]any{
		{"aircraft": "Cessna 172", "durationHours": 1},
		{"aircraft": "Piper PA-28", "durationHours": 2},
	}

	result, err := svc.ImportFlights(ctx, testOwner, batch, nil)
	if err != nil {
		t.Fatalf("ImportFlights failed: %v", err)
	}
	if result.ImportedCount != 2 || result.Collisions != 0 {
		t.Errorf("Expected clean import of 2, got %+v", result)
	}

	// imported aircraft are registered implicitly
	aircraft, _ := logbook.ListAircraft(ctx, testOwner)
	if len(aircraft) != 2 {
		t.Errorf("Expected 2 registered aircraft, got %d", len(aircraft))
	}
}

func TestImportService_FailedBatchLeavesStoreUnchanged(t *testing.T) {
	db := setupTestDB(t)
	flights := repositories.NewFlightRepository(db)
	aircraft := repositories.NewAircraftRepository(db)
	cache := common.NewCacheService(300, 600)
	svc := NewImportService(flights, aircraft, cache, nil)
	logbook := NewLogbookService(flights, aircraft, cache, nil)
	ctx := context.Background()

	seed, err := logbook.SaveFlight(ctx, testOwner, map[string]any{"aircraft": "Cessna 172", "durationHours": 2})
	if err != nil {
		t.Fatalf("SaveFlight failed: %v", err)
	}

	// force the second batch insert to fail mid-transaction
	if err := db.Exec("CREATE UNIQUE INDEX idx_flights_owner_aircraft ON flights(owner_id, aircraft)").Error; err != nil {
		t.Fatalf("Failed to create index: %v", err)
	}

	batch := []map[string]any{
		{"aircraft": "Piper PA-28", "durationHours": 1},
		{"aircraft": "Piper PA-28", "durationHours": 3},
	}

	_, err = svc.ImportFlights(ctx, testOwner, batch, nil)
	var lbErr *LogbookError
	if !errors.As(err, &lbErr) || lbErr.Code != constants.ErrCodePersistence {
		t.Fatalf("Expected PERSISTENCE_ERROR, got %v", err)
	}

	// the whole batch must roll back, not just the failing record
	records, listErr := logbook.ListFlights(ctx, testOwner)
	if listErr != nil {
		t.Fatalf("ListFlights failed: %v", listErr)
	}
	if len(records) != 1 {
		t.Fatalf("Expected store unchanged after failed import, got %d records", len(records))
	}
	if records[0].ID != seed.ID {
		t.Errorf("Expected only the seeded record, got %+v", records[0])
	}
}

func TestImportService_NormalizesAliasedBatch(t *testing.T) {
	svc, logbook := newTestImportService(t)
	ctx := context.Background()

	batch := []map[string]any{
		{"havaAraci": "TB-20", "sure": "abc", "tarih": "2025-11-10"},
	}

	result, err := svc.ImportFlights(ctx, testOwner, batch, nil)
	if err != nil {
		t.Fatalf("ImportFlights failed: %v", err)
	}
	if result.ImportedCount != 1 {
		t.Fatalf("Expected 1 imported, got %d", result.ImportedCount)
	}

	records, _ := logbook.ListFlights(ctx, testOwner)
	if records[0].Aircraft != "TB-20" {
		t.Errorf("Expected alias resolution on import, got %q", records[0].Aircraft)
	}
	if records[0].DurationHours != 0 {
		t.Errorf("Expected invalid duration coerced to 0, got %v", records[0].DurationHours)
	}
}
