package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"flighttrack/logbook/internal/common"
	"flighttrack/logbook/internal/constants"
	"flighttrack/logbook/internal/db/repositories"
	gormModels "flighttrack/logbook/internal/models/gorm"
)

const testOwner = "owner-1"

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// each sqlite :memory: connection is its own database, so the pool
	// must stay at one connection for concurrent reads to see the data
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&gormModels.Flight{}, &gormModels.Aircraft{}, &gormModels.Reminder{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func newTestLogbookService(t *testing.T) (*LogbookService, *gorm.DB) {
	db := setupTestDB(t)
	flights := repositories.NewFlightRepository(db)
	aircraft := repositories.NewAircraftRepository(db)
	cache := common.NewCacheService(300, 600)
	return NewLogbookService(flights, aircraft, cache, nil), db
}

func TestLogbookService_SaveAndList(t *testing.T) {
	svc, _ := newTestLogbookService(t)
	ctx := context.Background()

	raw := map[string]any{
		"havaAraci": "Cessna 172",
		"pilotlar":  "Ali",
		"sure":      "2.5",
		"kalkis":    "IST",
		"inis":      "ANK",
		"tarih":     "2025-11-10",
	}

	saved, err := svc.SaveFlight(ctx, testOwner, raw)
	if err != nil {
		t.Fatalf("SaveFlight failed: %v", err)
	}
	if saved.ID == "" {
		t.Error("Expected a synthesized id")
	}
	if saved.Aircraft != "Cessna 172" {
		t.Errorf("Expected alias resolution for aircraft, got %q", saved.Aircraft)
	}
	if saved.DurationHours != 2.5 {
		t.Errorf("Expected duration 2.5, got %v", saved.DurationHours)
	}

	records, err := svc.ListFlights(ctx, testOwner)
	if err != nil {
		t.Fatalf("ListFlights failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0].ID != saved.ID {
		t.Errorf("Expected id %q, got %q", saved.ID, records[0].ID)
	}
}

func TestLogbookService_SaveRegistersAircraft(t *testing.T) {
	svc, _ := newTestLogbookService(t)
	ctx := context.Background()

	_, err := svc.SaveFlight(ctx, testOwner, map[string]any{"aircraft": "Piper PA-28", "durationHours": 1})
	if err != nil {
		t.Fatalf("SaveFlight failed: %v", err)
	}

	list, err := svc.ListAircraft(ctx, testOwner)
	if err != nil {
		t.Fatalf("ListAircraft failed: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Piper PA-28" {
		t.Errorf("Expected implicit aircraft registration, got %+v", list)
	}

	// saving again must not duplicate the aircraft
	if _, err := svc.SaveFlight(ctx, testOwner, map[string]any{"aircraft": "Piper PA-28", "durationHours": 2}); err != nil {
		t.Fatalf("SaveFlight failed: %v", err)
	}
	list, _ = svc.ListAircraft(ctx, testOwner)
	if len(list) != 1 {
		t.Errorf("Expected 1 aircraft after repeat save, got %d", len(list))
	}
}

func TestLogbookService_UpsertReplacesById(t *testing.T) {
	svc, _ := newTestLogbookService(t)
	ctx := context.Background()

	saved, err := svc.SaveFlight(ctx, testOwner, map[string]any{"aircraft": "Cessna 182", "durationHours": 1})
	if err != nil {
		t.Fatalf("SaveFlight failed: %v", err)
	}

	updated, err := svc.SaveFlight(ctx, testOwner, map[string]any{"id": saved.ID, "aircraft": "Cessna 182", "durationHours": 3})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.ID != saved.ID {
		t.Errorf("Expected same id, got %q", updated.ID)
	}

	records, _ := svc.ListFlights(ctx, testOwner)
	if len(records) != 1 {
		t.Fatalf("Expected 1 record after update, got %d", len(records))
	}
	if records[0].DurationHours != 3 {
		t.Errorf("Expected duration 3 after update, got %v", records[0].DurationHours)
	}
}

func TestLogbookService_DeleteMissingFlight(t *testing.T) {
	svc, _ := newTestLogbookService(t)

	err := svc.DeleteFlight(context.Background(), testOwner, "nope")
	var lbErr *LogbookError
	if !errors.As(err, &lbErr) || lbErr.Code != constants.ErrCodeNotFound {
		t.Errorf("Expected RECORD_NOT_FOUND, got %v", err)
	}
}

func TestLogbookService_ClearFlights(t *testing.T) {
	svc, _ := newTestLogbookService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.SaveFlight(ctx, testOwner, map[string]any{"aircraft": "C172", "durationHours": 1}); err != nil {
			t.Fatalf("SaveFlight failed: %v", err)
		}
	}

	if err := svc.ClearFlights(ctx, testOwner); err != nil {
		t.Fatalf("ClearFlights failed: %v", err)
	}
	records, _ := svc.ListFlights(ctx, testOwner)
	if len(records) != 0 {
		t.Errorf("Expected empty set after clear, got %d", len(records))
	}
}

func TestLogbookService_OwnerIsolation(t *testing.T) {
	svc, _ := newTestLogbookService(t)
	ctx := context.Background()

	if _, err := svc.SaveFlight(ctx, "owner-a", map[string]any{"aircraft": "A", "durationHours": 1}); err != nil {
		t.Fatalf("SaveFlight failed: %v", err)
	}

	records, err := svc.ListFlights(ctx, "owner-b")
	if err != nil {
		t.Fatalf("ListFlights failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected owner-b to see no records, got %d", len(records))
	}
}

func TestLogbookService_EmptyOwnerRejected(t *testing.T) {
	svc, _ := newTestLogbookService(t)

	_, err := svc.ListFlights(context.Background(), "")
	var lbErr *LogbookError
	if !errors.As(err, &lbErr) || lbErr.Code != constants.ErrCodeUnavailable {
		t.Errorf("Expected STORE_UNAVAILABLE, got %v", err)
	}
}

func TestLogbookService_SeedDemoFlights(t *testing.T) {
	svc, _ := newTestLogbookService(t)
	ctx := context.Background()

	seeded, err := svc.SeedDemoFlights(ctx, testOwner)
	if err != nil {
		t.Fatalf("SeedDemoFlights failed: %v", err)
	}
	if len(seeded) != 2 {
		t.Fatalf("Expected 2 demo flights, got %d", len(seeded))
	}

	aircraft, _ := svc.ListAircraft(ctx, testOwner)
	if len(aircraft) != 2 {
		t.Errorf("Expected 2 demo aircraft, got %d", len(aircraft))
	}
}
