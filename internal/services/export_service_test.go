package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"flighttrack/logbook/internal/common"
	"flighttrack/logbook/internal/db/repositories"
	"flighttrack/logbook/internal/models/entities"
)

func newTestExportService(t *testing.T) (*ExportService, *LogbookService, *ReminderService) {
	db := setupTestDB(t)
	flights := repositories.NewFlightRepository(db)
	aircraft := repositories.NewAircraftRepository(db)
	reminders := repositories.NewReminderRepository(db)
	cache := common.NewCacheService(300, 600)
	return NewExportService(flights, aircraft, reminders, nil),
		NewLogbookService(flights, aircraft, cache, nil),
		NewReminderService(reminders, aircraft, cache)
}

func TestExportService_WriteCSV(t *testing.T) {
	svc, logbook, _ := newTestExportService(t)
	ctx := context.Background()

	if _, err := logbook.SaveFlight(ctx, testOwner, map[string]any{
		"aircraft": "C172", "crew": "Ali", "durationHours": 2.5, "date": "2025-11-10",
	}); err != nil {
		t.Fatalf("SaveFlight failed: %v", err)
	}

	var buf bytes.Buffer
	if err := svc.WriteCSV(ctx, testOwner, &buf); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected header plus 1 row, got %d rows", len(rows))
	}
	if rows[0][0] != "id" || rows[0][3] != "durationHours" {
		t.Errorf("Unexpected header: %v", rows[0])
	}
	if rows[1][1] != "C172" || rows[1][3] != "2.5" {
		t.Errorf("Unexpected row: %v", rows[1])
	}
}

func TestExportService_WriteXLSX(t *testing.T) {
	svc, logbook, _ := newTestExportService(t)
	ctx := context.Background()

	if _, err := logbook.SaveFlight(ctx, testOwner, map[string]any{"aircraft": "C172", "durationHours": 1}); err != nil {
		t.Fatalf("SaveFlight failed: %v", err)
	}

	var buf bytes.Buffer
	if err := svc.WriteXLSX(ctx, testOwner, &buf); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Expected a non-empty workbook")
	}
}

func TestExportService_Snapshot(t *testing.T) {
	svc, logbook, reminders := newTestExportService(t)
	ctx := context.Background()

	if _, err := logbook.SaveFlight(ctx, testOwner, map[string]any{"aircraft": "C172", "durationHours": 1}); err != nil {
		t.Fatalf("SaveFlight failed: %v", err)
	}
	if _, err := reminders.SaveReminder(ctx, testOwner, entities.Reminder{Aircraft: "PA-28", Date: "2025-12-01"}); err != nil {
		t.Fatalf("SaveReminder failed: %v", err)
	}

	snap, err := svc.Snapshot(ctx, testOwner)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if len(snap.Flights) != 1 {
		t.Errorf("Expected 1 flight, got %d", len(snap.Flights))
	}
	// C172 from the flight plus PA-28 from the reminder
	if len(snap.Aircrafts) != 2 {
		t.Errorf("Expected 2 aircraft, got %d", len(snap.Aircrafts))
	}
	if len(snap.Reminders) != 1 {
		t.Errorf("Expected 1 reminder, got %d", len(snap.Reminders))
	}
}

func TestExportService_FlightsEmptyOwner(t *testing.T) {
	svc, _, _ := newTestExportService(t)

	if _, err := svc.Flights(context.Background(), ""); err == nil {
		t.Error("Expected error for empty owner")
	}
}
