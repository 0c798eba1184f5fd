package reconcile

import (
	"testing"

	"flighttrack/logbook/internal/models/entities"
)

func existingSet() []entities.FlightRecord {
	return []entities.FlightRecord{
		{ID: "1", Aircraft: "Cessna"},
	}
}

func TestReconcile_CollisionDeclined(t *testing.T) {
	incoming := []map[string]any{
		{"id": "1", "aircraft": "Piper"},
	}

	res := Reconcile(existingSet(), incoming, false)

	if res.ImportedCount != 0 {
		t.Errorf("expected importedCount 0, got %d", res.ImportedCount)
	}
	if len(res.Merged) != 1 {
		t.Fatalf("expected 1 merged record, got %d", len(res.Merged))
	}
	if res.Merged[0].Aircraft != "Cessna" {
		t.Errorf("declined overwrite must keep existing record, got %q", res.Merged[0].Aircraft)
	}
}

func TestReconcile_CollisionOverwrite(t *testing.T) {
	incoming := []map[string]any{
		{"id": "1", "aircraft": "Piper"},
	}

	res := Reconcile(existingSet(), incoming, true)

	if res.ImportedCount != 1 {
		t.Errorf("expected importedCount 1, got %d", res.ImportedCount)
	}
	if len(res.Merged) != 1 {
		t.Fatalf("expected 1 merged record, got %d", len(res.Merged))
	}
	if res.Merged[0].Aircraft != "Piper" {
		t.Errorf("confirmed overwrite must replace existing record, got %q", res.Merged[0].Aircraft)
	}
}

func TestReconcile_NewRecordsAppended(t *testing.T) {
	incoming := []map[string]any{
		{"id": "2", "aircraft": "Boeing 737"},
		{"id": "3", "aircraft": "Piper"},
	}

	res := Reconcile(existingSet(), incoming, false)

	if res.ImportedCount != 2 {
		t.Errorf("expected importedCount 2, got %d", res.ImportedCount)
	}
	if len(res.Merged) != 3 {
		t.Errorf("expected 3 merged records, got %d", len(res.Merged))
	}
}

func TestReconcile_IDUniqueness(t *testing.T) {
	incoming := []map[string]any{
		{"id": "1", "aircraft": "Piper"},
		{"id": "2", "aircraft": "Boeing"},
		{"id": "2", "aircraft": "Airbus"},
	}

	for _, overwrite := range []bool{true, false} {
		res := Reconcile(existingSet(), incoming, overwrite)
		seen := make(map[string]int)
		for _, rec := range res.Merged {
			seen[rec.ID]++
		}
		for id, n := range seen {
			if n != 1 {
				t.Errorf("overwrite=%v: id %q appears %d times", overwrite, id, n)
			}
		}
	}
}

func TestReconcile_BatchDuplicateLastWins(t *testing.T) {
	incoming := []map[string]any{
		{"id": "2", "aircraft": "Boeing"},
		{"id": "2", "aircraft": "Airbus"},
	}

	res := Reconcile(existingSet(), incoming, false)

	if res.ImportedCount != 1 {
		t.Errorf("duplicate batch ids should import once, got %d", res.ImportedCount)
	}
	var got string
	for _, rec := range res.Merged {
		if rec.ID == "2" {
			got = rec.Aircraft
		}
	}
	if got != "Airbus" {
		t.Errorf("last occurrence should win, got %q", got)
	}
}

func TestReconcile_EmptyBatch(t *testing.T) {
	res := Reconcile(existingSet(), nil, true)
	if res.ImportedCount != 0 {
		t.Errorf("empty batch should import nothing, got %d", res.ImportedCount)
	}
	if len(res.Merged) != 1 {
		t.Errorf("empty batch should leave the set unchanged, got %d records", len(res.Merged))
	}
}

func TestReconcile_IncomingNormalized(t *testing.T) {
	incoming := []map[string]any{
		{"id": "9", "hava": "Cessna 182", "sure": "abc"},
	}

	res := Reconcile(existingSet(), incoming, false)

	var imported *entities.FlightRecord
	for i := range res.Merged {
		if res.Merged[i].ID == "9" {
			imported = &res.Merged[i]
		}
	}
	if imported == nil {
		t.Fatal("expected record 9 in merged set")
	}
	if imported.Aircraft != "Cessna 182" {
		t.Errorf("alias not resolved, got %q", imported.Aircraft)
	}
	if imported.DurationHours != 0 {
		t.Errorf("invalid duration should degrade to 0, got %v", imported.DurationHours)
	}
}

func TestCollisionCount(t *testing.T) {
	existing := []entities.FlightRecord{{ID: "1"}, {ID: "2"}}
	incoming := []entities.FlightRecord{{ID: "2"}, {ID: "2"}, {ID: "3"}}

	if n := CollisionCount(existing, incoming); n != 1 {
		t.Errorf("expected 1 collision, got %d", n)
	}
}
