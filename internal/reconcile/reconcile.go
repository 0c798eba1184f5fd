package reconcile

import (
	"flighttrack/logbook/internal/models/entities"
	"flighttrack/logbook/internal/normalize"
)

// Result is the outcome of merging an import batch into an existing set.
type Result struct {
	// Merged is the full record set after the merge, keyed by id:
	// existing records in their original order (replaced in place where
	// overwritten), then new records in batch order.
	Merged []entities.FlightRecord

	// Applied holds the incoming records that were actually persisted,
	// either as replacements or as new entries.
	Applied []entities.FlightRecord

	// ImportedCount is len(Applied).
	ImportedCount int
}

// Reconcile merges a raw import batch into an existing record set. Every
// incoming element is normalized first. Duplicate ids within the batch
// collapse to the last occurrence. Records colliding with an existing id
// replace it when overwrite is true and are dropped otherwise; the merged
// set never contains two records with the same id.
func Reconcile(existing []entities.FlightRecord, incoming []map[string]any, overwrite bool) Result {
	return Merge(existing, normalize.Batch(incoming), overwrite)
}

// Merge is Reconcile over an already-normalized batch.
func Merge(existing, incoming []entities.FlightRecord, overwrite bool) Result {
	incoming = dedupeBatch(incoming)

	existingIdx := make(map[string]int, len(existing))
	for i, rec := range existing {
		existingIdx[rec.ID] = i
	}

	merged := make([]entities.FlightRecord, len(existing))
	copy(merged, existing)

	var applied []entities.FlightRecord
	for _, rec := range incoming {
		if i, collides := existingIdx[rec.ID]; collides {
			if overwrite {
				merged[i] = rec
				applied = append(applied, rec)
			}
			continue
		}
		merged = append(merged, rec)
		applied = append(applied, rec)
	}

	return Result{
		Merged:        merged,
		Applied:       applied,
		ImportedCount: len(applied),
	}
}

// CollisionCount reports how many records of a normalized batch collide
// with ids already in the existing set. Batch-internal duplicates of the
// same colliding id count once.
func CollisionCount(existing, incoming []entities.FlightRecord) int {
	existingIDs := make(map[string]bool, len(existing))
	for _, rec := range existing {
		existingIDs[rec.ID] = true
	}
	seen := make(map[string]bool)
	count := 0
	for _, rec := range incoming {
		if existingIDs[rec.ID] && !seen[rec.ID] {
			seen[rec.ID] = true
			count++
		}
	}
	return count
}

// dedupeBatch collapses duplicate ids within one batch, last occurrence
// wins, preserving the position of the first occurrence.
func dedupeBatch(incoming []entities.FlightRecord) []entities.FlightRecord {
	idx := make(map[string]int, len(incoming))
	out := make([]entities.FlightRecord, 0, len(incoming))
	for _, rec := range incoming {
		if i, dup := idx[rec.ID]; dup {
			out[i] = rec
			continue
		}
		idx[rec.ID] = len(out)
		out = append(out, rec)
	}
	return out
}
