package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	gormModels "flighttrack/logbook/internal/models/gorm"
)

// FlightRepository handles flight table operations using GORM. All
// operations are scoped to one owner; upsert is keyed by record id.
type FlightRepository struct {
	db *gorm.DB
}

func NewFlightRepository(db *gorm.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

// ListAll returns every flight row for the owner in insertion order.
func (r *FlightRepository) ListAll(ctx context.Context, ownerID string) ([]gormModels.Flight, error) {
	var flights []gormModels.Flight

	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at, id").
		Find(&flights).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch flights: %w", err)
	}
	return flights, nil
}

// Get retrieves one flight by id, or nil when absent.
func (r *FlightRepository) Get(ctx context.Context, ownerID, id string) (*gormModels.Flight, error) {
	var flight gormModels.Flight

	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&flight).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch flight: %w", err)
	}
	return &flight, nil
}

// Upsert replaces the row with the same id or appends a new one.
func (r *FlightRepository) Upsert(ctx context.Context, row gormModels.Flight) error {
	return upsertFlight(r.db.WithContext(ctx), row)
}

// UpsertAll applies a batch of rows atomically: a failure on any row
// rolls back the whole batch.
func (r *FlightRepository) UpsertAll(ctx context.Context, rows []gormModels.Flight) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			if err := upsertFlight(tx, row); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsertFlight(tx *gorm.DB, row gormModels.Flight) error {
	var existing gormModels.Flight
	err := tx.Where("owner_id = ? AND id = ?", row.OwnerID, row.ID).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to insert flight: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check flight: %w", err)
	}

	err = tx.Model(&gormModels.Flight{}).
		Where("owner_id = ? AND id = ?", row.OwnerID, row.ID).
		Select("*").
		Omit("created_at", "owner_id", "id").
		Updates(row).Error
	if err != nil {
		return fmt.Errorf("failed to update flight: %w", err)
	}
	return nil
}

// Delete removes one flight. Returns false when no row matched.
func (r *FlightRepository) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Delete(&gormModels.Flight{})

	if result.Error != nil {
		return false, fmt.Errorf("failed to delete flight: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// DeleteAll clears the owner's flight records.
func (r *FlightRepository) DeleteAll(ctx context.Context, ownerID string) error {
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&gormModels.Flight{}).Error

	if err != nil {
		return fmt.Errorf("failed to clear flights: %w", err)
	}
	return nil
}
