package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	gormModels "flighttrack/logbook/internal/models/gorm"
)

// AircraftRepository manages the per-owner saved aircraft list.
type AircraftRepository struct {
	db *gorm.DB
}

func NewAircraftRepository(db *gorm.DB) *AircraftRepository {
	return &AircraftRepository{db: db}
}

func (r *AircraftRepository) ListAll(ctx context.Context, ownerID string) ([]gormModels.Aircraft, error) {
	var aircrafts []gormModels.Aircraft

	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at, name").
		Find(&aircrafts).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch aircraft list: %w", err)
	}
	return aircrafts, nil
}

// Add saves an aircraft name if it is not already in the owner's list.
// Blank names are ignored.
func (r *AircraftRepository) Add(ctx context.Context, ownerID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	var existing gormModels.Aircraft
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND name = ?", ownerID, name).
		First(&existing).Error

	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check aircraft: %w", err)
	}

	row := gormModels.Aircraft{
		ID:      uuid.NewString(),
		OwnerID: ownerID,
		Name:    name,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to insert aircraft: %w", err)
	}
	return nil
}

func (r *AircraftRepository) Delete(ctx context.Context, ownerID, name string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND name = ?", ownerID, name).
		Delete(&gormModels.Aircraft{})

	if result.Error != nil {
		return false, fmt.Errorf("failed to delete aircraft: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
