package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	gormModels "flighttrack/logbook/internal/models/gorm"
)

// ReminderRepository manages per-owner reminders.
type ReminderRepository struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) *ReminderRepository {
	return &ReminderRepository{db: db}
}

func (r *ReminderRepository) ListAll(ctx context.Context, ownerID string) ([]gormModels.Reminder, error) {
	var reminders []gormModels.Reminder

	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("remind_date, id").
		Find(&reminders).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch reminders: %w", err)
	}
	return reminders, nil
}

func (r *ReminderRepository) Upsert(ctx context.Context, row gormModels.Reminder) error {
	var existing gormModels.Reminder
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", row.OwnerID, row.ID).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return fmt.Errorf("failed to insert reminder: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check reminder: %w", err)
	}

	err = r.db.WithContext(ctx).
		Model(&gormModels.Reminder{}).
		Where("owner_id = ? AND id = ?", row.OwnerID, row.ID).
		Select("*").
		Omit("created_at", "owner_id", "id").
		Updates(row).Error
	if err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
	}
	return nil
}

func (r *ReminderRepository) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Delete(&gormModels.Reminder{})

	if result.Error != nil {
		return false, fmt.Errorf("failed to delete reminder: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// MarkSeen flips the seen flag for the given reminder ids.
func (r *ReminderRepository) MarkSeen(ctx context.Context, ownerID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).
		Model(&gormModels.Reminder{}).
		Where("owner_id = ? AND id IN ?", ownerID, ids).
		Update("seen", true).Error

	if err != nil {
		return fmt.Errorf("failed to mark reminders seen: %w", err)
	}
	return nil
}
