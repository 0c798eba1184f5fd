package services

import (
	"context"
	"strings"
	"time"

	"flighttrack/logbook/internal/common"
	"flighttrack/logbook/internal/constants"
	"flighttrack/logbook/internal/db/repositories"
	"flighttrack/logbook/internal/logging"
	"flighttrack/logbook/internal/models/entities"
	gormModels "flighttrack/logbook/internal/models/gorm"
	"flighttrack/logbook/internal/normalize"
)

// ReminderService manages upcoming-flight reminders. A reminder whose
// date lands on tomorrow (local calendar day) and has not been seen is
// surfaced by Upcoming; acknowledging it flips the seen flag without
// deleting the reminder.
type ReminderService struct {
	reminders *repositories.ReminderRepository
	aircraft  *repositories.AircraftRepository
	cache     common.CacheInterface
}

func NewReminderService(reminders *repositories.ReminderRepository, aircraft *repositories.AircraftRepository, cache common.CacheInterface) *ReminderService {
	return &ReminderService{reminders: reminders, aircraft: aircraft, cache: cache}
}

func (s *ReminderService) ListReminders(ctx context.Context, ownerID string) ([]entities.Reminder, error) {
	if ownerID == "" {
		return nil, NewLogbookError(constants.ErrCodeUnavailable, nil)
	}
	rows, err := s.reminders.ListAll(ctx, ownerID)
	if err != nil {
		return nil, NewLogbookError(constants.ErrCodePersistence, err)
	}
	out := make([]entities.Reminder, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToEntity())
	}
	return out, nil
}

// SaveReminder inserts or replaces a reminder. The date is mandatory and
// is canonicalized the same way flight dates are; an aircraft named on
// the reminder is registered implicitly.
func (s *ReminderService) SaveReminder(ctx context.Context, ownerID string, rem entities.Reminder) (*entities.Reminder, error) {
	if ownerID == "" {
		return nil, NewLogbookError(constants.ErrCodeUnavailable, nil)
	}
	if strings.TrimSpace(rem.Date) == "" {
		return nil, NewLogbookError(constants.ErrCodeReminderDateMissing, nil)
	}

	rem.Date = normalize.CanonicalDate(rem.Date)
	if rem.ID == "" {
		rem.ID = normalize.NewID()
	}

	if err := s.reminders.Upsert(ctx, gormModels.ReminderFromEntity(ownerID, rem)); err != nil {
		return nil, NewLogbookError(constants.ErrCodePersistence, err)
	}
	if rem.Aircraft != "" {
		if err := s.aircraft.Add(ctx, ownerID, rem.Aircraft); err != nil {
			logging.Warn("Failed to register reminder aircraft", "owner_id", ownerID, "error", err.Error())
		}
	}
	s.invalidateUpcoming(ownerID)

	logging.Info("Reminder saved", "owner_id", ownerID, "reminder_id", rem.ID)
	return &rem, nil
}

func (s *ReminderService) DeleteReminder(ctx context.Context, ownerID, id string) error {
	if ownerID == "" {
		return NewLogbookError(constants.ErrCodeUnavailable, nil)
	}
	deleted, err := s.reminders.Delete(ctx, ownerID, id)
	if err != nil {
		return NewLogbookError(constants.ErrCodePersistence, err)
	}
	if !deleted {
		return NewLogbookError(constants.ErrCodeNotFound, nil)
	}
	s.invalidateUpcoming(ownerID)
	return nil
}

// Upcoming returns unseen reminders due tomorrow relative to now, in the
// local calendar. Reminders with unparseable dates never come due. The due
// set is cached briefly per owner; any reminder write invalidates it.
func (s *ReminderService) Upcoming(ctx context.Context, ownerID string, now time.Time) ([]entities.Reminder, error) {
	if ownerID == "" {
		return nil, NewLogbookError(constants.ErrCodeUnavailable, nil)
	}

	cacheKey := string(constants.CachePrefixReminders) + ownerID
	if s.cache != nil {
		var due []entities.Reminder
		if s.cache.GetJSON(cacheKey, &due) {
			return due, nil
		}
	}

	rows, err := s.reminders.ListAll(ctx, ownerID)
	if err != nil {
		return nil, NewLogbookError(constants.ErrCodePersistence, err)
	}

	tomorrow := now.AddDate(0, 0, 1)
	ty, tm, td := tomorrow.Date()

	due := make([]entities.Reminder, 0)
	for _, row := range rows {
		if row.Seen {
			continue
		}
		when, ok := normalize.ParseWhen(row.RemindDate)
		if !ok {
			continue
		}
		y, m, d := when.In(now.Location()).Date()
		if y == ty && m == tm && d == td {
			due = append(due, row.ToEntity())
		}
	}

	if s.cache != nil {
		s.cache.Set(cacheKey, due, time.Minute)
	}
	return due, nil
}

// Acknowledge marks the given reminders as seen so the due banner stops
// surfacing them.
func (s *ReminderService) Acknowledge(ctx context.Context, ownerID string, ids []string) error {
	if ownerID == "" {
		return NewLogbookError(constants.ErrCodeUnavailable, nil)
	}
	if len(ids) == 0 {
		return nil
	}
	if err := s.reminders.MarkSeen(ctx, ownerID, ids); err != nil {
		return NewLogbookError(constants.ErrCodePersistence, err)
	}
	s.invalidateUpcoming(ownerID)
	logging.Info("Reminders acknowledged", "owner_id", ownerID, "count", len(ids))
	return nil
}

func (s *ReminderService) invalidateUpcoming(ownerID string) {
	if s.cache != nil {
		s.cache.Delete(string(constants.CachePrefixReminders) + ownerID)
	}
}
