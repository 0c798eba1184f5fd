package gorm

import (
	"time"

	"flighttrack/logbook/internal/models/entities"
)

type Reminder struct {
	ID         string    `gorm:"column:id;primaryKey"`
	OwnerID    string    `gorm:"column:owner_id;primaryKey;index"`
	Aircraft   string    `gorm:"column:aircraft"`
	Crew       string    `gorm:"column:crew"`
	RemindDate string    `gorm:"column:remind_date"`
	Note       string    `gorm:"column:note"`
	Seen       bool      `gorm:"column:seen;default:false"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Reminder) TableName() string {
	return "reminders"
}

func (r Reminder) ToEntity() entities.Reminder {
	return entities.Reminder{
		ID:       r.ID,
		Aircraft: r.Aircraft,
		Crew:     r.Crew,
		Date:     r.RemindDate,
		Note:     r.Note,
		Seen:     r.Seen,
	}
}

func ReminderFromEntity(ownerID string, rem entities.Reminder) Reminder {
	return Reminder{
		ID:         rem.ID,
		OwnerID:    ownerID,
		Aircraft:   rem.Aircraft,
		Crew:       rem.Crew,
		RemindDate: rem.Date,
		Note:       rem.Note,
		Seen:       rem.Seen,
	}
}
