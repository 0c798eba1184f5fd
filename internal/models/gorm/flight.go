package gorm

import (
	"time"

	"flighttrack/logbook/internal/models/entities"
)

// Flight is the persisted flight row. Record ids are opaque strings chosen
// by the client or synthesized on import, so uniqueness is scoped to the
// owner via a composite primary key.
type Flight struct {
	ID            string    `gorm:"column:id;primaryKey"`
	OwnerID       string    `gorm:"column:owner_id;primaryKey;index"`
	Aircraft      string    `gorm:"column:aircraft"`
	Crew          string    `gorm:"column:crew"`
	DurationHours float64   `gorm:"column:duration_hours"`
	Departure     string    `gorm:"column:departure"`
	Arrival       string    `gorm:"column:arrival"`
	FlightDate    string    `gorm:"column:flight_date"`
	FlightType    string    `gorm:"column:flight_type"`
	FlightTime    string    `gorm:"column:flight_time"`
	NightVision   bool      `gorm:"column:night_vision"`
	Note          string    `gorm:"column:note"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Flight) TableName() string {
	return "flights"
}

// ToEntity converts the row to the canonical record shape.
func (f Flight) ToEntity() entities.FlightRecord {
	return entities.FlightRecord{
		ID:            f.ID,
		Aircraft:      f.Aircraft,
		Crew:          f.Crew,
		DurationHours: f.DurationHours,
		Departure:     f.Departure,
		Arrival:       f.Arrival,
		Date:          f.FlightDate,
		FlightType:    f.FlightType,
		FlightTime:    f.FlightTime,
		NightVision:   f.NightVision,
		Note:          f.Note,
	}
}

// FlightFromEntity builds a row for the given owner.
func FlightFromEntity(ownerID string, rec entities.FlightRecord) Flight {
	return Flight{
		ID:            rec.ID,
		OwnerID:       ownerID,
		Aircraft:      rec.Aircraft,
		Crew:          rec.Crew,
		DurationHours: rec.DurationHours,
		Departure:     rec.Departure,
		Arrival:       rec.Arrival,
		FlightDate:    rec.Date,
		FlightType:    rec.FlightType,
		FlightTime:    rec.FlightTime,
		NightVision:   rec.NightVision,
		Note:          rec.Note,
	}
}
