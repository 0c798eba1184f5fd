package gorm

import (
	"time"

	"flighttrack/logbook/internal/models/entities"
)

type Aircraft struct {
	ID        string    `gorm:"column:id;primaryKey"`
	OwnerID   string    `gorm:"column:owner_id;uniqueIndex:idx_owner_aircraft_name"`
	Name      string    `gorm:"column:name;uniqueIndex:idx_owner_aircraft_name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Aircraft) TableName() string {
	return "aircrafts"
}

func (a Aircraft) ToEntity() entities.Aircraft {
	return entities.Aircraft{ID: a.ID, Name: a.Name}
}
