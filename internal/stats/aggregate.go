package stats

import (
	"time"

	"flighttrack/logbook/internal/classify"
	"flighttrack/logbook/internal/models/entities"
	"flighttrack/logbook/internal/normalize"
)

// PilotUnknown groups records whose crew field is empty.
const PilotUnknown = "unknown"

// Summary is the aggregation output consumed by the presentation layer.
// Sums are raw hour totals; formatting is the caller's concern.
type Summary struct {
	WeeklyHours  float64            `json:"weeklyHours"`
	MonthlyHours float64            `json:"monthlyHours"`
	TotalHours   float64            `json:"totalHours"`
	ByType       map[string]float64 `json:"byType"`
	ByTypeDay    map[string]float64 `json:"byTypeDay"`
	ByTypeNight  map[string]float64 `json:"byTypeNight"`
	ByPilot      map[string]float64 `json:"byPilot"`
}

// Aggregate folds a record set into time-windowed and grouped hour sums,
// relative to asOf. Records without a parseable date cannot be
// time-attributed and are excluded from the weekly, monthly and total
// scalars; they still count toward every grouped sum. Pure: identical
// inputs yield identical output.
func Aggregate(records []entities.FlightRecord, asOf time.Time) Summary {
	summary := Summary{
		ByType:      make(map[string]float64),
		ByTypeDay:   make(map[string]float64),
		ByTypeNight: make(map[string]float64),
		ByPilot:     make(map[string]float64),
	}

	weekStart := WeekStart(asOf)
	monthStart := MonthStart(asOf)

	for _, rec := range records {
		hours := rec.DurationHours

		if when, ok := normalize.ParseWhen(rec.Date); ok {
			withinAsOf := !when.After(asOf)
			summary.TotalHours += hours
			if withinAsOf && !when.Before(weekStart) {
				summary.WeeklyHours += hours
			}
			if withinAsOf && !when.Before(monthStart) {
				summary.MonthlyHours += hours
			}
		}

		c := classify.Flight(rec)
		summary.ByType[c.TypeBucket] += hours
		if c.IsNight {
			summary.ByTypeNight[c.TypeBucket] += hours
		} else {
			summary.ByTypeDay[c.TypeBucket] += hours
		}

		pilot := rec.Crew
		if pilot == "" {
			pilot = PilotUnknown
		}
		summary.ByPilot[pilot] += hours
	}

	return summary
}

// WeekStart returns Monday 00:00 of asOf's week, in asOf's location.
func WeekStart(asOf time.Time) time.Time {
	offset := (int(asOf.Weekday()) + 6) % 7
	year, month, day := asOf.AddDate(0, 0, -offset).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, asOf.Location())
}

// MonthStart returns the first day of asOf's month at 00:00.
func MonthStart(asOf time.Time) time.Time {
	year, month, _ := asOf.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, asOf.Location())
}
