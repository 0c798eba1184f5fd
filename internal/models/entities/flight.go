package entities

// FlightRecord is the canonical logbook entry. Every field is already
// normalized: DurationHours is a finite non-negative number, Date holds an
// ISO-8601 string when the input was parseable and the raw input otherwise.
type FlightRecord struct {
	ID            string  `json:"id" db:"id"`
	Aircraft      string  `json:"aircraft" db:"aircraft"`
	Crew          string  `json:"crew" db:"crew"`
	DurationHours float64 `json:"durationHours" db:"duration_hours"`
	Departure     string  `json:"departure" db:"departure"`
	Arrival       string  `json:"arrival" db:"arrival"`
	Date          string  `json:"date" db:"flight_date"`
	FlightType    string  `json:"flightType" db:"flight_type"`
	FlightTime    string  `json:"flightTime" db:"flight_time"`
	NightVision   bool    `json:"nightVision" db:"night_vision"`
	Note          string  `json:"note,omitempty" db:"note"`
}

// Aircraft is a saved aircraft name. Names are unique per owner and live
// independently of flight records.
type Aircraft struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
