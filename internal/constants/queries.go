package constants

const ListFlightsForExport = `
	SELECT id, aircraft, crew, duration_hours, departure,
	       arrival, flight_date, flight_type, flight_time, night_vision, note
	FROM flights
	WHERE owner_id = $1
	ORDER BY created_at, id;
`
