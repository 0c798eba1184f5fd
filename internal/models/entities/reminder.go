package entities

// Reminder is an upcoming-flight note. Seen flips to true once its banner
// has been acknowledged; reminders are never auto-deleted.
type Reminder struct {
	ID       string `json:"id"`
	Aircraft string `json:"aircraft"`
	Crew     string `json:"crew"`
	Date     string `json:"date"`
	Note     string `json:"note,omitempty"`
	Seen     bool   `json:"seen"`
}
