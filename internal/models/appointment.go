package models

import "time"

// DateLayout is the ISO calendar date format used for Appointment.Date.
const DateLayout = "2006-01-02"

// Status of an appointment.
type Status string

const (
	StatusPending      Status = "pending"
	StatusCompleted    Status = "completed"
	StatusNotCompleted Status = "not_completed"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusNotCompleted:
		return true
	}
	return false
}

// Appointment is a confirmed booking.
type Appointment struct {
	ID            int64    `json:"id"`
	Status        Status   `json:"status"`
	ClientName    string   `json:"client_name"`
	Address       string   `json:"address"`
	Phone         string   `json:"phone"`
	Date          string   `json:"date"` // YYYY-MM-DD
	Quantity      int      `json:"quantity"`
	Jobs          []string `json:"jobs"`
	TimeSlots     []string `json:"time_slots"`
	TotalDuration float64  `json:"total_duration"` // hours, fixed at creation
}

// Day parses Date. Callers should treat a parse error as a corrupt record.
func (a Appointment) Day() (time.Time, error) {
	return time.Parse(DateLayout, a.Date)
}
