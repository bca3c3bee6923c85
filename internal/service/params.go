package service

import (
	"time"

	"home_service_booking/internal/models"
)

// ClientInfo is the CollectInfo step payload.
type ClientInfo struct {
	ClientName string
	Address    string
	Phone      string
	Jobs       []string
	Quantity   int
}

// Review is what the client sees at the Confirm step.
type Review struct {
	Draft         Draft   `json:"draft"`
	RequiredHours float64 `json:"required_hours"`
	ProvidedHours float64 `json:"provided_hours"`
	EstimatedCost int64   `json:"estimated_cost"`
	Fits          bool    `json:"fits"`
	Problem       string  `json:"problem,omitempty"`
}

// AppointmentFilter narrows the admin list. A zero Week lists everything;
// otherwise only the Monday-to-Sunday week containing Week is returned.
type AppointmentFilter struct {
	Week time.Time
}

// AppointmentView is an appointment plus its cost under the current catalog.
type AppointmentView struct {
	models.Appointment
	TotalCost int64 `json:"total_cost"`
}

// JobTypeView is a catalog entry with its id.
type JobTypeView struct {
	ID       string  `json:"id"`
	Text     string  `json:"text"`
	Duration float64 `json:"duration"`
	Cost     int64   `json:"cost"`
}

// totalCost is quantity × Σ cost(job) under catalog. Jobs missing from the catalog cost nothing.
func totalCost(catalog map[string]models.JobType, jobs []string, quantity int) int64 {
	var perUnit int64
	for _, id := range jobs {
		perUnit += catalog[id].Cost
	}
	return int64(quantity) * perUnit
}
