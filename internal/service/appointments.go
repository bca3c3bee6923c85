package service

import (
	"context"
	"fmt"
	"sort"

	"home_service_booking/internal/availability"
	"home_service_booking/internal/models"
)

type AppointmentService struct {
	store documentStore
}

func newAppointmentService(store documentStore) *AppointmentService {
	return &AppointmentService{store: store}
}

// ListAppointments returns appointments sorted by date, optionally limited to one ISO week.
// Costs are derived from the live catalog, so they follow later price edits.
func (s *AppointmentService) ListAppointments(ctx context.Context, f AppointmentFilter) ([]AppointmentView, error) {
	doc, err := s.store.read(ctx)
	if err != nil {
		return nil, err
	}

	var from, to string
	if !f.Week.IsZero() {
		monday, sunday := availability.WeekBounds(f.Week)
		from, to = availability.FormatDate(monday), availability.FormatDate(sunday)
	}

	out := make([]AppointmentView, 0, len(doc.Appointments))
	for _, a := range doc.Appointments {
		// ISO dates compare correctly as strings
		if from != "" && (a.Date < from || a.Date > to) {
			continue
		}
		out = append(out, AppointmentView{
			Appointment: a,
			TotalCost:   totalCost(doc.Costs, a.Jobs, a.Quantity),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// UpdateStatus sets any status on any appointment; there are no transition rules.
func (s *AppointmentService) UpdateStatus(ctx context.Context, id int64, status models.Status) (models.Appointment, error) {
	if !status.Valid() {
		return models.Appointment{}, ErrInvalidStatus
	}
	var updated models.Appointment
	err := s.store.update(ctx, func(doc *models.Document) error {
		for i := range doc.Appointments {
			if doc.Appointments[i].ID == id {
				doc.Appointments[i].Status = status
				updated = doc.Appointments[i]
				return nil
			}
		}
		return fmt.Errorf("%w: %d", ErrAppointmentNotFound, id)
	})
	if err != nil {
		return models.Appointment{}, err
	}
	return updated, nil
}

// RainDay moves every pending appointment to the next weekday and saves them as one batch.
// It returns how many appointments moved; zero is not an error.
func (s *AppointmentService) RainDay(ctx context.Context) (int, error) {
	moved := 0
	err := s.store.update(ctx, func(doc *models.Document) error {
		for i := range doc.Appointments {
			a := &doc.Appointments[i]
			if a.Status != models.StatusPending {
				continue
			}
			day, err := a.Day()
			if err != nil {
				return fmt.Errorf("%w: appointment %d has date %q", ErrStorage, a.ID, a.Date)
			}
			a.Date = availability.FormatDate(availability.NextWeekday(day))
			moved++
		}
		if moved == 0 {
			return errNoChange
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return moved, nil
}
