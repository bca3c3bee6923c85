package service

import (
	"context"
	"time"

	"home_service_booking/internal/availability"
)

type AvailabilityService struct {
	store documentStore
	opts  Options
}

func newAvailabilityService(store documentStore, opts Options) *AvailabilityService {
	return &AvailabilityService{store: store, opts: opts}
}

// UpcomingDays lists n weekdays from the given date. A zero from means today;
// n <= 0 means the configured horizon.
func (s *AvailabilityService) UpcomingDays(ctx context.Context, from time.Time, n int) ([]availability.Day, error) {
	if from.IsZero() {
		from = s.opts.today()
	}
	if n <= 0 {
		n = s.opts.HorizonDays
	}
	doc, err := s.store.read(ctx)
	if err != nil {
		return nil, err
	}
	return availability.UpcomingDays(doc.Appointments, from, n), nil
}

// FreeSlots returns the free slot labels on date. Weekends and full days have none.
func (s *AvailabilityService) FreeSlots(ctx context.Context, date string) ([]string, error) {
	day, err := availability.ParseDate(date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	doc, err := s.store.read(ctx)
	if err != nil {
		return nil, err
	}
	if !availability.IsBookable(doc.Appointments, day) {
		return []string{}, nil
	}
	return availability.FreeSlots(doc.Appointments, date), nil
}
