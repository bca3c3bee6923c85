package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"home_service_booking/internal/availability"
	"home_service_booking/internal/repository"
	"home_service_booking/internal/service"
)

// scriptedPrompter answers each prompt from a queue.
type scriptedPrompter struct {
	infos    []service.ClientInfo
	days     []string
	slots    [][]string
	actions  []reviewAction
	problems []error
	reviews  []service.Review
}

func (s *scriptedPrompter) ClientInfo(jobs []service.JobTypeView, prev service.Draft) (service.ClientInfo, error) {
	if len(s.infos) == 0 {
		return service.ClientInfo{}, errBookingCancelled
	}
	info := s.infos[0]
	s.infos = s.infos[1:]
	return info, nil
}

func (s *scriptedPrompter) Day(days []availability.Day) (string, error) {
	if len(s.days) == 0 {
		return "", errBookingCancelled
	}
	d := s.days[0]
	s.days = s.days[1:]
	return d, nil
}

func (s *scriptedPrompter) Slots(free []string) ([]string, error) {
	if len(s.slots) == 0 {
		return nil, errBookingCancelled
	}
	sl := s.slots[0]
	s.slots = s.slots[1:]
	return sl, nil
}

func (s *scriptedPrompter) Review(r service.Review) (reviewAction, error) {
	s.reviews = append(s.reviews, r)
	if len(s.actions) == 0 {
		return 0, errBookingCancelled
	}
	a := s.actions[0]
	s.actions = s.actions[1:]
	return a, nil
}

func (s *scriptedPrompter) Problem(err error) { s.problems = append(s.problems, err) }

// thursday is 2026-10-15; 2026-10-16 is a Friday and 2026-10-17 a Saturday.
var thursday = time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

func newFileService(t *testing.T) *service.Service {
	t.Helper()
	store := repository.NewJSONFileStore(filepath.Join(t.TempDir(), "data.json"))
	return service.NewService(repository.NewRepository(store), service.Options{
		Location: time.UTC,
		Now:      func() time.Time { return thursday },
	})
}

var ana = service.ClientInfo{ClientName: "Ana", Address: "Calle 1", Phone: "555", Jobs: []string{"C"}, Quantity: 1}

func TestRunBooking_RetriesAfterValidationAndBooks(t *testing.T) {
	svc := newFileService(t)
	p := &scriptedPrompter{
		infos:   []service.ClientInfo{{ClientName: "Ana"}, ana},
		days:    []string{"2026-10-17", backChoice, "2026-10-16"},
		slots:   [][]string{{availability.SlotLate}},
		actions: []reviewAction{actionConfirm},
	}
	// back from the day list re-asks client info
	p.infos = append(p.infos, ana)

	booked, err := runBooking(context.Background(), svc, svc, p)
	if err != nil {
		t.Fatalf("runBooking: %v", err)
	}
	if booked.Date != "2026-10-16" || booked.TimeSlots[0] != availability.SlotLate {
		t.Fatalf("unexpected appointment: %+v", booked)
	}
	if len(p.problems) != 2 {
		t.Fatalf("expected 2 problems (missing info, weekend), got %v", p.problems)
	}
	if !errors.Is(p.problems[0], service.ErrMissingClientInfo) || !errors.Is(p.problems[1], service.ErrDayUnavailable) {
		t.Fatalf("unexpected problems: %v", p.problems)
	}
	if len(p.reviews) != 1 || p.reviews[0].EstimatedCost != 55000 {
		t.Fatalf("unexpected reviews: %+v", p.reviews)
	}
}

func TestRunBooking_ChangeSlotsFromReview(t *testing.T) {
	svc := newFileService(t)
	p := &scriptedPrompter{
		infos:   []service.ClientInfo{{ClientName: "Bo", Address: "x", Phone: "1", Jobs: []string{"A"}, Quantity: 1}},
		days:    []string{"2026-10-19"},
		slots:   [][]string{{availability.SlotEarly}, {availability.SlotEarly, availability.SlotLate}},
		actions: []reviewAction{actionBack, actionConfirm},
	}

	booked, err := runBooking(context.Background(), svc, svc, p)
	if err != nil {
		t.Fatalf("runBooking: %v", err)
	}
	if len(booked.TimeSlots) != 2 {
		t.Fatalf("expected both slots after changing, got %v", booked.TimeSlots)
	}
	if !p.reviews[0].Fits {
		t.Fatalf("2h job in one slot should fit: %+v", p.reviews[0])
	}
}

func TestRunBooking_CancelStopsWithoutWriting(t *testing.T) {
	svc := newFileService(t)
	p := &scriptedPrompter{infos: []service.ClientInfo{ana}}

	if _, err := runBooking(context.Background(), svc, svc, p); !errors.Is(err, errBookingCancelled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
	apps, err := svc.ListAppointments(context.Background(), service.AppointmentFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(apps) != 0 {
		t.Fatalf("nothing should be booked, got %d", len(apps))
	}
}
