// Package availability computes which days and time slots remain bookable.
//
// Slot exclusivity is the source of truth: a slot label can be held by at most one
// appointment per date. The per-day occupancy count is a derived fast path that also
// marks a day full once MaxSlotsPerDay slot-units are booked, whichever appointments hold them.
package availability

import (
	"errors"
	"fmt"

	"home_service_booking/internal/models"
)

// Fixed daily slots.
const (
	SlotEarly = "16:00 - 18:00hs"
	SlotLate  = "18:00 - 20:00hs"

	SlotHours      = 2.0 // capacity hours per slot
	MaxSlotsPerDay = 2
)

var dailySlots = [...]string{SlotEarly, SlotLate}

var (
	ErrUnknownJob           = errors.New("unknown job type")
	ErrInsufficientCapacity = errors.New("selected time slots do not cover the required duration")
)

// Slots returns the fixed daily slot labels in chronological order.
func Slots() []string {
	out := make([]string, len(dailySlots))
	copy(out, dailySlots[:])
	return out
}

// IsSlot reports whether label is one of the daily slots.
func IsSlot(label string) bool {
	for _, s := range dailySlots {
		if s == label {
			return true
		}
	}
	return false
}

// Occupancy returns the number of slot-units booked on date.
func Occupancy(apps []models.Appointment, date string) int {
	n := 0
	for _, a := range apps {
		if a.Date == date {
			n += len(a.TimeSlots)
		}
	}
	return n
}

// TakenSlots returns the set of slot labels already held on date.
func TakenSlots(apps []models.Appointment, date string) map[string]struct{} {
	taken := make(map[string]struct{}, len(dailySlots))
	for _, a := range apps {
		if a.Date != date {
			continue
		}
		for _, s := range a.TimeSlots {
			taken[s] = struct{}{}
		}
	}
	return taken
}

// FreeSlots returns the slot labels not held by any appointment on date, in slot order.
func FreeSlots(apps []models.Appointment, date string) []string {
	taken := TakenSlots(apps, date)
	free := make([]string, 0, len(dailySlots))
	for _, s := range dailySlots {
		if _, ok := taken[s]; !ok {
			free = append(free, s)
		}
	}
	return free
}

// DayFull reports whether no further booking fits on date.
func DayFull(apps []models.Appointment, date string) bool {
	if Occupancy(apps, date) >= MaxSlotsPerDay {
		return true
	}
	return len(FreeSlots(apps, date)) == 0
}

// RequiredDuration is quantity × Σ duration(job), in hours.
func RequiredDuration(catalog map[string]models.JobType, jobs []string, quantity int) (float64, error) {
	var perUnit float64
	for _, id := range jobs {
		jt, ok := catalog[id]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownJob, id)
		}
		perUnit += jt.Duration
	}
	return float64(quantity) * perUnit, nil
}

// ProvidedCapacity is the number of hours covered by n slots.
func ProvidedCapacity(n int) float64 {
	return SlotHours * float64(n)
}

// CheckCapacity rejects a booking whose required hours exceed what the slots provide.
func CheckCapacity(required float64, slots int) error {
	if provided := ProvidedCapacity(slots); required > provided {
		return fmt.Errorf("%w: required %.1fh, selected %.1fh", ErrInsufficientCapacity, required, provided)
	}
	return nil
}
