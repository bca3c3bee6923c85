package availability

import (
	"time"

	"home_service_booking/internal/models"
)

// Day describes one bookable-or-not calendar day.
type Day struct {
	Date      string   `json:"date"`
	Weekday   string   `json:"weekday"`
	Occupancy int      `json:"occupancy"`
	Full      bool     `json:"full"`
	FreeSlots []string `json:"free_slots"`
}

// DateOf truncates t to midnight in its own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(models.DateLayout)
}

// ParseDate parses a YYYY-MM-DD date at UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(models.DateLayout, s)
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsBookable reports whether a new appointment may still be placed on day.
func IsBookable(apps []models.Appointment, day time.Time) bool {
	if IsWeekend(day) {
		return false
	}
	return !DayFull(apps, FormatDate(day))
}

// UpcomingDays lists the next n weekdays starting at from (inclusive) with their occupancy.
func UpcomingDays(apps []models.Appointment, from time.Time, n int) []Day {
	if n <= 0 {
		return nil
	}
	days := make([]Day, 0, n)
	for d := DateOf(from); len(days) < n; d = d.AddDate(0, 0, 1) {
		if IsWeekend(d) {
			continue
		}
		date := FormatDate(d)
		days = append(days, Day{
			Date:      date,
			Weekday:   d.Weekday().String(),
			Occupancy: Occupancy(apps, date),
			Full:      DayFull(apps, date),
			FreeSlots: FreeSlots(apps, date),
		})
	}
	return days
}

// NextWeekday advances t by one day and keeps advancing past Saturday and Sunday.
func NextWeekday(t time.Time) time.Time {
	next := t.AddDate(0, 0, 1)
	for IsWeekend(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// WeekBounds returns the Monday and Sunday of the ISO week containing ref.
func WeekBounds(ref time.Time) (time.Time, time.Time) {
	day := DateOf(ref)
	offset := (int(day.Weekday()) + 6) % 7 // days since Monday
	monday := day.AddDate(0, 0, -offset)
	return monday, monday.AddDate(0, 0, 6)
}
