package service

import (
	"context"
	"time"

	"home_service_booking/internal/availability"
	"home_service_booking/internal/models"
	"home_service_booking/internal/repository"
)

// Authorization manages the single admin account and its session tokens.
type Authorization interface {
	IsRegistered(ctx context.Context) (bool, error)
	Register(ctx context.Context, email, password, registrationKey string) (string, error)
	GenerateToken(ctx context.Context, email, password string) (string, error)
	ParseToken(accessToken string) (string, error)
}

// Catalog exposes the job types and their admin-editable costs.
type Catalog interface {
	ListJobTypes(ctx context.Context) ([]JobTypeView, error)
	UpdateCosts(ctx context.Context, costs map[string]int64) ([]JobTypeView, error)
}

// Availability exposes read-only day and slot occupancy.
type Availability interface {
	UpcomingDays(ctx context.Context, from time.Time, n int) ([]availability.Day, error)
	FreeSlots(ctx context.Context, date string) ([]string, error)
}

// Workflow drives a client's booking wizard. The confirmation is its only write.
type Workflow interface {
	SubmitInfo(ctx context.Context, w *Wizard, in ClientInfo) error
	DayOptions(ctx context.Context, w *Wizard) ([]availability.Day, error)
	ChooseDay(ctx context.Context, w *Wizard, date string) error
	SlotOptions(ctx context.Context, w *Wizard) ([]string, error)
	ChooseSlots(ctx context.Context, w *Wizard, slots []string) error
	Review(ctx context.Context, w *Wizard) (Review, error)
	Confirm(ctx context.Context, w *Wizard) (models.Appointment, error)
}

// Appointments is the admin view over booked work.
type Appointments interface {
	ListAppointments(ctx context.Context, f AppointmentFilter) ([]AppointmentView, error)
	UpdateStatus(ctx context.Context, id int64, status models.Status) (models.Appointment, error)
	RainDay(ctx context.Context) (int, error)
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Catalog
	Availability
	Workflow
	Appointments
}

// Options carries the deployment-time settings the services need.
type Options struct {
	HorizonDays     int            // weekdays offered by the day picker
	Location        *time.Location // timezone that defines "today"
	Now             func() time.Time
	SigningKey      string
	TokenTTL        time.Duration
	RegistrationKey string // empty disables admin registration
}

const (
	defaultHorizonDays = 15
	defaultTokenTTL    = time.Hour
)

func (o Options) withDefaults() Options {
	if o.HorizonDays <= 0 {
		o.HorizonDays = defaultHorizonDays
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.TokenTTL <= 0 {
		o.TokenTTL = defaultTokenTTL
	}
	return o
}

// today returns the current calendar date in the configured location.
func (o Options) today() time.Time {
	t := o.Now().In(o.Location)
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewService wires the repository layer into concrete services sharing one document store.
func NewService(repos *repository.Repository, opts Options) *Service {
	opts = opts.withDefaults()
	store := newDocumentStore(repos.Documents)
	return &Service{
		Authorization: newAuthService(store, opts),
		Catalog:       newCatalogService(store),
		Availability:  newAvailabilityService(store, opts),
		Workflow:      newBookingService(store, opts),
		Appointments:  newAppointmentService(store),
	}
}
