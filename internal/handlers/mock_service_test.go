package handlers

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"home_service_booking/internal/availability"
	"home_service_booking/internal/models"
	"home_service_booking/internal/repository"
	"home_service_booking/internal/service"
	"home_service_booking/internal/session"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registered    bool
	registeredErr error
	registerToken string
	registerErr   error
	genToken      string
	genTokenErr   error
	parseEmail    string
	parseErr      error

	lastRegisterKey string
	lastGenEmail    string
	lastParseToken  string
}

func (m *mockAuth) IsRegistered(ctx context.Context) (bool, error) {
	return m.registered, m.registeredErr
}
func (m *mockAuth) Register(ctx context.Context, email, password, key string) (string, error) {
	m.lastRegisterKey = key
	return m.registerToken, m.registerErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, email, password string) (string, error) {
	m.lastGenEmail = email
	return m.genToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseEmail, m.parseErr
}

type mockCatalog struct {
	jobs      []service.JobTypeView
	err       error
	lastCosts map[string]int64
}

func (m *mockCatalog) ListJobTypes(ctx context.Context) ([]service.JobTypeView, error) {
	return m.jobs, m.err
}
func (m *mockCatalog) UpdateCosts(ctx context.Context, costs map[string]int64) ([]service.JobTypeView, error) {
	m.lastCosts = costs
	return m.jobs, m.err
}

type mockAvailability struct {
	days      []availability.Day
	daysErr   error
	slots     []string
	slotsErr  error
	lastFrom  time.Time
	lastCount int
	calls     int
}

func (m *mockAvailability) UpcomingDays(ctx context.Context, from time.Time, n int) ([]availability.Day, error) {
	m.calls++
	m.lastFrom = from
	m.lastCount = n
	return m.days, m.daysErr
}
func (m *mockAvailability) FreeSlots(ctx context.Context, date string) ([]string, error) {
	return m.slots, m.slotsErr
}

type mockAppointments struct {
	list       []service.AppointmentView
	listErr    error
	updated    models.Appointment
	updateErr  error
	moved      int
	rainErr    error
	lastFilter service.AppointmentFilter
	lastID     int64
	lastStatus models.Status
}

func (m *mockAppointments) ListAppointments(ctx context.Context, f service.AppointmentFilter) ([]service.AppointmentView, error) {
	m.lastFilter = f
	return m.list, m.listErr
}
func (m *mockAppointments) UpdateStatus(ctx context.Context, id int64, status models.Status) (models.Appointment, error) {
	m.lastID = id
	m.lastStatus = status
	return m.updated, m.updateErr
}
func (m *mockAppointments) RainDay(ctx context.Context) (int, error) {
	return m.moved, m.rainErr
}

// ---- Shared Test Helpers ----

// thursday is 2026-10-15 10:00 UTC; the next day is a Friday.
var thursday = time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, session.NewRegistry(time.Hour), nil)
	return h.InitRoutes()
}

// newStoreBackedRouter wires real services over a JSON file in a temp dir.
func newStoreBackedRouter(t *testing.T) (*gin.Engine, *repository.JSONFileStore) {
	t.Helper()
	store := repository.NewJSONFileStore(filepath.Join(t.TempDir(), "data.json"))
	svc := service.NewService(repository.NewRepository(store), service.Options{
		HorizonDays:     15,
		Location:        time.UTC,
		Now:             func() time.Time { return thursday },
		SigningKey:      "test-signing-key",
		TokenTTL:        time.Hour,
		RegistrationKey: "let-me-in",
	})
	return newTestRouter(svc), store
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

type mockWorkflow struct {
	confirmed models.Appointment
	onConfirm func()
}

func (m *mockWorkflow) SubmitInfo(ctx context.Context, w *service.Wizard, in service.ClientInfo) error {
	return nil
}
func (m *mockWorkflow) DayOptions(ctx context.Context, w *service.Wizard) ([]availability.Day, error) {
	return nil, nil
}
func (m *mockWorkflow) ChooseDay(ctx context.Context, w *service.Wizard, date string) error {
	return nil
}
func (m *mockWorkflow) SlotOptions(ctx context.Context, w *service.Wizard) ([]string, error) {
	return nil, nil
}
func (m *mockWorkflow) ChooseSlots(ctx context.Context, w *service.Wizard, slots []string) error {
	return nil
}
func (m *mockWorkflow) Review(ctx context.Context, w *service.Wizard) (service.Review, error) {
	return service.Review{}, nil
}
func (m *mockWorkflow) Confirm(ctx context.Context, w *service.Wizard) (models.Appointment, error) {
	if m.onConfirm != nil {
		m.onConfirm()
	}
	w.Reset()
	return m.confirmed, nil
}
