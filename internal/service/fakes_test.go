package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"home_service_booking/internal/models"
	"home_service_booking/internal/repository"
)

// memoryDocumentRepo is an in-test DocumentRepo that keeps the document in memory.
type memoryDocumentRepo struct {
	doc     *models.Document
	loadErr error
	saveErr error
	saves   int
}

func (m *memoryDocumentRepo) Load(ctx context.Context) (models.Document, error) {
	if m.loadErr != nil {
		return models.Document{}, m.loadErr
	}
	if m.doc == nil {
		d := models.NewDefaultDocument()
		m.doc = &d
	}
	return m.doc.Clone(), nil
}

func (m *memoryDocumentRepo) Save(ctx context.Context, doc models.Document) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	cp := doc.Clone()
	m.doc = &cp
	return nil
}

var errDiskFull = errors.New("disk full")

// thursday is 2026-10-15 10:00 UTC.
var thursday = time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

const testSigningKey = "test-signing-key"

func testOptions(now time.Time) Options {
	return Options{
		HorizonDays:     15,
		Location:        time.UTC,
		Now:             func() time.Time { return now },
		SigningKey:      testSigningKey,
		TokenTTL:        time.Hour,
		RegistrationKey: "let-me-in",
	}
}

func newTestService(t *testing.T, repo *memoryDocumentRepo) *Service {
	t.Helper()
	return NewService(repository.NewRepository(repo), testOptions(thursday))
}

func withAppointments(apps ...models.Appointment) *memoryDocumentRepo {
	doc := models.NewDefaultDocument()
	doc.Appointments = append(doc.Appointments, apps...)
	return &memoryDocumentRepo{doc: &doc}
}
