package session

import (
	"errors"
	"testing"
	"time"

	"home_service_booking/internal/service"
)

func TestRegistry_CreateGetPut(t *testing.T) {
	r := NewRegistry(time.Minute)

	id, w := r.Create()
	if id == "" || w.Step != service.StepCollectInfo {
		t.Fatalf("unexpected new session %q %+v", id, w)
	}

	w.Step = service.StepPickDay
	w.Draft.Jobs = []string{"A"}
	if err := r.Put(id, w); err != nil {
		t.Fatalf("Put: %v", err)
	}
	w.Draft.Jobs[0] = "mutated after put"

	got, err := r.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Step != service.StepPickDay || got.Draft.Jobs[0] != "A" {
		t.Fatalf("stored wizard shares state with caller: %+v", got)
	}

	if _, err := r.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := r.Put("missing", w); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on Put, got %v", err)
	}

	r.Delete(id)
	if _, err := r.Get(id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected session to be deleted")
	}
}

func TestRegistry_ExpiresIdleSessions(t *testing.T) {
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	r := NewRegistry(30 * time.Minute)
	r.now = func() time.Time { return now }

	idle, _ := r.Create()
	active, _ := r.Create()

	now = now.Add(20 * time.Minute)
	if _, err := r.Get(active); err != nil {
		t.Fatalf("Get active: %v", err)
	}

	now = now.Add(15 * time.Minute)
	if _, err := r.Get(idle); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected idle session to expire, got %v", err)
	}
	if _, err := r.Get(active); err != nil {
		t.Fatalf("recently used session expired: %v", err)
	}
	if r.Len() != 1 {
		t.Fatalf("expected 1 live session, got %d", r.Len())
	}
}
