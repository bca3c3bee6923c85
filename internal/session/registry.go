// Package session keeps in-progress booking wizards keyed by an opaque id.
// Sessions are process-local and never persisted.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"home_service_booking/internal/service"
)

var ErrNotFound = errors.New("booking session not found")

type entry struct {
	wizard   service.Wizard
	lastSeen time.Time
}

// Registry is a TTL-bounded map of wizards. Expired entries are evicted lazily.
type Registry struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*entry
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*entry),
	}
}

// Create starts a fresh wizard at the first step.
func (r *Registry) Create() (string, service.Wizard) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evictLocked()

	id := uuid.NewString()
	w := service.NewWizard()
	r.entries[id] = &entry{wizard: w, lastSeen: r.now()}
	return id, w
}

// Get returns a copy of the wizard stored under id.
func (r *Registry) Get(id string) (service.Wizard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evictLocked()

	e, ok := r.entries[id]
	if !ok {
		return service.Wizard{}, ErrNotFound
	}
	e.lastSeen = r.now()
	return e.wizard.Clone(), nil
}

// Put stores w under an existing id.
func (r *Registry) Put(id string, w service.Wizard) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return ErrNotFound
	}
	e.wizard = w.Clone()
	e.lastSeen = r.now()
	return nil
}

// Delete drops the session. Deleting an unknown id is not an error.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evictLocked()
	return len(r.entries)
}

func (r *Registry) evictLocked() {
	if r.ttl <= 0 {
		return
	}
	cutoff := r.now().Add(-r.ttl)
	for id, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			delete(r.entries, id)
		}
	}
}
