package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"home_service_booking/internal/models"
	"home_service_booking/internal/repository"
)

// errNoChange lets an update callback skip the save without failing.
var errNoChange = errors.New("no change")

// documentStore serializes load-mutate-save cycles over the document.
// A mutation only becomes visible once Save has returned successfully.
type documentStore struct {
	mu   *sync.Mutex
	repo repository.DocumentRepo
}

func newDocumentStore(repo repository.DocumentRepo) documentStore {
	return documentStore{mu: &sync.Mutex{}, repo: repo}
}

func (s documentStore) read(ctx context.Context) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return doc, nil
}

// update applies fn to a copy of the current document and persists the result.
func (s documentStore) update(ctx context.Context, fn func(doc *models.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	next := current.Clone()
	if err := fn(&next); err != nil {
		if errors.Is(err, errNoChange) {
			return nil
		}
		return err
	}
	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return nil
}
