package repository

import (
	"context"
	"errors"

	"home_service_booking/internal/models"
)

// ErrCorruptDocument is returned when the persisted document cannot be decoded.
var ErrCorruptDocument = errors.New("corrupt document")

// DocumentRepo loads and persists the single booking document.
// Load synthesizes and persists the default document when nothing is stored yet.
type DocumentRepo interface {
	Load(ctx context.Context) (models.Document, error)
	Save(ctx context.Context, doc models.Document) error
}

type Repository struct {
	Documents DocumentRepo
}

func NewRepository(docs DocumentRepo) *Repository {
	return &Repository{Documents: docs}
}
