package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"home_service_booking/internal/models"
)

// DocumentSQLite keeps the document as a JSON body in a single-row table.
type DocumentSQLite struct {
	db *sql.DB
}

func NewDocumentSQLite(db *sql.DB) *DocumentSQLite {
	return &DocumentSQLite{db: db}
}

var _ DocumentRepo = (*DocumentSQLite)(nil)

const (
	documentRowID = 1

	upsertDocumentSQL = `
		INSERT INTO booking_document (id, body, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			body=excluded.body,
			updated_at=excluded.updated_at
	`

	selectDocumentSQL = `SELECT body FROM booking_document WHERE id=?`
)

// Save upserts the document row (id always 1).
func (r *DocumentSQLite) Save(ctx context.Context, doc models.Document) error {
	raw, err := encodeDocument(doc)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, upsertDocumentSQL, documentRowID, string(raw), time.Now().UTC()); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// Load fetches the document row, seeding the default document when the table is empty.
func (r *DocumentSQLite) Load(ctx context.Context) (models.Document, error) {
	var body string
	err := r.db.QueryRowContext(ctx, selectDocumentSQL, documentRowID).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			doc := models.NewDefaultDocument()
			if err := r.Save(ctx, doc); err != nil {
				return models.Document{}, err
			}
			return doc, nil
		}
		return models.Document{}, fmt.Errorf("load document: %w", err)
	}
	return decodeDocument([]byte(body))
}
