package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"home_service_booking/internal/models"
)

// JSONFileStore keeps the document in one JSON file, replaced whole on every save.
type JSONFileStore struct {
	path string
}

func NewJSONFileStore(path string) *JSONFileStore {
	return &JSONFileStore{path: path}
}

// Ensure implementation of DocumentRepo interface at compile time.
var _ DocumentRepo = (*JSONFileStore)(nil)

const (
	jsonIndent   = "  "
	tempFileGlob = ".booking-*.tmp"
)

// Load reads the document, seeding and persisting the default one if the file does not exist.
func (s *JSONFileStore) Load(ctx context.Context) (models.Document, error) {
	if err := ctx.Err(); err != nil {
		return models.Document{}, err
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			doc := models.NewDefaultDocument()
			if err := s.Save(ctx, doc); err != nil {
				return models.Document{}, err
			}
			return doc, nil
		}
		return models.Document{}, fmt.Errorf("read document %q: %w", s.path, err)
	}
	return decodeDocument(raw)
}

// Save writes to a temp file in the same directory and renames it over the target,
// so readers see either the old or the new document.
func (s *JSONFileStore) Save(ctx context.Context, doc models.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := encodeDocument(doc)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), tempFileGlob)
	if err != nil {
		return fmt.Errorf("create temp file for %q: %w", s.path, err)
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op after a successful rename
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write document %q: %w", s.path, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync document %q: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close document %q: %w", s.path, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace document %q: %w", s.path, err)
	}
	return nil
}

// encodeDocument marshals the document the same way for every backend.
func encodeDocument(doc models.Document) ([]byte, error) {
	doc.Normalize()
	raw, err := json.MarshalIndent(doc, "", jsonIndent)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return raw, nil
}

// decodeDocument parses raw JSON into a normalized document. A document without
// job types cannot be booked against, so it is reported as corrupt.
func decodeDocument(raw []byte) (models.Document, error) {
	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.Document{}, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	if len(doc.Costs) == 0 {
		return models.Document{}, fmt.Errorf("%w: no job types under \"costs\"", ErrCorruptDocument)
	}
	doc.Normalize()
	return doc, nil
}
