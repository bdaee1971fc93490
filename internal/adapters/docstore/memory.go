// Package docstore provides document store adapters implementing
// ports.DocumentStore. The in-memory store is the reference backend; the
// sqlite store is the durable substitute.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/chartwell/andy/internal/domain/entities"
)

// ErrDuplicateID is returned when a document id already exists in the
// store. Appends never overwrite.
var ErrDuplicateID = errors.New("duplicate document id")

// Memory is a slice-backed, append-only document store. Writers are
// serialized; readers get a copied snapshot, so a slice returned by
// ListAll never shows a half-appended document.
type Memory struct {
	mu   sync.RWMutex
	docs []entities.Document
	ids  map[string]bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{ids: make(map[string]bool)}
}

// Append adds a document at the end of the corpus.
func (s *Memory) Append(ctx context.Context, doc entities.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ids[doc.ID] {
		return fmt.Errorf("%w: %s", ErrDuplicateID, doc.ID)
	}
	s.ids[doc.ID] = true
	s.docs = append(s.docs, doc)
	return nil
}

// ListAll returns every document in insertion order.
func (s *Memory) ListAll(ctx context.Context) ([]entities.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Document, len(s.docs))
	copy(out, s.docs)
	return out, nil
}
