package memory

import (
	"context"

	"github.com/custodia-labs/relay/internal/core/domain"
	"github.com/custodia-labs/relay/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
type DocumentStore struct {
	documents *collection[domain.Document]
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{documents: newCollection[domain.Document]()}
}

// Save stores or updates a document.
func (s *DocumentStore) Save(_ context.Context, doc domain.Document) error {
	if doc.ID == "" {
		return domain.ErrInvalidInput
	}
	s.documents.put(doc.ID, doc)
	return nil
}

// Get retrieves a document by ID.
func (s *DocumentStore) Get(_ context.Context, id string) (*domain.Document, error) {
	doc, ok := s.documents.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// Delete removes a document.
func (s *DocumentStore) Delete(_ context.Context, id string) error {
	s.documents.remove(id)
	return nil
}

// List returns every document in insertion order.
func (s *DocumentStore) List(_ context.Context) ([]domain.Document, error) {
	return s.documents.all(), nil
}
