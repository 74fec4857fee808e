package driven

import (
	"context"

	"github.com/custodia-labs/relay/internal/core/domain"
)

// DocumentStore persists channel documents.
type DocumentStore interface {
	// Save stores or updates a document.
	Save(ctx context.Context, doc domain.Document) error

	// Get retrieves a document by ID.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// Delete removes a document.
	Delete(ctx context.Context, id string) error

	// List returns every document in insertion order.
	List(ctx context.Context) ([]domain.Document, error)
}
