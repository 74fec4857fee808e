package memory

import (
	"context"

	"github.com/custodia-labs/relay/internal/core/domain"
	"github.com/custodia-labs/relay/internal/core/ports/driven"
)

// Ensure ActivityStore implements the interface.
var _ driven.ActivityStore = (*ActivityStore)(nil)

// ActivityStore is an in-memory implementation of driven.ActivityStore.
type ActivityStore struct {
	events *collection[domain.ActivityEvent]
}

// NewActivityStore creates a new in-memory activity store.
func NewActivityStore() *ActivityStore {
	return &ActivityStore{events: newCollection[domain.ActivityEvent]()}
}

// Append stores an event.
func (s *ActivityStore) Append(_ context.Context, event domain.ActivityEvent) error {
	if event.ID == "" {
		return domain.ErrInvalidInput
	}
	s.events.put(event.ID, event)
	return nil
}

// List returns every event in insertion order.
func (s *ActivityStore) List(_ context.Context) ([]domain.ActivityEvent, error) {
	return s.events.all(), nil
}
