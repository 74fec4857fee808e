package driven

import (
	"context"

	"github.com/custodia-labs/relay/internal/core/domain"
)

// ActivityStore persists the activity log.
type ActivityStore interface {
	// Append stores an event. Appending an existing ID replaces it.
	Append(ctx context.Context, event domain.ActivityEvent) error

	// List returns every event in insertion order.
	List(ctx context.Context) ([]domain.ActivityEvent, error)
}
