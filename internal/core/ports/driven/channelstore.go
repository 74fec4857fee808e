package driven

import (
	"context"

	"github.com/custodia-labs/relay/internal/core/domain"
)

// ChannelStore persists channels and direct-message threads.
type ChannelStore interface {
	// Save stores or updates a channel.
	Save(ctx context.Context, channel domain.Channel) error

	// Get retrieves a channel by ID.
	Get(ctx context.Context, id string) (*domain.Channel, error)

	// Delete removes a channel.
	Delete(ctx context.Context, id string) error

	// List returns every channel in insertion order.
	// A collection that cannot be decoded returns domain.ErrCorruptRecord.
	List(ctx context.Context) ([]domain.Channel, error)
}
