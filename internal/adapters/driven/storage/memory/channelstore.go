package memory

import (
	"context"

	"github.com/custodia-labs/relay/internal/core/domain"
	"github.com/custodia-labs/relay/internal/core/ports/driven"
)

// Ensure ChannelStore implements the interface.
var _ driven.ChannelStore = (*ChannelStore)(nil)

// ChannelStore is an in-memory implementation of driven.ChannelStore.
type ChannelStore struct {
	channels *collection[domain.Channel]
}

// NewChannelStore creates a new in-memory channel store.
func NewChannelStore() *ChannelStore {
	return &ChannelStore{channels: newCollection[domain.Channel]()}
}

// Save stores or updates a channel.
func (s *ChannelStore) Save(_ context.Context, channel domain.Channel) error {
	if channel.ID == "" {
		return domain.ErrInvalidInput
	}
	channel.Participants = append([]string(nil), channel.Participants...)
	s.channels.put(channel.ID, channel)
	return nil
}

// Get retrieves a channel by ID.
func (s *ChannelStore) Get(_ context.Context, id string) (*domain.Channel, error) {
	channel, ok := s.channels.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &channel, nil
}

// Delete removes a channel.
func (s *ChannelStore) Delete(_ context.Context, id string) error {
	s.channels.remove(id)
	return nil
}

// List returns every channel in insertion order.
func (s *ChannelStore) List(_ context.Context) ([]domain.Channel, error) {
	return s.channels.all(), nil
}
