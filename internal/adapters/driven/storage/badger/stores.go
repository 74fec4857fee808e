package badger

import (
	"context"

	"github.com/custodia-labs/relay/internal/core/domain"
	"github.com/custodia-labs/relay/internal/core/ports/driven"
)

var (
	_ driven.ChannelStore  = (*channelStore)(nil)
	_ driven.DocumentStore = (*documentStore)(nil)
	_ driven.ActivityStore = (*activityStore)(nil)
)

type channelStore struct {
	records *records[domain.Channel]
}

func (s *channelStore) Save(_ context.Context, c domain.Channel) error {
	if c.ID == "" {
		return domain.ErrInvalidInput
	}
	return s.records.put(c.ID, c)
}

func (s *channelStore) Get(_ context.Context, id string) (*domain.Channel, error) {
	return s.records.get(id)
}

func (s *channelStore) Delete(_ context.Context, id string) error {
	return s.records.remove(id)
}

func (s *channelStore) List(_ context.Context) ([]domain.Channel, error) {
	return s.records.all()
}

type documentStore struct {
	records *records[domain.Document]
}

func (s *documentStore) Save(_ context.Context, d domain.Document) error {
	if d.ID == "" {
		return domain.ErrInvalidInput
	}
	return s.records.put(d.ID, d)
}

func (s *documentStore) Get(_ context.Context, id string) (*domain.Document, error) {
	return s.records.get(id)
}

func (s *documentStore) Delete(_ context.Context, id string) error {
	return s.records.remove(id)
}

func (s *documentStore) List(_ context.Context) ([]domain.Document, error) {
	return s.records.all()
}

type activityStore struct {
	records *records[domain.ActivityEvent]
}

func (s *activityStore) Append(_ context.Context, e domain.ActivityEvent) error {
	if e.ID == "" {
		return domain.ErrInvalidInput
	}
	return s.records.put(e.ID, e)
}

func (s *activityStore) List(_ context.Context) ([]domain.ActivityEvent, error) {
	return s.records.all()
}
