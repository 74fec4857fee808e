package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/relay/internal/core/domain"
	"github.com/custodia-labs/relay/internal/core/ports/driven"
)

// channelStore implements driven.ChannelStore.
type channelStore struct {
	store *Store
}

var _ driven.ChannelStore = (*channelStore)(nil)

const channelColumns = `id, name, description, po_number, door_id, vehicle_id, category,
	created_by, is_dm, participants, pinned, created_at`

// Save stores or updates a channel.
func (s *channelStore) Save(ctx context.Context, c domain.Channel) error {
	if c.ID == "" {
		return domain.ErrInvalidInput
	}

	participants := c.Participants
	if participants == nil {
		participants = []string{}
	}
	participantsJSON, err := json.Marshal(participants)
	if err != nil {
		return fmt.Errorf("marshalling participants: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO channels (`+channelColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			po_number = excluded.po_number,
			door_id = excluded.door_id,
			vehicle_id = excluded.vehicle_id,
			category = excluded.category,
			created_by = excluded.created_by,
			is_dm = excluded.is_dm,
			participants = excluded.participants,
			pinned = excluded.pinned,
			created_at = excluded.created_at
	`, c.ID, c.Name, c.Description, c.PONumber, c.DoorID, c.VehicleID, c.Category,
		c.CreatedBy, boolToInt(c.IsDirectMessage), string(participantsJSON),
		boolToInt(c.Pinned), c.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("saving channel: %w", err)
	}
	return nil
}

// Get retrieves a channel by ID.
func (s *channelStore) Get(ctx context.Context, id string) (*domain.Channel, error) {
	row := s.store.db.QueryRowContext(ctx,
		`SELECT `+channelColumns+` FROM channels WHERE id = ?`, id)

	c, err := scanChannel(row)
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

// Delete removes a channel.
func (s *channelStore) Delete(ctx context.Context, id string) error {
	if _, err := s.store.db.ExecContext(ctx, `DELETE FROM channels WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting channel: %w", err)
	}
	return nil
}

// List returns every channel in insertion order.
func (s *channelStore) List(ctx context.Context) ([]domain.Channel, error) {
	rows, err := s.store.db.QueryContext(ctx,
		`SELECT `+channelColumns+` FROM channels ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("listing channels: %w", err)
	}
	defer rows.Close()

	channels := make([]domain.Channel, 0)
	for rows.Next() {
		c, err := scanChannel(rows)
		if err != nil {
			return nil, err
		}
		channels = append(channels, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating channels: %w", err)
	}
	return channels, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanChannel(row scanner) (*domain.Channel, error) {
	var c domain.Channel
	var isDM, pinned int
	var participantsJSON string
	var createdAt sql.NullTime
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.PONumber, &c.DoorID, &c.VehicleID,
		&c.Category, &c.CreatedBy, &isDM, &participantsJSON, &pinned, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(participantsJSON), &c.Participants); err != nil {
		return nil, fmt.Errorf("%w: channel %s participants: %v", domain.ErrCorruptRecord, c.ID, err)
	}
	c.IsDirectMessage = isDM != 0
	c.Pinned = pinned != 0
	if createdAt.Valid {
		c.CreatedAt = createdAt.Time
	}
	return &c, nil
}
