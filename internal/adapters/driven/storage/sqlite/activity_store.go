package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/custodia-labs/relay/internal/core/domain"
	"github.com/custodia-labs/relay/internal/core/ports/driven"
)

// activityStore implements driven.ActivityStore.
type activityStore struct {
	store *Store
}

var _ driven.ActivityStore = (*activityStore)(nil)

// Append stores an event. Appending an existing ID replaces it in place.
func (s *activityStore) Append(ctx context.Context, e domain.ActivityEvent) error {
	if e.ID == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO activity (id, kind, description, channel_name, vehicle_id, po_number,
			created_by, category, direction, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			kind = excluded.kind,
			description = excluded.description,
			channel_name = excluded.channel_name,
			vehicle_id = excluded.vehicle_id,
			po_number = excluded.po_number,
			created_by = excluded.created_by,
			category = excluded.category,
			direction = excluded.direction,
			timestamp = excluded.timestamp
	`, e.ID, string(e.Kind), e.Description, e.ChannelName, e.VehicleID, e.PONumber,
		e.CreatedBy, e.Category, e.Direction, e.Timestamp.UTC())
	if err != nil {
		return fmt.Errorf("appending activity: %w", err)
	}
	return nil
}

// List returns every event in insertion order.
func (s *activityStore) List(ctx context.Context) ([]domain.ActivityEvent, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, kind, description, channel_name, vehicle_id, po_number,
			created_by, category, direction, timestamp
		FROM activity ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("listing activity: %w", err)
	}
	defer rows.Close()

	events := make([]domain.ActivityEvent, 0)
	for rows.Next() {
		var e domain.ActivityEvent
		var kind string
		var ts sql.NullTime
		if err := rows.Scan(&e.ID, &kind, &e.Description, &e.ChannelName, &e.VehicleID,
			&e.PONumber, &e.CreatedBy, &e.Category, &e.Direction, &ts); err != nil {
			return nil, fmt.Errorf("scanning activity: %w", err)
		}
		e.Kind = domain.ActivityKind(kind)
		if ts.Valid {
			e.Timestamp = ts.Time
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activity: %w", err)
	}
	return events, nil
}
