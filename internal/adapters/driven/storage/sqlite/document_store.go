package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/custodia-labs/relay/internal/core/domain"
	"github.com/custodia-labs/relay/internal/core/ports/driven"
)

// documentStore implements driven.DocumentStore.
type documentStore struct {
	store *Store
}

var _ driven.DocumentStore = (*documentStore)(nil)

const documentColumns = `id, file_name, channel_name, po_number, uploaded_by, mime_type, size, uploaded_at`

// Save stores or updates a document.
func (s *documentStore) Save(ctx context.Context, d domain.Document) error {
	if d.ID == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO documents (`+documentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			file_name = excluded.file_name,
			channel_name = excluded.channel_name,
			po_number = excluded.po_number,
			uploaded_by = excluded.uploaded_by,
			mime_type = excluded.mime_type,
			size = excluded.size,
			uploaded_at = excluded.uploaded_at
	`, d.ID, d.FileName, d.ChannelName, d.PONumber, d.UploadedBy, d.MimeType, d.Size, d.UploadedAt.UTC())
	if err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	return nil
}

// Get retrieves a document by ID.
func (s *documentStore) Get(ctx context.Context, id string) (*domain.Document, error) {
	row := s.store.db.QueryRowContext(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE id = ?`, id)

	d, err := scanDocument(row)
	if err != nil {
		return nil, notFound(err)
	}
	return d, nil
}

// Delete removes a document.
func (s *documentStore) Delete(ctx context.Context, id string) error {
	if _, err := s.store.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	return nil
}

// List returns every document in insertion order.
func (s *documentStore) List(ctx context.Context) ([]domain.Document, error) {
	rows, err := s.store.db.QueryContext(ctx,
		`SELECT `+documentColumns+` FROM documents ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	docs := make([]domain.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		docs = append(docs, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}
	return docs, nil
}

func scanDocument(row scanner) (*domain.Document, error) {
	var d domain.Document
	var uploadedAt sql.NullTime
	if err := row.Scan(&d.ID, &d.FileName, &d.ChannelName, &d.PONumber, &d.UploadedBy,
		&d.MimeType, &d.Size, &uploadedAt); err != nil {
		return nil, err
	}
	if uploadedAt.Valid {
		d.UploadedAt = uploadedAt.Time
	}
	return &d, nil
}
