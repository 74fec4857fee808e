package driving

import (
	"context"

	"github.com/custodia-labs/relay/internal/core/domain"
)

// ImportService seeds the stores from a fixture.
type ImportService interface {
	// Import writes every record in the fixture.
	Import(ctx context.Context, fixture domain.Fixture) (domain.ImportStats, error)
}
