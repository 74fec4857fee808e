package driven

import (
	"context"

	"github.com/custodia-labs/relay/internal/core/domain"
)

// PageCatalog provides the fixed catalogue of application destinations.
type PageCatalog interface {
	// Pages returns the catalogue in declaration order.
	Pages(ctx context.Context) ([]domain.Page, error)
}
