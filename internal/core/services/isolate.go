package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/relay/internal/core/domain"
	"github.com/custodia-labs/relay/internal/core/ports/driven"
	"github.com/custodia-labs/relay/internal/logger"
)

// isolate runs one source so that its failure cannot affect the others.
// A panic becomes an empty result list; results that break the
// kind/reference invariant or carry no score are dropped. Both are
// reported to diagnostics and never propagate.
func isolate(
	ctx context.Context,
	src Source,
	query string,
	reporter driven.DiagnosticsReporter,
) (results []domain.SearchResult) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%w: %v", domain.ErrSourcePanicked, r)
			logger.Warn("%s source failed: %v", src.Name(), err)
			report(ctx, reporter, src.Name(), err)
			results = []domain.SearchResult{}
		}
	}()

	candidates := src.Search(ctx, query)
	results = make([]domain.SearchResult, 0, len(candidates))
	for i := range candidates {
		c := candidates[i]
		if c.Score <= 0 || c.Kind != src.Kind() || !c.Valid() {
			err := fmt.Errorf("%w: kind=%q ref=%q score=%d", domain.ErrInvalidResult, c.Kind, c.Reference(), c.Score)
			logger.Debug("%s: dropping result: %v", src.Name(), err)
			report(ctx, reporter, src.Name(), err)
			continue
		}
		results = append(results, c)
	}
	return results
}

// report forwards err to the reporter, if any. A reporter that panics is
// ignored.
func report(ctx context.Context, reporter driven.DiagnosticsReporter, source string, err error) {
	if reporter == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("diagnostics reporter failed: %v", r)
		}
	}()
	reporter.Report(ctx, source, err)
}
