package resolve

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// BatchItem is one document's lines in a batch.
type BatchItem struct {
	ID    string
	Lines []string
}

// BatchResult holds the assignments for one BatchItem.
type BatchResult struct {
	ID          string
	Assignments []Assignment
}

// ResolveBatch resolves fields against every item with at most concurrency
// documents in flight. Each document gets its own Resolver. Results are in
// item order. Cancelling ctx stops documents that have not started yet.
func ResolveBatch(ctx context.Context, fields []string, items []BatchItem, concurrency int) ([]BatchResult, error) {
	results := make([]BatchResult, len(items))

	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			assignments := NewResolver(item.Lines).Resolve(fields)

			slog.Debug("resolved document", "id", item.ID, "fields", len(fields), "lines", len(item.Lines))

			results[i] = BatchResult{ID: item.ID, Assignments: assignments}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
