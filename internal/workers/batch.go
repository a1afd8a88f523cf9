// Package workers runs pipeline work concurrently.
//
// A [BatchProcessor] bounds how many items are processed at once. Results
// are returned in input order and one failing item never cancels the
// others: failures are carried in the result values themselves.
package workers

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-privacy-pipeline/internal/logger"
)

// DefaultConcurrency applies when a non-positive limit is configured.
const DefaultConcurrency = 4

// BatchProcessor holds the concurrency limit shared by every batch.
type BatchProcessor struct {
	concurrency int
	logger      *logger.Logger
}

// NewBatchProcessor returns a processor running at most concurrency items
// at once.
func NewBatchProcessor(concurrency int, log *logger.Logger) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &BatchProcessor{concurrency: concurrency, logger: log}
}

// Concurrency returns the configured limit.
func (bp *BatchProcessor) Concurrency() int {
	return bp.concurrency
}

// Process calls fn for every item and returns the results in item order.
//
// fn must report its own failures in R. Items not yet started when ctx is
// cancelled are still passed to fn, which is expected to check ctx and
// return a failure result.
func Process[T, R any](ctx context.Context, bp *BatchProcessor, items []T, fn func(ctx context.Context, item T) R) []R {
	results := make([]R, len(items))
	if len(items) == 0 {
		return results
	}

	started := time.Now()
	bp.logger.Info().
		Int("items", len(items)).
		Int("concurrency", bp.concurrency).
		Msg("starting batch")

	// errgroup.WithContext is not used: a failing item must not cancel the
	// rest of the batch.
	var g errgroup.Group
	g.SetLimit(bp.concurrency)

	for i, item := range items {
		g.Go(func() error {
			// each goroutine owns results[i]
			results[i] = fn(ctx, item)
			return nil
		})
	}
	_ = g.Wait()

	bp.logger.Info().
		Int("items", len(items)).
		Dur("elapsed", time.Since(started)).
		Msg("batch complete")

	return results
}
