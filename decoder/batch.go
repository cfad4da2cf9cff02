package decoder

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// DecodeBatch decodes every key vector of keySets concurrently with at most
// workers goroutines (workers ≤ 0 ⇒ GOMAXPROCS). Results are returned in
// input order.
//
// The first input error (see Decode) cancels the remaining work and is
// returned wrapped with the candidate index. Cancellation of ctx is checked
// between candidates; a single decode is never interrupted.
func (d *Decoder) DecodeBatch(ctx context.Context, keySets [][]float64, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	start := time.Now()
	results := make([]Result, len(keySets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, k := range keySets {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := d.Decode(k)
			if err != nil {
				return fmt.Errorf("candidate %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	feasible := 0
	for i := range results {
		if results[i].IsFeasible() {
			feasible++
		}
	}
	d.logger.Debug("batch decoded",
		"candidates", len(keySets),
		"feasible", feasible,
		"workers", workers,
		"elapsed", time.Since(start).Round(time.Microsecond),
	)

	return results, nil
}
