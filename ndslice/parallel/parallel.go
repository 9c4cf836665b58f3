// Package parallel fans a byDim-decomposed ndslice.Slice out across
// disjoint outer-axis subslices, using golang.org/x/sync/errgroup to
// join the goroutines. It is grounded on the teacher's
// internal/orchestration.ExecuteCalculations fan-out pattern, adapted
// from "one goroutine per Fibonacci algorithm" to "one goroutine per
// outer-axis chunk".
//
// This package is opt-in: the ndslice topology layer itself never
// spawns a goroutine (see SPEC_FULL.md §5).
// Apply is how a caller who wants that tradeoff gets it.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/ndcore/ndslice"
)

// Options configures Apply's fan-out.
type Options struct {
	// Workers caps the number of concurrent goroutines; 0 selects
	// runtime.GOMAXPROCS(0).
	Workers int
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Apply partitions s along its outermost axis into disjoint chunks —
// one per worker — and invokes fn on each chunk's ndslice.ByDim view
// concurrently, joining with an errgroup.Group so the first error
// cancels the rest and is returned to the caller.
func Apply[T any, K ndslice.Kind](ctx context.Context, s ndslice.Slice[T, K], fn func(ctx context.Context, chunk ndslice.Slice[ndslice.Slice[T, ndslice.Universal], ndslice.Universal], chunkIndex int) error, opts ...Options) error {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	outer := ndslice.ByDim(s, []int{0})
	n := outer.Lengths[0]
	if n == 0 {
		return nil
	}
	workers := o.workers()
	if workers > n {
		workers = n
	}
	chunkSize := (n + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := w * chunkSize
		hi := lo + chunkSize
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		idx := w
		g.Go(func() error {
			chunk := outer.SubRange(lo, hi)
			return fn(gctx, chunk, idx)
		})
	}
	return g.Wait()
}
