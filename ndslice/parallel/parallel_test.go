package parallel

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/agbru/ndcore/ndslice"
)

func TestApplyCoversEveryOuterChunkExactlyOnce(t *testing.T) {
	s := ndslice.Iota([]int{20, 3}, 0, 1)
	var visited int64

	err := Apply(context.Background(), s, func(ctx context.Context, chunk ndslice.Slice[ndslice.Slice[int, ndslice.Universal], ndslice.Universal], chunkIndex int) error {
		atomic.AddInt64(&visited, int64(chunk.Len()))
		return nil
	}, Options{Workers: 4})

	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if visited != 20 {
		t.Fatalf("visited = %d, want 20", visited)
	}
}

func TestApplyPropagatesFirstError(t *testing.T) {
	s := ndslice.Iota([]int{8}, 0, 1)
	sentinel := errFixture{}

	err := Apply(context.Background(), s, func(ctx context.Context, chunk ndslice.Slice[ndslice.Slice[int, ndslice.Universal], ndslice.Universal], chunkIndex int) error {
		if chunkIndex == 0 {
			return sentinel
		}
		return nil
	}, Options{Workers: 4})

	if err == nil {
		t.Fatal("expected Apply to propagate the worker error")
	}
}

func TestApplyOnEmptySliceIsNoop(t *testing.T) {
	s := ndslice.Iota([]int{0}, 0, 1)
	called := false
	err := Apply(context.Background(), s, func(ctx context.Context, chunk ndslice.Slice[ndslice.Slice[int, ndslice.Universal], ndslice.Universal], chunkIndex int) error {
		called = true
		return nil
	})
	if err != nil {
		t.Fatalf("Apply on empty slice: %v", err)
	}
	if called {
		t.Fatal("Apply should not invoke fn for an empty outer axis")
	}
}

type errFixture struct{}

func (errFixture) Error() string { return "fixture error" }
