// Package telemetry provides Prometheus counters and optional
// OpenTelemetry spans for the ndcore demonstrator (cmd/ndctl); no package
// in the module calls them. Grounded on the teacher's internal/metrics runtime-memory
// collector and the prometheus/client_golang + go.opentelemetry.io/otel
// dependencies it declared but never wired.
//
// Neither ndslice nor bigint import this package: the core stays
// instrumentation-free, and Counters is always registered against a
// caller-supplied *prometheus.Registry rather than the global
// DefaultRegisterer, so embedding the library never mutates global
// state (SPEC_FULL.md §4.2c, spec.md §5 "no globals").
package telemetry

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Counters groups the event counters for library events: overflow,
// mulPow5 carries, and parallel dispatch.
type Counters struct {
	BigIntOverflowTotal          prometheus.Counter
	BigIntMulPow5CarryTotal      prometheus.Counter
	SliceParallelDispatchTotal   prometheus.Counter
	SliceParallelDurationSeconds prometheus.Histogram
}

// NewCounters constructs and registers Counters against reg. Passing a
// fresh *prometheus.Registry (rather than prometheus.DefaultRegisterer)
// keeps registration caller-scoped.
func NewCounters(reg *prometheus.Registry) *Counters {
	c := &Counters{
		BigIntOverflowTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ndcore_bigint_overflow_total",
			Help: "Number of BigInt operations that reported a capacity overflow.",
		}),
		BigIntMulPow5CarryTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ndcore_bigint_mulpow5_carry_total",
			Help: "Number of MulPow5 calls whose final carry did not fit in capacity.",
		}),
		SliceParallelDispatchTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ndcore_slice_parallel_dispatch_total",
			Help: "Number of ndslice/parallel.Apply dispatches.",
		}),
		SliceParallelDurationSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ndcore_slice_parallel_duration_seconds",
			Help:    "Wall-clock duration of ndslice/parallel.Apply calls.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(c.BigIntOverflowTotal, c.BigIntMulPow5CarryTotal, c.SliceParallelDispatchTotal, c.SliceParallelDurationSeconds)
	return c
}

// Span brackets a demo computation with an OpenTelemetry span. When no
// TracerProvider has been configured (the default), otel's no-op
// provider makes this a harmless pass-through, so the library never
// requires a collector to run.
func Span(ctx context.Context, name string) (context.Context, trace.Span) {
	tracer := otel.Tracer("ndcore")
	return tracer.Start(ctx, name)
}
