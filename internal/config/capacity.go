// Package config carries ndcore's capacity presets and the adaptive
// parallel-threshold estimate, adapted from the teacher's
// internal/config/thresholds.go and internal/calibration/adaptive.go.
//
// Threshold resolution chain (highest priority first):
//  1. Environment variable (NDCORE_PARALLEL_THRESHOLD).
//  2. Adaptive hardware estimation (this file).
//
// The teacher's third tier, a persistent on-disk calibration-profile
// cache (~/.fibcalc_calibration.json), is dropped: spec.md §5/§6 rule
// out I/O and persisted state within this library's scope, and the
// adaptive estimate below is cheap enough to recompute every process
// (see DESIGN.md for the justification).
package config

import (
	"os"
	"runtime"
	"strconv"

	"github.com/agbru/ndcore/bigint"
)

// Capacity presets name common bigint.BigInt capacities by their size in
// bits; each value is the word count, one of bigint's own Words4..Words64
// constants.
const (
	Capacity256  = bigint.Words4  // 256 bits
	Capacity512  = bigint.Words8  // 512 bits
	Capacity1024 = bigint.Words16 // 1024 bits
	Capacity2048 = bigint.Words32 // 2048 bits
	Capacity4096 = bigint.Words64 // 4096 bits
)

// ParallelThresholdEnvVar is the environment variable consulted before
// falling back to the adaptive estimate.
const ParallelThresholdEnvVar = "NDCORE_PARALLEL_THRESHOLD"

// EstimateParallelThreshold returns the element count above which
// ndslice/parallel.Apply is worth its goroutine overhead, estimated
// adaptively from runtime.NumCPU() exactly as the teacher's
// EstimateOptimalParallelThreshold does.
func EstimateParallelThreshold() int {
	if v := os.Getenv(ParallelThresholdEnvVar); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}

	numCPU := runtime.NumCPU()
	switch {
	case numCPU == 1:
		return 0
	case numCPU <= 2:
		return 8192
	case numCPU <= 4:
		return 4096
	case numCPU <= 8:
		return 2048
	case numCPU <= 16:
		return 1024
	default:
		return 512
	}
}
