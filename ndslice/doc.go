// Package ndslice implements a zero-copy n-dimensional view over
// linear memory: reshaping, striding, dimension packing and
// unpacking, broadcasting-like transforms, lazy element-wise
// transformations, sliding windows, and diagonal/antidiagonal extraction.
//
// The central type, Slice[T, K], carries its stride representation as
// a compile-time Kind (Contiguous, Canonical, or Universal) rather than
// a runtime enum; its rank is len(Lengths) at runtime — see SPEC_FULL.md
// §9.
//
// Every topology operator in this package (reshape, transpose, pack,
// windows, ...) composes iterators over the same backing store and never
// copies element data. The operators do allocate the small Lengths and
// Strides arrays of the views they return, and some element producers
// (NdIotaField, LinspaceField, CartesianField) allocate on every read.
// Concurrency is opt-in and lives in the sibling ndslice/parallel
// package, never here.
package ndslice
