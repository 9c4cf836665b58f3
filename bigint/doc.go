// Package bigint implements a fixed-capacity, stack-allocated arbitrary
// precision signed integer and its borrowed view type.
//
// It is the arithmetic core of the module: in-place multiply/add/shift/
// divide-by-scalar, base-10/hex/binary parsing and formatting, and the
// multiply-by-5^k primitive used by decimal<->binary float conversion.
// It intentionally does not implement big-by-big multiplication or
// division by a bigint — see SPEC_FULL.md §1 Non-goals.
package bigint
