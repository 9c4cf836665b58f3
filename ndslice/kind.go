package ndslice

// Kind is a compile-time marker selecting how much stride information a
// Slice carries. It has exactly three implementations: Contiguous,
// Canonical, and Universal. Because Go generics cannot parameterize the
// *length* of an array on a type parameter (there is no const-generics
// facility), the stride array itself is always a []int at runtime — see
// DESIGN.md Open Question OQ-3. Kind still buys the static distinction
// the spec calls for: which topology operators are even callable, and
// how the Strides field is read, are decided at compile time by
// which Slice[T, K] instantiation a value has.
type Kind interface {
	kindMarker()
}

// Contiguous slices store no stride array: strides are entirely implied
// by Lengths (innermost stride 1, each outer stride the product of the
// lengths inside it).
type Contiguous struct{}

func (Contiguous) kindMarker() {}

// Canonical slices store the outer N-1 strides explicitly; the
// innermost stride is still implied to be 1.
type Canonical struct{}

func (Canonical) kindMarker() {}

// Universal slices store all N strides explicitly. No stride invariant
// is enforced; aliasing and overlap are the caller's contract.
type Universal struct{}

func (Universal) kindMarker() {}
