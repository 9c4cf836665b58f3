package bigint

// View is a borrowed (coefficients, sign) pair over external word storage.
// It is used wherever computation is done without owning a BigInt — the
// two-operand Add/Sub free functions, comparisons, and anywhere a caller
// wants to feed raw word slices into the core routines.
type View struct {
	// Coefficients holds the magnitude, least-significant word first.
	// A normalized view has no trailing (most-significant) zero word,
	// but callers are not required to normalize before passing a View in;
	// the routines here tolerate trailing zeros.
	Coefficients []Word
	// Negative is the sign; must be false when Coefficients represents zero.
	Negative bool
}

func (v View) isZeroView() bool {
	for _, w := range v.Coefficients {
		if w != 0 {
			return false
		}
	}
	return true
}

// trimmedLen returns the length of v.Coefficients with trailing zero words
// removed.
func (v View) trimmedLen() int {
	n := len(v.Coefficients)
	for n > 0 && v.Coefficients[n-1] == 0 {
		n--
	}
	return n
}
