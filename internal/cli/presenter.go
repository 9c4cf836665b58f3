// Package cli holds ndctl's result presentation and shell-completion
// generation, adapted from the teacher's internal/cli package of the
// same concerns (its Fibonacci-specific progress bar, REPL, and
// comparison-table renderers do not carry over to this domain and were
// dropped — see DESIGN.md).
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/ndcore/internal/ui"
)

// PresentBigIntResult writes a labeled BigInt result line to out.
func PresentBigIntResult(out io.Writer, op, value string) {
	fmt.Fprintf(out, "%s %s\n", ui.Dark.Primary.Render(op+" ="), value)
}

// PresentError writes a themed error line to out.
func PresentError(out io.Writer, err error) {
	fmt.Fprintln(out, ui.Dark.Error.Render("error:")+" "+err.Error())
}

// PresentNestedInts renders a row-major flat []int under the given
// lengths using nested-bracket notation, e.g. [[0,1,2],[3,4,5]].
func PresentNestedInts(out io.Writer, lengths []int, flat []int) {
	fmt.Fprintln(out, formatNested(lengths, flat))
}

func formatNested(lengths []int, flat []int) string {
	if len(lengths) == 0 {
		if len(flat) == 0 {
			return ""
		}
		return fmt.Sprintf("%d", flat[0])
	}
	if len(lengths) == 1 {
		parts := make([]string, len(flat))
		for i, v := range flat {
			parts[i] = fmt.Sprintf("%d", v)
		}
		return "[" + strings.Join(parts, ",") + "]"
	}
	outerLen := lengths[0]
	innerLengths := lengths[1:]
	innerSize := 1
	for _, l := range innerLengths {
		innerSize *= l
	}
	parts := make([]string, outerLen)
	for i := 0; i < outerLen; i++ {
		parts[i] = formatNested(innerLengths, flat[i*innerSize:(i+1)*innerSize])
	}
	return "[" + strings.Join(parts, ",") + "]"
}
