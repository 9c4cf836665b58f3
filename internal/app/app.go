// Package app wires ndctl's subcommands (bigint arithmetic, slice
// topology exploration, and the optional tui dashboard) together,
// grounded on the teacher's internal/app.Application dispatch shape.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/agbru/ndcore/bigint"
	"github.com/agbru/ndcore/internal/cli"
	"github.com/agbru/ndcore/internal/config"
	apperrors "github.com/agbru/ndcore/internal/errors"
	"github.com/agbru/ndcore/internal/logging"
	"github.com/agbru/ndcore/internal/tui"
	"github.com/agbru/ndcore/ndslice"
)

// mulPow5SpinnerThreshold is the exponent at or above which `bigint mulpow5`
// shows a spinner: for small k the op completes well under a frame.
const mulPow5SpinnerThreshold = 10000

// Version is the ndctl build version, overridable via -ldflags.
var Version = "dev"

// Application holds ndctl's parsed configuration and output sink.
type Application struct {
	Args      []string
	ErrWriter io.Writer
	Logger    logging.Logger
}

// New builds an Application over args (args[0] is the program name,
// matching os.Args); flags and subcommand are parsed when it runs.
func New(args []string, errWriter io.Writer) (*Application, error) {
	a := &Application{ErrWriter: errWriter, Logger: logging.NewDefaultLogger()}
	a.Args = args
	return a, nil
}

// HasVersionFlag reports whether args (without the program name) request
// --version.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-version" {
			return true
		}
	}
	return false
}

// PrintVersion writes ndctl's version string to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "ndctl %s\n", Version)
}

// IsHelpError reports whether err came from a -h/--help flag parse.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// Run dispatches to the requested subcommand and returns a process exit
// code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	rest := a.Args[1:]
	if len(rest) == 0 {
		fmt.Fprintln(a.ErrWriter, "usage: ndctl <bigint|slice|tui> ...  or  ndctl --completion=<shell>")
		return apperrors.ExitErrorConfig
	}

	if shell, ok := completionFlag(rest); ok {
		if err := cli.GenerateCompletion(out, shell); err != nil {
			cli.PresentError(a.ErrWriter, err)
			return apperrors.ExitErrorConfig
		}
		return apperrors.ExitSuccess
	}

	switch rest[0] {
	case "bigint":
		return a.runBigInt(rest[1:], out)
	case "slice":
		return a.runSlice(rest[1:], out)
	case "tui":
		return a.runTUI(ctx, out)
	default:
		fmt.Fprintf(a.ErrWriter, "unknown subcommand %q\n", rest[0])
		return apperrors.ExitErrorConfig
	}
}

// completionFlag extracts a --completion=<shell> argument if present.
func completionFlag(args []string) (shell string, ok bool) {
	const prefix = "--completion="
	for _, arg := range args {
		if strings.HasPrefix(arg, prefix) {
			return strings.TrimPrefix(arg, prefix), true
		}
	}
	return "", false
}

// runBigInt implements `ndctl bigint <op> <a> [b]`.
func (a *Application) runBigInt(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("bigint", flag.ContinueOnError)
	fs.SetOutput(a.ErrWriter)
	base := fs.String("base", "decimal", "output base: decimal, hex, binary")
	capacity := fs.Int("capacity", config.Capacity1024, "bigint word capacity")
	if err := fs.Parse(args); err != nil {
		return apperrors.ExitErrorConfig
	}
	rest := fs.Args()
	if len(rest) < 2 {
		fmt.Fprintln(a.ErrWriter, "usage: ndctl bigint <op> <a> [b]  (op: add, sub, mul, div, shl, shr, mulpow5)")
		return apperrors.ExitErrorConfig
	}
	op, aStr := rest[0], rest[1]

	lhs, err := parseOperand(aStr, *capacity)
	if err != nil {
		cli.PresentError(a.ErrWriter, err)
		return apperrors.ExitErrorGeneric
	}

	a.Logger.Debug("evaluating bigint op", logging.String("op", op), logging.Int("capacity", *capacity))

	var sp cli.Spinner
	if op == "mulpow5" && len(rest) > 2 {
		if n, convErr := strconv.ParseUint(rest[2], 10, 32); convErr == nil && n >= mulPow5SpinnerThreshold {
			sp = cli.NewSpinner()
			sp.UpdateSuffix(" computing mulpow5...")
			sp.Start()
		}
	}

	result, err := evalBigIntOp(op, lhs, rest[2:], *capacity)
	if sp != nil {
		sp.Stop()
	}
	if err != nil {
		a.Logger.Error("bigint op failed", err, logging.String("op", op))
		cli.PresentError(a.ErrWriter, err)
		return apperrors.ExitErrorGeneric
	}

	cli.PresentBigIntResult(out, op, formatBigInt(result, *base))
	return apperrors.ExitSuccess
}

func parseOperand(s string, capacity int) (*bigint.BigInt, error) {
	switch {
	case strings.HasPrefix(s, "0x"):
		return bigint.FromHexString(s[2:], capacity, true)
	case strings.HasPrefix(s, "-0x"):
		return bigint.FromHexString("-"+s[3:], capacity, true)
	case strings.HasPrefix(s, "0b"):
		return bigint.FromBinaryString(s[2:], capacity, true)
	case strings.HasPrefix(s, "-0b"):
		return bigint.FromBinaryString("-"+s[3:], capacity, true)
	default:
		return bigint.FromDecimalString(s, capacity)
	}
}

func formatBigInt(b *bigint.BigInt, base string) string {
	switch base {
	case "hex":
		return b.ToHexString(false)
	case "binary":
		return b.ToBinaryString()
	default:
		return b.String()
	}
}

func evalBigIntOp(op string, lhs *bigint.BigInt, rest []string, capacity int) (*bigint.BigInt, error) {
	result := bigint.New(capacity)
	switch op {
	case "add", "sub":
		if len(rest) < 1 {
			return nil, fmt.Errorf("bigint %s requires two operands", op)
		}
		rhs, err := parseOperand(rest[0], capacity)
		if err != nil {
			return nil, err
		}
		var overflow bool
		if op == "add" {
			overflow = result.Add(lhs.View(), rhs.View())
		} else {
			overflow = result.Sub(lhs.View(), rhs.View())
		}
		if overflow {
			return nil, &bigint.CapacityError{Op: op, Needed: capacity + 1, Capacity: capacity}
		}
		return result, nil
	case "mul":
		if len(rest) < 1 {
			return nil, fmt.Errorf("bigint mul requires a scalar operand")
		}
		scalar, err := strconv.ParseUint(rest[0], 10, 64)
		if err != nil {
			return nil, &bigint.ParseError{Kind: "decimal", Input: rest[0]}
		}
		result.Copy(lhs)
		result.MulAssign(bigint.Word(scalar), 0)
		return result, nil
	case "div":
		if len(rest) < 1 {
			return nil, fmt.Errorf("bigint div requires a scalar operand")
		}
		scalar, err := strconv.ParseUint(rest[0], 10, 64)
		if err != nil {
			return nil, &bigint.ParseError{Kind: "decimal", Input: rest[0]}
		}
		if scalar == 0 {
			return nil, fmt.Errorf("bigint div: division by zero")
		}
		result.Copy(lhs)
		result.DivAssign(bigint.Word(scalar), 0)
		return result, nil
	case "shl":
		n, err := shiftAmount(rest)
		if err != nil {
			return nil, err
		}
		result.Copy(lhs)
		result.ShlAssign(n)
		return result, nil
	case "shr":
		n, err := shiftAmount(rest)
		if err != nil {
			return nil, err
		}
		result.Copy(lhs)
		result.ShrAssign(n)
		return result, nil
	case "mulpow5":
		n, err := shiftAmount(rest)
		if err != nil {
			return nil, err
		}
		result.Copy(lhs)
		result.MulPow5(n)
		return result, nil
	default:
		return nil, fmt.Errorf("unknown bigint op %q", op)
	}
}

func shiftAmount(rest []string) (uint, error) {
	if len(rest) < 1 {
		return 0, fmt.Errorf("this op requires a shift amount")
	}
	n, err := strconv.ParseUint(rest[0], 10, 32)
	if err != nil {
		return 0, &bigint.ParseError{Kind: "decimal", Input: rest[0]}
	}
	return uint(n), nil
}

// runSlice implements `ndctl slice <op> <dims...>`.
func (a *Application) runSlice(args []string, out io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintln(a.ErrWriter, "usage: ndctl slice <op> <dims...>  (op: windows, blocks, diagonal, transpose, byDim, stride)")
		return apperrors.ExitErrorConfig
	}
	op := args[0]
	dims, err := parseDims(args[1:])
	if err != nil {
		cli.PresentError(a.ErrWriter, err)
		return apperrors.ExitErrorConfig
	}
	a.Logger.Debug("evaluating slice op", logging.String("op", op), logging.Int("rank", len(dims)))

	lengths, flat, err := evalSliceOp(op, dims)
	if err != nil {
		cli.PresentError(a.ErrWriter, err)
		return apperrors.ExitErrorGeneric
	}
	cli.PresentNestedInts(out, lengths, flat)
	return apperrors.ExitSuccess
}

func parseDims(args []string) ([]int, error) {
	dims := make([]int, len(args))
	for i, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid dimension %q", s)
		}
		dims[i] = n
	}
	return dims, nil
}

func evalSliceOp(op string, dims []int) (lengths []int, flat []int, err error) {
	src := ndslice.Iota(dims, 0, 1)
	switch op {
	case "iota":
		return materialize(src.Universal())
	case "windows":
		if len(dims) < 2 {
			return nil, nil, fmt.Errorf("windows needs <dims...> <width>")
		}
		width := dims[len(dims)-1]
		base := ndslice.Iota(dims[:len(dims)-1], 0, 1)
		rl := make([]int, base.Rank())
		for i := range rl {
			rl[i] = width
		}
		w := ndslice.Windows(base, rl)
		return materializeNested(w)
	case "blocks":
		if len(dims) < 2 {
			return nil, nil, fmt.Errorf("blocks needs <dims...> <blockSize>")
		}
		bs := dims[len(dims)-1]
		base := ndslice.Iota(dims[:len(dims)-1], 0, 1)
		rl := make([]int, base.Rank())
		for i := range rl {
			rl[i] = bs
		}
		blk := ndslice.Blocks(base, rl)
		return materializeNested(blk)
	case "diagonal":
		d := ndslice.Diagonal(src)
		return materialize(d)
	case "transpose":
		perm := make([]int, len(dims))
		for i := range perm {
			perm[i] = len(dims) - 1 - i
		}
		t := ndslice.Transpose(src, perm)
		return materialize(t)
	case "byDim":
		if len(dims) < 2 {
			return nil, nil, fmt.Errorf("byDim needs at least two dims")
		}
		bd := ndslice.ByDim(src, []int{0})
		return materializeNested(bd)
	case "stride":
		if len(dims) < 2 {
			return nil, nil, fmt.Errorf("stride needs <dims...> <factor>")
		}
		factor := dims[len(dims)-1]
		base := ndslice.Iota(dims[:len(dims)-1], 0, 1)
		s := ndslice.Stride(base, factor)
		return materialize(s)
	default:
		return nil, nil, fmt.Errorf("unknown slice op %q", op)
	}
}

// materialize flattens a Slice[int, K] in row-major order.
func materialize[K ndslice.Kind](s ndslice.Slice[int, K]) ([]int, []int, error) {
	n := s.Len()
	flat := make([]int, n)
	for k := 0; k < n; k++ {
		flat[k] = s.AtFlat(k)
	}
	return append([]int{}, s.Lengths...), flat, nil
}

// materializeNested flattens a Slice[Slice[int,Universal], Universal] of
// inner int slices into one flat row-major []int spanning outer and inner
// dimensions, for display via PresentNestedInts.
func materializeNested[K ndslice.Kind](s ndslice.Slice[ndslice.Slice[int, ndslice.Universal], K]) ([]int, []int, error) {
	n := s.Len()
	if n == 0 {
		return append([]int{}, s.Lengths...), nil, nil
	}
	first := s.AtFlat(0)
	innerLen := first.Len()
	lengths := append(append([]int{}, s.Lengths...), first.Lengths...)
	flat := make([]int, 0, n*innerLen)
	for k := 0; k < n; k++ {
		inner := s.AtFlat(k)
		for j := 0; j < inner.Len(); j++ {
			flat = append(flat, inner.AtFlat(j))
		}
	}
	return lengths, flat, nil
}

// runTUI launches the interactive dashboard.
func (a *Application) runTUI(ctx context.Context, _ io.Writer) int {
	return tui.Run(ctx, Version)
}
