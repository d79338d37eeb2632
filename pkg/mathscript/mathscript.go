// Package mathscript is the public entry point for embedding the language:
// lex, parse and evaluate a program and get back its result value, the same
// two-call surface the teacher grants external collaborators through
// internal/interp/runner and pkg/dwscript — a Run function plus a version
// string, nothing else.
package mathscript

import (
	"bufio"
	"io"
	"os"

	"github.com/mathscript-lang/mathscript/internal/builtins"
	"github.com/mathscript-lang/mathscript/internal/interp"
	"github.com/mathscript-lang/mathscript/internal/lexer"
	"github.com/mathscript-lang/mathscript/internal/numeric"
	"github.com/mathscript-lang/mathscript/internal/parser"
	"github.com/mathscript-lang/mathscript/internal/value"
)

// Version is the language/implementation version reported by the CLI's
// banner and "-V" flag.
const Version = "1.0.0"

// Options configures one Run call. The zero value runs against os.Stdout,
// a buffered os.Stdin, and os.Exit — the same defaults
// builtins.DefaultContext wires for a bare CLI invocation. Run never reads
// environment variables itself; cmd/mathscript is solely responsible for
// translating MATHSCRIPT_DPS/MATHSCRIPT_DEBUG/NO_COLOR into an Options
// value, so the core stays environment-agnostic and testable.
type Options struct {
	Stdout io.Writer
	Stdin  io.Reader
	Exit   func(code int)

	// PrecisionDigits, if non-zero, raises the numeric tower's working
	// precision floor for this process (numeric.SetPrecisionDigits never
	// lowers it). Typically sourced from MATHSCRIPT_DPS.
	PrecisionDigits int
}

// Run lexes, parses and evaluates source under filename, returning the
// program's final value. A program run via the exec built-in recurses into
// runWith through the RunFile hook wired below, so nested runs share this
// same pipeline and error formatting.
func Run(filename, source string, opts Options) (value.Value, error) {
	if opts.PrecisionDigits > 0 {
		numeric.SetPrecisionDigits(opts.PrecisionDigits)
	}

	ctx := newContext(opts)
	return runWith(ctx, filename, source)
}

// runWith evaluates one program under an already-built builtins.Context,
// shared by Run (top-level) and the RunFile closure exec calls into.
func runWith(ctx *builtins.Context, filename, src string) (value.Value, error) {
	tokens, err := lexer.Tokenize(filename, src)
	if err != nil {
		return nil, err
	}

	node, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}

	in := interp.New(ctx)
	return in.Run(filename, node)
}

// newContext builds the builtins.Context for a Run call, wiring RunFile back
// to this same pipeline so exec can run nested programs without
// internal/builtins importing this package. RunFile closes over this same
// Context, so nested runs share its Stdout, Stdin and Exit and can call exec
// again themselves.
func newContext(opts Options) *builtins.Context {
	ctx := &builtins.Context{
		Stdout:  opts.Stdout,
		Exit:    opts.Exit,
		Version: Version,
	}
	if ctx.Stdout == nil {
		ctx.Stdout = os.Stdout
	}
	if ctx.Exit == nil {
		ctx.Exit = os.Exit
	}
	if opts.Stdin != nil {
		ctx.Stdin = bufio.NewReader(opts.Stdin)
	} else {
		ctx.Stdin = bufio.NewReader(os.Stdin)
	}

	ctx.RunFile = func(filename, source string) (value.Value, error) {
		return runWith(ctx, filename, source)
	}
	return ctx
}
