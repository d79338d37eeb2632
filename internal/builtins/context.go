// Package builtins implements MathScript's native functions: print, input,
// clear, exit, type, sin, cos, exec and length. Each is grounded on the
// reference implementation's BuiltInFunction.execute_* methods, declaring
// the same positional/optional argument shape so internal/interp can
// validate and bind call arguments identically for built-ins and
// user-defined functions.
//
// This package depends only on internal/value, internal/mserrors and
// internal/source — never on internal/interp or pkg/mathscript — so that
// exec (which needs to run another MathScript program) takes its RunFile
// callback injected through Context rather than importing the package that
// would otherwise close the cycle back here.
package builtins

import (
	"bufio"
	"io"
	"os"

	"github.com/mathscript-lang/mathscript/internal/value"
)

// RunFile executes source text under filename (a real path, or "<code>" for
// an inline exec string) and returns the program's result value, the same
// shape pkg/mathscript.Run exposes publicly. Injected by pkg/mathscript at
// wiring time so this package never has to import it.
type RunFile func(filename, source string) (value.Value, error)

// Context carries the built-ins' side effects: where print/input talk to,
// how exit terminates the process, and the RunFile hook exec calls into.
type Context struct {
	Stdout  io.Writer
	Stdin   *bufio.Reader
	Exit    func(code int)
	RunFile RunFile

	// Version is the implementation version string seeded into the global
	// table as "version" (e.g. "1.0.0"), without the leading "v" — internal/interp
	// adds that prefix the same way the reference implementation's
	// version_str is formatted into "v<version_str>".
	Version string
}

// DefaultContext wires the built-ins to the real process: os.Stdout,
// buffered os.Stdin, and os.Exit.
func DefaultContext() *Context {
	return &Context{
		Stdout: os.Stdout,
		Stdin:  bufio.NewReader(os.Stdin),
		Exit:   os.Exit,
	}
}
