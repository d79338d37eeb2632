// Package interp tree-walks an internal/ast program against an
// internal/value.Environment, the same recursive-descent evaluation shape as
// the reference Interpreter's visit_* dispatch, generalized to a Go type
// switch over ast.Node since Go has no reflection-free visitor generation.
package interp

import "github.com/mathscript-lang/mathscript/internal/value"

// signal carries an evaluation's outcome the way the reference
// implementation's RTResult does: a value plus three independent control-flow
// flags, so a single return type can represent "produced a value", "hit an
// error", and "unwound for return/continue/break" without a sum type.
type signal struct {
	value      value.Value
	err        error
	errSpanSet bool // true if err should be reported at a span other than the node's own

	shouldReturn   bool
	returnValue    value.Value
	shouldContinue bool
	shouldBreak    bool
}

func ok(v value.Value) signal { return signal{value: v} }

func fail(err error) signal { return signal{err: err} }

func retSignal(v value.Value) signal { return signal{shouldReturn: true, returnValue: v} }

func continueSignal() signal { return signal{shouldContinue: true} }

func breakSignal() signal { return signal{shouldBreak: true} }

// shouldUnwind reports whether evaluation of the current statement list
// should stop early: an error, or any of the three unwinding flags, mirrors
// RTResult.should_return().
func (s signal) shouldUnwind() bool {
	return s.err != nil || s.shouldReturn || s.shouldContinue || s.shouldBreak
}
