package interp

import (
	"fmt"
	"math"
	"math/big"

	"github.com/google/uuid"

	"github.com/mathscript-lang/mathscript/internal/ast"
	"github.com/mathscript-lang/mathscript/internal/builtins"
	"github.com/mathscript-lang/mathscript/internal/mserrors"
	"github.com/mathscript-lang/mathscript/internal/numeric"
	"github.com/mathscript-lang/mathscript/internal/source"
	"github.com/mathscript-lang/mathscript/internal/value"
)

// Interpreter walks an ast.Node tree against a value.Environment, tracking
// the active call stack so runtime errors can render a traceback the way
// the reference implementation's Context chain does.
type Interpreter struct {
	Global *value.Environment
	ctx    *builtins.Context
	frames []mserrors.Frame

	// RunID is a random identifier assigned to each Interpreter, so every
	// top-level Run and every exec-nested run gets its own. No debug dump
	// prints it.
	RunID uuid.UUID
}

// New builds an Interpreter with a freshly seeded global environment. ctx
// supplies the builtins' side effects (stdout/stdin, RunFile for exec); a
// nil ctx falls back to builtins.DefaultContext().
func New(ctx *builtins.Context) *Interpreter {
	if ctx == nil {
		ctx = builtins.DefaultContext()
	}
	in := &Interpreter{Global: value.NewEnvironment(), ctx: ctx, RunID: uuid.New()}
	seedGlobals(in.Global, ctx.Version)
	return in
}

// seedGlobals binds the constants and built-in functions every program
// starts with, matching the reference implementation's global_symbol_table
// setup at module load time. "version" is bound first there, as String(f"v
// {version_str}"); we mirror that format here too.
func seedGlobals(env *value.Environment, version string) {
	env.Set("version", value.NewString("v"+version))
	env.Set("null", value.NewNull())
	env.Set("none", value.NewNull())
	env.Set("undefined", value.NewNull())
	env.Set("true", value.NewBoolean(true))
	env.Set("false", value.NewBoolean(false))
	env.Set("inf", value.NewDecimalV(numeric.DecimalFromFloat64(math.Inf(1))))
	env.Set("nan", value.NewDecimalV(numeric.DecimalFromFloat64(math.NaN())))
	env.Set("pi", value.NewDecimalV(numeric.NewDecimal(numeric.Pi())))
	env.Set("e", value.NewDecimalV(numeric.NewDecimal(numeric.E())))

	for _, name := range builtins.Names() {
		env.Set(name, value.NewBuiltin(name))
	}
}

// Run evaluates a whole program's top-level node, pushing a single
// "<program>" frame the way the reference Interpreter's '<program>' Context
// does, and unwraps the final signal into a plain (Value, error) pair for
// callers outside this package. For a statement list the value is that of
// its last statement (null for an empty program).
func (in *Interpreter) Run(filename string, node ast.Node) (value.Value, error) {
	in.pushFrame(node.Span().Start, "<program>")
	defer in.popFrame()

	sig := in.eval(node, in.Global)
	if sig.err != nil {
		return nil, sig.err
	}
	if sig.shouldReturn {
		return sig.returnValue, nil
	}
	if _, isProgram := node.(*ast.StatementList); isProgram {
		if list, isList := sig.value.(value.List); isList {
			if len(list.Elements) == 0 {
				return value.NewNull(), nil
			}
			return list.Elements[len(list.Elements)-1], nil
		}
	}
	return sig.value, nil
}

func (in *Interpreter) pushFrame(pos source.Position, displayName string) {
	in.frames = append(in.frames, mserrors.Frame{Pos: pos, DisplayName: displayName})
}

func (in *Interpreter) popFrame() {
	in.frames = in.frames[:len(in.frames)-1]
}

// framesSnapshot copies the active call stack for attaching to a runtime
// error, oldest frame first (the traceback's "most recent call last").
func (in *Interpreter) framesSnapshot() []mserrors.Frame {
	out := make([]mserrors.Frame, len(in.frames))
	copy(out, in.frames)
	return out
}

func (in *Interpreter) runtimeErr(span source.Span, detail string) error {
	return mserrors.NewRuntime(span.Start, span.End, detail, in.framesSnapshot())
}

func (in *Interpreter) runtimeErrf(span source.Span, format string, args ...any) error {
	return in.runtimeErr(span, fmt.Sprintf(format, args...))
}

// eval dispatches on node's concrete type, mirroring the reference
// Interpreter's visit_<ClassName> methods as one Go type switch.
func (in *Interpreter) eval(node ast.Node, env *value.Environment) signal {
	switch n := node.(type) {
	case *ast.IntegerLit:
		i, okInt := new(big.Int).SetString(n.Text, 10)
		if !okInt {
			return fail(in.runtimeErrf(n.Span(), "invalid integer literal %q", n.Text))
		}
		return ok(value.NewInteger(i))

	case *ast.DecimalLit:
		d, okDec := numeric.DecimalFromString(n.Text)
		if !okDec {
			return fail(in.runtimeErrf(n.Span(), "invalid decimal literal %q", n.Text))
		}
		return ok(value.NewDecimalV(d))

	case *ast.ComplexLit:
		mag, okDec := numeric.DecimalFromString(n.ImagText)
		if !okDec {
			return fail(in.runtimeErrf(n.Span(), "invalid complex literal %q", n.ImagText))
		}
		zero := numeric.DecimalFromInt64(0)
		return ok(value.NewComplexV(numeric.NewComplex(zero.Big(), mag.Big())))

	case *ast.StringLit:
		return ok(value.NewString(n.Value))

	case *ast.ListLit:
		return in.evalSequence(n.Elements, env)

	case *ast.StatementList:
		return in.evalSequence(n.Statements, env)

	case *ast.Pass:
		return ok(value.NewNull())

	case *ast.VarAccess:
		v, found := env.Get(n.Name)
		if !found {
			return fail(in.runtimeErrf(n.Span(), "%q is not defined", n.Name))
		}
		return ok(v)

	case *ast.VarAssign:
		sig := in.eval(n.Value, env)
		if sig.shouldUnwind() {
			return sig
		}
		env.Set(n.Name, sig.value)
		return ok(sig.value)

	case *ast.BinOp:
		return in.evalBinOp(n, env)

	case *ast.UnaryOp:
		return in.evalUnaryOp(n, env)

	case *ast.If:
		return in.evalIf(n, env)

	case *ast.For:
		return in.evalFor(n, env)

	case *ast.While:
		return in.evalWhile(n, env)

	case *ast.FuncDef:
		return in.evalFuncDef(n, env)

	case *ast.Call:
		return in.evalCall(n, env)

	case *ast.Return:
		if n.Value == nil {
			return retSignal(value.NewNull())
		}
		sig := in.eval(n.Value, env)
		if sig.shouldUnwind() {
			return sig
		}
		return retSignal(sig.value)

	case *ast.Continue:
		return continueSignal()

	case *ast.Break:
		return breakSignal()

	default:
		return fail(in.runtimeErrf(node.Span(), "no eval method defined for %T", node))
	}
}

// evalSequence evaluates each node in order, stopping at the first unwind
// (error, return, continue or break), and otherwise collects every
// statement's value into a List — the reference implementation parses a
// program body, a list literal, and a block body into the very same
// ListNode, and visit_ListNode is what gives every one of those its value.
func (in *Interpreter) evalSequence(nodes []ast.Node, env *value.Environment) signal {
	elements := make([]value.Value, 0, len(nodes))
	for _, node := range nodes {
		sig := in.eval(node, env)
		if sig.shouldUnwind() {
			return sig
		}
		elements = append(elements, sig.value)
	}
	return ok(value.NewList(elements))
}
