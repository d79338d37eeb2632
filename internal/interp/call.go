package interp

import (
	"github.com/mathscript-lang/mathscript/internal/ast"
	"github.com/mathscript-lang/mathscript/internal/builtins"
	"github.com/mathscript-lang/mathscript/internal/source"
	"github.com/mathscript-lang/mathscript/internal/value"
)

// callFunction binds args into a new scope closed over fn's defining
// environment and evaluates its body, matching BaseFunction.check_args /
// populate_args: positional args must exactly match the required parameter
// count (extras can only be supplied by name, against an optional
// parameter), and unclaimed optional parameters fall back to the default
// value captured at definition time.
func (in *Interpreter) callFunction(fn value.Function, span source.Span, positional []value.Value, keyword map[string]value.Value) signal {
	required := fn.ParamNames
	if len(positional) != len(required) {
		if len(positional) > len(required) {
			return fail(in.runtimeErrf(span, "%d too many args passed into '%s'", len(positional)-len(required), fn.Name))
		}
		return fail(in.runtimeErrf(span, "%d too few args passed into '%s'", len(required)-len(positional), fn.Name))
	}

	callEnv := value.NewChildEnvironment(fn.Closure)
	for i, name := range required {
		callEnv.Set(name, positional[i])
	}
	for _, opt := range fn.OptionalParams {
		v := opt.Default
		if supplied, has := keyword[opt.Name]; has {
			v = supplied
		}
		callEnv.Set(opt.Name, v)
	}

	body, isNode := fn.Body.(ast.Node)
	if !isNode {
		return fail(in.runtimeErrf(span, "function '%s' has no body", fn.Name))
	}

	in.pushFrame(span.Start, fn.Name)
	result := in.eval(body, callEnv)
	in.popFrame()

	if result.err != nil {
		return result
	}
	if result.shouldContinue || result.shouldBreak {
		return fail(in.runtimeErr(span, "'continue' / 'break' used outside of a loop"))
	}

	// Mirrors "(value if should_auto_return else None) or func_return_value
	// or NullType()": an auto-return arrow body's value wins first, then an
	// explicit return's value, else null.
	var out value.Value
	switch {
	case fn.ShouldAutoReturn && result.value != nil:
		out = result.value
	case result.shouldReturn && result.returnValue != nil:
		out = result.returnValue
	default:
		out = value.NewNull()
	}
	return ok(out)
}

// callBuiltin validates and binds args against the built-in's declared
// signature the same way callFunction does for user functions, then
// dispatches into internal/builtins.
func (in *Interpreter) callBuiltin(fn value.Builtin, span source.Span, positional []value.Value, keyword map[string]value.Value) signal {
	spec, found := builtins.Lookup(fn.Name)
	if !found {
		return fail(in.runtimeErrf(span, "no execute method defined for '%s'", fn.Name))
	}

	required := spec.PositionalArgs
	if len(positional) != len(required) {
		if len(positional) > len(required) {
			return fail(in.runtimeErrf(span, "%d too many args passed into '%s'", len(positional)-len(required), fn.Name))
		}
		return fail(in.runtimeErrf(span, "%d too few args passed into '%s'", len(required)-len(positional), fn.Name))
	}

	args := make(map[string]value.Value, len(required)+len(spec.OptionalArgs))
	for i, name := range required {
		args[name] = positional[i]
	}
	for _, opt := range spec.OptionalArgs {
		v := opt.Default
		if supplied, has := keyword[opt.Name]; has {
			v = supplied
		}
		args[opt.Name] = v
	}

	in.pushFrame(span.Start, "<built-in function "+fn.Name+">")
	result, err := spec.Fn(in.ctx, args)
	in.popFrame()

	if err != nil {
		return fail(in.runtimeErr(span, err.Error()))
	}
	if result == nil {
		result = value.NewNull()
	}
	return ok(result)
}
