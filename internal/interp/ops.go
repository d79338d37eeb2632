package interp

import (
	"github.com/mathscript-lang/mathscript/internal/ast"
	"github.com/mathscript-lang/mathscript/internal/value"
)

// evalBinOp evaluates both operands unconditionally (the grammar never
// short-circuits and/or) and dispatches to the matching Value method.
func (in *Interpreter) evalBinOp(n *ast.BinOp, env *value.Environment) signal {
	left := in.eval(n.Left, env)
	if left.shouldUnwind() {
		return left
	}
	right := in.eval(n.Right, env)
	if right.shouldUnwind() {
		return right
	}

	l, r := left.value, right.value
	var result value.Value
	var err error

	switch n.Op {
	case "+":
		result, err = l.Add(r)
	case "-":
		result, err = l.Sub(r)
	case "*":
		result, err = l.Mul(r)
	case "/":
		result, err = l.Div(r)
	case "^":
		result, err = l.Pow(r)
	case "_":
		result, err = l.Subscript(r)
	case "==":
		result, err = l.CmpEq(r)
	case "!=":
		result, err = l.CmpNe(r)
	case "<":
		result, err = l.CmpLt(r)
	case ">":
		result, err = l.CmpGt(r)
	case "<=":
		result, err = l.CmpLte(r)
	case ">=":
		result, err = l.CmpGte(r)
	case "and":
		result, err = l.And(r)
	case "or":
		result, err = l.Or(r)
	default:
		return fail(in.runtimeErrf(n.Span(), "unknown operator %q", n.Op))
	}

	if err != nil {
		if err == value.ErrDivisionByZero || err == value.ErrIndexOutOfBounds {
			return fail(in.runtimeErr(n.Right.Span(), err.Error()))
		}
		return fail(in.runtimeErr(n.Span(), err.Error()))
	}
	return ok(result)
}

func (in *Interpreter) evalUnaryOp(n *ast.UnaryOp, env *value.Environment) signal {
	operand := in.eval(n.Node, env)
	if operand.shouldUnwind() {
		return operand
	}

	switch n.Op {
	case "-":
		result, err := operand.value.Mul(value.NewIntegerInt64(-1))
		if err != nil {
			return fail(in.runtimeErr(n.Span(), err.Error()))
		}
		return ok(result)
	case "not":
		result, err := operand.value.Not()
		if err != nil {
			return fail(in.runtimeErr(n.Span(), err.Error()))
		}
		return ok(result)
	default:
		// Unary "+" is a no-op: the reference implementation's
		// visit_UnaryOpNode only special-cases MINUS and "not".
		return operand
	}
}

func (in *Interpreter) evalIf(n *ast.If, env *value.Environment) signal {
	for _, c := range n.Cases {
		cond := in.eval(c.Condition, env)
		if cond.shouldUnwind() {
			return cond
		}
		if !cond.value.IsTrue() {
			continue
		}
		body := in.eval(c.Body, env)
		if body.shouldUnwind() {
			return body
		}
		if c.ShouldReturnNull {
			return ok(value.NewNull())
		}
		return body
	}

	if n.ElseBody == nil {
		return ok(value.NewNull())
	}
	body := in.eval(n.ElseBody, env)
	if body.shouldUnwind() {
		return body
	}
	if n.ElseNull {
		return ok(value.NewNull())
	}
	return body
}

func (in *Interpreter) evalFor(n *ast.For, env *value.Environment) signal {
	start := in.eval(n.StartValue, env)
	if start.shouldUnwind() {
		return start
	}
	end := in.eval(n.EndValue, env)
	if end.shouldUnwind() {
		return end
	}

	var step value.Value = value.NewIntegerInt64(1)
	if n.StepValue != nil {
		s := in.eval(n.StepValue, env)
		if s.shouldUnwind() {
			return s
		}
		step = s.value
	}

	zero := value.NewIntegerInt64(0)
	isZero, err := step.CmpEq(zero)
	if err != nil {
		return fail(in.runtimeErr(n.Span(), err.Error()))
	}
	if isZero.IsTrue() {
		return fail(in.runtimeErr(n.Span(), "Cannot iterate over sequence with step of zero."))
	}
	ascendingV, err := step.CmpGt(zero)
	if err != nil {
		return fail(in.runtimeErr(n.Span(), err.Error()))
	}
	ascending := ascendingV.IsTrue()

	cur := start.value
	var elements []value.Value

	for {
		var cont value.Value
		var cmpErr error
		if ascending {
			cont, cmpErr = cur.CmpLt(end.value)
		} else {
			cont, cmpErr = cur.CmpGt(end.value)
		}
		if cmpErr != nil {
			return fail(in.runtimeErr(n.Span(), cmpErr.Error()))
		}
		if !cont.IsTrue() {
			break
		}

		env.Set(n.VarName, cur)
		next, addErr := cur.Add(step)
		if addErr != nil {
			return fail(in.runtimeErr(n.Span(), addErr.Error()))
		}
		cur = next

		body := in.eval(n.Body, env)
		if body.err != nil {
			return body
		}
		if body.shouldReturn {
			return body
		}
		if body.shouldContinue {
			continue
		}
		if body.shouldBreak {
			break
		}
		elements = append(elements, body.value)
	}

	if n.ShouldReturnNull {
		return ok(value.NewNull())
	}
	return ok(value.NewList(elements))
}

func (in *Interpreter) evalWhile(n *ast.While, env *value.Environment) signal {
	var elements []value.Value

	for {
		cond := in.eval(n.Condition, env)
		if cond.shouldUnwind() {
			return cond
		}
		if !cond.value.IsTrue() {
			break
		}

		body := in.eval(n.Body, env)
		if body.err != nil {
			return body
		}
		if body.shouldReturn {
			return body
		}
		if body.shouldContinue {
			continue
		}
		if body.shouldBreak {
			break
		}
		elements = append(elements, body.value)
	}

	if n.ShouldReturnNull {
		return ok(value.NewNull())
	}
	return ok(value.NewList(elements))
}

// evalFuncDef builds a Function value, evaluating each optional parameter's
// default expression once against the defining scope. Unlike the reference
// implementation (whose visit_FuncDefNode always yields None, leaving
// anonymous function literals unusable as values), a func expression here
// evaluates to the function itself, so "f = func(x) => x + 1" works the way
// the grammar's expression-oriented design implies.
func (in *Interpreter) evalFuncDef(n *ast.FuncDef, env *value.Environment) signal {
	optional := make([]value.OptionalParam, 0, len(n.OptionalParams))
	for _, p := range n.OptionalParams {
		def := in.eval(p.Default, env)
		if def.shouldUnwind() {
			return def
		}
		optional = append(optional, value.OptionalParam{Name: p.Name, Default: def.value})
	}

	fn := value.NewFunction(n.Name, n.ParamNames, optional, n.Body, n.ShouldAutoReturn, env)
	if n.Name != "" {
		env.Set(n.Name, fn)
	}
	return ok(fn)
}

func (in *Interpreter) evalCall(n *ast.Call, env *value.Environment) signal {
	calleeSig := in.eval(n.Callee, env)
	if calleeSig.shouldUnwind() {
		return calleeSig
	}

	var positional []value.Value
	keyword := map[string]value.Value{}

	for _, argNode := range n.Args {
		if assign, isAssign := argNode.(*ast.VarAssign); isAssign {
			v := in.eval(assign.Value, env)
			if v.shouldUnwind() {
				return v
			}
			keyword[assign.Name] = v.value
			continue
		}
		v := in.eval(argNode, env)
		if v.shouldUnwind() {
			return v
		}
		positional = append(positional, v.value)
	}

	switch callee := calleeSig.value.(type) {
	case value.Function:
		return in.callFunction(callee, n.Span(), positional, keyword)
	case value.Builtin:
		return in.callBuiltin(callee, n.Span(), positional, keyword)
	default:
		return fail(in.runtimeErrf(n.Span(), "%s is not callable", calleeSig.value.Type()))
	}
}
