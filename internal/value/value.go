// Package value implements MathScript's runtime value model: the numeric
// tower (Integer, Decimal, Complex, Boolean), the null family, strings,
// heterogeneous lists, and first-class functions, plus the lexically scoped
// Environment that holds them. Every binary/unary operation mirrors the
// coercion table of the reference implementation's Value subclasses, double
// dispatching on the concrete type of its operand.
package value

import "fmt"

// Value is satisfied by every runtime value kind. Operations return a plain
// error on failure; the interpreter is responsible for attaching source
// position and call-stack context when it turns that error into a
// diagnostic, since Value itself carries no position.
type Value interface {
	Type() string
	IsTrue() bool
	String() string

	Add(Value) (Value, error)
	Sub(Value) (Value, error)
	Mul(Value) (Value, error)
	Div(Value) (Value, error)
	Pow(Value) (Value, error)
	Subscript(Value) (Value, error)

	CmpEq(Value) (Value, error)
	CmpNe(Value) (Value, error)
	CmpLt(Value) (Value, error)
	CmpGt(Value) (Value, error)
	CmpLte(Value) (Value, error)
	CmpGte(Value) (Value, error)

	And(Value) (Value, error)
	Or(Value) (Value, error)
	Not() (Value, error)
}

// illegalOp reports an unsupported unary/binary operation, matching the
// reference implementation's Value.illegal_operation.
func illegalOp(op, selfKind string, other Value) error {
	if other == nil {
		return fmt.Errorf("Illegal operation %q for %s", op, selfKind)
	}
	return fmt.Errorf("Illegal operation %q between %s and %s", op, selfKind, other.Type())
}

// ErrDivisionByZero is returned by Div when the right operand is zero; the
// interpreter recognizes it to point the resulting error at the divisor's
// span rather than the whole expression's.
var ErrDivisionByZero = fmt.Errorf("Division by zero (cause undefined, it approaches -inf when approaching 0 from the negative and +inf when approaching 0 from the positive)")

// ErrIndexOutOfBounds is returned by Subscript for an out-of-range index;
// the interpreter points the resulting error at the index expression's span.
var ErrIndexOutOfBounds = fmt.Errorf("index out of bounds")

// unsupported is embedded by every concrete Value type to provide the
// illegal-operation default for whichever operations that type doesn't
// override. A concrete type's own method of the same name masks this one
// via Go's method promotion, so each type only needs to implement the
// operations the coercion table actually grants it.
type unsupported struct{ kind string }

func (u unsupported) Add(other Value) (Value, error)       { return nil, illegalOp("+", u.kind, other) }
func (u unsupported) Sub(other Value) (Value, error)       { return nil, illegalOp("-", u.kind, other) }
func (u unsupported) Mul(other Value) (Value, error)       { return nil, illegalOp("*", u.kind, other) }
func (u unsupported) Div(other Value) (Value, error)       { return nil, illegalOp("/", u.kind, other) }
func (u unsupported) Pow(other Value) (Value, error)       { return nil, illegalOp("^", u.kind, other) }
func (u unsupported) Subscript(other Value) (Value, error) { return nil, illegalOp("_", u.kind, other) }

func (u unsupported) CmpEq(other Value) (Value, error)  { return nil, illegalOp("==", u.kind, other) }
func (u unsupported) CmpNe(other Value) (Value, error)  { return nil, illegalOp("!=", u.kind, other) }
func (u unsupported) CmpLt(other Value) (Value, error)  { return nil, illegalOp("<", u.kind, other) }
func (u unsupported) CmpGt(other Value) (Value, error)  { return nil, illegalOp(">", u.kind, other) }
func (u unsupported) CmpLte(other Value) (Value, error) { return nil, illegalOp("<=", u.kind, other) }
func (u unsupported) CmpGte(other Value) (Value, error) { return nil, illegalOp(">=", u.kind, other) }

func (u unsupported) And(other Value) (Value, error) { return nil, illegalOp("and", u.kind, other) }
func (u unsupported) Or(other Value) (Value, error)  { return nil, illegalOp("or", u.kind, other) }
func (u unsupported) Not() (Value, error)            { return nil, illegalOp("not", u.kind, nil) }
