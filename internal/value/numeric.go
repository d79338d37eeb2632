package value

import (
	"math/big"

	"github.com/mathscript-lang/mathscript/internal/numeric"
)

// Integer is an arbitrary-precision whole number.
type Integer struct {
	unsupported
	V *big.Int
}

// NewInteger builds an Integer runtime value.
func NewInteger(v *big.Int) Integer { return Integer{unsupported: unsupported{kind: "Integer"}, V: v} }

// NewIntegerInt64 builds an Integer from a plain int64.
func NewIntegerInt64(v int64) Integer { return NewInteger(big.NewInt(v)) }

func (i Integer) Type() string   { return "Integer" }
func (i Integer) String() string { return i.V.String() }
func (i Integer) IsTrue() bool   { return i.V.Sign() != 0 }

func (i Integer) Add(other Value) (Value, error) {
	switch o := other.(type) {
	case Integer:
		return NewInteger(new(big.Int).Add(i.V, o.V)), nil
	case Boolean:
		return i.Add(o.asInteger())
	case DecimalV:
		return NewDecimalV(numeric.DecimalFromBigInt(i.V).Add(o.V)), nil
	case ComplexV:
		return NewComplexV(numeric.ComplexFromReal(numeric.DecimalFromBigInt(i.V)).Add(o.V)), nil
	default:
		return i.unsupported.Add(other)
	}
}

func (i Integer) Sub(other Value) (Value, error) {
	switch o := other.(type) {
	case Integer:
		return NewInteger(new(big.Int).Sub(i.V, o.V)), nil
	case Boolean:
		return i.Sub(o.asInteger())
	case DecimalV:
		return NewDecimalV(numeric.DecimalFromBigInt(i.V).Sub(o.V)), nil
	case ComplexV:
		return NewComplexV(numeric.ComplexFromReal(numeric.DecimalFromBigInt(i.V)).Sub(o.V)), nil
	default:
		return i.unsupported.Sub(other)
	}
}

func (i Integer) Mul(other Value) (Value, error) {
	switch o := other.(type) {
	case Integer:
		return NewInteger(new(big.Int).Mul(i.V, o.V)), nil
	case Boolean:
		return i.Mul(o.asInteger())
	case DecimalV:
		return NewDecimalV(numeric.DecimalFromBigInt(i.V).Mul(o.V)), nil
	case ComplexV:
		return NewComplexV(numeric.ComplexFromReal(numeric.DecimalFromBigInt(i.V)).Mul(o.V)), nil
	case String:
		return repeatString(o.V, i.V)
	default:
		return i.unsupported.Mul(other)
	}
}

func (i Integer) Div(other Value) (Value, error) {
	switch o := other.(type) {
	case Integer:
		if o.V.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		return NewDecimalV(numeric.DecimalFromBigInt(i.V).Div(numeric.DecimalFromBigInt(o.V))), nil
	case Boolean:
		if !o.V {
			return nil, ErrDivisionByZero
		}
		return i, nil
	case DecimalV:
		if o.V.IsZero() {
			return nil, ErrDivisionByZero
		}
		return NewDecimalV(numeric.DecimalFromBigInt(i.V).Div(o.V)), nil
	case ComplexV:
		if o.V.IsZero() {
			return nil, ErrDivisionByZero
		}
		return NewComplexV(numeric.ComplexFromReal(numeric.DecimalFromBigInt(i.V)).Div(o.V)), nil
	default:
		return i.unsupported.Div(other)
	}
}

func (i Integer) Pow(other Value) (Value, error) {
	switch o := other.(type) {
	case Integer:
		if i.V.Sign() < 0 {
			return NewComplexV(complexPow(numeric.ComplexFromReal(numeric.DecimalFromBigInt(i.V)), numeric.ComplexFromReal(numeric.DecimalFromBigInt(o.V)))), nil
		}
		if o.V.Sign() >= 0 && o.V.IsInt64() {
			return NewInteger(new(big.Int).Exp(i.V, o.V, nil)), nil
		}
		return NewDecimalV(numeric.DecimalFromBigInt(i.V).Pow(numeric.DecimalFromBigInt(o.V))), nil
	case DecimalV:
		base := numeric.DecimalFromBigInt(i.V)
		if i.V.Sign() < 0 && !o.V.IsInteger() {
			return NewComplexV(complexPow(numeric.ComplexFromReal(base), numeric.ComplexFromReal(o.V))), nil
		}
		return NewDecimalV(base.Pow(o.V)), nil
	case Boolean:
		return i.Pow(o.asInteger())
	case ComplexV:
		return NewComplexV(complexPow(numeric.ComplexFromReal(numeric.DecimalFromBigInt(i.V)), o.V)), nil
	default:
		return i.unsupported.Pow(other)
	}
}

func (i Integer) CmpEq(other Value) (Value, error) { return NewBoolean(valuesEqual(i, other)), nil }
func (i Integer) CmpNe(other Value) (Value, error) { return NewBoolean(!valuesEqual(i, other)), nil }
func (i Integer) CmpLt(other Value) (Value, error) { return NewBoolean(compareOrdered(i, other) < 0), nil }
func (i Integer) CmpGt(other Value) (Value, error) { return NewBoolean(compareOrdered(i, other) > 0), nil }
func (i Integer) CmpLte(other Value) (Value, error) {
	return NewBoolean(compareOrdered(i, other) <= 0), nil
}
func (i Integer) CmpGte(other Value) (Value, error) {
	return NewBoolean(compareOrdered(i, other) >= 0), nil
}

func (i Integer) And(other Value) (Value, error) { return logicalAnd(i, other) }
func (i Integer) Or(other Value) (Value, error)  { return logicalOr(i, other) }
func (i Integer) Not() (Value, error)            { return NewBoolean(!i.IsTrue()), nil }

// DecimalV is an arbitrary-precision real number.
type DecimalV struct {
	unsupported
	V numeric.Decimal
}

func NewDecimalV(v numeric.Decimal) DecimalV {
	return DecimalV{unsupported: unsupported{kind: "Decimal"}, V: v}
}

func (d DecimalV) Type() string   { return "Decimal" }
func (d DecimalV) String() string { return d.V.String() }
func (d DecimalV) IsTrue() bool   { return !d.V.IsZero() }

func (d DecimalV) Add(other Value) (Value, error) {
	switch o := other.(type) {
	case Integer:
		return NewDecimalV(d.V.Add(numeric.DecimalFromBigInt(o.V))), nil
	case Boolean:
		return d.Add(o.asInteger())
	case DecimalV:
		return NewDecimalV(d.V.Add(o.V)), nil
	case ComplexV:
		return NewComplexV(numeric.ComplexFromReal(d.V).Add(o.V)), nil
	default:
		return d.unsupported.Add(other)
	}
}

func (d DecimalV) Sub(other Value) (Value, error) {
	switch o := other.(type) {
	case Integer:
		return NewDecimalV(d.V.Sub(numeric.DecimalFromBigInt(o.V))), nil
	case Boolean:
		return d.Sub(o.asInteger())
	case DecimalV:
		return NewDecimalV(d.V.Sub(o.V)), nil
	case ComplexV:
		return NewComplexV(numeric.ComplexFromReal(d.V).Sub(o.V)), nil
	default:
		return d.unsupported.Sub(other)
	}
}

func (d DecimalV) Mul(other Value) (Value, error) {
	switch o := other.(type) {
	case Integer:
		return NewDecimalV(d.V.Mul(numeric.DecimalFromBigInt(o.V))), nil
	case Boolean:
		return d.Mul(o.asInteger())
	case DecimalV:
		return NewDecimalV(d.V.Mul(o.V)), nil
	case ComplexV:
		return NewComplexV(numeric.ComplexFromReal(d.V).Mul(o.V)), nil
	case String:
		return repeatString(o.V, decimalToBigInt(d.V))
	default:
		return d.unsupported.Mul(other)
	}
}

func (d DecimalV) Div(other Value) (Value, error) {
	switch o := other.(type) {
	case Boolean:
		if !o.V {
			return nil, ErrDivisionByZero
		}
		return d, nil
	case Integer:
		if o.V.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		return NewDecimalV(d.V.Div(numeric.DecimalFromBigInt(o.V))), nil
	case DecimalV:
		if o.V.IsZero() {
			return nil, ErrDivisionByZero
		}
		return NewDecimalV(d.V.Div(o.V)), nil
	case ComplexV:
		if o.V.IsZero() {
			return nil, ErrDivisionByZero
		}
		return NewComplexV(numeric.ComplexFromReal(d.V).Div(o.V)), nil
	default:
		return d.unsupported.Div(other)
	}
}

func (d DecimalV) Pow(other Value) (Value, error) {
	switch o := other.(type) {
	case Integer:
		return d.Pow(NewDecimalV(numeric.DecimalFromBigInt(o.V)))
	case Boolean:
		return d.Pow(o.asInteger())
	case DecimalV:
		if d.V.Sign() < 0 && !o.V.IsInteger() {
			return NewComplexV(complexPow(numeric.ComplexFromReal(d.V), numeric.ComplexFromReal(o.V))), nil
		}
		return NewDecimalV(d.V.Pow(o.V)), nil
	case ComplexV:
		return NewComplexV(complexPow(numeric.ComplexFromReal(d.V), o.V)), nil
	default:
		return d.unsupported.Pow(other)
	}
}

func (d DecimalV) CmpEq(other Value) (Value, error) { return NewBoolean(valuesEqual(d, other)), nil }
func (d DecimalV) CmpNe(other Value) (Value, error) { return NewBoolean(!valuesEqual(d, other)), nil }
func (d DecimalV) CmpLt(other Value) (Value, error) {
	return NewBoolean(compareOrdered(d, other) < 0), nil
}
func (d DecimalV) CmpGt(other Value) (Value, error) {
	return NewBoolean(compareOrdered(d, other) > 0), nil
}
func (d DecimalV) CmpLte(other Value) (Value, error) {
	return NewBoolean(compareOrdered(d, other) <= 0), nil
}
func (d DecimalV) CmpGte(other Value) (Value, error) {
	return NewBoolean(compareOrdered(d, other) >= 0), nil
}

func (d DecimalV) And(other Value) (Value, error) { return logicalAnd(d, other) }
func (d DecimalV) Or(other Value) (Value, error)  { return logicalOr(d, other) }
func (d DecimalV) Not() (Value, error)            { return NewBoolean(!d.IsTrue()), nil }

// ComplexV is an arbitrary-precision complex number.
type ComplexV struct {
	unsupported
	V numeric.Complex
}

func NewComplexV(v numeric.Complex) ComplexV {
	return ComplexV{unsupported: unsupported{kind: "Complex"}, V: v}
}

func (c ComplexV) Type() string   { return "Complex" }
func (c ComplexV) String() string { return c.V.String() }
func (c ComplexV) IsTrue() bool   { return !c.V.IsZero() }

func (c ComplexV) toOperand(other Value) (numeric.Complex, bool) {
	switch o := other.(type) {
	case Integer:
		return numeric.ComplexFromReal(numeric.DecimalFromBigInt(o.V)), true
	case DecimalV:
		return numeric.ComplexFromReal(o.V), true
	case Boolean:
		return numeric.ComplexFromReal(numeric.DecimalFromBigInt(o.asInteger().V)), true
	case ComplexV:
		return o.V, true
	}
	return numeric.Complex{}, false
}

func (c ComplexV) Add(other Value) (Value, error) {
	if o, ok := c.toOperand(other); ok {
		return NewComplexV(c.V.Add(o)), nil
	}
	return c.unsupported.Add(other)
}

func (c ComplexV) Sub(other Value) (Value, error) {
	if o, ok := c.toOperand(other); ok {
		return NewComplexV(c.V.Sub(o)), nil
	}
	return c.unsupported.Sub(other)
}

func (c ComplexV) Mul(other Value) (Value, error) {
	if o, ok := c.toOperand(other); ok {
		return NewComplexV(c.V.Mul(o)), nil
	}
	return c.unsupported.Mul(other)
}

func (c ComplexV) Div(other Value) (Value, error) {
	if o, ok := c.toOperand(other); ok {
		if o.IsZero() {
			return nil, ErrDivisionByZero
		}
		return NewComplexV(c.V.Div(o)), nil
	}
	return c.unsupported.Div(other)
}

func (c ComplexV) Pow(other Value) (Value, error) {
	if o, ok := c.toOperand(other); ok {
		return NewComplexV(complexPow(c.V, o)), nil
	}
	return c.unsupported.Pow(other)
}

func (c ComplexV) CmpEq(other Value) (Value, error) { return NewBoolean(valuesEqual(c, other)), nil }
func (c ComplexV) CmpNe(other Value) (Value, error) { return NewBoolean(!valuesEqual(c, other)), nil }
func (c ComplexV) CmpLt(other Value) (Value, error) {
	return NewBoolean(compareOrdered(c, other) < 0), nil
}
func (c ComplexV) CmpGt(other Value) (Value, error) {
	return NewBoolean(compareOrdered(c, other) > 0), nil
}
func (c ComplexV) CmpLte(other Value) (Value, error) {
	return NewBoolean(compareOrdered(c, other) <= 0), nil
}
func (c ComplexV) CmpGte(other Value) (Value, error) {
	return NewBoolean(compareOrdered(c, other) >= 0), nil
}

func (c ComplexV) And(other Value) (Value, error) { return logicalAnd(c, other) }
func (c ComplexV) Or(other Value) (Value, error)  { return logicalOr(c, other) }
func (c ComplexV) Not() (Value, error)            { return NewBoolean(!c.IsTrue()), nil }

// complexPow delegates to numeric.Complex.Pow, which itself handles the
// zero-exponent and zero-base special cases before its general
// Exp(o*Ln(c)) rule.
func complexPow(base, exp numeric.Complex) numeric.Complex {
	return base.Pow(exp)
}

// Boolean coerces to Integer 0/1 in arithmetic, per the numeric tower rules.
type Boolean struct {
	unsupported
	V bool
}

func NewBoolean(v bool) Boolean { return Boolean{unsupported: unsupported{kind: "Boolean"}, V: v} }

func (b Boolean) Type() string   { return "Boolean" }
func (b Boolean) IsTrue() bool   { return b.V }
func (b Boolean) String() string {
	if b.V {
		return "true"
	}
	return "false"
}

func (b Boolean) asInteger() Integer {
	if b.V {
		return NewIntegerInt64(1)
	}
	return NewIntegerInt64(0)
}

func (b Boolean) Add(other Value) (Value, error) { return b.asInteger().Add(other) }
func (b Boolean) Sub(other Value) (Value, error) { return b.asInteger().Sub(other) }
func (b Boolean) Mul(other Value) (Value, error) { return b.asInteger().Mul(other) }
func (b Boolean) Div(other Value) (Value, error) { return b.asInteger().Div(other) }
func (b Boolean) Pow(other Value) (Value, error) { return b.asInteger().Pow(other) }

func (b Boolean) CmpEq(other Value) (Value, error) { return NewBoolean(valuesEqual(b, other)), nil }
func (b Boolean) CmpNe(other Value) (Value, error) { return NewBoolean(!valuesEqual(b, other)), nil }
func (b Boolean) CmpLt(other Value) (Value, error) {
	return NewBoolean(compareOrdered(b, other) < 0), nil
}
func (b Boolean) CmpGt(other Value) (Value, error) {
	return NewBoolean(compareOrdered(b, other) > 0), nil
}
func (b Boolean) CmpLte(other Value) (Value, error) {
	return NewBoolean(compareOrdered(b, other) <= 0), nil
}
func (b Boolean) CmpGte(other Value) (Value, error) {
	return NewBoolean(compareOrdered(b, other) >= 0), nil
}

func (b Boolean) And(other Value) (Value, error) { return logicalAnd(b, other) }
func (b Boolean) Or(other Value) (Value, error)  { return logicalOr(b, other) }
func (b Boolean) Not() (Value, error)            { return NewBoolean(!b.V), nil }

// logicalAnd/logicalOr implement the numeric tower's and/or: both operands
// are evaluated (the interpreter does not short-circuit any side effects
// since built-ins are side-effect free outside print/input), and the
// surviving operand's own type is preserved in the result, matching the
// reference implementation's "class_ = self.__class__ if ... else
// other.__class__" trick.
func logicalAnd(a, b Value) (Value, error) {
	if !isNumericFamily(a) || !isNumericFamily(b) {
		return nil, illegalOp("and", a.Type(), b)
	}
	if !a.IsTrue() {
		return a, nil
	}
	return b, nil
}

func logicalOr(a, b Value) (Value, error) {
	if !isNumericFamily(a) || !isNumericFamily(b) {
		return nil, illegalOp("or", a.Type(), b)
	}
	if a.IsTrue() {
		return a, nil
	}
	return b, nil
}

func isNumericFamily(v Value) bool {
	switch v.(type) {
	case Integer, DecimalV, ComplexV, Boolean, Null:
		return true
	}
	return false
}

func decimalToBigInt(d numeric.Decimal) *big.Int {
	bi, _ := d.Big().Int(nil)
	return bi
}
