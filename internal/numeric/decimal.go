package numeric

import (
	"math/big"
	"strings"
)

// Decimal is an arbitrary-precision real number, backed by a big.Float held
// at the package's working precision for the lifetime of a run. big.Float
// has no NaN representation, so nan is tracked alongside it purely for the
// language's "nan" constant and its equality/display behaviour; it does not
// propagate through arithmetic the way IEEE NaN would.
type Decimal struct {
	v   *big.Float
	nan bool
}

// NewDecimal wraps an existing big.Float. The caller must not mutate v
// afterwards; Decimal values are treated as immutable once constructed.
func NewDecimal(v *big.Float) Decimal { return Decimal{v: v} }

// DecimalFromInt64 builds a Decimal from a plain integer.
func DecimalFromInt64(v int64) Decimal { return Decimal{v: FromInt64(v)} }

// DecimalFromBigInt builds a Decimal from an arbitrary-precision integer,
// used when an Integer value is coerced into the real numeric tower.
func DecimalFromBigInt(v *big.Int) Decimal { return Decimal{v: newFloat().SetInt(v)} }

// DecimalFromFloat64 builds a Decimal from a float64 literal (used for inf/nan).
func DecimalFromFloat64(v float64) Decimal {
	if v != v {
		return Decimal{v: newFloat(), nan: true}
	}
	return Decimal{v: FromFloat64(v)}
}

// IsNaN reports whether this Decimal is the distinguished "not a number"
// value produced by the language's nan constant.
func (d Decimal) IsNaN() bool { return d.nan }

// DecimalFromString parses a decimal literal at the working precision.
func DecimalFromString(s string) (Decimal, bool) {
	f, ok := FromString(s)
	if !ok {
		return Decimal{}, false
	}
	return Decimal{v: f}, true
}

// Big exposes the underlying big.Float, e.g. for comparisons against Integer.
func (d Decimal) Big() *big.Float { return d.v }

func (d Decimal) Add(o Decimal) Decimal { return Decimal{v: newFloat().Add(d.v, o.v)} }
func (d Decimal) Sub(o Decimal) Decimal { return Decimal{v: newFloat().Sub(d.v, o.v)} }
func (d Decimal) Mul(o Decimal) Decimal { return Decimal{v: newFloat().Mul(d.v, o.v)} }
func (d Decimal) Div(o Decimal) Decimal { return Decimal{v: newFloat().Quo(d.v, o.v)} }
func (d Decimal) Neg() Decimal          { return Decimal{v: newFloat().Neg(d.v)} }

func (d Decimal) IsZero() bool    { return IsZero(d.v) }
func (d Decimal) Sign() int       { return d.v.Sign() }
func (d Decimal) IsInteger() bool { return d.v.IsInt() }

func (d Decimal) Cmp(o Decimal) int { return d.v.Cmp(o.v) }

func (d Decimal) Int64() int64 {
	i, _ := d.v.Int64()
	return i
}

func (d Decimal) Float64() float64 {
	f, _ := d.v.Float64()
	return f
}

// Pow raises d to the power of o. A negative base with a non-integer
// exponent has no real result, so the caller is expected to check
// d.Sign() < 0 && !o.IsInteger() and fall back to Complex.Pow instead
// (mirroring the original's Decimal.powed_by branch to Complex).
func (d Decimal) Pow(o Decimal) Decimal {
	if IsZero(o.v) {
		return DecimalFromInt64(1)
	}
	if d.IsZero() {
		if o.Sign() > 0 {
			return DecimalFromInt64(0)
		}
		return Decimal{v: newFloat().SetInf(false)}
	}
	if d.Sign() < 0 && o.IsInteger() {
		mag := Decimal{v: newFloat().Abs(d.v)}.Pow(o)
		i, _ := o.v.Int64()
		if i%2 == 0 {
			return mag
		}
		return mag.Neg()
	}
	return Decimal{v: Exp(newFloat().Mul(o.v, Ln(d.v)))}
}

// String renders the decimal the way the language's print/repr does, in the
// shortest round-tripping form. A value whose decimal exponent is below -4
// or 6 and above is written in exponent form (1e+06, 1e-05) without a
// decimal point; every other finite value carries one ("3.0").
func (d Decimal) String() string {
	if d.nan {
		return "nan"
	}
	return formatFloat(d.v)
}

func formatFloat(f *big.Float) string {
	if f.IsInf() {
		if f.Signbit() {
			return "-inf"
		}
		return "inf"
	}

	s := f.Text('g', -1)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
