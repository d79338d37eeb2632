// Package numeric implements the arbitrary-precision real and complex
// arithmetic backing the Decimal and Complex runtime values: addition,
// multiplication, division, power, and the transcendentals (exp, ln, sin,
// cos, atan2) the interpreter's built-ins need, all at a fixed working
// precision of at least 1000 correctly rounded decimal digits.
package numeric

import "math/big"

// Prec is the big.Float mantissa width, in bits, that guarantees at least
// MinDigits correctly rounded decimal digits: MinDigits*log2(10) ≈ 3321.9,
// rounded up to 3322.
var Prec uint = 3322

// MinDigits is the decimal-digit floor required throughout a run.
const MinDigits = 1000

// SetPrecisionDigits raises the working precision to at least digits decimal
// digits. It never lowers Prec below its 1000-digit default — callers (the
// MATHSCRIPT_DPS override) may only ask for more guard digits, never fewer.
func SetPrecisionDigits(digits int) {
	if digits <= MinDigits {
		return
	}
	bits := uint(float64(digits)*3.3219280948873626) + 8
	if bits > Prec {
		Prec = bits
	}
}

func newFloat() *big.Float {
	return new(big.Float).SetPrec(Prec)
}

// FromInt64 builds a *big.Float at the working precision from an int64.
func FromInt64(v int64) *big.Float {
	return newFloat().SetInt64(v)
}

// FromFloat64 builds a *big.Float at the working precision from a float64.
func FromFloat64(v float64) *big.Float {
	return newFloat().SetFloat64(v)
}

// FromString parses a decimal literal at the working precision.
func FromString(s string) (*big.Float, bool) {
	f, _, err := big.ParseFloat(s, 10, Prec, big.ToNearestEven)
	if err != nil {
		return nil, false
	}
	return f, true
}

func clone(x *big.Float) *big.Float {
	return newFloat().Set(x)
}

var (
	zero = big.NewFloat(0)
	one  = big.NewFloat(1)
	two  = big.NewFloat(2)
)

// IsZero reports whether x is exactly zero.
func IsZero(x *big.Float) bool {
	return x.Sign() == 0
}
