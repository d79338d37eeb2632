package builtins

import (
	"errors"
	"math/big"

	"github.com/mathscript-lang/mathscript/internal/numeric"
	"github.com/mathscript-lang/mathscript/internal/value"
)

func init() {
	register(Spec{Name: "sin", PositionalArgs: []string{"theta"}, Fn: execSin})
	register(Spec{Name: "cos", PositionalArgs: []string{"theta"}, Fn: execCos})
}

// toComplex coerces any of the numeric tower's value kinds to a
// numeric.Complex, the way Python's complex(theta.value) would for the
// reference implementation's "1j * theta.value".
func toComplex(v value.Value) (numeric.Complex, bool) {
	switch t := v.(type) {
	case value.Integer:
		return numeric.ComplexFromReal(numeric.DecimalFromBigInt(t.V)), true
	case value.DecimalV:
		return numeric.ComplexFromReal(t.V), true
	case value.ComplexV:
		return t.V, true
	case value.Boolean:
		n := int64(0)
		if t.V {
			n = 1
		}
		return numeric.ComplexFromReal(numeric.DecimalFromInt64(n)), true
	}
	return numeric.Complex{}, false
}

var half, negHalf *big.Float

func halves() (*big.Float, *big.Float) {
	if half == nil {
		half, _ = numeric.FromString("0.5")
		negHalf, _ = numeric.FromString("-0.5")
	}
	return half, negHalf
}

// execSin and execCos both follow the reference implementation's approach of
// computing through the complex exponential (e^(i*theta) +/- e^(-i*theta))
// rather than a direct real Taylor series, so they generalize correctly to
// complex theta the same way execute_sin/execute_cos do.
func execSin(ctx *Context, args map[string]value.Value) (value.Value, error) {
	theta, ok := toComplex(args["theta"])
	if !ok {
		return nil, errors.New("Argument theta must be numeric.")
	}
	iTheta := numeric.NewComplex(newFloat().Neg(theta.Im), theta.Re)
	negITheta := numeric.NewComplex(theta.Im, newFloat().Neg(theta.Re))

	expPos := iTheta.Exp()
	expNeg := negITheta.Exp()
	diff := expPos.Sub(expNeg)

	_, nHalf := halves()
	result := diff.Mul(numeric.NewComplex(newFloat(), nHalf))
	return value.NewComplexV(result), nil
}

func execCos(ctx *Context, args map[string]value.Value) (value.Value, error) {
	theta, ok := toComplex(args["theta"])
	if !ok {
		return nil, errors.New("Argument theta must be numeric.")
	}
	iTheta := numeric.NewComplex(newFloat().Neg(theta.Im), theta.Re)
	negITheta := numeric.NewComplex(theta.Im, newFloat().Neg(theta.Re))

	expPos := iTheta.Exp()
	expNeg := negITheta.Exp()
	sum := expPos.Add(expNeg)

	hHalf, _ := halves()
	result := sum.Mul(numeric.NewComplex(hHalf, newFloat()))
	return value.NewComplexV(result), nil
}

func newFloat() *big.Float { return new(big.Float).SetPrec(numeric.Prec) }
