package numeric

import "math/big"

// Complex is an arbitrary-precision complex number, a pair of big.Float
// held at the package's working precision.
type Complex struct {
	Re, Im *big.Float
}

// NewComplex builds a Complex from real and imaginary big.Float parts.
func NewComplex(re, im *big.Float) Complex { return Complex{Re: re, Im: im} }

// ComplexFromReal lifts a real Decimal into the complex plane.
func ComplexFromReal(d Decimal) Complex { return Complex{Re: clone(d.v), Im: newFloat()} }

func (c Complex) Add(o Complex) Complex {
	return Complex{Re: newFloat().Add(c.Re, o.Re), Im: newFloat().Add(c.Im, o.Im)}
}

func (c Complex) Sub(o Complex) Complex {
	return Complex{Re: newFloat().Sub(c.Re, o.Re), Im: newFloat().Sub(c.Im, o.Im)}
}

func (c Complex) Mul(o Complex) Complex {
	re := newFloat().Sub(newFloat().Mul(c.Re, o.Re), newFloat().Mul(c.Im, o.Im))
	im := newFloat().Add(newFloat().Mul(c.Re, o.Im), newFloat().Mul(c.Im, o.Re))
	return Complex{Re: re, Im: im}
}

func (c Complex) Div(o Complex) Complex {
	denom := newFloat().Add(newFloat().Mul(o.Re, o.Re), newFloat().Mul(o.Im, o.Im))
	re := newFloat().Add(newFloat().Mul(c.Re, o.Re), newFloat().Mul(c.Im, o.Im))
	im := newFloat().Sub(newFloat().Mul(c.Im, o.Re), newFloat().Mul(c.Re, o.Im))
	return Complex{Re: newFloat().Quo(re, denom), Im: newFloat().Quo(im, denom)}
}

func (c Complex) Neg() Complex {
	return Complex{Re: newFloat().Neg(c.Re), Im: newFloat().Neg(c.Im)}
}

func (c Complex) IsZero() bool {
	return IsZero(c.Re) && IsZero(c.Im)
}

// Abs returns |c| = sqrt(re^2 + im^2).
func (c Complex) Abs() *big.Float {
	return newFloat().Sqrt(newFloat().Add(newFloat().Mul(c.Re, c.Re), newFloat().Mul(c.Im, c.Im)))
}

// Arg returns the principal argument of c, in (-pi, pi].
func (c Complex) Arg() *big.Float {
	return Atan2(c.Im, c.Re)
}

// Exp returns e^c = e^Re * (cos(Im) + i*sin(Im)).
func (c Complex) Exp() Complex {
	mag := Exp(c.Re)
	return Complex{Re: newFloat().Mul(mag, Cos(c.Im)), Im: newFloat().Mul(mag, Sin(c.Im))}
}

// Ln returns the principal natural logarithm: ln|c| + i*arg(c).
func (c Complex) Ln() Complex {
	return Complex{Re: Ln(c.Abs()), Im: c.Arg()}
}

// Pow returns c^o via Exp(o * Ln(c)), the general complex power rule the
// original's mpmath backend uses for Complex.powed_by under the hood.
func (c Complex) Pow(o Complex) Complex {
	if o.IsZero() {
		return Complex{Re: newFloat().SetInt64(1), Im: newFloat()}
	}
	if c.IsZero() {
		return Complex{Re: newFloat(), Im: newFloat()}
	}
	return c.Ln().Mul(o).Exp()
}

func (c Complex) Cmp(o Complex) bool {
	return c.Re.Cmp(o.Re) == 0 && c.Im.Cmp(o.Im) == 0
}

// String renders "(re + imi)"/"(re - imi)", matching spec.md's complex repr.
func (c Complex) String() string {
	re := formatFloat(c.Re)
	imAbs := newFloat().Abs(c.Im)
	im := formatFloat(imAbs)

	sign := "+"
	if c.Im.Signbit() {
		sign = "-"
	}

	return "(" + re + " " + sign + " " + im + "i)"
}
