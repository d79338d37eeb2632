package numeric

import (
	"math"
	"math/big"
)

// negligible reports whether term is too small to move a Prec-bit sum,
// i.e. its binary exponent has fallen below the working precision.
func negligible(term *big.Float) bool {
	if term.Sign() == 0 {
		return true
	}
	return term.MantExp(nil) < -int(Prec)-8
}

var ln2Cache *big.Float

// ln2Const lazily computes ln(2) via the atanh series
// ln((1+y)/(1-y)) = 2*(y + y^3/3 + y^5/5 + ...), y = 1/3, which converges
// geometrically (ratio 1/9 per term) and is cheap enough to pay once.
func ln2Const() *big.Float {
	if ln2Cache != nil && ln2Cache.Prec() >= Prec {
		return clone(ln2Cache)
	}

	y := newFloat().Quo(one, FromInt64(3))
	y2 := newFloat().Mul(y, y)

	sum := clone(y)
	term := clone(y)
	for n := int64(1); n < 200000; n++ {
		term = newFloat().Mul(term, y2)
		denom := FromInt64(2*n + 1)
		contribution := newFloat().Quo(term, denom)
		sum.Add(sum, contribution)
		if negligible(contribution) {
			break
		}
	}

	ln2Cache = newFloat().Mul(sum, two)
	return clone(ln2Cache)
}

// Exp returns e^x via range reduction (x = k*ln2 + r, |r| <= ln2/2)
// followed by a Taylor series on the reduced remainder: exp(r)*2^k.
func Exp(x *big.Float) *big.Float {
	if IsZero(x) {
		return newFloat().SetInt64(1)
	}

	ln2 := ln2Const()
	xf, _ := x.Float64()
	kf := xf / 0.6931471805599453
	k := int64(kf)
	if kf-float64(k) > 0.5 {
		k++
	} else if kf-float64(k) < -0.5 {
		k--
	}

	r := newFloat().Sub(x, newFloat().Mul(FromInt64(k), ln2))

	sum := newFloat().SetInt64(1)
	term := newFloat().SetInt64(1)
	for n := int64(1); n < 100000; n++ {
		term = newFloat().Mul(term, r)
		term = newFloat().Quo(term, FromInt64(n))
		sum.Add(sum, term)
		if negligible(term) {
			break
		}
	}

	return newFloat().SetMantExp(sum, int(k))
}

// Ln returns the natural logarithm of x > 0, by factoring x = m*2^k with
// m in [1,2) and summing Ln(m) (atanh series, y=(m-1)/(m+1)) + k*ln2.
func Ln(x *big.Float) *big.Float {
	if x.Sign() <= 0 {
		return newFloat()
	}

	mant := newFloat()
	k := x.MantExp(mant)
	// mant is in [0.5, 1); shift by one more bit of exponent so m is in [1, 2).
	m := newFloat().SetMantExp(mant, 1)
	k--

	y := newFloat().Quo(newFloat().Sub(m, one), newFloat().Add(m, one))
	y2 := newFloat().Mul(y, y)

	sum := clone(y)
	term := clone(y)
	for n := int64(1); n < 400000; n++ {
		term = newFloat().Mul(term, y2)
		denom := FromInt64(2*n + 1)
		contribution := newFloat().Quo(term, denom)
		sum.Add(sum, contribution)
		if negligible(contribution) {
			break
		}
	}

	lnM := newFloat().Mul(sum, two)
	return newFloat().Add(lnM, newFloat().Mul(FromInt64(int64(k)), ln2Const()))
}

// reduceAngle brings x into [-pi, pi] by subtracting the nearest multiple of
// 2*pi, so the sin/cos Taylor series below always operates on a small
// argument.
func reduceAngle(x *big.Float) *big.Float {
	pi := Pi()
	twoPi := newFloat().Mul(pi, two)

	xf, _ := x.Float64()
	twoPiF, _ := twoPi.Float64()
	if twoPiF == 0 {
		return clone(x)
	}
	k := int64(xf / twoPiF)

	r := newFloat().Sub(x, newFloat().Mul(FromInt64(k), twoPi))
	for r.Cmp(pi) > 0 {
		r.Sub(r, twoPi)
	}
	negPi := newFloat().Neg(pi)
	for r.Cmp(negPi) < 0 {
		r.Add(r, twoPi)
	}
	return r
}

// Sin returns sin(x) via Taylor series on the angle reduced into [-pi, pi].
func Sin(x *big.Float) *big.Float {
	r := reduceAngle(x)
	r2 := newFloat().Mul(r, r)

	sum := clone(r)
	term := clone(r)
	sign := int64(1)
	for n := int64(1); n < 100000; n++ {
		term = newFloat().Mul(term, r2)
		denom := FromInt64((2*n + 1) * (2 * n))
		term = newFloat().Quo(term, denom)
		sign = -sign
		contribution := newFloat().Mul(term, FromInt64(sign))
		sum.Add(sum, contribution)
		if negligible(term) {
			break
		}
	}
	return sum
}

// Cos returns cos(x) via Taylor series on the angle reduced into [-pi, pi].
func Cos(x *big.Float) *big.Float {
	r := reduceAngle(x)
	r2 := newFloat().Mul(r, r)

	sum := newFloat().SetInt64(1)
	term := newFloat().SetInt64(1)
	sign := int64(1)
	for n := int64(1); n < 100000; n++ {
		term = newFloat().Mul(term, r2)
		denom := FromInt64((2*n - 1) * (2 * n))
		term = newFloat().Quo(term, denom)
		sign = -sign
		contribution := newFloat().Mul(term, FromInt64(sign))
		sum.Add(sum, contribution)
		if negligible(term) {
			break
		}
	}
	return sum
}

// Atan2 returns the angle of (x, y) in radians using a float64 seed refined
// to full working precision with Newton's method against Sin/Cos, since
// math/big has no native inverse trigonometric functions.
func Atan2(y, x *big.Float) *big.Float {
	yf, _ := y.Float64()
	xf, _ := x.Float64()
	r := newFloat().Sqrt(newFloat().Add(newFloat().Mul(x, x), newFloat().Mul(y, y)))
	if IsZero(r) {
		return newFloat()
	}

	theta := FromFloat64(math.Atan2(yf, xf))

	for i := 0; i < 12; i++ {
		s := Sin(theta)
		c := Cos(theta)
		f := newFloat().Sub(newFloat().Mul(s, x), newFloat().Mul(c, y))
		fp := newFloat().Add(newFloat().Mul(c, x), newFloat().Mul(s, y))
		if IsZero(fp) {
			break
		}
		delta := newFloat().Quo(f, fp)
		theta = newFloat().Sub(theta, delta)
		if negligible(delta) {
			break
		}
	}

	return theta
}
