package numeric

import "testing"

func TestDecimalArithmetic(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		op   func(a, b Decimal) Decimal
		want string
	}{
		{"add", "1.5", "2.25", Decimal.Add, "3.75"},
		{"sub", "5", "1.5", Decimal.Sub, "3.5"},
		{"mul", "2", "3.5", Decimal.Mul, "7.0"},
		{"div", "7", "2", Decimal.Div, "3.5"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, ok := DecimalFromString(c.a)
			if !ok {
				t.Fatalf("failed to parse %q", c.a)
			}
			b, ok := DecimalFromString(c.b)
			if !ok {
				t.Fatalf("failed to parse %q", c.b)
			}
			got := c.op(a, b).String()
			if got != c.want {
				t.Errorf("%s(%s, %s) = %s, want %s", c.name, c.a, c.b, got, c.want)
			}
		})
	}
}

func TestDecimalPowNegativeBaseIntegerExponent(t *testing.T) {
	base, _ := DecimalFromString("-2")
	exp := DecimalFromInt64(3)
	got := base.Pow(exp).String()
	if got != "-8.0" {
		t.Errorf("(-2)^3 = %s, want -8.0", got)
	}
}

func TestDecimalIsZeroAndSign(t *testing.T) {
	zero := DecimalFromInt64(0)
	if !zero.IsZero() {
		t.Error("expected 0 to be zero")
	}
	if DecimalFromInt64(-4).Sign() >= 0 {
		t.Error("expected -4 to have negative sign")
	}
}

func TestComplexArithmetic(t *testing.T) {
	a := NewComplex(FromInt64(1), FromInt64(2))
	b := NewComplex(FromInt64(3), FromInt64(-1))

	sum := a.Add(b)
	if sum.Re.Cmp(FromInt64(4)) != 0 || sum.Im.Cmp(FromInt64(1)) != 0 {
		t.Errorf("(1+2i)+(3-1i) = %s, want (4 + 1i)", sum.String())
	}

	prod := a.Mul(b)
	// (1+2i)(3-1i) = 3 - 1i + 6i - 2i^2 = 3 + 5i + 2 = 5 + 5i
	if prod.Re.Cmp(FromInt64(5)) != 0 || prod.Im.Cmp(FromInt64(5)) != 0 {
		t.Errorf("(1+2i)(3-1i) = %s, want (5 + 5i)", prod.String())
	}
}

func TestComplexExpOfZeroIsOne(t *testing.T) {
	zero := NewComplex(FromInt64(0), FromInt64(0))
	got := zero.Exp()
	if got.Re.Cmp(FromInt64(1)) != 0 {
		t.Errorf("exp(0) real part = %s, want 1", got.Re.Text('g', -1))
	}
	if !IsZero(got.Im) {
		t.Errorf("exp(0) imaginary part = %s, want 0", got.Im.Text('g', -1))
	}
}

func TestSetPrecisionDigitsNeverLowersFloor(t *testing.T) {
	before := Prec
	SetPrecisionDigits(10) // below the 1000-digit floor, must be a no-op
	if Prec != before {
		t.Errorf("Prec changed after raising below the floor: got %d, want %d", Prec, before)
	}

	SetPrecisionDigits(2000)
	if Prec <= before {
		t.Errorf("Prec did not increase after raising above the floor: got %d, want > %d", Prec, before)
	}
}

func TestPiAndEAreDistinctAndStable(t *testing.T) {
	pi1, pi2 := Pi(), E()
	if pi1.Cmp(pi2) == 0 {
		t.Error("pi and e must not be equal")
	}
	if Pi().Cmp(pi1) != 0 {
		t.Error("Pi() should be stable across calls")
	}
}
