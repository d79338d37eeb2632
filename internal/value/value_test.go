package value

import (
	"math/big"
	"testing"

	"github.com/mathscript-lang/mathscript/internal/numeric"
)

func i64(n int64) Integer { return NewIntegerInt64(n) }

func TestIntegerArithmeticPromotesOnMixedOperands(t *testing.T) {
	sum, err := i64(2).Add(NewDecimalV(numeric.DecimalFromInt64(3)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := sum.(DecimalV); !ok {
		t.Errorf("Integer + Decimal should promote to Decimal, got %T", sum)
	}
	if sum.String() != "5.0" {
		t.Errorf("2 + 3.0 = %s, want 5.0", sum.String())
	}
}

func TestIntegerDivisionAlwaysYieldsDecimal(t *testing.T) {
	got, err := i64(7).Div(i64(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := got.(DecimalV); !ok {
		t.Errorf("Integer / Integer should yield Decimal, got %T", got)
	}
	if got.String() != "3.5" {
		t.Errorf("7 / 2 = %s, want 3.5", got.String())
	}
}

func TestDivisionByZeroReturnsSentinelError(t *testing.T) {
	_, err := i64(1).Div(i64(0))
	if err != ErrDivisionByZero {
		t.Errorf("expected ErrDivisionByZero, got %v", err)
	}
	_, err = NewDecimalV(numeric.DecimalFromInt64(1)).Div(NewDecimalV(numeric.DecimalFromInt64(0)))
	if err != ErrDivisionByZero {
		t.Errorf("expected ErrDivisionByZero for Decimal, got %v", err)
	}
}

func TestIntegerPowNegativeBaseYieldsComplex(t *testing.T) {
	got, err := i64(-1).Pow(i64(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := got.(ComplexV); !ok {
		t.Errorf("(-1)^2 with a negative Integer base should yield Complex, got %T", got)
	}
}

func TestStringConcatAndRepeat(t *testing.T) {
	s, err := NewString("ab").Add(NewString("cd"))
	if err != nil || s.String() != "abcd" {
		t.Errorf("'ab' + 'cd' = %v, %v; want abcd, nil", s, err)
	}

	rep, err := NewString("ab").Mul(i64(3))
	if err != nil || rep.String() != "ababab" {
		t.Errorf("'ab' * 3 = %v, %v; want ababab, nil", rep, err)
	}

	_, err = NewString("ab").Mul(i64(-1))
	if err == nil {
		t.Error("expected error multiplying a String by a negative count")
	}
}

func TestStringSubscriptSupportsNegativeIndex(t *testing.T) {
	got, err := NewString("hello").Subscript(i64(-1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "o" {
		t.Errorf("'hello'_-1 = %q, want %q", got.String(), "o")
	}

	_, err = NewString("hi").Subscript(i64(5))
	if err != ErrIndexOutOfBounds {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestStringComparisonJoinsTheSharedTotalOrder(t *testing.T) {
	// Strings rank above numerics in the cross-family total order, so a
	// String always compares greater than an Integer, never errors.
	gt, err := NewString("a").CmpGt(i64(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gt.IsTrue() {
		t.Error("'a' > 1 should be true under the cross-family total order")
	}
	lt, err := i64(1).CmpLt(NewString("a"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !lt.IsTrue() {
		t.Error("1 < 'a' should be true, symmetric with 'a' > 1")
	}

	strLt, err := NewString("abc").CmpLt(NewString("abd"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strLt.IsTrue() {
		t.Error("'abc' < 'abd' should be true")
	}
}

func TestListOperations(t *testing.T) {
	l := NewList([]Value{i64(1), i64(2), i64(3)})

	sum, err := l.Add(NewList([]Value{i64(4)}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.String() != "(1, 2, 3, 4)" {
		t.Errorf("list concat = %s, want (1, 2, 3, 4)", sum.String())
	}

	removed, err := l.Sub(i64(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed.String() != "(1, 3)" {
		t.Errorf("list remove index 1 = %s, want (1, 3)", removed.String())
	}

	elem, err := l.Subscript(i64(-1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elem.String() != "3" {
		t.Errorf("list_-1 = %s, want 3", elem.String())
	}
}

func TestValuesEqualAcrossNumericKinds(t *testing.T) {
	eq, err := i64(2).CmpEq(NewDecimalV(numeric.DecimalFromInt64(2)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !eq.IsTrue() {
		t.Error("Integer(2) should equal Decimal(2.0)")
	}
}

func TestNullFamilyAllCompareEqual(t *testing.T) {
	n := NewNull()
	eq, err := n.CmpEq(NewNull())
	if err != nil || !eq.IsTrue() {
		t.Errorf("null should equal null: %v, %v", eq, err)
	}
	neq, err := n.CmpEq(i64(0))
	if err != nil || neq.IsTrue() {
		t.Errorf("null should not equal 0: %v, %v", neq, err)
	}
}

func TestBooleanCoercesToIntegerInArithmetic(t *testing.T) {
	got, err := NewBoolean(true).Add(i64(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "2" {
		t.Errorf("true + 1 = %s, want 2", got.String())
	}
}

func TestEnvironmentScopeChain(t *testing.T) {
	root := NewEnvironment()
	root.Set("x", i64(1))

	child := NewChildEnvironment(root)
	if v, ok := child.Get("x"); !ok || v.String() != "1" {
		t.Errorf("child should see root binding for x: %v, %v", v, ok)
	}

	child.Set("x", i64(2))
	if v, _ := child.Get("x"); v.String() != "2" {
		t.Error("child Set should shadow, not mutate root")
	}
	if v, _ := root.Get("x"); v.String() != "1" {
		t.Error("root binding for x should be unchanged after child shadows it")
	}

	child.Remove("x")
	if v, _ := child.Get("x"); v.String() != "1" {
		t.Error("after Remove, child should fall through to root's binding again")
	}
}

func TestIntegerFromBigInt(t *testing.T) {
	v := NewInteger(big.NewInt(42))
	if v.Type() != "Integer" || v.String() != "42" {
		t.Errorf("unexpected Integer value: %+v", v)
	}
}
