package value

import (
	"math/big"
	"strings"
)

// String is an immutable UTF-8 text value.
type String struct {
	unsupported
	V string
}

// NewString builds a String runtime value.
func NewString(v string) String { return String{unsupported: unsupported{kind: "String"}, V: v} }

func (s String) Type() string   { return "String" }
func (s String) IsTrue() bool   { return len(s.V) > 0 }
func (s String) String() string { return s.V }

func (s String) Add(other Value) (Value, error) {
	if o, ok := other.(String); ok {
		return NewString(s.V + o.V), nil
	}
	return s.unsupported.Add(other)
}

func (s String) Mul(other Value) (Value, error) {
	switch o := other.(type) {
	case Integer:
		return repeatString(s.V, o.V)
	case Boolean:
		return repeatString(s.V, o.asInteger().V)
	default:
		return s.unsupported.Mul(other)
	}
}

// Subscript indexes a single UTF-8 rune, supporting Python-style negative
// indices from the end of the string.
func (s String) Subscript(other Value) (Value, error) {
	idx, ok := other.(Integer)
	if !ok {
		return s.unsupported.Subscript(other)
	}
	runes := []rune(s.V)
	i, ok := runeIndex(len(runes), idx.V)
	if !ok {
		return nil, ErrIndexOutOfBounds
	}
	return NewString(string(runes[i])), nil
}

func (s String) CmpEq(other Value) (Value, error) { return NewBoolean(valuesEqual(s, other)), nil }
func (s String) CmpNe(other Value) (Value, error) { return NewBoolean(!valuesEqual(s, other)), nil }
func (s String) CmpLt(other Value) (Value, error) { return NewBoolean(compareOrdered(s, other) < 0), nil }
func (s String) CmpGt(other Value) (Value, error) { return NewBoolean(compareOrdered(s, other) > 0), nil }
func (s String) CmpLte(other Value) (Value, error) {
	return NewBoolean(compareOrdered(s, other) <= 0), nil
}
func (s String) CmpGte(other Value) (Value, error) {
	return NewBoolean(compareOrdered(s, other) >= 0), nil
}

func (s String) And(other Value) (Value, error) { return logicalAnd(s, other) }
func (s String) Or(other Value) (Value, error)  { return logicalOr(s, other) }
func (s String) Not() (Value, error)            { return NewBoolean(!s.IsTrue()), nil }

// repeatString implements str * n, refusing negative counts the way the
// reference implementation's "multiplied_by" does for String*Integer.
func repeatString(s string, n *big.Int) (Value, error) {
	if n.Sign() < 0 {
		return nil, illegalOp("*", "String", NewIntegerInt64(0))
	}
	if !n.IsInt64() {
		return nil, illegalOp("*", "String", NewIntegerInt64(0))
	}
	return NewString(strings.Repeat(s, int(n.Int64()))), nil
}

// runeIndex resolves a (possibly negative) MathScript index against a
// sequence of the given length, reporting whether it lands in bounds.
func runeIndex(length int, idx *big.Int) (int, bool) {
	if !idx.IsInt64() {
		return 0, false
	}
	i := int(idx.Int64())
	if i < 0 {
		i += length
	}
	if i < 0 || i >= length {
		return 0, false
	}
	return i, true
}
