package value

import (
	"math/big"
	"strings"
)

// List is a heterogeneous, zero-indexed sequence of values. Operations that
// "modify" a list (subtraction, in-place style built-ins) always return a
// new List, leaving the receiver's backing slice untouched.
type List struct {
	unsupported
	Elements []Value
}

// NewList builds a List runtime value.
func NewList(elements []Value) List {
	return List{unsupported: unsupported{kind: "List"}, Elements: elements}
}

func (l List) Type() string { return "List" }
func (l List) IsTrue() bool { return len(l.Elements) > 0 }

func (l List) String() string {
	if len(l.Elements) == 0 {
		return "()"
	}
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(l.Elements[0].String())
	for _, e := range l.Elements[1:] {
		sb.WriteString(", ")
		sb.WriteString(e.String())
	}
	sb.WriteString(")")
	return sb.String()
}

func (l List) Add(other Value) (Value, error) {
	o, ok := other.(List)
	if !ok {
		return l.unsupported.Add(other)
	}
	merged := make([]Value, 0, len(l.Elements)+len(o.Elements))
	merged = append(merged, l.Elements...)
	merged = append(merged, o.Elements...)
	return NewList(merged), nil
}

// Sub removes the element at the given index, returning a new List without
// mutating the receiver.
func (l List) Sub(other Value) (Value, error) {
	idx, ok := indexOperand(other)
	if !ok {
		return l.unsupported.Sub(other)
	}
	i, ok := runeIndex(len(l.Elements), idx)
	if !ok {
		return nil, ErrIndexOutOfBounds
	}
	out := make([]Value, 0, len(l.Elements)-1)
	out = append(out, l.Elements[:i]...)
	out = append(out, l.Elements[i+1:]...)
	return NewList(out), nil
}

func (l List) Mul(other Value) (Value, error) {
	switch o := other.(type) {
	case List:
		merged := make([]Value, 0, len(l.Elements)+len(o.Elements))
		merged = append(merged, l.Elements...)
		merged = append(merged, o.Elements...)
		return NewList(merged), nil
	case Integer:
		return l.repeat(o.V)
	case Boolean:
		return l.repeat(o.asInteger().V)
	default:
		return l.unsupported.Mul(other)
	}
}

func (l List) repeat(n *big.Int) (Value, error) {
	if n.Sign() < 0 || !n.IsInt64() {
		return nil, illegalOp("*", "List", NewIntegerInt64(0))
	}
	count := int(n.Int64())
	out := make([]Value, 0, len(l.Elements)*count)
	for i := 0; i < count; i++ {
		out = append(out, l.Elements...)
	}
	return NewList(out), nil
}

func (l List) Subscript(other Value) (Value, error) {
	idx, ok := indexOperand(other)
	if !ok {
		return l.unsupported.Subscript(other)
	}
	i, ok := runeIndex(len(l.Elements), idx)
	if !ok {
		return nil, ErrIndexOutOfBounds
	}
	return l.Elements[i], nil
}

func indexOperand(v Value) (*big.Int, bool) {
	switch o := v.(type) {
	case Integer:
		return o.V, true
	case Boolean:
		return o.asInteger().V, true
	}
	return nil, false
}

func (l List) CmpEq(other Value) (Value, error) { return NewBoolean(valuesEqual(l, other)), nil }
func (l List) CmpNe(other Value) (Value, error) { return NewBoolean(!valuesEqual(l, other)), nil }
func (l List) CmpLt(other Value) (Value, error) { return NewBoolean(compareOrdered(l, other) < 0), nil }
func (l List) CmpGt(other Value) (Value, error) { return NewBoolean(compareOrdered(l, other) > 0), nil }
func (l List) CmpLte(other Value) (Value, error) {
	return NewBoolean(compareOrdered(l, other) <= 0), nil
}
func (l List) CmpGte(other Value) (Value, error) {
	return NewBoolean(compareOrdered(l, other) >= 0), nil
}

func (l List) And(other Value) (Value, error) { return l.unsupported.And(other) }
func (l List) Or(other Value) (Value, error)  { return l.unsupported.Or(other) }
func (l List) Not() (Value, error)            { return NewBoolean(!l.IsTrue()), nil }
