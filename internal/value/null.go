package value

// Null covers the language's three interchangeable null-like constants
// (null, none, undefined): distinct spellings, identical runtime value.
type Null struct{ unsupported }

// NewNull builds the null value.
func NewNull() Null { return Null{unsupported: unsupported{kind: "Null"}} }

func (n Null) Type() string   { return "Null" }
func (n Null) IsTrue() bool   { return false }
func (n Null) String() string { return "null" }

func (n Null) CmpEq(other Value) (Value, error) { return NewBoolean(valuesEqual(n, other)), nil }
func (n Null) CmpNe(other Value) (Value, error) { return NewBoolean(!valuesEqual(n, other)), nil }
func (n Null) CmpLt(other Value) (Value, error) { return NewBoolean(compareOrdered(n, other) < 0), nil }
func (n Null) CmpGt(other Value) (Value, error) { return NewBoolean(compareOrdered(n, other) > 0), nil }
func (n Null) CmpLte(other Value) (Value, error) {
	return NewBoolean(compareOrdered(n, other) <= 0), nil
}
func (n Null) CmpGte(other Value) (Value, error) {
	return NewBoolean(compareOrdered(n, other) >= 0), nil
}

func (n Null) And(other Value) (Value, error) { return logicalAnd(n, other) }
func (n Null) Or(other Value) (Value, error)  { return logicalOr(n, other) }
func (n Null) Not() (Value, error)            { return NewBoolean(true), nil }
