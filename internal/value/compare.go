package value

import "github.com/mathscript-lang/mathscript/internal/numeric"

// category orders the value families so that every pair of values has a
// well-defined total order, even across families the reference
// implementation's isinstance checks leave ambiguous (e.g. Null versus a
// number). Within a family, ordering uses that family's natural metric.
type category int

const (
	catNull category = iota
	catNumeric
	catString
	catList
)

// orderKey is the comparable projection of a Value used by the shared
// CmpLt/CmpGt/... helpers below.
type orderKey struct {
	cat category
	re  *numeric.Decimal // numeric real part
	im  *numeric.Decimal // numeric imaginary part, nil if not Complex
	str string
	list []Value
}

func keyOf(v Value) orderKey {
	switch t := v.(type) {
	case Integer:
		dec := numeric.DecimalFromBigInt(t.V)
		return orderKey{cat: catNumeric, re: &dec}
	case Boolean:
		n := int64(0)
		if t.V {
			n = 1
		}
		dec := numeric.DecimalFromInt64(n)
		return orderKey{cat: catNumeric, re: &dec}
	case DecimalV:
		dec := t.V
		return orderKey{cat: catNumeric, re: &dec}
	case ComplexV:
		re := numeric.NewDecimal(t.V.Re)
		im := numeric.NewDecimal(t.V.Im)
		return orderKey{cat: catNumeric, re: &re, im: &im}
	case String:
		return orderKey{cat: catString, str: t.V}
	case List:
		return orderKey{cat: catList, list: t.Elements}
	case Null:
		return orderKey{cat: catNull}
	}
	return orderKey{cat: catList}
}

// compareOrdered returns -1, 0, 1 for a<b, a==b, a>b under the total order
// described above. It never fails: unordered operand families simply fall
// back to category rank, which still yields a consistent total order.
func compareOrdered(a, b Value) int {
	ka, kb := keyOf(a), keyOf(b)
	if ka.cat != kb.cat {
		if ka.cat < kb.cat {
			return -1
		}
		return 1
	}

	switch ka.cat {
	case catNull:
		return 0
	case catNumeric:
		if ka.im == nil && kb.im == nil {
			return ka.re.Cmp(*kb.re)
		}
		reCmp := ka.re.Cmp(*kb.re)
		if reCmp != 0 {
			return reCmp
		}
		aim, bim := decimalOrZero(ka.im), decimalOrZero(kb.im)
		return aim.Cmp(bim)
	case catString:
		if ka.str == kb.str {
			return 0
		}
		if ka.str < kb.str {
			return -1
		}
		return 1
	case catList:
		return compareLists(ka.list, kb.list)
	}
	return 0
}

func decimalOrZero(d *numeric.Decimal) numeric.Decimal {
	if d == nil {
		return numeric.DecimalFromInt64(0)
	}
	return *d
}

func compareLists(a, b []Value) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareOrdered(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// valuesEqual implements == across every family, including numeric values
// of different concrete kinds (Integer(2) == Decimal(2.0)) and nulls, which
// compare equal to any other null regardless of which name variant it was
// constructed with.
func valuesEqual(a, b Value) bool {
	ka, kb := keyOf(a), keyOf(b)
	if ka.cat == catNull || kb.cat == catNull {
		return ka.cat == catNull && kb.cat == catNull
	}
	if ka.cat != kb.cat {
		return false
	}
	return compareOrdered(a, b) == 0
}
