package siunits

import "math"

// Add returns q + o. Both operands must carry identical factor lists; use
// To, Swap or NoPrefix to bring them to the same units first.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	if !sameFactors(q.factors, o.factors) {
		return Quantity{}, unitErr("add", q.Units(), "incompatible units %q", o.Units())
	}
	return q.with(q.magnitude+o.magnitude, q.factors), nil
}

// Sub returns q - o under the same rules as Add.
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	if !sameFactors(q.factors, o.factors) {
		return Quantity{}, unitErr("subtract", q.Units(), "incompatible units %q", o.Units())
	}
	return q.with(q.magnitude-o.magnitude, q.factors), nil
}

// Mul returns q × o. Factors with the same prefix and unit are merged.
// Like Pow it panics when a merged exponent overflows int.
func (q Quantity) Mul(o Quantity) Quantity {
	return q.with(q.magnitude*o.magnitude, mergeFactors(q.factors, o.factors, 1))
}

// Div returns q / o. Factors with the same prefix and unit are merged.
func (q Quantity) Div(o Quantity) Quantity {
	return q.with(q.magnitude/o.magnitude, mergeFactors(q.factors, o.factors, -1))
}

// Pow returns q raised to the n-th power. It panics with a *UnitError when
// a resulting unit or dimension exponent does not fit in an int.
func (q Quantity) Pow(n int) Quantity {
	if n == 0 {
		return q.with(1, nil)
	}
	r := q.Registry()
	factors := make([]Factor, len(q.factors))
	for i, f := range q.factors {
		e, ok := mulExp(f.Exponent, n)
		for _, d := range r.units[f.Unit].Dimension {
			if _, dok := mulExp(d, e); !dok {
				ok = false
			}
		}
		if !ok {
			panic(unitErr("pow", q.Units(), "exponent overflow raising %s to %d", f, n))
		}
		f.Exponent = e
		factors[i] = f
	}
	return q.with(math.Pow(q.magnitude, float64(n)), factors)
}

// Equal reports whether q and o have the same magnitude and the same factor
// list. No unit normalisation happens: 2 m and 2000 mm are not Equal.
func (q Quantity) Equal(o Quantity) bool {
	return q.magnitude == o.magnitude && sameFactors(q.factors, o.factors)
}

// Cmp compares q and o in base units and returns -1, 0 or +1. The operands
// must have the same dimension and neither magnitude may be NaN.
func (q Quantity) Cmp(o Quantity) (int, error) {
	if q.Dimension() != o.Dimension() {
		return 0, unitErr("compare", q.Units(), "incompatible dimension %s vs %s", q.Dimension(), o.Dimension())
	}
	a, b := q.ToBase().magnitude, o.ToBase().magnitude
	if math.IsNaN(a) || math.IsNaN(b) {
		return 0, unitErr("compare", q.String(), "cannot order NaN against %s", o)
	}
	switch {
	case a < b:
		return -1, nil
	case a > b:
		return 1, nil
	default:
		return 0, nil
	}
}

func (q Quantity) Less(o Quantity) (bool, error) {
	c, err := q.Cmp(o)
	return err == nil && c < 0, err
}

func (q Quantity) LessEqual(o Quantity) (bool, error) {
	c, err := q.Cmp(o)
	return err == nil && c <= 0, err
}

func (q Quantity) Greater(o Quantity) (bool, error) {
	c, err := q.Cmp(o)
	return err == nil && c > 0, err
}

func (q Quantity) GreaterEqual(o Quantity) (bool, error) {
	c, err := q.Cmp(o)
	return err == nil && c >= 0, err
}

func sameFactors(a, b []Factor) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// mergeFactors appends right (exponents multiplied by sign) to left, adding
// exponents of factors sharing prefix and unit at their first position and
// dropping factors whose exponent becomes zero.
func mergeFactors(left, right []Factor, sign int) []Factor {
	merged := make([]Factor, 0, len(left)+len(right))
	index := make(map[factorKey]int, len(left)+len(right))
	add := func(f Factor) {
		if i, ok := index[f.key()]; ok {
			e := merged[i].Exponent + f.Exponent
			if (e > merged[i].Exponent) != (f.Exponent > 0) {
				panic(unitErr("merge", f.String(), "exponent overflow"))
			}
			merged[i].Exponent = e
			return
		}
		index[f.key()] = len(merged)
		merged = append(merged, f)
	}
	for _, f := range left {
		add(f)
	}
	for _, f := range right {
		e, ok := mulExp(f.Exponent, sign)
		if !ok {
			panic(unitErr("merge", f.String(), "exponent overflow"))
		}
		f.Exponent = e
		add(f)
	}
	out := merged[:0]
	for _, f := range merged {
		if f.Exponent != 0 {
			out = append(out, f)
		}
	}
	return out
}

// mulExp returns a × b and whether it fits in an int.
func mulExp(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if c/b != a || (a == math.MinInt && b == -1) {
		return 0, false
	}
	return c, true
}
