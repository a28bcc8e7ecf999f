package siunits

// ToBase expresses q in unprefixed base units. Derived units are decomposed
// through their dimension, emitting base units in the order the registry
// registered them, and repeated base units are merged.
//
// A quantity made of a single affine unit (degC) is converted as an absolute
// value, offset included. Inside a compound expression the offset is ignored.
func (q Quantity) ToBase() Quantity {
	r := q.Registry()
	var base []Factor
	for _, f := range q.factors {
		d := r.units[f.Unit].Dimension
		for _, b := range r.baseOrder {
			if e := d[b]; e != 0 {
				base = append(base, Factor{Unit: r.bases[b], Exponent: e * f.Exponent})
			}
		}
	}
	base = mergeFactors(base, nil, 1)

	v := newScaling().factors(r, q.factors, 1).apply(q.magnitude)
	if u, ok := r.affineUnit(q.factors); ok {
		v += u.Offset
	}
	return q.with(v, base)
}

// NoPrefix removes every prefix, folding it into the magnitude. Unit symbols
// are kept as they are.
func (q Quantity) NoPrefix() Quantity {
	r := q.Registry()
	scale := newScaling()
	factors := make([]Factor, len(q.factors))
	for i, f := range q.factors {
		scale.mul(r.prefixes[f.Prefix].multiplier(), f.Exponent)
		f.Prefix = ""
		factors[i] = f
	}
	return q.with(scale.apply(q.magnitude), factors)
}

// To converts q to the unit expression expr, which must have the same
// dimension.
func (q Quantity) To(expr string) (Quantity, error) {
	r := q.Registry()
	target, err := r.ParseExpr(expr)
	if err != nil {
		return Quantity{}, err
	}
	if from, to := q.Dimension(), r.Dimension(target); from != to {
		return Quantity{}, unitErr("convert", q.Units(), "cannot convert %s to %q (%s)", from, expr, to)
	}
	return q.convert(target), nil
}

// convert rescales q onto target, which has the same dimension. A single
// affine unit on either side converts as an absolute value.
func (q Quantity) convert(target []Factor) Quantity {
	r := q.Registry()
	_, srcAffine := r.affineUnit(q.factors)
	tu, dstAffine := r.affineUnit(target)
	if srcAffine || dstAffine {
		v := q.ToBase().magnitude - tu.Offset
		return q.with(newScaling().factors(r, target, -1).apply(v), target)
	}
	ratio := newScaling().factors(r, q.factors, 1).factors(r, target, -1)
	return q.with(ratio.apply(q.magnitude), target)
}

// Swap replaces every factor using unit from (whatever its prefix) by the
// prefixed unit to, keeping exponents and positions. When from is not a
// registered unit symbol it is read as a prefixed name and only that exact
// prefix and unit are replaced.
//
// A quantity made of a single affine unit is converted as an absolute value,
// so swapping degC for K in 20 degC gives 293.15 K as To does.
func (q Quantity) Swap(from, to string) (Quantity, error) {
	r := q.Registry()
	fromPrefix, fromUnit, anyPrefix := "", from, true
	if _, ok := r.units[from]; !ok {
		var err error
		fromPrefix, fromUnit, err = r.ParseName(from)
		if err != nil {
			return Quantity{}, err
		}
		anyPrefix = false
	}
	toPrefix, toUnit, err := r.ParseName(to)
	if err != nil {
		return Quantity{}, err
	}
	if r.units[fromUnit].Dimension != r.units[toUnit].Dimension {
		return Quantity{}, unitErr("swap", from, "incompatible unit %q", to)
	}

	ratio, swapped := newScaling(), false
	factors := make([]Factor, len(q.factors))
	for i, f := range q.factors {
		if f.Unit == fromUnit && (anyPrefix || f.Prefix == fromPrefix) {
			nf := Factor{Prefix: toPrefix, Unit: toUnit, Exponent: f.Exponent}
			ratio.mul(r.factorBase(f), f.Exponent)
			ratio.mul(r.factorBase(nf), -nf.Exponent)
			f, swapped = nf, true
		}
		factors[i] = f
	}
	_, srcAffine := r.affineUnit(q.factors)
	_, dstAffine := r.affineUnit(factors)
	if swapped && (srcAffine || dstAffine) {
		return q.convert(factors), nil
	}
	return q.with(ratio.apply(q.magnitude), factors), nil
}

// simpleUnit returns the unit of a single factor with exponent one.
func (r *Registry) simpleUnit(factors []Factor) (Unit, bool) {
	if len(factors) != 1 || factors[0].Exponent != 1 {
		return Unit{}, false
	}
	u, ok := r.units[factors[0].Unit]
	return u, ok
}

func (r *Registry) affineUnit(factors []Factor) (Unit, bool) {
	u, ok := r.simpleUnit(factors)
	if !ok || !u.Affine() {
		return Unit{}, false
	}
	return u, true
}
