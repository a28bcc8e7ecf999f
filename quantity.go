// Package siunits implements SI physical quantities: a magnitude tied to an
// ordered product of prefixed units, with dimension-aware arithmetic,
// comparison and conversion.
//
// Quantities are immutable values bound to the Registry that parsed them.
//
//	q := siunits.SI().MustParse("15 kN")
//	j, err := q.Mul(siunits.SI().MustParse("10 m")).To("kJ")
package siunits

import (
	"strconv"
	"strings"
)

// Quantity is a magnitude times an ordered list of unit factors. The zero
// value is the dimensionless number 0 in the SI registry.
type Quantity struct {
	magnitude float64
	factors   []Factor
	reg       *Registry
}

// Unit returns a quantity of magnitude one for a unit expression such as
// "m2" or "m.s-1".
func (r *Registry) Unit(expr string) (Quantity, error) {
	return r.New(1, expr)
}

// MustUnit is like Unit but panics on error.
func (r *Registry) MustUnit(expr string) Quantity {
	q, err := r.Unit(expr)
	if err != nil {
		panic(err)
	}
	return q
}

// New returns magnitude × expr.
func (r *Registry) New(magnitude float64, expr string) (Quantity, error) {
	factors, err := r.ParseExpr(expr)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{magnitude: magnitude, factors: factors, reg: r}, nil
}

// NewQuantity builds a quantity from explicit factors. Every factor must
// name a registered prefix and unit; zero exponents are dropped.
func (r *Registry) NewQuantity(magnitude float64, factors ...Factor) (Quantity, error) {
	out := make([]Factor, 0, len(factors))
	for _, f := range factors {
		if !r.validFactor(f) {
			return Quantity{}, unitErr("new quantity", f.Prefix+f.Unit, "unknown prefix or unit")
		}
		if f.Exponent != 0 {
			out = append(out, f)
		}
	}
	return Quantity{magnitude: magnitude, factors: out, reg: r}, nil
}

// Parse reads "<magnitude> <expr>". The expression may be omitted for a
// dimensionless number, and the magnitude may be omitted for a unit
// ("m2" is 1 m2).
func (r *Registry) Parse(s string) (Quantity, error) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 0:
		return Quantity{}, unitErr("parse quantity", s, "empty input")
	case 1:
		if v, err := strconv.ParseFloat(fields[0], 64); err == nil {
			return Quantity{magnitude: v, reg: r}, nil
		}
		return r.New(1, fields[0])
	case 2:
		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return Quantity{}, unitErr("parse quantity", s, "invalid magnitude %q", fields[0])
		}
		return r.New(v, fields[1])
	default:
		return Quantity{}, unitErr("parse quantity", s, "expected \"<magnitude> <units>\"")
	}
}

// MustParse is like Parse but panics on error.
func (r *Registry) MustParse(s string) Quantity {
	q, err := r.Parse(s)
	if err != nil {
		panic(err)
	}
	return q
}

func (q Quantity) Magnitude() float64 { return q.magnitude }

// Factors returns a copy of the unit factors in order.
func (q Quantity) Factors() []Factor {
	return append([]Factor(nil), q.factors...)
}

func (q Quantity) Registry() *Registry {
	if q.reg == nil {
		return SI()
	}
	return q.reg
}

func (q Quantity) Dimension() Dimension {
	return q.Registry().Dimension(q.factors)
}

func (q Quantity) Dimensionless() bool {
	return q.Dimension().IsZero()
}

// Scale returns k × q.
func (q Quantity) Scale(k float64) Quantity {
	return q.with(q.magnitude*k, q.factors)
}

// Units returns the unit expression of q, e.g. "kg.m.s-2".
func (q Quantity) Units() string {
	parts := make([]string, len(q.factors))
	for i, f := range q.factors {
		parts[i] = f.String()
	}
	return strings.Join(parts, ".")
}

// String returns the form read back by Parse, e.g. "15000 kg.m.s-2".
func (q Quantity) String() string {
	s := strconv.FormatFloat(q.magnitude, 'g', -1, 64)
	if len(q.factors) == 0 {
		return s
	}
	return s + " " + q.Units()
}

func (q Quantity) with(magnitude float64, factors []Factor) Quantity {
	return Quantity{magnitude: magnitude, factors: factors, reg: q.reg}
}
