package siunits

import (
	"math"
	"math/big"
	"strconv"
)

// Unit describes one registered unit symbol.
type Unit struct {
	Symbol    string
	Dimension Dimension
	// Scale converts one unprefixed unit into base units, e.g. 3600 for "h".
	Scale float64
	// Offset is added after scaling, e.g. 273.15 for "degC".
	Offset float64
	// Base marks the base unit of a single base quantity.
	Base bool
}

// Affine reports whether converting u to base units is not purely
// multiplicative.
func (u Unit) Affine() bool { return u.Offset != 0 }

func (u Unit) scale() *big.Rat {
	if u.Scale == 0 {
		return big.NewRat(1, 1)
	}
	return new(big.Rat).SetFloat64(u.Scale)
}

// Prefix is a decimal multiplier applied to a unit symbol.
type Prefix struct {
	Symbol   string
	Exponent int // multiplier is 10^Exponent
}

func (p Prefix) Multiplier() float64 { return math.Pow10(p.Exponent) }

func (p Prefix) multiplier() *big.Rat {
	return pow10Rat(p.Exponent)
}

// Factor is one prefixed unit raised to an integer power inside a compound
// unit expression.
type Factor struct {
	Prefix   string
	Unit     string
	Exponent int
}

func (f Factor) String() string {
	s := f.Prefix + f.Unit
	if f.Exponent != 1 {
		s += strconv.Itoa(f.Exponent)
	}
	return s
}

func (f Factor) key() factorKey { return factorKey{f.Prefix, f.Unit} }

type factorKey struct {
	prefix string
	unit   string
}
