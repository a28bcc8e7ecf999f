package siunits

import (
	"strconv"
	"strings"
)

// BaseQuantity indexes a Dimension.
type BaseQuantity int

const (
	Length BaseQuantity = iota
	Mass
	Time
	Current
	Temperature
	Amount
	LuminousIntensity

	NumBaseQuantities = 7
)

var baseQuantityNames = [NumBaseQuantities]string{"L", "M", "T", "I", "Θ", "N", "J"}

func (b BaseQuantity) String() string {
	if b < 0 || int(b) >= NumBaseQuantities {
		return "?"
	}
	return baseQuantityNames[b]
}

// Dimension holds one integer exponent per base quantity.
type Dimension [NumBaseQuantities]int

// DimensionOf returns the dimension with a single exponent of one for b.
func DimensionOf(b BaseQuantity) Dimension {
	var d Dimension
	d[b] = 1
	return d
}

func (d Dimension) Add(o Dimension) Dimension {
	for i := range d {
		d[i] += o[i]
	}
	return d
}

func (d Dimension) Scale(n int) Dimension {
	for i := range d {
		d[i] *= n
	}
	return d
}

func (d Dimension) IsZero() bool {
	return d == Dimension{}
}

// single reports the base quantity when d is exactly one base quantity to the
// first power.
func (d Dimension) single() (BaseQuantity, bool) {
	found := -1
	for i, e := range d {
		switch {
		case e == 0:
		case e == 1 && found < 0:
			found = i
		default:
			return 0, false
		}
	}
	if found < 0 {
		return 0, false
	}
	return BaseQuantity(found), true
}

// String renders d as "L M T^-2"; the zero dimension renders as "1".
func (d Dimension) String() string {
	var parts []string
	for i, e := range d {
		switch e {
		case 0:
		case 1:
			parts = append(parts, baseQuantityNames[i])
		default:
			parts = append(parts, baseQuantityNames[i]+"^"+strconv.Itoa(e))
		}
	}
	if len(parts) == 0 {
		return "1"
	}
	return strings.Join(parts, " ")
}
