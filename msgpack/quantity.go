// Package siunitsmsgpack carries quantities over msgpack.
package siunitsmsgpack

import (
	"siunits"

	"github.com/vmihailenco/msgpack/v5"
)

type Factor struct {
	Prefix   string `msgpack:"prefix,omitempty"`
	Unit     string `msgpack:"unit,omitempty"`
	Exponent int    `msgpack:"exp,omitempty"`
}

type Quantity struct {
	Magnitude float64  `msgpack:"mag"`
	Factors   []Factor `msgpack:"factors,omitempty"`
}

func NewQuantity(q siunits.Quantity) Quantity {
	factors := q.Factors()
	out := Quantity{Magnitude: q.Magnitude()}
	if len(factors) > 0 {
		out.Factors = make([]Factor, len(factors))
	}
	for i, f := range factors {
		out.Factors[i] = Factor{Prefix: f.Prefix, Unit: f.Unit, Exponent: f.Exponent}
	}
	return out
}

// ToQuantity validates m against reg.
func ToQuantity(reg *siunits.Registry, m *Quantity) (siunits.Quantity, error) {
	factors := make([]siunits.Factor, len(m.Factors))
	for i, f := range m.Factors {
		factors[i] = siunits.Factor{Prefix: f.Prefix, Unit: f.Unit, Exponent: f.Exponent}
	}
	return reg.NewQuantity(m.Magnitude, factors...)
}

func Marshal(q siunits.Quantity) ([]byte, error) {
	m := NewQuantity(q)
	return msgpack.Marshal(&m)
}

func Unmarshal(reg *siunits.Registry, data []byte) (siunits.Quantity, error) {
	var m Quantity
	if err := msgpack.Unmarshal(data, &m); err != nil {
		return siunits.Quantity{}, err
	}
	return ToQuantity(reg, &m)
}
