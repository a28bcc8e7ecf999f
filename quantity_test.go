package siunits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstruct(t *testing.T) {
	reg := SI()
	m1 := reg.MustUnit("m2")
	m2 := reg.MustParse("m2")
	m3 := reg.MustParse("1 m2")
	m4 := reg.MustUnit("m2").Scale(1)
	m5, err := reg.New(1, "m2")
	require.NoError(t, err)

	for _, q := range []Quantity{m2, m3, m4, m5} {
		assert.True(t, m1.Equal(q), "%s != %s", m1, q)
	}
}

func TestParseQuantity(t *testing.T) {
	testCases := []struct {
		in        string
		magnitude float64
		units     string
	}{
		{"15 kN", 15, "kN"},
		{"  4e18   nm2 ", 4e18, "nm2"},
		{"-3.5 m.s-1", -3.5, "m.s-1"},
		{"42", 42, ""},
		{"kg", 1, "kg"},
		{"0.015 km.s^-1", 0.015, "km.s-1"},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			q, err := SI().Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.magnitude, q.Magnitude())
			assert.Equal(t, tc.units, q.Units())
		})
	}
}

func TestParseQuantityFails(t *testing.T) {
	for _, in := range []string{"", "   ", "1 m s", "x m", "1 ko", "1.2.3"} {
		t.Run(in, func(t *testing.T) {
			_, err := SI().Parse(in)
			assert.ErrorIs(t, err, ErrInvalidUnitOperation)
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	reg := SI()
	for _, s := range []string{"15000 kg.m.s-2", "4e+18 nm2", "0.015 km.s-1", "7", "1 mm500"} {
		q := reg.MustParse(s)
		assert.Equal(t, s, q.String())
		assert.True(t, q.Equal(reg.MustParse(q.String())))
	}
}

func TestNewQuantity(t *testing.T) {
	reg := SI()
	q, err := reg.NewQuantity(3, Factor{Prefix: "k", Unit: "m", Exponent: 1}, Factor{Unit: "s", Exponent: 0})
	require.NoError(t, err)
	assert.Equal(t, "3 km", q.String())

	_, err = reg.NewQuantity(3, Factor{Prefix: "x", Unit: "m", Exponent: 1})
	assert.ErrorIs(t, err, ErrInvalidUnitOperation)
	_, err = reg.NewQuantity(3, Factor{Unit: "furlong", Exponent: 1})
	assert.ErrorIs(t, err, ErrInvalidUnitOperation)
}

func TestFactorsIsACopy(t *testing.T) {
	q := SI().MustParse("2 m.s-1")
	f := q.Factors()
	f[0].Unit = "kg"
	assert.Equal(t, "2 m.s-1", q.String())
}

func TestZeroQuantityUsesSI(t *testing.T) {
	var q Quantity
	assert.Same(t, SI(), q.Registry())
	assert.True(t, q.Dimensionless())
	assert.Equal(t, "0", q.String())
}

func TestDimension(t *testing.T) {
	reg := SI()
	assert.Equal(t, Dimension{1, 1, -2, 0, 0, 0, 0}, reg.MustUnit("kN").Dimension())
	assert.Equal(t, reg.MustUnit("J").Dimension(), reg.MustUnit("N.m").Dimension())
	assert.True(t, reg.MustUnit("m.m-1").Dimensionless())
	assert.Equal(t, "L M T^-2", reg.MustUnit("N").Dimension().String())
	assert.Equal(t, "1", Dimension{}.String())
}
