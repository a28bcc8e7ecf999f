package siunits

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := NewRegistry("test",
		[]Prefix{{Symbol: "k", Exponent: 3}, {Symbol: "kk", Exponent: 6}},
		[]Unit{
			{Symbol: "m", Dimension: DimensionOf(Length), Base: true},
			{Symbol: "km", Dimension: DimensionOf(Length), Scale: 2},
			{Symbol: "ft", Dimension: DimensionOf(Length), Scale: 0.3048},
		})
	require.NoError(t, err)
	return reg
}

func TestRegistryIsolation(t *testing.T) {
	reg := testRegistry(t)

	// "km" is a unit of its own here, and exact matches win.
	prefix, unit, err := reg.ParseName("km")
	require.NoError(t, err)
	assert.Equal(t, "", prefix)
	assert.Equal(t, "km", unit)

	// The longer prefix is tried first.
	prefix, unit, err = reg.ParseName("kkm")
	require.NoError(t, err)
	assert.Equal(t, "kk", prefix)
	assert.Equal(t, "m", unit)

	_, _, err = reg.ParseName("s")
	assert.ErrorIs(t, err, ErrInvalidUnitOperation)

	q, err := reg.Parse("3 km")
	require.NoError(t, err)
	assert.Same(t, reg, q.Registry())
	assert.Equal(t, "6 m", q.ToBase().String())

	ft, err := reg.Parse("1000 ft")
	require.NoError(t, err)
	m, err := ft.To("m")
	require.NoError(t, err)
	assert.InDelta(t, 304.8, m.Magnitude(), 1e-9)
}

func TestRegistryAddsEmptyPrefix(t *testing.T) {
	reg := testRegistry(t)
	p, ok := reg.Prefix("")
	require.True(t, ok)
	assert.Equal(t, 0, p.Exponent)
	assert.Equal(t, 1.0, p.Multiplier())
	assert.Len(t, reg.Prefixes(), 3)
	assert.Equal(t, "test", reg.Name())
}

func TestNewRegistryErrors(t *testing.T) {
	meter := Unit{Symbol: "m", Dimension: DimensionOf(Length), Base: true}
	testCases := []struct {
		name     string
		prefixes []Prefix
		units    []Unit
	}{
		{"duplicate prefix", []Prefix{{"k", 3}, {"k", 3}}, []Unit{meter}},
		{"non-unit empty prefix", []Prefix{{"", 2}}, []Unit{meter}},
		{"duplicate unit", nil, []Unit{meter, meter}},
		{"empty symbol", nil, []Unit{meter, {Dimension: DimensionOf(Length)}}},
		{"negative scale", nil, []Unit{meter, {Symbol: "x", Dimension: DimensionOf(Length), Scale: -1}}},
		{"infinite scale", nil, []Unit{meter, {Symbol: "x", Dimension: DimensionOf(Length), Scale: math.Inf(1)}}},
		{"scaled base", nil, []Unit{{Symbol: "m", Dimension: DimensionOf(Length), Scale: 2, Base: true}}},
		{"compound base", nil, []Unit{{Symbol: "m2", Dimension: Dimension{2}, Base: true}}},
		{"two bases", nil, []Unit{meter, {Symbol: "ft", Dimension: DimensionOf(Length), Base: true}}},
		{"missing base", nil, []Unit{meter, {Symbol: "s", Dimension: DimensionOf(Time)}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRegistry("bad", tc.prefixes, tc.units)
			assert.ErrorIs(t, err, ErrInvalidRegistry)
		})
	}
}

func TestMustNewRegistryPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustNewRegistry("bad", nil, []Unit{{Symbol: "s", Dimension: DimensionOf(Time)}})
	})
}

func TestSIRegistry(t *testing.T) {
	reg := SI()
	assert.Same(t, reg, SI())
	assert.Equal(t, "SI", reg.Name())

	u, ok := reg.Lookup("degC")
	require.True(t, ok)
	assert.True(t, u.Affine())

	var bases []string
	for _, u := range reg.Units() {
		if u.Base {
			bases = append(bases, u.Symbol)
		}
	}
	assert.Equal(t, []string{"kg", "m", "s", "A", "K", "mol", "cd"}, bases)
}
