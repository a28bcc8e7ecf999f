package siunits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseName(t *testing.T) {
	testCases := []struct {
		token  string
		prefix string
		unit   string
	}{
		{"km", "k", "m"},
		{"C", "", "C"},
		{"GC", "G", "C"},
		{"m", "", "m"},
		{"mm", "m", "m"},
		{"degC", "", "degC"},
		{"MdegC", "M", "degC"},
		{"dm", "d", "m"},
		{"dam", "da", "m"},
		{"kg", "", "kg"},
		{"mg", "m", "g"},
		{"Pa", "", "Pa"},
		{"cd", "", "cd"},
		{"h", "", "h"},
		{"min", "", "min"},
		{"µm", "µ", "m"},
		{"um", "u", "m"},
		{"nm", "n", "m"},
	}
	for _, tc := range testCases {
		t.Run(tc.token, func(t *testing.T) {
			prefix, unit, err := SI().ParseName(tc.token)
			require.NoError(t, err)
			assert.Equal(t, tc.prefix, prefix)
			assert.Equal(t, tc.unit, unit)
		})
	}
}

func TestParseNameFails(t *testing.T) {
	for _, token := range []string{"o", "ko", "oo", "", "kkm", "mo"} {
		t.Run(token, func(t *testing.T) {
			_, _, err := SI().ParseName(token)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidUnitOperation)
		})
	}
}

func TestParseNameRoundTrip(t *testing.T) {
	reg := SI()
	for _, u := range reg.Units() {
		for _, p := range reg.Prefixes() {
			token := p.Symbol + u.Symbol
			if _, exact := reg.Lookup(token); exact && p.Symbol != "" {
				// e.g. "c"+"d" is the candela, "m"+"in" is the minute
				continue
			}
			prefix, unit, err := reg.ParseName(token)
			require.NoError(t, err, token)
			if prefix == p.Symbol && unit == u.Symbol {
				continue
			}
			// A longer prefix may claim the token first: "da"+"m" for "d"+"am".
			assert.Greater(t, len(prefix), len(p.Symbol), "token %q parsed as %q+%q", token, prefix, unit)
		}
	}
}

func TestParseExpr(t *testing.T) {
	reg := SI()
	meter := reg.MustUnit("m")
	millimeter := reg.MustUnit("mm")
	kg := reg.MustUnit("kg")

	testCases := []struct {
		name string
		expr string
		want Quantity
	}{
		{"metre", "m", meter},
		{"millimetre", "mm", millimeter},
		{"square", "m2", meter.Pow(2)},
		{"square with caret", "m^2", meter.Pow(2)},
		{"square mm", "mm2", millimeter.Pow(2)},
		{"square mm with caret", "mm^2", millimeter.Pow(2)},
		{"large exponent", "mm500", millimeter.Pow(500)},
		{"large exponent with caret", "mm^500", millimeter.Pow(500)},
		{"product", "m.kg", meter.Mul(kg)},
		{"square product", "m2.kg", meter.Pow(2).Mul(kg)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := reg.Unit(tc.expr)
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "want %s, got %s", tc.want, got)
		})
	}
}

func TestParseExprFactors(t *testing.T) {
	factors, err := SI().ParseExpr("kg.m.s-2")
	require.NoError(t, err)
	assert.Equal(t, []Factor{
		{Unit: "kg", Exponent: 1},
		{Unit: "m", Exponent: 1},
		{Unit: "s", Exponent: -2},
	}, factors)

	factors, err = SI().ParseExpr("m.m^-1.mm+3")
	require.NoError(t, err)
	assert.Equal(t, []Factor{
		{Unit: "m", Exponent: 1},
		{Unit: "m", Exponent: -1},
		{Prefix: "m", Unit: "m", Exponent: 3},
	}, factors, "terms are never merged while parsing")

	factors, err = SI().ParseExpr("m0.s")
	require.NoError(t, err)
	assert.Equal(t, []Factor{{Unit: "s", Exponent: 1}}, factors)

	factors, err = SI().ParseExpr("")
	require.NoError(t, err)
	assert.Empty(t, factors)
}

func TestParseExprFails(t *testing.T) {
	for _, expr := range []string{"o", "m.", ".m", "m..s", "m^", "m2x", "m^^2", "2", "m.ko", "m2^3"} {
		t.Run(expr, func(t *testing.T) {
			_, err := SI().ParseExpr(expr)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidUnitOperation)
		})
	}
}
