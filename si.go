package siunits

import "sync"

// SIPrefixes returns the SI decimal prefixes.
func SIPrefixes() []Prefix {
	return []Prefix{
		{"", 0},
		{"Y", 24},
		{"Z", 21},
		{"E", 18},
		{"P", 15},
		{"T", 12},
		{"G", 9},
		{"M", 6},
		{"k", 3},
		{"h", 2},
		{"da", 1},
		{"d", -1},
		{"c", -2},
		{"m", -3},
		{"u", -6},
		{"µ", -6},
		{"n", -9},
		{"p", -12},
		{"f", -15},
		{"a", -18},
		{"z", -21},
		{"y", -24},
	}
}

func dim(l, m, t, i, th, n, j int) Dimension {
	return Dimension{l, m, t, i, th, n, j}
}

// SIUnits returns the SI base units, the named derived units and a few
// accepted non-SI units (minute, hour, day, litre, tonne, degree Celsius).
// Base units come first, mass leading, so that derived units reduce to the
// conventional "kg.m.s-2" ordering.
func SIUnits() []Unit {
	return []Unit{
		{Symbol: "kg", Dimension: DimensionOf(Mass), Scale: 1, Base: true},
		{Symbol: "m", Dimension: DimensionOf(Length), Scale: 1, Base: true},
		{Symbol: "s", Dimension: DimensionOf(Time), Scale: 1, Base: true},
		{Symbol: "A", Dimension: DimensionOf(Current), Scale: 1, Base: true},
		{Symbol: "K", Dimension: DimensionOf(Temperature), Scale: 1, Base: true},
		{Symbol: "mol", Dimension: DimensionOf(Amount), Scale: 1, Base: true},
		{Symbol: "cd", Dimension: DimensionOf(LuminousIntensity), Scale: 1, Base: true},

		{Symbol: "g", Dimension: DimensionOf(Mass), Scale: 1e-3},
		{Symbol: "Hz", Dimension: dim(0, 0, -1, 0, 0, 0, 0), Scale: 1},
		{Symbol: "N", Dimension: dim(1, 1, -2, 0, 0, 0, 0), Scale: 1},
		{Symbol: "Pa", Dimension: dim(-1, 1, -2, 0, 0, 0, 0), Scale: 1},
		{Symbol: "J", Dimension: dim(2, 1, -2, 0, 0, 0, 0), Scale: 1},
		{Symbol: "W", Dimension: dim(2, 1, -3, 0, 0, 0, 0), Scale: 1},
		{Symbol: "C", Dimension: dim(0, 0, 1, 1, 0, 0, 0), Scale: 1},
		{Symbol: "V", Dimension: dim(2, 1, -3, -1, 0, 0, 0), Scale: 1},
		{Symbol: "F", Dimension: dim(-2, -1, 4, 2, 0, 0, 0), Scale: 1},
		{Symbol: "ohm", Dimension: dim(2, 1, -3, -2, 0, 0, 0), Scale: 1},
		{Symbol: "Ω", Dimension: dim(2, 1, -3, -2, 0, 0, 0), Scale: 1},
		{Symbol: "S", Dimension: dim(-2, -1, 3, 2, 0, 0, 0), Scale: 1},
		{Symbol: "Wb", Dimension: dim(2, 1, -2, -1, 0, 0, 0), Scale: 1},
		{Symbol: "T", Dimension: dim(0, 1, -2, -1, 0, 0, 0), Scale: 1},
		{Symbol: "H", Dimension: dim(2, 1, -2, -2, 0, 0, 0), Scale: 1},
		{Symbol: "degC", Dimension: DimensionOf(Temperature), Scale: 1, Offset: 273.15},
		{Symbol: "lm", Dimension: DimensionOf(LuminousIntensity), Scale: 1},
		{Symbol: "lx", Dimension: dim(-2, 0, 0, 0, 0, 0, 1), Scale: 1},
		{Symbol: "Bq", Dimension: dim(0, 0, -1, 0, 0, 0, 0), Scale: 1},
		{Symbol: "Gy", Dimension: dim(2, 0, -2, 0, 0, 0, 0), Scale: 1},
		{Symbol: "Sv", Dimension: dim(2, 0, -2, 0, 0, 0, 0), Scale: 1},
		{Symbol: "kat", Dimension: dim(0, 0, -1, 0, 0, 1, 0), Scale: 1},

		{Symbol: "min", Dimension: DimensionOf(Time), Scale: 60},
		{Symbol: "h", Dimension: DimensionOf(Time), Scale: 3600},
		{Symbol: "d", Dimension: DimensionOf(Time), Scale: 86400},
		{Symbol: "L", Dimension: dim(3, 0, 0, 0, 0, 0, 0), Scale: 1e-3},
		{Symbol: "t", Dimension: DimensionOf(Mass), Scale: 1e3},
	}
}

var siRegistry = sync.OnceValue(func() *Registry {
	return MustNewRegistry("SI", SIPrefixes(), SIUnits())
})

// SI returns the shared standard SI registry.
func SI() *Registry { return siRegistry() }
