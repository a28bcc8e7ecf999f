package siunits

import (
	"math"
	"sort"
	"unicode/utf8"
)

// Registry is an immutable table of prefixes and units. It is safe for
// concurrent use once built.
type Registry struct {
	name string

	prefixOrder []Prefix
	prefixes    map[string]Prefix
	// non-empty prefixes, longest first, ties in registration order
	searchOrder []Prefix

	unitOrder []Unit
	units     map[string]Unit
	// base quantities in the registration order of their base units
	baseOrder []BaseQuantity
	bases     [NumBaseQuantities]string
}

// NewRegistry builds a registry. The empty prefix is added when missing.
// Every base quantity used by a unit dimension must have a base unit.
func NewRegistry(name string, prefixes []Prefix, units []Unit) (*Registry, error) {
	r := &Registry{
		name:     name,
		prefixes: make(map[string]Prefix, len(prefixes)+1),
		units:    make(map[string]Unit, len(units)),
	}

	if !hasEmptyPrefix(prefixes) {
		r.addPrefix(Prefix{})
	}
	for _, p := range prefixes {
		if _, dup := r.prefixes[p.Symbol]; dup {
			return nil, registryErr("duplicate prefix %q", p.Symbol)
		}
		if p.Symbol == "" && p.Exponent != 0 {
			return nil, registryErr("empty prefix must have exponent 0")
		}
		r.addPrefix(p)
	}
	sort.SliceStable(r.searchOrder, func(i, j int) bool {
		return utf8.RuneCountInString(r.searchOrder[i].Symbol) > utf8.RuneCountInString(r.searchOrder[j].Symbol)
	})

	var used Dimension
	for _, u := range units {
		if u.Symbol == "" {
			return nil, registryErr("unit with empty symbol")
		}
		if _, dup := r.units[u.Symbol]; dup {
			return nil, registryErr("duplicate unit %q", u.Symbol)
		}
		if u.Scale == 0 {
			u.Scale = 1
		}
		if u.Scale < 0 || math.IsInf(u.Scale, 0) || math.IsNaN(u.Scale) {
			return nil, registryErr("unit %q has invalid scale %v", u.Symbol, u.Scale)
		}
		if u.Base {
			b, ok := u.Dimension.single()
			if !ok || u.Scale != 1 || u.Offset != 0 {
				return nil, registryErr("base unit %q must have scale 1 and a single base dimension", u.Symbol)
			}
			if r.bases[b] != "" {
				return nil, registryErr("base quantity %s has base units %q and %q", b, r.bases[b], u.Symbol)
			}
			r.bases[b] = u.Symbol
			r.baseOrder = append(r.baseOrder, b)
		}
		for i, e := range u.Dimension {
			if e != 0 {
				used[i] = 1
			}
		}
		r.units[u.Symbol] = u
		r.unitOrder = append(r.unitOrder, u)
	}
	for i, e := range used {
		if e != 0 && r.bases[i] == "" {
			return nil, registryErr("no base unit for %s", BaseQuantity(i))
		}
	}
	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on error.
func MustNewRegistry(name string, prefixes []Prefix, units []Unit) *Registry {
	r, err := NewRegistry(name, prefixes, units)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) addPrefix(p Prefix) {
	r.prefixes[p.Symbol] = p
	r.prefixOrder = append(r.prefixOrder, p)
	if p.Symbol != "" {
		r.searchOrder = append(r.searchOrder, p)
	}
}

func hasEmptyPrefix(prefixes []Prefix) bool {
	for _, p := range prefixes {
		if p.Symbol == "" {
			return true
		}
	}
	return false
}

func (r *Registry) Name() string { return r.name }

// Prefixes returns the prefixes in registration order.
func (r *Registry) Prefixes() []Prefix {
	return append([]Prefix(nil), r.prefixOrder...)
}

// Units returns the units in registration order.
func (r *Registry) Units() []Unit {
	return append([]Unit(nil), r.unitOrder...)
}

func (r *Registry) Prefix(symbol string) (Prefix, bool) {
	p, ok := r.prefixes[symbol]
	return p, ok
}

func (r *Registry) Lookup(symbol string) (Unit, bool) {
	u, ok := r.units[symbol]
	return u, ok
}

// Dimension sums exponent × unit dimension over factors. Unknown units
// contribute nothing.
func (r *Registry) Dimension(factors []Factor) Dimension {
	var d Dimension
	for _, f := range factors {
		d = d.Add(r.units[f.Unit].Dimension.Scale(f.Exponent))
	}
	return d
}

func (r *Registry) validFactor(f Factor) bool {
	if _, ok := r.units[f.Unit]; !ok {
		return false
	}
	_, ok := r.prefixes[f.Prefix]
	return ok
}
