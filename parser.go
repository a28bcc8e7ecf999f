package siunits

import (
	"strconv"
	"strings"
)

// ParseName splits a prefixed unit token into its prefix and unit symbol.
// A registered unit symbol always wins over a prefix split, and longer
// prefixes are tried before shorter ones.
func (r *Registry) ParseName(token string) (prefix, unit string, err error) {
	if _, ok := r.units[token]; ok {
		return "", token, nil
	}
	for _, p := range r.searchOrder {
		rest, ok := strings.CutPrefix(token, p.Symbol)
		if !ok {
			continue
		}
		if _, ok := r.units[rest]; ok {
			return p.Symbol, rest, nil
		}
	}
	return "", "", unitErr("parse name", token, "no prefix and unit decomposition")
}

// ParseExpr parses a dot separated product such as "m2.kg" or "kg.m.s^-2".
// Each term keeps its own factor; terms with a zero exponent are dropped.
func (r *Registry) ParseExpr(expr string) ([]Factor, error) {
	if expr == "" {
		return nil, nil
	}
	terms := strings.Split(expr, ".")
	factors := make([]Factor, 0, len(terms))
	for _, term := range terms {
		f, err := r.parseTerm(term)
		if err != nil {
			return nil, unitErr("parse expr", expr, "%v", err)
		}
		if f.Exponent != 0 {
			factors = append(factors, f)
		}
	}
	return factors, nil
}

func (r *Registry) parseTerm(term string) (Factor, error) {
	if term == "" {
		return Factor{}, unitErr("parse term", term, "empty term")
	}
	i := strings.IndexAny(term, "0123456789^+-")
	if i < 0 {
		i = len(term)
	}
	name, rest := term[:i], term[i:]
	if name == "" {
		return Factor{}, unitErr("parse term", term, "missing unit name")
	}
	prefix, unit, err := r.ParseName(name)
	if err != nil {
		return Factor{}, err
	}
	exp := 1
	if rest != "" {
		rest = strings.TrimPrefix(rest, "^")
		exp, err = strconv.Atoi(rest)
		if err != nil {
			return Factor{}, unitErr("parse term", term, "invalid exponent %q", rest)
		}
	}
	return Factor{Prefix: prefix, Unit: unit, Exponent: exp}, nil
}
