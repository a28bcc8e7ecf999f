package siunits

import (
	"math"
	"math/big"
)

// maxScaleBits bounds the size of a single factor scale expanded exactly.
// Factors beyond it are folded in as float64 logarithms.
const maxScaleBits = 1 << 16

func pow10Rat(exp int) *big.Rat {
	if exp == 0 {
		return big.NewRat(1, 1)
	}
	n := exp
	if n < 0 {
		n = -n
	}
	p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	if exp < 0 {
		return new(big.Rat).SetFrac(big.NewInt(1), p)
	}
	return new(big.Rat).SetInt(p)
}

// ratPow raises r to an integer power. r must be non-zero when n < 0.
func ratPow(r *big.Rat, n int) *big.Rat {
	if n < 0 {
		return ratPow(new(big.Rat).Inv(r), -n)
	}
	num := new(big.Int).Exp(r.Num(), big.NewInt(int64(n)), nil)
	den := new(big.Int).Exp(r.Denom(), big.NewInt(int64(n)), nil)
	return new(big.Rat).SetFrac(num, den)
}

// applyScale multiplies v by r, rounding once.
func applyScale(v float64, r *big.Rat) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		f, _ := r.Float64()
		return v * f
	}
	x := new(big.Rat).SetFloat64(v)
	x.Mul(x, r)
	f, _ := x.Float64()
	return f
}

// scaling is a product of factor scales. It stays an exact rational until a
// factor is too large to expand, after which only its decimal logarithm is
// tracked.
type scaling struct {
	exact  *big.Rat
	log10  float64
	approx bool
}

func newScaling() *scaling {
	return &scaling{exact: big.NewRat(1, 1)}
}

// mul multiplies s by base^exp. base must be positive.
func (s *scaling) mul(base *big.Rat, exp int) *scaling {
	if exp == 0 {
		return s
	}
	bits := base.Num().BitLen() + base.Denom().BitLen() - 2
	if bits == 0 {
		return s
	}
	f, _ := base.Float64()
	s.log10 += float64(exp) * math.Log10(f)
	if s.approx {
		return s
	}
	if absExp(exp) > uint64(maxScaleBits/bits) {
		s.approx = true
		return s
	}
	s.exact.Mul(s.exact, ratPow(base, exp))
	return s
}

// factors multiplies s by the scale of every factor, exponents times sign.
func (s *scaling) factors(r *Registry, factors []Factor, sign int) *scaling {
	for _, f := range factors {
		s.mul(r.factorBase(f), sign*f.Exponent)
	}
	return s
}

// apply returns v × s.
func (s *scaling) apply(v float64) float64 {
	if !s.approx {
		return applyScale(v, s.exact)
	}
	if v == 0 || math.IsNaN(v) {
		return v
	}
	return math.Copysign(math.Pow(10, math.Log10(math.Abs(v))+s.log10), v)
}

func absExp(n int) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}

// factorBase is prefix multiplier × unit scale, before the exponent.
func (r *Registry) factorBase(f Factor) *big.Rat {
	return new(big.Rat).Mul(r.prefixes[f.Prefix].multiplier(), r.units[f.Unit].scale())
}
