//go:build !mwpf_float

package rational

import (
	"math"
	"math/big"
)

// DefaultEpsilon is unused in the exact build; kept so both builds expose
// the same constant for documentation and for callers that print it.
const DefaultEpsilon = 0.0

// Rational is an exact rational number backed by math/big.Rat. inf marks a
// value pinned at +infinity (used for WeightRange.Upper on an infeasible
// decode) — big.Rat has no such concept natively, so it is modeled
// out-of-band rather than forcing every caller to special-case a nil *Rat.
type Rational struct {
	v   *big.Rat
	inf bool
}

func newRat(v *big.Rat) Rational { return Rational{v: v} }

// Zero returns the additive identity.
func Zero() Rational { return Rational{v: new(big.Rat)} }

// One returns the multiplicative identity.
func One() Rational { return Rational{v: big.NewRat(1, 1)} }

// PositiveInfinity returns a value greater than every finite Rational.
// Only meaningful as WeightRange.Upper on an infeasible decode. Add with it
// yields +infinity; Sub, Mul, Div and Neg on it panic.
func PositiveInfinity() Rational { return Rational{inf: true} }

// FromInt64 wraps a whole number.
func FromInt64(n int64) Rational { return Rational{v: big.NewRat(n, 1)} }

// NewRat constructs num/den in lowest terms. Panics if den == 0.
func NewRat(num, den int64) Rational {
	if den == 0 {
		panic("rational: zero denominator")
	}
	return Rational{v: big.NewRat(num, den)}
}

func (r Rational) mustFinite(op string) {
	if r.inf {
		panic("rational: " + op + " on +infinity")
	}
}

// Add returns r + o.
func (r Rational) Add(o Rational) Rational {
	if r.inf || o.inf {
		return PositiveInfinity()
	}
	return newRat(new(big.Rat).Add(r.v, o.v))
}

// Sub returns r - o.
func (r Rational) Sub(o Rational) Rational {
	r.mustFinite("Sub")
	o.mustFinite("Sub")
	return newRat(new(big.Rat).Sub(r.v, o.v))
}

// Mul returns r * o.
func (r Rational) Mul(o Rational) Rational {
	r.mustFinite("Mul")
	o.mustFinite("Mul")
	return newRat(new(big.Rat).Mul(r.v, o.v))
}

// Div returns r / o. Panics if o is zero.
func (r Rational) Div(o Rational) Rational {
	r.mustFinite("Div")
	o.mustFinite("Div")
	if o.IsZero() {
		panic("rational: division by zero")
	}
	return newRat(new(big.Rat).Quo(r.v, o.v))
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	r.mustFinite("Neg")
	return newRat(new(big.Rat).Neg(r.v))
}

// Cmp returns -1, 0, or +1 as r is less than, equal to, or greater than o.
func (r Rational) Cmp(o Rational) int {
	switch {
	case r.inf && o.inf:
		return 0
	case r.inf:
		return 1
	case o.inf:
		return -1
	default:
		return r.v.Cmp(o.v)
	}
}

// IsZero reports whether r is exactly zero.
func (r Rational) IsZero() bool { return !r.inf && r.v.Sign() == 0 }

// IsNegative reports whether r < 0.
func (r Rational) IsNegative() bool { return !r.inf && r.v.Sign() < 0 }

// IsPositive reports whether r > 0.
func (r Rational) IsPositive() bool { return r.inf || r.v.Sign() > 0 }

// IsInfinite reports whether r is the sentinel +infinity value.
func (r Rational) IsInfinite() bool { return r.inf }

// Sign returns -1, 0, or +1.
func (r Rational) Sign() int {
	if r.inf {
		return 1
	}
	return r.v.Sign()
}

// Float64 returns the closest float64 approximation; +Inf for the infinity
// sentinel.
func (r Rational) Float64() float64 {
	if r.inf {
		return math.Inf(1)
	}
	f, _ := r.v.Float64()
	return f
}

// String renders the value as "num/den" (just "num" when the denominator
// is 1), or "+Inf".
func (r Rational) String() string {
	if r.inf {
		return "+Inf"
	}
	return r.v.RatString()
}

// Min returns the lesser of a and b.
func Min(a, b Rational) Rational {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}
