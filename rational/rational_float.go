//go:build mwpf_float

package rational

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultEpsilon is the absolute tolerance below which two float-mode
// Rational values, or a dual variable/slack and zero, are treated as equal.
const DefaultEpsilon = 1e-9

// Rational is an IEEE-754 double wrapped so that equality and ordering are
// EPSILON-tolerant: values within DefaultEpsilon of each other compare
// equal, matching the decoder's documented tolerance for floating dual
// arithmetic.
type Rational struct {
	v float64
}

// Zero returns the additive identity.
func Zero() Rational { return Rational{0} }

// One returns the multiplicative identity.
func One() Rational { return Rational{1} }

// PositiveInfinity returns a value greater than every finite Rational.
func PositiveInfinity() Rational { return Rational{math.Inf(1)} }

// FromInt64 wraps a whole number.
func FromInt64(n int64) Rational { return Rational{float64(n)} }

// NewRat constructs num/den. Panics if den == 0.
func NewRat(num, den int64) Rational {
	if den == 0 {
		panic("rational: zero denominator")
	}
	return Rational{float64(num) / float64(den)}
}

// Add returns r + o.
func (r Rational) Add(o Rational) Rational { return Rational{r.v + o.v} }

// Sub returns r - o.
func (r Rational) Sub(o Rational) Rational { return Rational{r.v - o.v} }

// Mul returns r * o.
func (r Rational) Mul(o Rational) Rational { return Rational{r.v * o.v} }

// Div returns r / o. Panics if o is (tolerantly) zero.
func (r Rational) Div(o Rational) Rational {
	if o.IsZero() {
		panic("rational: division by zero")
	}
	return Rational{r.v / o.v}
}

// Neg returns -r.
func (r Rational) Neg() Rational { return Rational{-r.v} }

// Cmp returns -1, 0, or +1 as r is less than, equal to, or greater than o,
// collapsing differences within DefaultEpsilon to equal.
func (r Rational) Cmp(o Rational) int {
	if scalar.EqualWithinAbs(r.v, o.v, DefaultEpsilon) {
		return 0
	}
	if r.v < o.v {
		return -1
	}
	return 1
}

// IsZero reports whether r is within DefaultEpsilon of zero.
func (r Rational) IsZero() bool { return scalar.EqualWithinAbs(r.v, 0, DefaultEpsilon) }

// IsNegative reports whether r is below -DefaultEpsilon.
func (r Rational) IsNegative() bool { return !r.IsZero() && r.v < 0 }

// IsPositive reports whether r is above DefaultEpsilon, or infinite.
func (r Rational) IsPositive() bool { return !r.IsZero() && r.v > 0 }

// IsInfinite reports whether r is +infinity.
func (r Rational) IsInfinite() bool { return math.IsInf(r.v, 1) }

// Sign returns -1, 0, or +1 under the same tolerance as IsZero.
func (r Rational) Sign() int {
	switch {
	case r.IsZero():
		return 0
	case r.v < 0:
		return -1
	default:
		return 1
	}
}

// Float64 returns the underlying value.
func (r Rational) Float64() float64 { return r.v }

// String renders the value with enough precision to round-trip.
func (r Rational) String() string {
	if math.IsInf(r.v, 1) {
		return "+Inf"
	}
	return strconv.FormatFloat(r.v, 'g', -1, 64)
}

// Min returns the lesser of a and b.
func Min(a, b Rational) Rational {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}
