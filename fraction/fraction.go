package fraction

import (
	"math"
	"strconv"
)

// New returns the finite fraction num/den with the sign moved into the numerator.
//
// Errors:
//   - ErrZeroDenominator if den == 0.
//   - ErrOverflow if den < 0 and either value is math.MinInt64.
//
// The pair is not reduced: 2/4 stays 2/4 and Equal(1/2) reports true.
//
// Complexity: O(1).
func New(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	if den < 0 {
		if num == math.MinInt64 || den == math.MinInt64 {
			return Fraction{}, ErrOverflow
		}
		num, den = -num, -den
	}

	return Fraction{num: num, dm1: den - 1, kind: Finite}, nil
}

// MustNew is like New but panics on a zero denominator or overflow.
func MustNew(num, den int64) Fraction {
	f, err := New(num, den)
	if err != nil {
		panic(err)
	}

	return f
}

// FromInt returns k/1.
func FromInt(k int64) Fraction {
	return Fraction{num: k, kind: Finite}
}

// NegInf returns the negative-infinity sentinel.
func NegInf() Fraction {
	return Fraction{kind: NegInfinity}
}

// Kind reports whether f is Finite or NegInfinity.
func (f Fraction) Kind() Kind { return f.kind }

// IsNegInf reports whether f is the negative-infinity sentinel.
func (f Fraction) IsNegInf() bool { return f.kind == NegInfinity }

// Num returns the numerator. It is 0 for NegInfinity.
func (f Fraction) Num() int64 { return f.num }

// Den returns the strictly positive denominator. It is 1 for NegInfinity.
func (f Fraction) Den() int64 { return f.dm1 + 1 }

// Cmp returns -1, 0 or +1 as f is less than, equal to, or greater than g.
//
// NegInfinity equals only itself and is below every finite value. Two finite
// values are ordered by num_f·den_g against num_g·den_f, both formed in 128 bits;
// denominators are positive, so the cross products preserve the order.
//
// Complexity: O(1).
func (f Fraction) Cmp(g Fraction) int {
	switch {
	case f.kind == NegInfinity && g.kind == NegInfinity:
		return 0
	case f.kind == NegInfinity:
		return -1
	case g.kind == NegInfinity:
		return 1
	}

	return cmpProducts(f.num, g.Den(), g.num, f.Den())
}

// Equal reports whether f and g denote the same value.
func (f Fraction) Equal(g Fraction) bool { return f.Cmp(g) == 0 }

// Less reports whether f < g.
func (f Fraction) Less(g Fraction) bool { return f.Cmp(g) < 0 }

// CmpInt compares f against the integer k, i.e. against k/1.
func (f Fraction) CmpInt(k int64) int { return f.Cmp(FromInt(k)) }

// String renders "-inf", "p" for integral values with den 1, or "p/q".
func (f Fraction) String() string {
	if f.kind == NegInfinity {
		return "-inf"
	}
	if f.dm1 == 0 {
		return strconv.FormatInt(f.num, 10)
	}

	return strconv.FormatInt(f.num, 10) + "/" + strconv.FormatInt(f.Den(), 10)
}
