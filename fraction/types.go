package fraction

import "errors"

var (
	// ErrZeroDenominator is returned when a fraction is built with a zero denominator.
	ErrZeroDenominator = errors.New("fraction: zero denominator")

	// ErrOverflow is returned when sign normalization cannot be represented in int64
	// (negating math.MinInt64).
	ErrOverflow = errors.New("fraction: sign normalization overflows int64")
)

// Kind tells a finite fraction apart from the negative-infinity sentinel.
type Kind uint8

const (
	// Finite is an ordinary rational num/den with den > 0.
	Finite Kind = iota

	// NegInfinity compares below every finite value and equal only to itself.
	NegInfinity
)

// String returns "finite" or "-inf".
func (k Kind) String() string {
	if k == NegInfinity {
		return "-inf"
	}

	return "finite"
}

// Fraction is an immutable exact rational or the negative-infinity sentinel.
//
// The denominator is stored biased by one, so the zero value is 0/1.
// Values are comparable with == only when both were built from the same
// reduced pair; use Equal for numeric equality (1/2 vs 2/4).
type Fraction struct {
	num  int64
	dm1  int64 // denominator minus one; always >= 0
	kind Kind
}
