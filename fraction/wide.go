package fraction

import "math/bits"

// cmpProducts compares a·b against c·d without overflow.
// Each product is formed as a sign plus a 128-bit magnitude.
//
// Complexity: O(1).
func cmpProducts(a, b, c, d int64) int {
	neg1, hi1, lo1 := mulWide(a, b)
	neg2, hi2, lo2 := mulWide(c, d)

	switch {
	case neg1 && !neg2:
		return -1
	case !neg1 && neg2:
		return 1
	}

	m := cmpMagnitude(hi1, lo1, hi2, lo2)
	if neg1 {
		// Both negative: the larger magnitude is the smaller value.
		return -m
	}

	return m
}

// mulWide returns the product a·b as (negative, hi, lo).
// A zero product is never reported as negative.
func mulWide(a, b int64) (neg bool, hi, lo uint64) {
	ua, na := magnitude(a)
	ub, nb := magnitude(b)
	hi, lo = bits.Mul64(ua, ub)
	neg = na != nb && (hi|lo) != 0

	return neg, hi, lo
}

// magnitude returns |v| as uint64 and whether v was negative.
// |math.MinInt64| = 2^63 fits in uint64.
func magnitude(v int64) (uint64, bool) {
	if v < 0 {
		return -uint64(v), true
	}

	return uint64(v), false
}

// cmpMagnitude compares two unsigned 128-bit values given as (hi, lo).
func cmpMagnitude(hi1, lo1, hi2, lo2 uint64) int {
	switch {
	case hi1 < hi2:
		return -1
	case hi1 > hi2:
		return 1
	case lo1 < lo2:
		return -1
	case lo1 > lo2:
		return 1
	}

	return 0
}
