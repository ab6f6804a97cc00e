// Package fraction implements exact rational values with a negative-infinity
// sentinel, ordered without any floating-point step.
//
// 🚀 What is it for?
//
//	The convex hull trick stores, for every line on the envelope, the
//	x-coordinate where that line starts to dominate its predecessor. Those
//	coordinates are intersections of integer lines, i.e. rationals p/q.
//	Rounding them to float64 silently breaks ties; this package keeps them
//	exact and compares them by cross-multiplication in 128 bits.
//
// ✨ Key features:
//   - Finite values p/q with q > 0 (sign always lives in the numerator)
//   - A NegInfinity value that is below every finite value
//   - Total order: Cmp / Equal / Less, plus CmpInt for plain integers
//   - No overflow: products num1·den2 are formed with math/bits.Mul64
//   - The zero value is the finite value 0/1
//
// ⚙️ Usage:
//
//	x, err := fraction.New(7, -2) // -7/2
//	if err != nil {
//	  // ErrZeroDenominator or ErrOverflow
//	}
//	x.CmpInt(-4)                   // 1, since -7/2 > -4
//	fraction.NegInf().Less(x)      // true
//
// Performance:
//
//   - Construction: O(1), no allocation
//   - Comparison:   O(1), two 64×64→128 multiplications
package fraction
