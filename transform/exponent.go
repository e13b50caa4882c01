package transform

import "math"

// Exponent returns the IEEE-754 binary exponent of x (i.e. the e such
// that x = frac * 2^e with 0.5 <= frac < 1), clamped so that a
// denormalized x still yields a representable exponent. x must be
// positive; callers pass fabs(value).
//
// Grounded on original_source/src/cuda_zfp/shared.h's exponent<Scalar>.
func Exponent(x float64, ebias int) int {
	if x <= 0 {
		return -ebias
	}

	_, e := math.Frexp(x)
	if e < 1-ebias {
		return 1 - ebias
	}

	return e
}

// MaxExponent scans block for the largest-magnitude coefficient and
// returns its exponent, or -ebias if the block is all zero.
func MaxExponent[F ~float32 | ~float64](block []F, ebias int) int {
	var maxAbs float64
	for _, v := range block {
		av := math.Abs(float64(v))
		if av > maxAbs {
			maxAbs = av
		}
	}

	if maxAbs == 0 {
		return -ebias
	}

	return Exponent(maxAbs, ebias)
}
