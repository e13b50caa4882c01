package transform

import (
	"math"

	"github.com/blocklift/zfp/traits"
)

// CastForward maps a block of scalars to the int64 container used by the
// rest of the pipeline. Float variants apply the block floating-point
// scaling (grounded on original_source/src/cuda_zfp/shared.h's
// fwd_cast/quantize_factor): every coefficient is scaled by 2^(precision-2-emax)
// and truncated, so the largest-magnitude coefficient lands near the top
// of the integer's range regardless of its original exponent. Integer
// variants pass through unchanged; emax is ignored for them.
func CastForward[F traits.Scalar](block []F, emax int) []int64 {
	t := traits.For[F]()
	out := make([]int64, len(block))

	if !t.IsFloat {
		for i, v := range block {
			out[i] = int64(v)
		}
		return out
	}

	scale := math.Ldexp(1, t.Precision-2-emax)
	for i, v := range block {
		out[i] = int64(math.Trunc(scale * float64(v)))
	}

	return out
}

// CastInverse undoes CastForward's scaling given the same emax. Integer
// variants round-trip exactly; for float variants the fraction that
// CastForward truncated below the scale is not recovered.
func CastInverse[F traits.Scalar](block []int64, emax int) []F {
	t := traits.For[F]()
	out := make([]F, len(block))

	if !t.IsFloat {
		for i, v := range block {
			out[i] = F(v)
		}
		return out
	}

	invExp := emax + 2 - t.Precision
	for i, v := range block {
		out[i] = F(math.Ldexp(float64(v), invExp))
	}

	return out
}
