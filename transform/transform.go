package transform

import "github.com/blocklift/zfp/traits"

// ForwardBlock runs the full encode-side pipeline on a raw, gathered
// block: exponent extraction, block floating-point cast, decorrelation,
// frequency reordering, and the negabinary remap. It returns the ordered
// unsigned coefficients ready for bit-plane coding, the block's exponent
// (0 for integer variants), and the bit-plane count the caller should
// pass to the bit-plane coder for the given accuracy floor. maxprec caps
// the returned bit-plane count (e.g. a driver's configured
// fixed-precision budget); it is further clamped to the scalar's native
// width.
func ForwardBlock[F traits.Scalar](block []F, dims, minexp, maxprec int) (coeffs []uint64, emax, outMaxprec int) {
	t := traits.For[F]()

	if t.IsFloat {
		emax = MaxExponentFloat(block, t.EBias)
	}

	ints := CastForward(block, emax)
	Decorrelate(ints, dims)
	ordered := Reorder(ints, dims)

	coeffs = make([]uint64, len(ordered))
	for i, v := range ordered {
		coeffs[i] = Int2UInt(v)
	}

	cap := maxprec
	if cap <= 0 || cap > t.Precision {
		cap = t.Precision
	}
	outMaxprec = BlockPrecision(emax, cap, minexp, dims)

	return coeffs, emax, outMaxprec
}

// InverseBlock is the exact inverse of ForwardBlock given the same emax.
func InverseBlock[F traits.Scalar](coeffs []uint64, dims, emax int) []F {
	ordered := make([]int64, len(coeffs))
	for i, u := range coeffs {
		ordered[i] = UInt2Int(u)
	}

	ints := InverseReorder(ordered, dims)
	Undecorrelate(ints, dims)

	return CastInverse[F](ints, emax)
}

// MaxExponentFloat is MaxExponent instantiated for float-kind scalars;
// ForwardBlock calls it through this wrapper because Go generics cannot
// branch on traits.Scalar's ~int32|~int64 arm inside MaxExponent's own
// ~float32|~float64 constraint.
func MaxExponentFloat[F traits.Scalar](block []F, ebias int) int {
	var maxAbs float64
	for _, v := range block {
		f := float64(v)
		if f < 0 {
			f = -f
		}
		if f > maxAbs {
			maxAbs = f
		}
	}

	if maxAbs == 0 {
		return -ebias
	}

	return Exponent(maxAbs, ebias)
}
