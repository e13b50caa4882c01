package gather

// Shape records how many of a block's 4 cells along each axis fall
// inside the array (1-4); a value of 4 (or 0 for an axis the
// dimensionality doesn't use) means the block is full along that axis
// and needs no padding.
type Shape struct {
	NX, NY, NZ byte
}

// Full reports whether the block needs no edge padding on any axis.
func (s Shape) Full() bool {
	return (s.NX == 0 || s.NX == 4) && (s.NY == 0 || s.NY == 4) && (s.NZ == 0 || s.NZ == 4)
}

// padBlock replicates block[base] forward to fill positions n..3 along
// stride, per original_source/src/cuda_zfp/shared.h's pad_block. n==0
// additionally zeroes position 0 first (an all-padding block, e.g. the
// axis lies entirely past the array edge). n==3 is the reference's
// documented asymmetry: position 3 copies from position 0, not 2.
func padBlock[T any](block []T, base, n, stride int) {
	at := func(i int) int { return base + i*stride }

	switch n {
	case 0:
		var zero T
		block[at(0)] = zero
		fallthrough
	case 1:
		block[at(1)] = block[at(0)]
		fallthrough
	case 2:
		block[at(2)] = block[at(1)]
		fallthrough
	case 3:
		block[at(3)] = block[at(0)]
	}
}
