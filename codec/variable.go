package codec

import (
	"github.com/blocklift/zfp/bitstream"
	"github.com/blocklift/zfp/errs"
	"github.com/blocklift/zfp/traits"
)

// EncodeFieldVariableRate encodes a whole field in ModeFixedPrecision or
// ModeFixedAccuracy, where each block's length varies. It returns the
// packed word stream and a per-block offset index (length
// totalBlocks+1; offsets[i] is block i's starting bit offset, and the
// final entry is the total bit count), which a caller must persist
// alongside the stream for DecodeFieldVariableRate to use (spec §6
// "d_index").
//
// This mirrors spec §5's two-phase concurrency model even though it runs
// serially here: a length-computation pass (each block encoded once into
// a scratch buffer purely to learn its length) followed by a prefix sum,
// then a bit-deposition pass at the now-known offsets. EncodeFieldParallel
// covers only ModeFixedRate, where offsets are known without a length pass.
func EncodeFieldVariableRate[F traits.Scalar](d *Driver, src []F, size, stride [3]int) (words []uint64, offsets []uint64) {
	total := d.totalBlocks(size)
	lengths := make([]int, total)

	scratchWords := (d.maxbits + 63) / 64
	scratch := make([]uint64, scratchWords+1)

	d.iterBlocks(size, stride, func(g blockGeometry) {
		block := gatherBlockStrided(d, src, stride, g)
		for i := range scratch {
			scratch[i] = 0
		}
		w := bitstream.NewWriter(scratch)
		bits, _ := EncodeBlock(w, block, d.dims, d.minexp, d.maxbits, d.maxprec)
		lengths[g.index] = bits
	})

	offsets = prefixSum(lengths)
	totalBits := offsets[total]
	words = make([]uint64, (totalBits+63)/64)

	d.iterBlocks(size, stride, func(g blockGeometry) {
		block := gatherBlockStrided(d, src, stride, g)
		w := bitstream.NewWriter(words)
		w.SeekTo(offsets[g.index])
		EncodeBlock(w, block, d.dims, d.minexp, d.maxbits, d.maxprec) //nolint:errcheck // length already known from pass 1
	})

	return words, offsets
}

// DecodeFieldVariableRate is EncodeFieldVariableRate's inverse. offsets
// must be the index EncodeFieldVariableRate returned (or an equivalent
// caller-supplied index per spec §6). Per spec §7, a nil or
// length-mismatched index yields errs.ErrIndexMissing.
func DecodeFieldVariableRate[F traits.Scalar](d *Driver, words []uint64, offsets []uint64, dst []F, size, stride [3]int) error {
	total := d.totalBlocks(size)
	if len(offsets) != total+1 {
		return errs.ErrIndexMissing
	}

	d.iterBlocks(size, stride, func(g blockGeometry) {
		budget := int(offsets[g.index+1] - offsets[g.index])
		r := bitstream.NewReaderAt(words, offsets[g.index])
		block, _ := DecodeBlock[F](r, d.dims, d.minexp, budget, d.maxprec)
		scatterBlockStrided(d, dst, stride, g, block)
	})

	return nil
}

// prefixSum returns the exclusive prefix sum of lengths as uint64 bit
// offsets, with one extra trailing entry equal to the total.
func prefixSum(lengths []int) []uint64 {
	out := make([]uint64, len(lengths)+1)
	var acc uint64
	for i, n := range lengths {
		out[i] = acc
		acc += uint64(n)
	}
	out[len(lengths)] = acc
	return out
}
