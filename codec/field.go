package codec

import (
	"github.com/blocklift/zfp/bitstream"
	"github.com/blocklift/zfp/gather"
	"github.com/blocklift/zfp/traits"
)

// blockGeometry describes one block's position within a field: its linear
// scalar offset, block index (row-major, x fastest), and per-axis valid
// extents (4 unless the block straddles the field's trailing edge).
type blockGeometry struct {
	offset int
	index  int
	shape  gather.Shape
}

// iterBlocks enumerates every block in row-major order (x fastest, then y,
// then z) for a field of the given per-axis extents and strides, calling
// fn once per block. Matches spec §4.7: "Iterate blocks in row-major order
// by block index."
func (d *Driver) iterBlocks(size, stride [3]int, fn func(blockGeometry)) {
	counts := d.blockCounts(size)
	xCount, yCount, zCount := counts[0], counts[1], counts[2]
	if d.dims < 3 {
		zCount = 1
	}
	if d.dims < 2 {
		yCount = 1
	}

	index := 0
	for bz := 0; bz < zCount; bz++ {
		for by := 0; by < yCount; by++ {
			for bx := 0; bx < xCount; bx++ {
				offset := bx*4*stride[0] + by*4*stride[1] + bz*4*stride[2]

				shape := gather.Shape{}
				shape.NX = edgeExtent(d.dims >= 1, bx, size[0])
				if d.dims >= 2 {
					shape.NY = edgeExtent(true, by, size[1])
				}
				if d.dims >= 3 {
					shape.NZ = edgeExtent(true, bz, size[2])
				}

				fn(blockGeometry{offset: offset, index: index, shape: shape})
				index++
			}
		}
	}
}

// edgeExtent returns how many of a block's 4 cells along one axis fall
// inside an extent-sized array (1-4), or 0 if the axis is unused.
func edgeExtent(used bool, blockIdx, extent int) byte {
	if !used {
		return 0
	}
	remaining := extent - blockIdx*4
	if remaining >= 4 {
		return 4
	}
	return byte(remaining)
}

// gatherBlockStrided copies one block (full or partial) from src at the
// strided positions g describes into a fresh BlockSize-length buffer.
func gatherBlockStrided[F any](d *Driver, src []F, stride [3]int, g blockGeometry) []F {
	dst := make([]F, d.BlockSize())

	switch d.dims {
	case 1:
		if g.shape.Full() {
			gather.Gather1(dst, src, g.offset, stride[0])
		} else {
			gather.GatherPartial1(dst, src, g.offset, stride[0], int(g.shape.NX))
		}
	case 2:
		if g.shape.Full() {
			gather.Gather2(dst, src, g.offset, stride[0], stride[1])
		} else {
			gather.GatherPartial2(dst, src, g.offset, stride[0], stride[1], int(g.shape.NX), int(g.shape.NY))
		}
	case 3:
		if g.shape.Full() {
			gather.Gather3(dst, src, g.offset, stride[0], stride[1], stride[2])
		} else {
			gather.GatherPartial3(dst, src, g.offset, stride[0], stride[1], stride[2], int(g.shape.NX), int(g.shape.NY), int(g.shape.NZ))
		}
	}

	return dst
}

// scatterBlockStrided writes a decoded block back into dst at the strided
// positions g describes, truncating partial blocks to their valid extent.
func scatterBlockStrided[F any](d *Driver, dst []F, stride [3]int, g blockGeometry, block []F) {
	switch d.dims {
	case 1:
		if g.shape.Full() {
			gather.Scatter1(dst, block, g.offset, stride[0])
		} else {
			gather.ScatterPartial1(dst, block, g.offset, stride[0], int(g.shape.NX))
		}
	case 2:
		if g.shape.Full() {
			gather.Scatter2(dst, block, g.offset, stride[0], stride[1])
		} else {
			gather.ScatterPartial2(dst, block, g.offset, stride[0], stride[1], int(g.shape.NX), int(g.shape.NY))
		}
	case 3:
		if g.shape.Full() {
			gather.Scatter3(dst, block, g.offset, stride[0], stride[1], stride[2])
		} else {
			gather.ScatterPartial3(dst, block, g.offset, stride[0], stride[1], stride[2], int(g.shape.NX), int(g.shape.NY), int(g.shape.NZ))
		}
	}
}

// EncodeField encodes a whole field in ModeFixedRate, serially, into words
// (which must be zero-initialized and sized to at least
// totalBlocks*maxbits bits). size and stride give each axis's extent and
// element stride (unused trailing axes are 0, per spec §3).
func EncodeField[F traits.Scalar](d *Driver, words []uint64, src []F, size, stride [3]int) {
	d.iterBlocks(size, stride, func(g blockGeometry) {
		block := gatherBlockStrided(d, src, stride, g)
		w := bitstream.NewWriter(words)
		w.SeekTo(uint64(g.index) * uint64(d.maxbits))
		EncodeBlock(w, block, d.dims, d.minexp, d.maxbits, d.maxprec) //nolint:errcheck // soft OutOfBudget only
	})
}

// DecodeField is EncodeField's inverse for ModeFixedRate.
func DecodeField[F traits.Scalar](d *Driver, words []uint64, dst []F, size, stride [3]int) {
	d.iterBlocks(size, stride, func(g blockGeometry) {
		r := bitstream.NewReaderAt(words, uint64(g.index)*uint64(d.maxbits))
		block, _ := DecodeBlock[F](r, d.dims, d.minexp, d.maxbits, d.maxprec)
		scatterBlockStrided(d, dst, stride, g, block)
	})
}
