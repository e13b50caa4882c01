package codec

import (
	"sync"

	"github.com/blocklift/zfp/bitstream"
	"github.com/blocklift/zfp/traits"
)

// chunkSize is the block-group width the hybrid prefix-sum scan operates
// over, matching original_source/src/hip_zfp/decode1.h's 32-wide warp
// scan.
const chunkSize = 32

// EncodeFieldParallel encodes a ModeFixedRate field across workers
// goroutines, each driving a disjoint, contiguous run of block indices.
// Per spec §5, fixed-rate block offsets (block_index*maxbits) are known
// up front, so workers need no synchronization beyond the final
// WaitGroup join; words must be zero-initialized, and each worker deposits
// bits via bitstream.AtomicWriter (additive merge), exactly as the
// single-writer-per-disjoint-range precondition requires.
func EncodeFieldParallel[F traits.Scalar](d *Driver, words []uint64, src []F, size, stride [3]int, workers int) {
	if workers < 1 {
		workers = 1
	}

	total := d.totalBlocks(size)
	if total == 0 {
		return
	}
	if workers > total {
		workers = total
	}

	geoms := make([]blockGeometry, 0, total)
	d.iterBlocks(size, stride, func(g blockGeometry) {
		geoms = append(geoms, g)
	})

	var wg sync.WaitGroup
	chunk := (total + workers - 1) / workers

	for start := 0; start < total; start += chunk {
		end := start + chunk
		if end > total {
			end = total
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				g := geoms[i]
				block := gatherBlockStrided(d, src, stride, g)
				w := bitstream.NewAtomicWriter(words, uint64(g.index)*uint64(d.maxbits))
				EncodeBlock(w, block, d.dims, d.minexp, d.maxbits, d.maxprec) //nolint:errcheck // soft OutOfBudget only
			}
		}(start, end)
	}

	wg.Wait()
}

// scanChunk performs the 5-step in-place doubling prefix scan over one
// chunk of at most chunkSize lengths, turning each entry into the
// exclusive prefix sum within that chunk. Ported directly from
// hipDecode1's hybrid-index offset reconstruction loop (the
// "for i in 0..5, j = 1<<i" doubling pattern), run sequentially here since
// a chunk's 32 entries have no cross-goroutine parallelism worth spawning.
func scanChunk(lengths []int) []uint64 {
	offsets := make([]uint64, len(lengths))
	for i, n := range lengths {
		offsets[i] = uint64(n)
	}

	for i := 0; i < 5; i++ {
		j := 1 << i
		for t := len(offsets) - 1; t >= j; t-- {
			offsets[t] += offsets[t-j]
		}
	}

	// offsets[t] is now the inclusive sum of lengths[0..t]; convert to
	// exclusive (each block's own starting offset within the chunk).
	exclusive := make([]uint64, len(lengths))
	for i, n := range lengths {
		exclusive[i] = offsets[i] - uint64(n)
	}

	return exclusive
}

// PrefixSumChunks computes per-block starting bit offsets from a flat
// slice of per-block lengths, processing chunkSize-block groups with
// scanChunk and carrying each chunk's total forward as the next chunk's
// base — the two-level hierarchy (intra-chunk parallel scan, inter-chunk
// serial carry) spec §5 describes for variable-rate parallel decode index
// construction. Returns length len(lengths)+1, with the final entry equal
// to the total bit count.
func PrefixSumChunks(lengths []int) []uint64 {
	out := make([]uint64, len(lengths)+1)

	var base uint64
	for start := 0; start < len(lengths); start += chunkSize {
		end := start + chunkSize
		if end > len(lengths) {
			end = len(lengths)
		}

		local := scanChunk(lengths[start:end])
		var chunkTotal uint64
		for i, off := range local {
			out[start+i] = base + off
			chunkTotal += uint64(lengths[start+i])
		}
		base += chunkTotal
	}
	out[len(lengths)] = base

	return out
}
