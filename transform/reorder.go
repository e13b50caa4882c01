package transform

import "sort"

// perm4, perm16, and perm64 map output position -> source index within a
// decorrelated block, ordering coefficients by increasing total
// frequency so that the bit-plane coder's embedded truncation drops the
// highest-frequency (least significant) coefficients first (spec §4.3).
//
// Built once at init by a lexicographic sort on (i+j+k, i^2+j^2+k^2, i, j,
// k), rather than hand-transcribed, so the ordering is provably exact
// rather than copied from memory.
var (
	perm4  = buildPerm(1)
	perm16 = buildPerm(2)
	perm64 = buildPerm(3)
)

type permEntry struct {
	idx        int
	i, j, k    int
	sum, sqsum int
}

func buildPerm(dims int) []int {
	jMax, kMax := 1, 1
	if dims >= 2 {
		jMax = 4
	}
	if dims >= 3 {
		kMax = 4
	}

	var entries []permEntry
	for k := 0; k < kMax; k++ {
		for j := 0; j < jMax; j++ {
			for i := 0; i < 4; i++ {
				entries = append(entries, permEntry{
					idx: i + 4*j + 16*k,
					i:   i, j: j, k: k,
					sum:   i + j + k,
					sqsum: i*i + j*j + k*k,
				})
			}
		}
	}

	sort.Slice(entries, func(a, b int) bool {
		ea, eb := entries[a], entries[b]
		if ea.sum != eb.sum {
			return ea.sum < eb.sum
		}
		if ea.sqsum != eb.sqsum {
			return ea.sqsum < eb.sqsum
		}
		if ea.i != eb.i {
			return ea.i < eb.i
		}
		if ea.j != eb.j {
			return ea.j < eb.j
		}
		return ea.k < eb.k
	})

	perm := make([]int, len(entries))
	for p, e := range entries {
		perm[p] = e.idx
	}

	return perm
}

// permFor returns the output-position -> source-index table for a block
// of the given dimensionality.
func permFor(dims int) []int {
	switch dims {
	case 1:
		return perm4
	case 2:
		return perm16
	case 3:
		return perm64
	default:
		panic("transform: dims must be 1, 2, or 3")
	}
}

// Reorder returns a new slice with block's coefficients placed in
// increasing-frequency order.
func Reorder(block []int64, dims int) []int64 {
	perm := permFor(dims)
	out := make([]int64, len(perm))
	for p, src := range perm {
		out[p] = block[src]
	}

	return out
}

// InverseReorder undoes Reorder, restoring the block's natural
// row-major layout.
func InverseReorder(ordered []int64, dims int) []int64 {
	perm := permFor(dims)
	out := make([]int64, len(perm))
	for p, src := range perm {
		out[src] = ordered[p]
	}

	return out
}
