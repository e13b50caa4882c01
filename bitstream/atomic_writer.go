package bitstream

import "sync/atomic"

// WriteBitsAt deposits the low n bits of value at absolute bit offset
// bitOffset into words using an atomic additive merge (spec §4.2, §5).
//
// Correctness depends entirely on the caller's precondition: no two
// concurrent writers may target overlapping bit ranges (spec invariant I1,
// block disjointness). Given that, atomic_fetch_add is exact because no
// writer ever needs to combine with a bit another writer is simultaneously
// setting — each contributes disjoint bits that only ever add, never
// carry into each other. words must be zero-initialized before any
// concurrent encode pass begins.
func WriteBitsAt(words []uint64, bitOffset uint64, value uint64, n int) int {
	if n <= 0 {
		return 0
	}

	value &= mask64(n)
	wordIdx, low, high, hasHigh := splitBits(bitOffset, value, n)

	if low != 0 {
		atomic.AddUint64(&words[wordIdx], low)
	}
	if hasHigh && high != 0 {
		atomic.AddUint64(&words[wordIdx+1], high)
	}

	return n
}

// AtomicWriter is a per-worker cursor over a shared word array, depositing
// bits via WriteBitsAt. Each AtomicWriter instance is owned by exactly one
// worker goroutine; concurrency safety comes from disjoint bit ranges
// across AtomicWriter instances, not from synchronizing a single instance.
type AtomicWriter struct {
	words []uint64
	pos   uint64
}

// NewAtomicWriter wraps words for concurrent writing, with this writer's
// cursor starting at bitOffset. bitOffset is typically block_index*maxbits
// (fixed-rate mode) or a precomputed prefix-sum offset (variable-rate
// mode, spec §5).
func NewAtomicWriter(words []uint64, bitOffset uint64) *AtomicWriter {
	return &AtomicWriter{words: words, pos: bitOffset}
}

// WriteBits deposits the low n bits of value at the cursor and advances it.
func (w *AtomicWriter) WriteBits(value uint64, n int) int {
	written := WriteBitsAt(w.words, w.pos, value, n)
	w.pos += uint64(written)

	return written
}

// WriteBit is the n=1 specialization of WriteBits.
func (w *AtomicWriter) WriteBit(b uint64) int {
	return w.WriteBits(b&1, 1)
}

// WTell reports the current write cursor, in bits.
func (w *AtomicWriter) WTell() uint64 {
	return w.pos
}
