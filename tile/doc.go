// Package tile implements the free-list allocator and per-block position
// table that back a fixed word arena holding variable-rate compressed
// blocks (spec §4.6).
//
// Grounded directly on _examples/original_source/array/zfp/tile2.h, the
// only tile file in the retrieved pack. Tile2 itself is the leaf
// (block-shape-aware) class; its base Tile<Scalar,Codec> — which owns
// pos[], the null/cached sentinels, capacity(), and the free list — was
// not retrieved, so Arena here reconstructs that base class from Tile2's
// usage contract: a position table of null/cached/offset states, and
// store_block/deallocate operating on word-granular ranges. Where the
// base class's exact bookkeeping isn't observable (e.g. how store_block
// frees a prior allocation on overwrite), this package makes the
// straightforward completion explicit: Arena additionally tracks each
// id's current allocation size, so Store can free a stale range before
// handing out a new one and Free can deallocate without the caller
// re-deriving the size.
//
// PosTable/SizeTable/NewArenaFromSnapshot expose and rebuild an Arena's raw
// state for the arena package's Save/Load persistence layer, which treats
// this package as its storage engine and never reaches into its internals.
package tile

// BlockState is the tri-state a block id can be in, mirroring tile2.h's
// pos[id] ∈ {null, cached, offset}.
type BlockState int

const (
	// StateNull: the block has never been stored. Decoding it yields an
	// all-zero block (tile2.h's decode(), the p == null branch).
	StateNull BlockState = iota
	// StateStored: the block holds a valid compressed range in the arena.
	StateStored
	// StateCached: the block was stored, then decoded with cacheBlock
	// true, evicting its compressed range under the assumption the
	// caller now holds the decoded scalars in its own value cache.
	StateCached
)

func (s BlockState) String() string {
	switch s {
	case StateNull:
		return "null"
	case StateStored:
		return "stored"
	case StateCached:
		return "cached"
	default:
		return "invalid"
	}
}

// wordSize returns the number of 64-bit words needed to hold bits bits.
func wordSize(bits int) int {
	return (bits + 63) / 64
}
