package tile

import (
	"sort"

	"github.com/blocklift/zfp/errs"
)

// posNull and posCached are reserved sentinel positions; any other value
// stored in pos[id] is a real word offset into the arena.
const (
	posNull   = ^uint64(0)
	posCached = ^uint64(0) - 1
)

// DefaultGrowthFactor is the arena's capacity multiplier when it must
// grow to satisfy an allocation, per spec §4.6's [1.5, 2.0] range.
const DefaultGrowthFactor = 1.5

// Arena is a fixed (but growable) word buffer holding variable-rate
// compressed blocks for up to len(pos) block ids, with a free list
// tracking unused word ranges (spec §4.6).
type Arena struct {
	words     []uint64
	pos       []uint64
	sizeWords []uint32
	free      freeList
	growth    float64
	maxWords  int // 0 = unbounded
}

// NewArena creates an arena sized for numBlocks ids and capWords words of
// initial storage (0 is fine; the arena grows on first allocation).
// maxWords caps total growth (0 = unbounded), surfacing
// errs.ErrAllocatorExhausted instead of growing past it.
func NewArena(numBlocks, capWords, maxWords int) *Arena {
	a := &Arena{
		pos:       make([]uint64, numBlocks),
		sizeWords: make([]uint32, numBlocks),
		growth:    DefaultGrowthFactor,
		maxWords:  maxWords,
	}
	for i := range a.pos {
		a.pos[i] = posNull
	}

	if capWords > 0 {
		a.words = make([]uint64, capWords)
		a.free.ranges = []freeRange{{offset: 0, size: capWords}}
	}

	return a
}

// Words exposes the underlying word buffer for a bitstream.Writer/Reader
// to operate on directly.
func (a *Arena) Words() []uint64 { return a.words }

// Capacity returns the arena's total word capacity.
func (a *Arena) Capacity() int { return len(a.words) }

// State reports a block id's current position-table state.
func (a *Arena) State(id int) BlockState {
	switch a.pos[id] {
	case posNull:
		return StateNull
	case posCached:
		return StateCached
	default:
		return StateStored
	}
}

// grow extends the arena by at least minAdditional words, applying the
// growth factor, and adds the new region to the free list.
func (a *Arena) grow(minAdditional int) {
	cur := len(a.words)
	target := int(float64(cur) * a.growth)
	if target < cur+minAdditional {
		target = cur + minAdditional
	}
	if target < 16 {
		target = 16
	}
	if a.maxWords > 0 && target > a.maxWords {
		target = a.maxWords
	}

	grown := make([]uint64, target)
	copy(grown, a.words)
	a.words = grown

	a.free.release(cur, target-cur)
}

// allocate finds or creates sizeWords contiguous free words, returning
// their offset.
func (a *Arena) allocate(sizeWords int) (int, error) {
	if offset, ok := a.free.firstFit(sizeWords); ok {
		return offset, nil
	}

	if a.maxWords > 0 && len(a.words)+sizeWords > a.maxWords {
		return 0, errs.ErrAllocatorExhausted
	}

	a.grow(sizeWords)

	offset, ok := a.free.firstFit(sizeWords)
	if !ok {
		return 0, errs.ErrAllocatorExhausted
	}

	return offset, nil
}

// deallocate returns [offset, offset+sizeWords) to the free list.
func (a *Arena) deallocate(offset, sizeWords int) {
	if sizeWords == 0 {
		return
	}
	a.free.release(offset, sizeWords)
}

// Store compresses-block data (bits significant words, already produced
// by the bit-plane encoder) into the arena under id, freeing any prior
// allocation id held. It is valid from any state (null/stored/cached),
// matching tile2.h's encode() always calling store_block unconditionally.
func (a *Arena) Store(id int, data []uint64, bits int) error {
	if a.State(id) == StateStored {
		a.deallocate(int(a.pos[id]), int(a.sizeWords[id]))
	}

	sizeWords := wordSize(bits)
	if sizeWords == 0 {
		a.pos[id] = posNull
		a.sizeWords[id] = 0
		return nil
	}

	offset, err := a.allocate(sizeWords)
	if err != nil {
		return err
	}

	copy(a.words[offset:offset+sizeWords], data[:sizeWords])
	a.pos[id] = uint64(offset)
	a.sizeWords[id] = uint32(sizeWords)

	return nil
}

// LookUp returns the word offset and allocated size (in words) of a
// stored block. It errors on StateCached (tile2.h's decode() asserts
// p != cached: a caller must not ask the arena to re-decode a block it
// already evicted) and returns ok=false with no error on StateNull (an
// empty block — the caller fills zeros, per tile2.h's decode()).
func (a *Arena) LookUp(id int) (offsetWords, sizeWords int, ok bool, err error) {
	switch a.State(id) {
	case StateNull:
		return 0, 0, false, nil
	case StateCached:
		return 0, 0, false, errs.ErrIndexMissing
	default:
		return int(a.pos[id]), int(a.sizeWords[id]), true, nil
	}
}

// NumBlocks returns the number of block ids the position table tracks.
func (a *Arena) NumBlocks() int { return len(a.pos) }

// MaxWords returns the arena's growth cap (0 = unbounded).
func (a *Arena) MaxWords() int { return a.maxWords }

// PosTable returns a copy of the raw position table, for serialization by
// the arena package. Values are posNull/posCached sentinels or word offsets.
func (a *Arena) PosTable() []uint64 {
	out := make([]uint64, len(a.pos))
	copy(out, a.pos)
	return out
}

// SizeTable returns a copy of the per-id allocated size table (in words).
func (a *Arena) SizeTable() []uint32 {
	out := make([]uint32, len(a.sizeWords))
	copy(out, a.sizeWords)
	return out
}

// RawPosNull and RawPosCached expose the sentinel values used in PosTable's
// output, so a caller rebuilding an Arena from a snapshot (see
// NewArenaFromSnapshot) can recognize them without reaching into package
// internals.
const (
	RawPosNull   = posNull
	RawPosCached = posCached
)

// NewArenaFromSnapshot reconstructs an Arena from a previously captured
// position table, size table, and word buffer (as produced by PosTable,
// SizeTable, and Words). The free list is rebuilt as the complement of the
// ranges the position table marks as stored.
func NewArenaFromSnapshot(pos []uint64, sizeWords []uint32, words []uint64, maxWords int) *Arena {
	a := &Arena{
		words:     words,
		pos:       make([]uint64, len(pos)),
		sizeWords: make([]uint32, len(sizeWords)),
		growth:    DefaultGrowthFactor,
		maxWords:  maxWords,
	}
	copy(a.pos, pos)
	copy(a.sizeWords, sizeWords)

	type occupied struct{ offset, size int }
	var ranges []occupied
	for id := range a.pos {
		if a.State(id) == StateStored {
			ranges = append(ranges, occupied{int(a.pos[id]), int(a.sizeWords[id])})
		}
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].offset < ranges[j].offset })

	cursor := 0
	for _, r := range ranges {
		if r.offset > cursor {
			a.free.release(cursor, r.offset-cursor)
		}
		cursor = r.offset + r.size
	}
	if len(words) > cursor {
		a.free.release(cursor, len(words)-cursor)
	}

	return a
}

// Free transitions a stored block to StateCached, releasing its
// compressed range back to the free list. Call this after decoding a
// block when the caller will hold the decoded scalars itself rather than
// re-reading the compressed bits (tile2.h's decode(..., cache_block=true)).
func (a *Arena) Free(id int) {
	if a.State(id) != StateStored {
		return
	}

	a.deallocate(int(a.pos[id]), int(a.sizeWords[id]))
	a.pos[id] = posCached
	a.sizeWords[id] = 0
}
