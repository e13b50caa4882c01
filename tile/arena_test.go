package tile

import (
	"testing"

	"github.com/blocklift/zfp/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArena_NewBlocksStartNull(t *testing.T) {
	a := NewArena(4, 0, 0)
	for id := 0; id < 4; id++ {
		assert.Equal(t, StateNull, a.State(id))
	}
}

func TestArena_StoreThenLookUp(t *testing.T) {
	a := NewArena(2, 0, 0)
	data := []uint64{0xDEADBEEF, 0xCAFEBABE}

	require.NoError(t, a.Store(0, data, 128))
	assert.Equal(t, StateStored, a.State(0))

	offset, size, ok, err := a.LookUp(0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, size)
	assert.Equal(t, data, a.Words()[offset:offset+size])
}

func TestArena_LookUpNullIsEmptyNotError(t *testing.T) {
	a := NewArena(1, 0, 0)
	_, _, ok, err := a.LookUp(0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArena_FreeTransitionsToCached(t *testing.T) {
	a := NewArena(1, 0, 0)
	require.NoError(t, a.Store(0, []uint64{1}, 10))

	a.Free(0)
	assert.Equal(t, StateCached, a.State(0))

	_, _, _, err := a.LookUp(0)
	assert.ErrorIs(t, err, errs.ErrIndexMissing)
}

func TestArena_StoreAfterCachedReallocates(t *testing.T) {
	a := NewArena(1, 0, 0)
	require.NoError(t, a.Store(0, []uint64{1}, 10))
	a.Free(0)

	require.NoError(t, a.Store(0, []uint64{2, 3}, 100))
	assert.Equal(t, StateStored, a.State(0))

	offset, size, ok, err := a.LookUp(0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []uint64{2, 3}, a.Words()[offset:offset+size])
}

func TestArena_OverwriteStoredFreesOldRange(t *testing.T) {
	a := NewArena(2, 0, 0)
	require.NoError(t, a.Store(0, []uint64{1, 2, 3}, 192))
	require.NoError(t, a.Store(1, []uint64{9}, 10))

	freeBefore := a.free.totalFree()
	require.NoError(t, a.Store(0, []uint64{5}, 10))
	freeAfter := a.free.totalFree()

	// Overwriting block 0 (3 words) with a 1-word allocation should net
	// free 2 words versus before, modulo whatever new space the grow
	// picked up — what matters is old space was reclaimed, not leaked.
	assert.Greater(t, freeAfter, freeBefore)
}

func TestArena_GrowsWhenFreeListExhausted(t *testing.T) {
	a := NewArena(8, 1, 0)
	for id := 0; id < 8; id++ {
		require.NoError(t, a.Store(id, []uint64{uint64(id)}, 64))
	}

	for id := 0; id < 8; id++ {
		offset, size, ok, err := a.LookUp(id)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, []uint64{uint64(id)}, a.Words()[offset:offset+size])
	}
}

func TestArena_AllocatorExhaustedWhenCapped(t *testing.T) {
	a := NewArena(4, 2, 2)
	require.NoError(t, a.Store(0, []uint64{1, 2}, 128))

	err := a.Store(1, []uint64{3}, 64)
	assert.ErrorIs(t, err, errs.ErrAllocatorExhausted)
}

func TestFreeList_CoalescesAdjacentRanges(t *testing.T) {
	var f freeList
	f.release(0, 4)
	f.release(4, 4)
	f.release(8, 4)

	require.Len(t, f.ranges, 1)
	assert.Equal(t, freeRange{offset: 0, size: 12}, f.ranges[0])
}

func TestFreeList_FirstFitCarves(t *testing.T) {
	var f freeList
	f.release(0, 10)

	offset, ok := f.firstFit(3)
	require.True(t, ok)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 7, f.totalFree())
}
