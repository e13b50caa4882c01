package zfp

import (
	"testing"

	"github.com/blocklift/zfp/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedRateRoundTrip(t *testing.T) {
	driver, err := NewFixedRateDriver(2, 256)
	require.NoError(t, err)

	size := [3]int{16, 16, 0}
	stride := [3]int{1, 16, 0}

	src := make([]float64, 256)
	for i := range src {
		src[i] = float64(i%17) - 8
	}

	words, offsets, err := EncodeField(driver, src, size, stride)
	require.NoError(t, err)
	assert.Nil(t, offsets)

	dst := make([]float64, 256)
	err = DecodeField[float64](driver, words, offsets, dst, size, stride)
	require.NoError(t, err)

	for i := range src {
		assert.InDelta(t, src[i], dst[i], 1e-6)
	}
}

func TestFixedPrecisionRoundTrip(t *testing.T) {
	driver, err := NewFixedPrecisionDriver(1, 32, 256)
	require.NoError(t, err)

	size := [3]int{8, 0, 0}
	stride := [3]int{1, 0, 0}
	src := []float64{1, -2, 3, -4, 5, -6, 7, -8}

	words, offsets, err := EncodeField(driver, src, size, stride)
	require.NoError(t, err)
	require.NotNil(t, offsets)

	dst := make([]float64, 8)
	err = DecodeField[float64](driver, words, offsets, dst, size, stride)
	require.NoError(t, err)

	for i := range src {
		assert.InDelta(t, src[i], dst[i], 1e-6)
	}
}

func TestEncodeFieldParallelMatchesEncodeField(t *testing.T) {
	driver, err := NewFixedRateDriver(1, 128)
	require.NoError(t, err)

	size := [3]int{64, 0, 0}
	stride := [3]int{1, 0, 0}
	src := make([]int32, 64)
	for i := range src {
		src[i] = int32(i*3 - 30)
	}

	serial, _, err := EncodeField(driver, src, size, stride)
	require.NoError(t, err)

	parallel := make([]uint64, driver.WordsNeeded(size))
	EncodeFieldParallel(driver, parallel, src, size, stride, 4)

	assert.Equal(t, serial, parallel)
}

func TestArenaSaveLoadRoundTrip(t *testing.T) {
	a := NewArena(4, 0, 0)
	require.NoError(t, a.Store(0, []uint64{0x1, 0x2}, 70))
	require.NoError(t, a.Store(2, []uint64{0xdead}, 10))

	data, err := SaveArena(a, WithCompression(format.CompressionS2))
	require.NoError(t, err)

	restored, err := LoadArena(data)
	require.NoError(t, err)

	assert.Equal(t, a.NumBlocks(), restored.NumBlocks())
	assert.Equal(t, a.PosTable(), restored.PosTable())
	assert.Equal(t, a.SizeTable(), restored.SizeTable())
}

func TestEncodeAndStoreBlock_PersistsAcrossSaveLoad(t *testing.T) {
	driver, err := NewFixedAccuracyDriver(2, -20, 512)
	require.NoError(t, err)

	a := NewArena(2, 0, 0)
	block := []float64{1.5, -2.25, 3.0, 0, 0.125, 7, -7, 2,
		4, -4, 1, 1, 1, 1, 1, 1}

	require.NoError(t, EncodeAndStoreBlock(driver, a, 0, block))

	data, err := SaveArena(a)
	require.NoError(t, err)

	restored, err := LoadArena(data)
	require.NoError(t, err)

	out, ok, err := DecodeBlockFromArena[float64](driver, restored, 0)
	require.NoError(t, err)
	require.True(t, ok)
	for i := range block {
		assert.InDelta(t, block[i], out[i], 1e-4)
	}

	_, ok, err = DecodeBlockFromArena[float64](driver, restored, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}
