// Package zfp provides lossy and lossless compression for multidimensional
// floating-point and integer arrays, using block-floating-point transforms
// and embedded bit-plane coding.
//
// Arrays are partitioned into 4^d blocks (d = 1, 2, or 3), each
// decorrelated and coded independently so that truncating a block's
// compressed bits early yields a lower-precision, but still valid,
// reconstruction of that block (the "embedded" property). Three rate
// controls are available per spec: fixed-rate (constant bits per block, no
// side index needed), fixed-precision (bounded bit-plane count, variable
// length), and fixed-accuracy (an absolute error floor, also variable
// length).
//
// # Core Features
//
//   - Fixed-rate, fixed-precision, and fixed-accuracy block encoding
//   - 1-D, 2-D, and 3-D fields, including partial (non-multiple-of-4) extents
//   - Embedded, truncatable bit streams: a prefix of a block's bits is
//     itself a valid lower-rate decode
//   - A growable tile arena for storing per-block compressed data with
//     stored/cached/null lifecycle states
//   - Arena persistence with optional secondary compression (None, Zstd,
//     S2, LZ4) and an xxHash64 integrity digest
//   - Parallel fixed-rate encoding across goroutines with no shared-state
//     synchronization beyond a join
//
// # Basic Usage
//
// Encoding and decoding a fixed-rate 2-D field:
//
//	import "github.com/blocklift/zfp"
//
//	driver, _ := zfp.NewFixedRateDriver(2, 256) // 256 bits/block
//
//	size := [3]int{64, 64, 0}
//	stride := [3]int{1, 64, 0}
//
//	words, _, _ := zfp.EncodeField(driver, field, size, stride)
//
//	decoded := make([]float64, 64*64)
//	_ = zfp.DecodeField[float64](driver, words, nil, decoded, size, stride)
//
// Persisting a tile arena of variable-rate blocks:
//
//	data, _ := zfp.SaveArena(myArena, zfp.WithCompression(format.CompressionZstd))
//	restored, _ := zfp.LoadArena(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec,
// tile, and arena packages, for the common cases. For fine-grained control
// — custom parallelism, direct access to per-block geometry, or building an
// index format of your own — use those packages directly.
package zfp

import (
	"github.com/blocklift/zfp/arena"
	"github.com/blocklift/zfp/codec"
	"github.com/blocklift/zfp/tile"
	"github.com/blocklift/zfp/traits"
)

// WithCompression re-exports arena.WithCompression so callers need only
// import this package for the common Save/Load path.
var WithCompression = arena.WithCompression

// NewFixedRateDriver builds a Driver for dims (1, 2, or 3) dimensions in
// ModeFixedRate, allocating exactly bits per block regardless of content.
// Block offsets are block_index*bits, so no side index is needed to decode.
func NewFixedRateDriver(dims, bits int) (*codec.Driver, error) {
	return codec.NewDriver(dims, codec.WithFixedRate(bits))
}

// NewFixedPrecisionDriver builds a Driver in ModeFixedPrecision, capping the
// number of bit planes coded per block at maxprec while bounding any single
// block's length at maxbits. Resulting fields have variable per-block
// length and require the offset index EncodeField returns.
func NewFixedPrecisionDriver(dims, maxprec, maxbits int) (*codec.Driver, error) {
	return codec.NewDriver(dims, codec.WithFixedPrecision(maxprec, maxbits))
}

// NewFixedAccuracyDriver builds a Driver in ModeFixedAccuracy, additionally
// flooring coded precision at minexp (an absolute-magnitude accuracy
// bound) rather than a fixed bit-plane count. Also variable length.
func NewFixedAccuracyDriver(dims, minexp, maxbits int) (*codec.Driver, error) {
	return codec.NewDriver(dims, codec.WithFixedAccuracy(minexp, maxbits))
}

// EncodeField encodes a whole field with driver, dispatching on its
// configured mode. offsets is nil for ModeFixedRate; for the
// variable-length modes it is the per-block bit-offset index a caller must
// keep alongside words to call DecodeField later.
func EncodeField[F traits.Scalar](driver *codec.Driver, src []F, size, stride [3]int) (words []uint64, offsets []uint64, err error) {
	return codec.Encode(driver, src, size, stride)
}

// DecodeField is EncodeField's inverse. offsets must be the index
// EncodeField returned when driver is in a variable-length mode; pass nil
// for ModeFixedRate.
func DecodeField[F traits.Scalar](driver *codec.Driver, words, offsets []uint64, dst []F, size, stride [3]int) error {
	return codec.Decode[F](driver, words, offsets, dst, size, stride)
}

// EncodeFieldParallel is EncodeField's concurrent counterpart for
// ModeFixedRate drivers, spreading disjoint block ranges across workers
// goroutines. words must be zero-initialized and sized to
// driver.WordsNeeded(size).
func EncodeFieldParallel[F traits.Scalar](driver *codec.Driver, words []uint64, src []F, size, stride [3]int, workers int) {
	codec.EncodeFieldParallel(driver, words, src, size, stride, workers)
}

// NewArena creates a tile arena sized for numBlocks block ids with
// capWords words of initial storage (0 is fine; it grows on first
// allocation) and maxWords as a growth cap (0 = unbounded).
func NewArena(numBlocks, capWords, maxWords int) *tile.Arena {
	return tile.NewArena(numBlocks, capWords, maxWords)
}

// SaveArena serializes a tile arena to bytes: a fixed header plus an
// optionally compressed payload, with an xxHash64 checksum over the
// uncompressed payload for integrity verification on Load.
func SaveArena(a *tile.Arena, opts ...arena.Option) ([]byte, error) {
	return arena.Save(a, opts...)
}

// LoadArena reconstructs a tile arena from bytes produced by SaveArena.
func LoadArena(data []byte) (*tile.Arena, error) {
	return arena.Load(data)
}

// EncodeAndStoreBlock encodes a single block with driver and deposits the
// result into a's block id, freeing any prior allocation id held. Use this
// (rather than EncodeField) when blocks are produced or stored one at a
// time against a long-lived arena.
func EncodeAndStoreBlock[F traits.Scalar](driver *codec.Driver, a *tile.Arena, id int, block []F) error {
	return codec.EncodeAndStore(driver, a, id, block)
}

// DecodeBlockFromArena reads block id's compressed data back out of a and
// decodes it with driver. ok is false for a block that was never stored,
// in which case the returned block is all zeros.
func DecodeBlockFromArena[F traits.Scalar](driver *codec.Driver, a *tile.Arena, id int) (block []F, ok bool, err error) {
	return codec.DecodeFromArena[F](driver, a, id)
}
