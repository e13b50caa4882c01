// Package arena's Save/Load pair serializes a tile.Arena to bytes and back,
// with an optional secondary compression pass and an xxHash64 integrity
// digest (see doc.go for the on-disk layout).
package arena

import (
	"github.com/blocklift/zfp/compress"
	"github.com/blocklift/zfp/endian"
	"github.com/blocklift/zfp/errs"
	"github.com/blocklift/zfp/internal/checksum"
	"github.com/blocklift/zfp/internal/pool"
	"github.com/blocklift/zfp/tile"
)

// Save serializes a's position table, size table, and word buffer into a
// single byte slice: a fixed header followed by the (optionally compressed)
// payload. The header's checksum covers the uncompressed payload, so Load
// can verify integrity after decompression regardless of codec.
func Save(a *tile.Arena, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	payload := buildPayload(a)
	digest := checksum.Of(payload)

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, err
	}

	h := header{
		Magic:           magic,
		Version:         formatVersion,
		Compression:     cfg.compression,
		NumBlocks:       uint32(a.NumBlocks()),
		CapWords:        uint32(a.Capacity()),
		MaxWords:        uint32(a.MaxWords()),
		PayloadSize:     uint32(len(compressed)),
		PayloadChecksum: digest,
	}

	out := make([]byte, 0, HeaderSize+len(compressed))
	out = append(out, h.Bytes()...)
	out = append(out, compressed...)

	return out, nil
}

// Load parses a byte slice produced by Save and reconstructs a *tile.Arena.
// It returns errs.ErrChecksumMismatch if the decompressed payload doesn't
// match the header's recorded digest (spec explicitly scopes integrity
// verification to non-cryptographic corruption detection, not tamper
// resistance).
func Load(data []byte) (*tile.Arena, error) {
	h, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	compressed := data[HeaderSize:]
	if uint32(len(compressed)) != h.PayloadSize {
		return nil, errs.ErrInvalidHeaderSize
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(compressed)
	if err != nil {
		return nil, err
	}

	if !checksum.Verify(payload, h.PayloadChecksum) {
		return nil, errs.ErrChecksumMismatch
	}

	pos, sizeWords, words, err := parsePayload(payload, int(h.NumBlocks), int(h.CapWords))
	if err != nil {
		return nil, err
	}

	return tile.NewArenaFromSnapshot(pos, sizeWords, words, int(h.MaxWords)), nil
}

// buildPayload assembles the position table, size table, and word buffer
// into one flat byte slice, in that order, all little-endian.
func buildPayload(a *tile.Arena) []byte {
	pos := a.PosTable()
	sizeWords := a.SizeTable()
	words := a.Words()

	engine := endian.GetLittleEndianEngine()
	bb := pool.GetArenaBuffer()
	defer pool.PutArenaBuffer(bb)

	total := len(pos)*8 + len(sizeWords)*4 + len(words)*8
	bb.Grow(total)

	buf := bb.Bytes()
	for _, p := range pos {
		buf = engine.AppendUint64(buf, p)
	}
	for _, s := range sizeWords {
		buf = engine.AppendUint32(buf, s)
	}
	for _, w := range words {
		buf = engine.AppendUint64(buf, w)
	}

	out := make([]byte, len(buf))
	copy(out, buf)

	return out
}

// parsePayload splits a flat payload back into the position table, size
// table, and word buffer, given the block count and word capacity recorded
// in the header.
func parsePayload(payload []byte, numBlocks, capWords int) (pos []uint64, sizeWords []uint32, words []uint64, err error) {
	engine := endian.GetLittleEndianEngine()

	want := numBlocks*8 + numBlocks*4 + capWords*8
	if len(payload) != want {
		return nil, nil, nil, errs.ErrInvalidHeaderSize
	}

	off := 0
	pos = make([]uint64, numBlocks)
	for i := range pos {
		pos[i] = engine.Uint64(payload[off : off+8])
		off += 8
	}

	sizeWords = make([]uint32, numBlocks)
	for i := range sizeWords {
		sizeWords[i] = engine.Uint32(payload[off : off+4])
		off += 4
	}

	words = make([]uint64, capWords)
	for i := range words {
		words[i] = engine.Uint64(payload[off : off+8])
		off += 8
	}

	return pos, sizeWords, words, nil
}
