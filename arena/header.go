package arena

import (
	"github.com/blocklift/zfp/endian"
	"github.com/blocklift/zfp/errs"
	"github.com/blocklift/zfp/format"
)

// magic identifies a persisted arena blob; chosen to be unlikely to collide
// with a plain compressed stream's own leading bytes.
const magic = uint32(0x5a465041) // "ZFPA"

// formatVersion is bumped whenever the header or payload layout changes.
const formatVersion = uint8(1)

// HeaderSize is the fixed byte length of the header that precedes every
// persisted arena's payload, mirroring section/numeric_header.go's
// fixed-size-header convention.
const HeaderSize = 32

// header is the fixed-size prefix of a persisted arena blob.
type header struct {
	Magic           uint32
	Version         uint8
	Compression     format.CompressionType
	NumBlocks       uint32
	CapWords        uint32
	MaxWords        uint32
	PayloadSize     uint32
	PayloadChecksum uint64
}

// Bytes serializes the header into HeaderSize bytes, little-endian.
func (h header) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()
	b := make([]byte, HeaderSize)

	engine.PutUint32(b[0:4], h.Magic)
	b[4] = h.Version
	b[5] = byte(h.Compression)
	// b[6:8] reserved, left zero
	engine.PutUint32(b[8:12], h.NumBlocks)
	engine.PutUint32(b[12:16], h.CapWords)
	engine.PutUint32(b[16:20], h.MaxWords)
	engine.PutUint32(b[20:24], h.PayloadSize)
	engine.PutUint64(b[24:32], h.PayloadChecksum)

	return b
}

// parseHeader parses and validates a header from data, which must be at
// least HeaderSize bytes.
func parseHeader(data []byte) (header, error) {
	if len(data) < HeaderSize {
		return header{}, errs.ErrInvalidHeaderSize
	}

	engine := endian.GetLittleEndianEngine()
	h := header{
		Magic:           engine.Uint32(data[0:4]),
		Version:         data[4],
		Compression:     format.CompressionType(data[5]),
		NumBlocks:       engine.Uint32(data[8:12]),
		CapWords:        engine.Uint32(data[12:16]),
		MaxWords:        engine.Uint32(data[16:20]),
		PayloadSize:     engine.Uint32(data[20:24]),
		PayloadChecksum: engine.Uint64(data[24:32]),
	}

	if h.Magic != magic {
		return header{}, errs.ErrInvalidHeaderSize
	}
	if h.Version != formatVersion {
		return header{}, errs.ErrUnsupportedVersion
	}

	return h, nil
}
