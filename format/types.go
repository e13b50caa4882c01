// Package format defines small, serializable enumerations shared by the
// compress and arena packages.
package format

// CompressionType identifies the secondary, whole-arena compression codec
// applied by the arena package when persisting a tile's arena to bytes.
//
// This is independent of the block codec's own lossy/lossless compression
// (transform+bitplane); it is an optional outer layer applied to the
// resulting bit stream bytes before they leave the process.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
