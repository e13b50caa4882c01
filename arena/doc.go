// Package arena persists a tile.Arena to a byte slice and back.
//
// The on-disk shape follows a fixed-header-then-payload layout: a small
// fixed header carrying the magic, format version, compression type, and
// an xxHash64 integrity digest, followed by the position table, the
// per-id size table, and the arena's whole word buffer (free ranges
// included). Save assembles and
// returns bytes; Load validates and decodes them back.
//
// Secondary compression (github.com/klauspost/compress zstd, pierrec/lz4,
// klauspost/compress/s2, or none) is applied to the position/size/words
// payload as a whole, after it is assembled and before the header is
// prefixed — the header itself is never compressed, since Load must be able
// to read compressionType and length before it can even construct a
// decompressor.
package arena
