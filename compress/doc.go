// Package compress provides secondary, whole-buffer compression codecs for
// persisted tile arenas.
//
// The block codec (transform+bitplane) already performs the lossy or
// lossless numerical compression; this package is an optional outer layer
// applied by the arena package to the resulting bit stream bytes before
// they leave the process (disk, network, cold storage).
//
// Four codecs are available, selected via format.CompressionType:
//   - None: no compression, zero overhead
//   - Zstd: best ratio, moderate speed — good for cold storage
//   - S2: balanced ratio/speed — good for hot-path persistence
//   - LZ4: fastest decompression — good for read-heavy access
//
// All codecs implement the Codec interface (Compressor + Decompressor) and
// are safe for concurrent use.
package compress
