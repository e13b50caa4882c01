// Package errs holds the sentinel errors returned by the codec core.
//
// All errors are returned by value; none are raised across a concurrent
// worker boundary (workers validate preconditions before scheduling, per
// spec §7). Callers compare with errors.Is.
package errs

import "errors"

var (
	// ErrBadDimensions is returned by codec.NewDriver when a dimensionality
	// is outside {1,2,3}. Field extents are not checked, so a zero extent
	// before a nonzero one does not produce it.
	ErrBadDimensions = errors.New("zfp: dimensionality must be 1, 2, or 3, with no zero extent before a nonzero one")

	// ErrOutOfBudget signals that maxbits was insufficient to encode even the
	// exponent field. This is not a hard failure: the codec still emits a
	// valid zero-only block and reports 1 bit written.
	ErrOutOfBudget = errors.New("zfp: maxbits insufficient for exponent field, emitted zero block")

	// ErrAllocatorExhausted is returned when a tile arena cannot grow to
	// satisfy an allocation request.
	ErrAllocatorExhausted = errors.New("zfp: tile arena exhausted, cannot grow to satisfy allocation")

	// ErrIndexMissing is returned when a variable-rate decode is requested
	// without a per-block or per-chunk offset index.
	ErrIndexMissing = errors.New("zfp: variable-rate decode requires an offset index")

	// ErrInvalidBlockSize is returned when a block buffer's length does not
	// match 4^dims for the configured dimensionality.
	ErrInvalidBlockSize = errors.New("zfp: block buffer length does not match 4^dims")

	// ErrInvalidMaxBits is returned when a driver is configured with a
	// negative maxbits.
	ErrInvalidMaxBits = errors.New("zfp: maxbits out of range")

	// ErrUnknownCompression is returned when a format.CompressionType has no
	// registered codec.
	ErrUnknownCompression = errors.New("zfp: unknown compression type")

	// ErrInvalidHeaderSize is returned when a persisted arena blob is
	// shorter than the fixed header, or its magic number doesn't match.
	ErrInvalidHeaderSize = errors.New("zfp: arena blob too short or malformed header")

	// ErrUnsupportedVersion is returned when a persisted arena blob's
	// format version is newer (or otherwise unrecognized) than this build
	// understands.
	ErrUnsupportedVersion = errors.New("zfp: arena blob format version unsupported")

	// ErrChecksumMismatch is returned when a loaded arena's payload digest
	// doesn't match the one recorded in its header.
	ErrChecksumMismatch = errors.New("zfp: arena payload failed checksum verification")
)
