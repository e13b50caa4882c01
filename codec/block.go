package codec

import (
	"fmt"

	"github.com/blocklift/zfp/bitplane"
	"github.com/blocklift/zfp/errs"
	"github.com/blocklift/zfp/traits"
	"github.com/blocklift/zfp/transform"
)

// blockWriter is the method set bitplane.Encode and the exponent-field
// framing below need; *bitstream.Writer and *bitstream.AtomicWriter both
// satisfy it structurally. WTell lets EncodeBlock report exact bits
// written without bitplane.Encode needing its own cursor-delta bookkeeping.
type blockWriter interface {
	WriteBits(value uint64, n int) int
	WriteBit(b uint64) int
	WTell() uint64
}

// blockReader is blockWriter's read-side counterpart; *bitstream.Reader
// satisfies it structurally.
type blockReader interface {
	ReadBits(n int) uint64
	ReadBit() uint64
	RTell() uint64
}

// EncodeBlock runs the full per-block pipeline — block-floating-point
// cast, decorrelation, reorder, negabinary map, exponent-field framing,
// bit-plane coding — writing at w's current cursor. It returns the number
// of bits written.
//
// Exponent framing (float variants only) follows
// original_source/src/cuda_zfp/shared.h's zfp_encode_block: a block whose
// effective precision floor reduces it to nothing (e == 0, which is
// exactly the all-zero-block case MaxExponentFloat reports) writes a
// single 0 bit and nothing else, per spec §8 scenario 1 ("Zero block...
// Expected stream bits: one 0 bit"). A nonzero block writes the full
// ebits+1-bit field (value 2*e+1, whose first-written bit is always 1)
// followed by the bit-plane body. Integer variants have no exponent field
// and go straight to the bit-plane body at full maxbits.
//
// maxbits == 0 is a hard boundary (spec §8): nothing is written at all,
// not even the zero-block flag bit. If maxbits is positive but too small
// to hold even the exponent field, EncodeBlock writes a single 0 bit and
// returns errs.ErrOutOfBudget (a soft, informational error per spec §7 —
// bitsWritten is still valid).
//
// maxprec is the driver's configured bit-plane cap (spec §4.7
// ModeFixedPrecision/ModeFixedAccuracy); it bounds the number of planes
// coded regardless of how many the accuracy floor (minexp) or the
// scalar's native width would otherwise allow.
func EncodeBlock[F traits.Scalar](w blockWriter, block []F, dims, minexp, maxbits, maxprec int) (int, error) {
	if maxbits == 0 {
		return 0, nil
	}

	start := w.WTell()
	t := traits.For[F]()

	if !t.IsFloat {
		coeffs, _, prec := transform.ForwardBlock(block, dims, minexp, maxprec)
		bitplane.Encode(w, coeffs, t.Precision, maxbits, prec)
		return int(w.WTell() - start), nil
	}

	ebits := t.EBits + 1
	if maxbits < ebits {
		w.WriteBit(0)
		return int(w.WTell() - start), fmt.Errorf("%w: maxbits=%d too small for %d-bit exponent field", errs.ErrOutOfBudget, maxbits, ebits)
	}

	coeffs, emax, prec := transform.ForwardBlock(block, dims, minexp, maxprec)

	e := 0
	if prec > 0 {
		e = emax + t.EBias
	}
	if e == 0 {
		w.WriteBit(0)
		return int(w.WTell() - start), nil
	}

	w.WriteBits(uint64(2*e+1), ebits)
	bitplane.Encode(w, coeffs, t.Precision, maxbits-ebits, prec)

	return int(w.WTell() - start), nil
}

// clampPrecision bounds a driver's configured maxprec to the scalar's
// native bit width, mirroring transform.ForwardBlock's internal clamp so
// decode computes the same effective cap encode used.
func clampPrecision(maxprec, nativePrecision int) int {
	if maxprec <= 0 || maxprec > nativePrecision {
		return nativePrecision
	}
	return maxprec
}

// DecodeBlock is EncodeBlock's inverse: it reads the exponent-field framing
// (float variants) or goes straight to the bit-plane body (integer
// variants), and returns the reconstructed block plus the number of bits
// consumed. maxprec must match the value EncodeBlock was called with.
func DecodeBlock[F traits.Scalar](r blockReader, dims, minexp, maxbits, maxprec int) ([]F, int) {
	blockSize := 1
	for i := 0; i < dims; i++ {
		blockSize *= 4
	}

	start := r.RTell()
	t := traits.For[F]()
	cap := clampPrecision(maxprec, t.Precision)

	if !t.IsFloat {
		prec := transform.BlockPrecision(0, cap, minexp, dims)
		coeffs := bitplane.Decode(r, blockSize, t.Precision, maxbits, prec)
		return transform.InverseBlock[F](coeffs, dims, 0), int(r.RTell() - start)
	}

	if maxbits == 0 {
		return make([]F, blockSize), 0
	}

	ebits := t.EBits + 1
	if maxbits < ebits {
		r.ReadBit()
		return make([]F, blockSize), int(r.RTell() - start)
	}

	flag := r.ReadBit()
	if flag == 0 {
		return make([]F, blockSize), int(r.RTell() - start)
	}

	rest := r.ReadBits(ebits - 1)
	raw := flag | (rest << 1)
	e := int(raw >> 1)
	emax := e - t.EBias

	prec := transform.BlockPrecision(emax, cap, minexp, dims)
	coeffs := bitplane.Decode(r, blockSize, t.Precision, maxbits-ebits, prec)

	return transform.InverseBlock[F](coeffs, dims, emax), int(r.RTell() - start)
}
