// Package bitplane implements the embedded bit-plane encoder and decoder
// (spec §4.4): coefficients are coded from the most to least significant
// bit plane, with a group-test-then-scan unary scheme that lets the
// stream be truncated at any bit and still decode to a valid (lower
// precision) approximation of the block.
//
// Ported statement-for-statement from
// original_source/src/cuda_zfp/shared.h's encode_ints/encode_block and
// decode_ints, which is the authoritative reference for this algorithm's
// exact bit layout — the group-test bit is not a separate framing device,
// it is the same stream position the per-coefficient significance scan
// would read next, which is why encode's outer loop tests "is there any
// remaining 1 bit at all" while decode's outer loop just reads that same
// bit back. Bit-budget accounting (the "bits" countdown) unifies the
// source's separate fixed-rate (encode_ints) and fixed-precision
// (encode_ints_prec) encoders into one function: passing MaxBitsUnbounded
// reproduces the unlimited-budget behavior without duplicating the loop.
package bitplane

// MaxBitsUnbounded is passed as maxbits for fixed-precision mode, where
// the encoder runs to completion (all planes down to kmin) rather than
// stopping at a bit budget.
const MaxBitsUnbounded = 1 << 30

type bitWriter interface {
	WriteBits(value uint64, n int) int
	WriteBit(b uint64) int
}

type bitReader interface {
	ReadBits(n int) uint64
	ReadBit() uint64
}

func kmin(intprec, maxprec int) int {
	if intprec > maxprec {
		return intprec - maxprec
	}
	return 0
}

// Encode writes coeffs (already negabinary-mapped and frequency-ordered
// by the transform package) to w, one bit plane at a time from bit
// intprec-1 down to max(0, intprec-maxprec), stopping early if maxbits
// bits have been spent. It returns the number of bits actually written.
func Encode(w bitWriter, coeffs []uint64, intprec, maxbits, maxprec int) int {
	count := len(coeffs)
	kmn := kmin(intprec, maxprec)
	bits := maxbits
	n := 0

	for k := intprec - 1; bits > 0 && k >= kmn; k-- {
		var x uint64
		for i, c := range coeffs {
			x |= ((c >> uint(k)) & 1) << uint(i)
		}

		m := n
		if bits < m {
			m = bits
		}
		bits -= m
		w.WriteBits(x, m)
		x >>= uint(m)

		for n < count && bits > 0 {
			bits--
			sig := x != 0
			w.WriteBit(bitOf(sig))
			if !sig {
				break
			}

			for n < count-1 && bits > 0 {
				bits--
				b := x & 1
				w.WriteBit(b)
				if b == 1 {
					break
				}
				x >>= 1
				n++
			}

			x >>= 1
			n++
		}
	}

	return maxbits - bits
}

// Decode is the exact inverse of Encode: given the same intprec, maxbits,
// and maxprec the encoder used, it reconstructs count coefficients.
// Coefficients beyond what the bit budget covered decode as zero at
// their untouched low bit planes, which is the source of zfp's graceful
// lossy truncation.
func Decode(r bitReader, count, intprec, maxbits, maxprec int) []uint64 {
	data := make([]uint64, count)
	kmn := kmin(intprec, maxprec)
	bits := maxbits
	n := 0

	for k := intprec - 1; bits > 0 && k >= kmn; k-- {
		m := n
		if bits < m {
			m = bits
		}
		bits -= m
		x := r.ReadBits(m)

		for n < count && bits > 0 {
			bits--
			sig := r.ReadBit()
			if sig == 0 {
				break
			}

			for n < count-1 && bits > 0 {
				bits--
				b := r.ReadBit()
				if b == 1 {
					break
				}
				n++
			}

			x |= 1 << uint(n)
			n++
		}

		for i := 0; x != 0; i++ {
			data[i] |= (x & 1) << uint(k)
			x >>= 1
		}
	}

	return data
}

func bitOf(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
