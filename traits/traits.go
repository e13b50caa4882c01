// Package traits exposes the per-scalar-type constants the block codec
// needs: exponent bias, precision, the negabinary mask, and whether a
// scalar type is a float or integer variant.
//
// Spec §4.1. The codec core is monomorphized per (Scalar, BlockSize) pair
// via Go generics rather than dynamic dispatch (spec §9 design note), with
// trait constants supplied by the small table this package implements.
//
// Internally the codec standardizes all four scalar variants (float32,
// float64, int32, int64) onto a 64-bit integer coefficient
// ("Int: signed integer alias of equal or wider width", spec §3) so the
// transform and bit-plane stages have a single monomorphic int64/uint64
// core instead of one per width.
package traits

import "math"

// Scalar is the set of types the block codec accepts.
type Scalar interface {
	~float32 | ~float64 | ~int32 | ~int64
}

// Traits holds the per-scalar-type constants from spec §3/§4.1.
type Traits struct {
	// IsFloat reports whether this variant is a floating-point type.
	IsFloat bool
	// EBits is the width of the biased exponent field (8, 11, or 0 for integers).
	EBits int
	// EBias is the IEEE-754 exponent bias (0 for integer variants).
	EBias int
	// Precision is the number of value bits used per coefficient.
	Precision int
	// NBMask is the repeating 0b10101010... pattern of UInt width, used by
	// the negabinary map (§4.3).
	NBMask uint64
	// ScalarMin is the smallest positive normal float, used when
	// denormals-are-zero rounding is in effect. Zero for integer variants.
	ScalarMin float64
}

// For returns the Traits for scalar type S.
func For[S Scalar]() Traits {
	var zero S
	switch any(zero).(type) {
	case float32:
		return Traits{
			IsFloat:   true,
			EBits:     8,
			EBias:     127,
			Precision: 32 - 1,
			NBMask:    nbmask64,
			ScalarMin: math.SmallestNonzeroFloat32 * (1 << 23), // smallest positive *normal*
		}
	case float64:
		return Traits{
			IsFloat:   true,
			EBits:     11,
			EBias:     1023,
			Precision: 64 - 1,
			NBMask:    nbmask64,
			ScalarMin: 2.2250738585072014e-308, // smallest positive normal float64
		}
	case int32:
		return Traits{
			IsFloat:   false,
			EBits:     0,
			EBias:     0,
			Precision: 32,
			NBMask:    nbmask64,
		}
	case int64:
		return Traits{
			IsFloat:   false,
			EBits:     0,
			EBias:     0,
			Precision: 64,
			NBMask:    nbmask64,
		}
	default:
		panic("traits: unsupported scalar type")
	}
}

// nbmask64 is the repeating 0b...10101010 pattern across all 64 bits of the
// internal coefficient container. All four scalar variants are standardized
// onto an int64/uint64 container (see package doc), so one mask width
// serves every variant: the negabinary map's magnitude-preserving property
// only depends on the mask and the arithmetic agreeing on a fixed modulus,
// not on the original scalar's bit width.
const nbmask64 uint64 = 0xAAAAAAAAAAAAAAAA

// Width returns the bit width (32 or 64) of scalar type S.
func Width[S Scalar]() int {
	var zero S
	switch any(zero).(type) {
	case float32, int32:
		return 32
	default:
		return 64
	}
}
