// Package transform implements the block floating-point cast, the
// reversible lifting decorrelation transform, coefficient reordering, and
// the negabinary remap that together turn a block of scalars into an
// ordered sequence of unsigned integers ready for bit-plane coding (spec
// §4.3).
//
// The forward pipeline is: MaxExponent -> CastForward -> Decorrelate ->
// Reorder -> Int2UInt. The inverse pipeline runs those five steps in
// reverse. Every step here operates on the int64/uint64 container that
// traits.For standardizes all four scalar variants onto, so there is a
// single monomorphic implementation of the lift, reorder, and negabinary
// steps regardless of the original scalar's width.
//
// The lift and negabinary arithmetic is grounded verbatim on
// original_source/src/cuda_zfp/shared.h's fwd_lift/inv_lift and
// int2uint/precision functions, which is the authoritative reference for
// this transform's exact bit behavior (spec's own prose summary of the
// lift differs slightly on write-back order; the source file wins per
// the rule that ambiguity defers to what the original actually does).
package transform
