// Package codec implements the BlockDriver: composing gather, the block
// transform, and the bit-plane coder into whole-field encode/decode, plus
// the fixed-rate/fixed-precision/fixed-accuracy mode selection.
//
// Grounded on original_source/src/cuda_zfp/shared.h's zfp_encode_block
// (exponent-field framing around the bit-plane body) and
// original_source/src/hip_zfp/decode1.h's hipDecode1 (block-chunk
// assignment, bit-offset computation per mode, and the 32-block hybrid
// prefix-sum scan for variable-rate decode). Configuration follows the
// teacher's functional-options convention (blob/numeric_encoder_config.go),
// built on internal/options.
package codec
