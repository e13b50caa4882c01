// Package gather implements strided N-D gather (encode side) and scatter
// (decode side) between a flat, strided array and a dense 4/16/64-element
// block buffer, including the partial-block padding rule for blocks that
// straddle the array's edge (spec §4.5).
//
// Grounded on original_source/src/hip_zfp/encode3.h's gather3/gather_partial3
// and decode1.h's scatter1/scatter_partial1 for the strided walk order, and
// on shared.h's pad_block for the exact edge-replication rule (including
// its n==3 case, which replicates index 0 rather than index 2 — a
// deliberate asymmetry in the reference, kept here rather than
// "corrected", since bitplane-decode's reconstruction must replicate
// whatever the encoder actually synthesized).
package gather
