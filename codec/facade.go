package codec

import (
	"github.com/blocklift/zfp/errs"
	"github.com/blocklift/zfp/traits"
)

// WordsNeeded returns how many 64-bit words an encode of a field with the
// given extents needs in ModeFixedRate (the only mode with a statically
// known size).
func (d *Driver) WordsNeeded(size [3]int) int {
	total := d.totalBlocks(size)
	return (total*d.maxbits + 63) / 64
}

// Encode dispatches to EncodeField or EncodeFieldVariableRate based on
// d's configured Mode. For ModeFixedRate, offsets is always nil. For the
// variable-length modes, offsets is the per-block index a caller must
// keep alongside words to decode later.
func Encode[F traits.Scalar](d *Driver, src []F, size, stride [3]int) (words []uint64, offsets []uint64, err error) {
	if !d.mode.variableLength() {
		words = make([]uint64, d.WordsNeeded(size))
		EncodeField(d, words, src, size, stride)
		return words, nil, nil
	}

	words, offsets = EncodeFieldVariableRate(d, src, size, stride)
	return words, offsets, nil
}

// Decode dispatches to DecodeField or DecodeFieldVariableRate based on
// d's configured Mode. offsets must be non-nil for either variable-length
// mode (spec §7 IndexMissing).
func Decode[F traits.Scalar](d *Driver, words []uint64, offsets []uint64, dst []F, size, stride [3]int) error {
	if !d.mode.variableLength() {
		DecodeField[F](d, words, dst, size, stride)
		return nil
	}

	if offsets == nil {
		return errs.ErrIndexMissing
	}

	return DecodeFieldVariableRate[F](d, words, offsets, dst, size, stride)
}
