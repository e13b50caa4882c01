package codec

import (
	"github.com/blocklift/zfp/errs"
	"github.com/blocklift/zfp/transform"
)

// Driver composes gather → transform → bit-plane coding (and the inverse)
// across a whole field, per spec §4.7. One Driver instance is built per
// (dimensionality, mode, rate/precision/accuracy) combination and reused
// across fields with matching shape.
type Driver struct {
	dims int

	mode Mode

	minbits int
	maxbits int
	maxprec int
	minexp  int
}

// NewDriver builds a Driver for the given dimensionality (1, 2, or 3),
// configured by opts. By default it is fixed-rate with maxprec=64, no
// accuracy floor (minexp unset), and a bit budget of 0 until an option
// sets one.
func NewDriver(dims int, opts ...DriverOption) (*Driver, error) {
	if dims < 1 || dims > 3 {
		return nil, errs.ErrBadDimensions
	}

	d := &Driver{
		dims:    dims,
		mode:    ModeFixedRate,
		maxprec: 64,
		minexp:  transform.MinExpUnset,
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.maxbits == 0 {
		d.maxbits = d.minbits
	}
	if d.minbits == 0 {
		d.minbits = d.maxbits
	}
	if d.maxbits < 0 || d.minbits < 0 {
		return nil, errs.ErrInvalidMaxBits
	}

	return d, nil
}

// BlockSize returns 4^dims, the number of scalars per block.
func (d *Driver) BlockSize() int {
	n := 1
	for i := 0; i < d.dims; i++ {
		n *= 4
	}
	return n
}

// paddedDim rounds extent up to the next multiple of 4.
func paddedDim(extent int) int {
	return (extent + 3) &^ 3
}

// blockCounts returns the number of 4-wide blocks covering each axis
// (1 for an axis the dimensionality doesn't use).
func (d *Driver) blockCounts(size [3]int) [3]int {
	var counts [3]int
	for i := 0; i < 3; i++ {
		if i < d.dims && size[i] > 0 {
			counts[i] = paddedDim(size[i]) / 4
		} else {
			counts[i] = 1
		}
	}
	return counts
}

// totalBlocks returns the total number of blocks in a field of the given
// per-axis extents, for this driver's dimensionality.
func (d *Driver) totalBlocks(size [3]int) int {
	counts := d.blockCounts(size)
	n := 1
	for i := 0; i < d.dims; i++ {
		n *= counts[i]
	}
	return n
}
