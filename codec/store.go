package codec

import (
	"errors"

	"github.com/blocklift/zfp/bitstream"
	"github.com/blocklift/zfp/errs"
	"github.com/blocklift/zfp/internal/pool"
	"github.com/blocklift/zfp/tile"
	"github.com/blocklift/zfp/traits"
)

// EncodeAndStore runs the per-block pipeline on block and deposits the
// result into arena slot id, per spec §4.6's encode-then-store operation:
// acquire a scratch word buffer sized to the worst-case block bit budget,
// bit-plane encode into it, then hand the written words to Store, which
// computes word_size(bits) and copies only the significant words. This is
// the path that actually exercises the tile allocator with real encoder
// output, rather than hand-supplied test bytes.
//
// ErrOutOfBudget from EncodeBlock is soft (a valid zero-only block was
// still emitted) and does not prevent the store.
func EncodeAndStore[F traits.Scalar](d *Driver, a *tile.Arena, id int, block []F) error {
	if len(block) != d.BlockSize() {
		return errs.ErrInvalidBlockSize
	}

	scratch := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(scratch)
	scratch.Ensure((d.maxbits+63)/64 + 1)

	w := bitstream.NewWriter(scratch.W)
	bits, err := EncodeBlock(w, block, d.dims, d.minexp, d.maxbits, d.maxprec)
	if err != nil && !errors.Is(err, errs.ErrOutOfBudget) {
		return err
	}

	return a.Store(id, scratch.W, bits)
}

// DecodeFromArena reads block id's compressed range from a and decodes it
// back into a BlockSize-length scalar block. ok is false when id has never
// been stored, matching tile2.h's decode() null branch: the caller gets an
// all-zero block rather than an error.
func DecodeFromArena[F traits.Scalar](d *Driver, a *tile.Arena, id int) (block []F, ok bool, err error) {
	offsetWords, sizeWords, ok, err := a.LookUp(id)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return make([]F, d.BlockSize()), false, nil
	}

	r := bitstream.NewReaderAt(a.Words(), uint64(offsetWords)*64)
	block, _ = DecodeBlock[F](r, d.dims, d.minexp, sizeWords*64, d.maxprec)

	return block, true, nil
}
