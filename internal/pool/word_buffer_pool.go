package pool

import "sync"

// Default and max-retained sizes for the block scratch pool, in 64-bit
// words. A single block's worst case is 64 coefficients encoded at full
// 64-bit precision plus an exponent field, rounded up generously so 3-D
// fixed-precision blocks at maxprec=64 never need to grow.
const (
	BlockWordsDefaultSize  = 72     // ~576B, one worst-case block plus slack
	BlockWordsMaxThreshold = 1024 * 8 // 64KiB worth of words
)

// WordBuffer is a reusable []uint64 scratch buffer sized for a single
// block's bit-plane encode. bitstream.Writer operates directly on a
// []uint64 word array, so the block pool hands out words rather than
// bytes (unlike the arena staging pool, which stages already-serialized
// bytes).
type WordBuffer struct {
	// W is the underlying word slice.
	W []uint64
}

// NewWordBuffer creates a new WordBuffer with the given default word count.
func NewWordBuffer(defaultWords int) *WordBuffer {
	return &WordBuffer{W: make([]uint64, defaultWords)}
}

// Ensure resizes the buffer to exactly n words, zeroing its contents, so a
// reused scratch buffer never leaks bits from a previous block's encode.
// It reallocates only if the current capacity is insufficient.
func (wb *WordBuffer) Ensure(n int) {
	if cap(wb.W) < n {
		wb.W = make([]uint64, n)
		return
	}

	wb.W = wb.W[:n]
	for i := range wb.W {
		wb.W[i] = 0
	}
}

// WordBufferPool is a sync.Pool of WordBuffers, mirroring ByteBufferPool's
// shape for the word-oriented case.
type WordBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewWordBufferPool creates a new WordBufferPool with buffers of the
// specified default word count.
func NewWordBufferPool(defaultWords, maxThreshold int) *WordBufferPool {
	return &WordBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewWordBuffer(defaultWords)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a WordBuffer from the pool.
func (wbp *WordBufferPool) Get() *WordBuffer {
	wb, _ := wbp.pool.Get().(*WordBuffer)
	return wb
}

// Put returns a WordBuffer to the pool for reuse.
func (wbp *WordBufferPool) Put(wb *WordBuffer) {
	if wb == nil {
		return
	}

	if wbp.maxThreshold > 0 && cap(wb.W) > wbp.maxThreshold {
		return
	}

	wbp.pool.Put(wb)
}

var blockWordPool = NewWordBufferPool(BlockWordsDefaultSize, BlockWordsMaxThreshold)

// GetBlockBuffer retrieves a scratch WordBuffer from the default block
// pool, for single-block bit-plane encode scratch space.
func GetBlockBuffer() *WordBuffer {
	return blockWordPool.Get()
}

// PutBlockBuffer returns a WordBuffer to the default block pool.
func PutBlockBuffer(wb *WordBuffer) {
	blockWordPool.Put(wb)
}
