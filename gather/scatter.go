package gather

// Scatter1 writes a decoded 4-element block back into dst at strided
// positions starting at offset.
func Scatter1[T any](dst, src []T, offset, sx int) {
	idx := offset
	for x := 0; x < 4; x++ {
		dst[idx] = src[x]
		idx += sx
	}
}

// ScatterPartial1 writes only the nx cells that fall within the array;
// the block's remaining (padded) reconstructions are discarded.
func ScatterPartial1[T any](dst, src []T, offset, sx, nx int) {
	idx := offset
	for x := 0; x < nx; x++ {
		dst[idx] = src[x]
		idx += sx
	}
}

// Scatter2 writes a decoded 4x4 block back at strides (sx, sy).
func Scatter2[T any](dst, src []T, offset, sx, sy int) {
	idx := offset
	for y := 0; y < 4; y++ {
		yBase := idx
		for x := 0; x < 4; x++ {
			dst[idx] = src[4*y+x]
			idx += sx
		}
		idx = yBase + sy
	}
}

// ScatterPartial2 writes only the nx-by-ny cells that fall within the
// array.
func ScatterPartial2[T any](dst, src []T, offset, sx, sy, nx, ny int) {
	idx := offset
	for y := 0; y < ny; y++ {
		yBase := idx
		for x := 0; x < nx; x++ {
			dst[idx] = src[4*y+x]
			idx += sx
		}
		idx = yBase + sy
	}
}

// Scatter3 writes a decoded 4x4x4 block back at strides (sx, sy, sz).
func Scatter3[T any](dst, src []T, offset, sx, sy, sz int) {
	idx := offset
	for z := 0; z < 4; z++ {
		zBase := idx
		for y := 0; y < 4; y++ {
			yBase := idx
			for x := 0; x < 4; x++ {
				dst[idx] = src[16*z+4*y+x]
				idx += sx
			}
			idx = yBase + sy
		}
		idx = zBase + sz
	}
}

// ScatterPartial3 writes only the nx-by-ny-by-nz cells that fall within
// the array. Grounded on original_source/src/hip_zfp/decode1.h's
// scatter_partial1, extended to 3 axes.
func ScatterPartial3[T any](dst, src []T, offset, sx, sy, sz, nx, ny, nz int) {
	idx := offset
	for z := 0; z < nz; z++ {
		zBase := idx
		for y := 0; y < ny; y++ {
			yBase := idx
			for x := 0; x < nx; x++ {
				dst[idx] = src[16*z+4*y+x]
				idx += sx
			}
			idx = yBase + sy
		}
		idx = zBase + sz
	}
}
