package gather

// Gather1 copies 4 contiguous (at stride sx) elements starting at offset
// into dst, in row-major block order.
func Gather1[T any](dst, src []T, offset, sx int) {
	idx := offset
	for x := 0; x < 4; x++ {
		dst[x] = src[idx]
		idx += sx
	}
}

// GatherPartial1 is Gather1 for a block that only has nx (1-3) valid
// cells before the array edge; the remaining cells are synthesized by
// padBlock.
func GatherPartial1[T any](dst, src []T, offset, sx, nx int) {
	idx := offset
	for x := 0; x < nx; x++ {
		dst[x] = src[idx]
		idx += sx
	}
	padBlock(dst, 0, nx, 1)
}

// Gather2 copies a 4x4 block at strides (sx, sy), row-major (y outer, x
// inner — matching the coefficient layout x + 4*y used throughout this
// module).
func Gather2[T any](dst, src []T, offset, sx, sy int) {
	idx := offset
	for y := 0; y < 4; y++ {
		yBase := idx
		for x := 0; x < 4; x++ {
			dst[4*y+x] = src[idx]
			idx += sx
		}
		idx = yBase + sy
	}
}

// GatherPartial2 is Gather2 for a block with only nx valid cells along x
// and ny along y.
func GatherPartial2[T any](dst, src []T, offset, sx, sy, nx, ny int) {
	idx := offset
	for y := 0; y < 4; y++ {
		if y >= ny {
			continue
		}
		yBase := idx
		for x := 0; x < nx; x++ {
			dst[4*y+x] = src[idx]
			idx += sx
		}
		idx = yBase + sy
		padBlock(dst, 4*y, nx, 1)
	}
	for x := 0; x < 4; x++ {
		padBlock(dst, x, ny, 4)
	}
}

// Gather3 copies a 4x4x4 block at strides (sx, sy, sz), row-major
// (z outer, then y, then x inner; index x + 4*y + 16*z).
func Gather3[T any](dst, src []T, offset, sx, sy, sz int) {
	idx := offset
	for z := 0; z < 4; z++ {
		zBase := idx
		for y := 0; y < 4; y++ {
			yBase := idx
			for x := 0; x < 4; x++ {
				dst[16*z+4*y+x] = src[idx]
				idx += sx
			}
			idx = yBase + sy
		}
		idx = zBase + sz
	}
}

// GatherPartial3 is Gather3 for a block with only nx/ny/nz valid cells
// along each axis. Grounded verbatim on
// original_source/src/hip_zfp/encode3.h's gather_partial3.
func GatherPartial3[T any](dst, src []T, offset, sx, sy, sz, nx, ny, nz int) {
	idx := offset
	for z := 0; z < 4; z++ {
		if z >= nz {
			continue
		}
		zBase := idx
		for y := 0; y < 4; y++ {
			if y >= ny {
				continue
			}
			yBase := idx
			for x := 0; x < nx; x++ {
				dst[16*z+4*y+x] = src[idx]
				idx += sx
			}
			idx = yBase + sy
			padBlock(dst, 16*z+4*y, nx, 1)
		}
		for x := 0; x < 4; x++ {
			padBlock(dst, 16*z+x, ny, 4)
		}
		idx = zBase + sz
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			padBlock(dst, 4*y+x, nz, 16)
		}
	}
}
