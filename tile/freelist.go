package tile

import "sort"

// freeRange is a run of unused words [offset, offset+size).
type freeRange struct {
	offset int
	size   int
}

// freeList is a small, offset-sorted slice of free ranges rather than an
// intrusive linked list: tiles hold at most a few hundred blocks, so a
// plain slice scan stays cache-friendly at that size and avoids
// pointer-chasing.
type freeList struct {
	ranges []freeRange
}

// firstFit finds the first range at least sizeWords long, carves
// sizeWords off its front, and returns the allocated offset. ok is false
// if no range is large enough.
func (f *freeList) firstFit(sizeWords int) (offset int, ok bool) {
	for i := range f.ranges {
		r := &f.ranges[i]
		if r.size < sizeWords {
			continue
		}

		offset = r.offset
		r.offset += sizeWords
		r.size -= sizeWords
		if r.size == 0 {
			f.ranges = append(f.ranges[:i], f.ranges[i+1:]...)
		}

		return offset, true
	}

	return 0, false
}

// release inserts [offset, offset+size) back into the list in sorted
// order and merges it with any adjacent ranges.
func (f *freeList) release(offset, size int) {
	i := sort.Search(len(f.ranges), func(i int) bool {
		return f.ranges[i].offset >= offset
	})

	f.ranges = append(f.ranges, freeRange{})
	copy(f.ranges[i+1:], f.ranges[i:])
	f.ranges[i] = freeRange{offset: offset, size: size}

	f.coalesce(i)
}

// coalesce merges the range at index i with its immediate neighbors if
// they are contiguous.
func (f *freeList) coalesce(i int) {
	if i+1 < len(f.ranges) {
		cur, next := f.ranges[i], f.ranges[i+1]
		if cur.offset+cur.size == next.offset {
			f.ranges[i].size += next.size
			f.ranges = append(f.ranges[:i+1], f.ranges[i+2:]...)
		}
	}
	if i > 0 {
		prev, cur := f.ranges[i-1], f.ranges[i]
		if prev.offset+prev.size == cur.offset {
			f.ranges[i-1].size += cur.size
			f.ranges = append(f.ranges[:i], f.ranges[i+1:]...)
		}
	}
}

// totalFree sums free capacity, for diagnostics/testing.
func (f *freeList) totalFree() int {
	n := 0
	for _, r := range f.ranges {
		n += r.size
	}
	return n
}
