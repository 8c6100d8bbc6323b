package chunkix

// ArrayChunk is the sparse encoding of a chunk: every present offset is
// listed explicitly in an ascending, duplicate-free sequence. This is the
// only encoding the public insertion path ever creates.
type ArrayChunk struct {
	content  []uint16
	released bool
}

// NewArrayChunk creates a new empty ArrayChunk.
func NewArrayChunk() *ArrayChunk {
	return &ArrayChunk{}
}

// Cardinality returns the number of offsets in the chunk.
func (chunk *ArrayChunk) Cardinality() (uint, error) {
	if chunk.released {
		return 0, ErrReleased
	}
	return uint(len(chunk.content)), nil
}

// Has checks if the offset is present in the chunk.
func (chunk *ArrayChunk) Has(offset uint16) (bool, error) {
	if chunk.released {
		return false, ErrReleased
	}
	return search16(chunk.content, offset) >= 0, nil
}

// Insert adds the offset, keeping the sequence ascending and duplicate
// free. Inserting an offset that is already present is a no-op.
func (chunk *ArrayChunk) Insert(offset uint16) (bool, error) {
	if chunk.released {
		return false, ErrReleased
	}

	// Fast path for appending past the current maximum.
	if n := len(chunk.content); n == 0 || chunk.content[n-1] < offset {
		chunk.content = append(chunk.content, offset)
		return true, nil
	}

	i := search16(chunk.content, offset)
	if i >= 0 {
		return false, nil
	}

	i = -i - 1
	chunk.content = append(chunk.content, 0)
	copy(chunk.content[i+1:], chunk.content[i:])
	chunk.content[i] = offset
	return true, nil
}

// Release drops the chunk's backing storage.
func (chunk *ArrayChunk) Release() error {
	if chunk.released {
		return ErrReleased
	}
	chunk.content = nil
	chunk.released = true
	return nil
}

// search16 returns the index of value in the sorted array a. If value is
// absent it returns the negative of (insertion point + 1), so callers can
// recover the position where value would keep a sorted.
func search16(a []uint16, value uint16) int {
	n := len(a)
	if n == 0 {
		return -1
	} else if a[n-1] == value {
		return n - 1
	} else if a[n-1] < value {
		return -(n + 1)
	}

	lo, hi := 0, n-1
	for lo <= hi {
		i := int(uint(lo+hi) >> 1)
		v := a[i]

		if v < value {
			lo = i + 1
		} else if v > value {
			hi = i - 1
		} else {
			return i
		}
	}

	return -(lo + 1)
}
