package chunkix

import "fmt"

// Index is the chunk directory: a sorted mapping from the high 16 bits of
// a key to the Container holding that chunk's offsets. _keys_ stays
// strictly ascending with no duplicates and entries are never removed;
// _chunks_ runs parallel to it. Insert creates missing chunks lazily in
// the array encoding; bitmap and run chunks enter only through SetChunk.
//
// An Index is not safe for concurrent use; callers provide their own
// synchronization.
type Index struct {
	keys     []uint16
	chunks   []Container
	released bool
}

// NewIndex creates a new empty Index.
func NewIndex() *Index {
	return &Index{}
}

// Insert adds the key to the index, creating an empty array chunk for its
// high bits if none exists yet. It returns true if the index changed and
// false if the key was already present. Inserting into a chunk that a
// collaborator installed in the run encoding fails with ErrRunInsert.
func (ix *Index) Insert(key uint32) (bool, error) {
	if ix.released {
		return false, ErrReleased
	}
	hb := highBits(key)
	i := search16(ix.keys, hb)
	if i < 0 {
		i = -i - 1
		ix.insertAt(hb, NewArrayChunk(), i)
	}
	return ix.chunks[i].Insert(lowBits(key))
}

// InsertMulti adds every key in _keys_ to the index. It returns true if
// any insertion changed the index. A failing insertion aborts the batch;
// keys before the failing one stay inserted.
func (ix *Index) InsertMulti(keys []uint32) (bool, error) {
	if len(keys) == 0 {
		return false, ErrEmptyInput
	}
	changed := false
	for _, key := range keys {
		ok, err := ix.Insert(key)
		if err != nil {
			return changed, err
		}
		if ok {
			changed = true
		}
	}
	return changed, nil
}

// Has checks if the key is present. A key whose chunk was never created
// is absent, never an error.
func (ix *Index) Has(key uint32) (bool, error) {
	if ix.released {
		return false, ErrReleased
	}
	i := search16(ix.keys, highBits(key))
	if i < 0 {
		return false, nil
	}
	return ix.chunks[i].Has(lowBits(key))
}

// HasMulti returns an array of boolean values for the queried keys.
func (ix *Index) HasMulti(keys []uint32) ([]bool, error) {
	if len(keys) == 0 {
		return nil, ErrEmptyInput
	}
	result := make([]bool, len(keys))
	for i, key := range keys {
		ok, err := ix.Has(key)
		if err != nil {
			return nil, err
		}
		result[i] = ok
	}
	return result, nil
}

// Cardinality returns the number of distinct keys in the index, summing
// chunk cardinalities in ascending key order.
func (ix *Index) Cardinality() (uint, error) {
	if ix.released {
		return 0, ErrReleased
	}
	total := uint(0)
	for i := range ix.chunks {
		n, err := ix.chunks[i].Cardinality()
		if err != nil {
			return 0, fmt.Errorf("chunkix: cardinality of chunk %d: %w", ix.keys[i], err)
		}
		total += n
	}
	return total, nil
}

// Chunks returns the number of chunks the index currently holds.
func (ix *Index) Chunks() int {
	return len(ix.keys)
}

// Chunk returns the container holding the given chunk key, if any.
func (ix *Index) Chunk(key uint16) (Container, bool) {
	i := search16(ix.keys, key)
	if i < 0 {
		return nil, false
	}
	return ix.chunks[i], true
}

// SetChunk installs a collaborator-built container for the given chunk
// key at its sorted position. An existing container for the same key is
// replaced and returned to the caller through the bool result; releasing
// it stays the caller's concern. This is the only way bitmap and run
// encoded chunks enter an index.
func (ix *Index) SetChunk(key uint16, c Container) (Container, bool, error) {
	if ix.released {
		return nil, false, ErrReleased
	}
	if c == nil {
		return nil, false, fmt.Errorf("chunkix: cannot install a nil chunk")
	}
	i := search16(ix.keys, key)
	if i >= 0 {
		old := ix.chunks[i]
		ix.chunks[i] = c
		return old, true, nil
	}
	ix.insertAt(key, c, -i-1)
	return nil, false, nil
}

// Release releases every chunk, then drops the directory's own storage.
// It must be invoked exactly once; no operation is valid on the index
// afterwards.
func (ix *Index) Release() error {
	if ix.released {
		return ErrReleased
	}
	for i := range ix.chunks {
		if err := ix.chunks[i].Release(); err != nil {
			return fmt.Errorf("chunkix: releasing chunk %d: %w", ix.keys[i], err)
		}
	}
	ix.keys = nil
	ix.chunks = nil
	ix.released = true
	return nil
}

// insertAt places a new entry at position i, shifting the tail to keep
// the key sequence strictly ascending.
func (ix *Index) insertAt(key uint16, c Container, i int) {
	ix.keys = append(ix.keys, 0)
	copy(ix.keys[i+1:], ix.keys[i:])
	ix.keys[i] = key

	ix.chunks = append(ix.chunks, nil)
	copy(ix.chunks[i+1:], ix.chunks[i:])
	ix.chunks[i] = c
}
