package chunkix

import "fmt"

// BitmapChunk is the dense encoding of a chunk: one bit per possible
// offset across the full 65536-value range. The bits live in a bitStore,
// either in memory or in redis; the encoding is the same either way and
// the store is never resized.
//
// Bitmap chunks are never created by the public insertion path; they are
// built by a collaborator and installed with Index.SetChunk.
type BitmapChunk struct {
	store bitStore
}

// NewBitmapChunk creates an empty in-memory BitmapChunk.
func NewBitmapChunk() *BitmapChunk {
	return &BitmapChunk{newMemBitStore(chunkBits)}
}

// NewBitmapChunkFromData creates an in-memory BitmapChunk over the 1024
// 64-bit words passed in _data_, word 0 holding offsets 0..63.
func NewBitmapChunkFromData(data []uint64) (*BitmapChunk, error) {
	if len(data) != chunkWords {
		return nil, fmt.Errorf("chunkix: bitmap chunk needs %d words, got %d", chunkWords, len(data))
	}
	return &BitmapChunk{memBitStoreFromData(data)}, nil
}

// NewRedisBitmapChunk creates an empty BitmapChunk whose bits live in
// redis under a freshly generated key. MakeRedisClient must have been
// called before.
func NewRedisBitmapChunk() (*BitmapChunk, error) {
	store, err := newRedisBitStore(chunkBits)
	if err != nil {
		return nil, fmt.Errorf("chunkix: error creating redis bitmap chunk: %w", err)
	}
	return &BitmapChunk{store}, nil
}

// NewRedisBitmapChunkFromData creates a redis-backed BitmapChunk over the
// 1024 64-bit words passed in _data_.
func NewRedisBitmapChunkFromData(data []uint64) (*BitmapChunk, error) {
	if len(data) != chunkWords {
		return nil, fmt.Errorf("chunkix: bitmap chunk needs %d words, got %d", chunkWords, len(data))
	}
	store, err := redisBitStoreFromData(data)
	if err != nil {
		return nil, fmt.Errorf("chunkix: error creating redis bitmap chunk: %w", err)
	}
	return &BitmapChunk{store}, nil
}

// Cardinality returns the population count of the chunk's bits.
func (chunk *BitmapChunk) Cardinality() (uint, error) {
	if chunk.store.size() != chunkBits {
		return 0, fmt.Errorf("chunkix: bitmap chunk store holds %d bits, want %d", chunk.store.size(), chunkBits)
	}
	return chunk.store.bitCount()
}

// Has checks if the bit at the offset is set.
func (chunk *BitmapChunk) Has(offset uint16) (bool, error) {
	return chunk.store.has(uint(offset))
}

// HasMulti checks the bits at every offset in _offsets_. Redis-backed
// chunks answer through one pipeline.
func (chunk *BitmapChunk) HasMulti(offsets []uint16) ([]bool, error) {
	if len(offsets) == 0 {
		return nil, ErrEmptyInput
	}
	return chunk.store.hasMulti(offsetsToIndexes(offsets))
}

// Insert sets the bit at the offset. Setting an already-set bit is a
// no-op; Insert on a bitmap chunk cannot grow storage.
func (chunk *BitmapChunk) Insert(offset uint16) (bool, error) {
	return chunk.store.insert(uint(offset))
}

// InsertMulti sets the bits at every offset in _offsets_. Redis-backed
// chunks apply them through one pipeline.
func (chunk *BitmapChunk) InsertMulti(offsets []uint16) (bool, error) {
	if len(offsets) == 0 {
		return false, ErrEmptyInput
	}
	return chunk.store.insertMulti(offsetsToIndexes(offsets))
}

// Release frees the chunk's bit storage; for redis-backed chunks the key
// is deleted.
func (chunk *BitmapChunk) Release() error {
	return chunk.store.release()
}

func offsetsToIndexes(offsets []uint16) []uint {
	indexes := make([]uint, len(offsets))
	for i := range offsets {
		indexes[i] = uint(offsets[i])
	}
	return indexes
}
