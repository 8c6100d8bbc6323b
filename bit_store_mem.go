package chunkix

import (
	"github.com/bits-and-blooms/bitset"
)

// memBitStore is an in-memory implementation of bitStore.
// _set_ is the bitset implementation adopted from
// https://github.com/bits-and-blooms/bitset
type memBitStore struct {
	set *bitset.BitSet
	n   uint
}

// newMemBitStore creates a new memBitStore of _n_ bits, all clear.
func newMemBitStore(n uint) *memBitStore {
	return &memBitStore{bitset.New(n), n}
}

// memBitStoreFromData creates a memBitStore over the 64-bit words passed
// in _data_, word 0 holding bits 0..63.
func memBitStoreFromData(data []uint64) *memBitStore {
	return &memBitStore{bitset.From(data), uint(len(data) * wordSize)}
}

func (store *memBitStore) size() uint {
	return store.n
}

func (store *memBitStore) has(index uint) (bool, error) {
	if store.set == nil {
		return false, ErrReleased
	}
	return store.set.Test(index), nil
}

func (store *memBitStore) hasMulti(indexes []uint) ([]bool, error) {
	if len(indexes) == 0 {
		return nil, ErrEmptyInput
	}
	if store.set == nil {
		return nil, ErrReleased
	}
	result := make([]bool, len(indexes))
	for i := range indexes {
		result[i] = store.set.Test(indexes[i])
	}
	return result, nil
}

func (store *memBitStore) insert(index uint) (bool, error) {
	if store.set == nil {
		return false, ErrReleased
	}
	store.set.Set(index)
	return true, nil
}

func (store *memBitStore) insertMulti(indexes []uint) (bool, error) {
	if len(indexes) == 0 {
		return false, ErrEmptyInput
	}
	if store.set == nil {
		return false, ErrReleased
	}
	for i := range indexes {
		store.set.Set(indexes[i])
	}
	return true, nil
}

func (store *memBitStore) bitCount() (uint, error) {
	if store.set == nil {
		return 0, ErrReleased
	}
	return store.set.Count(), nil
}

func (store *memBitStore) release() error {
	if store.set == nil {
		return ErrReleased
	}
	store.set = nil
	return nil
}
