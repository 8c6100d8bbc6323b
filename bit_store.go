package chunkix

// bitStore is the storage behind a bitmap chunk. Bits either live in
// memory, backed by https://github.com/bits-and-blooms/bitset, or in redis,
// using the bit operations of redis on a string value.
type bitStore interface {
	// size returns the number of bits in the store
	size() uint

	// has returns true if the bit is set at index, else false
	has(index uint) (bool, error)

	// hasMulti returns an array of boolean values for the queried
	// index values in the indexes array
	hasMulti(indexes []uint) ([]bool, error)

	// insert sets the bit at index to true
	insert(index uint) (bool, error)

	// insertMulti sets the bits at the indices passed in the indexes array
	insertMulti(indexes []uint) (bool, error)

	// bitCount returns the total number of set bits in the store
	bitCount() (uint, error)

	// release frees the store's backing storage
	release() error
}
