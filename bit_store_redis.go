package chunkix

import (
	"context"
	"encoding/binary"

	"github.com/chunkix/chunkix/internal/util"
	"github.com/redis/go-redis/v9"
)

// redisBitStore is a redis-backed implementation of bitStore.
// _n_ is the number of bits in the store and _key_ is the redis key the
// bits are stored at. Redis keeps bitmaps as strings; all bit operations
// are done on the string stored at _key_. For more details, please refer
// https://redis.io/docs/data-types/bitmaps/
type redisBitStore struct {
	n   uint
	key string
}

// newRedisBitStore creates a new redisBitStore of _n_ bits, all clear,
// under a freshly generated random key.
func newRedisBitStore(n uint) (*redisBitStore, error) {
	bytes := make([]byte, (n+7)/8)
	key := util.GenerateRandomString(16)
	err := getRedisClient().Set(context.Background(), key, string(bytes), 0).Err()
	if err != nil {
		return nil, err
	}
	return &redisBitStore{n, key}, nil
}

// redisBitStoreFromData creates a redisBitStore over the 64-bit words
// passed in _data_, word 0 holding bits 0..63.
func redisBitStoreFromData(data []uint64) (*redisBitStore, error) {
	store, err := newRedisBitStore(uint(len(data) * wordSize))
	if err != nil {
		return nil, err
	}
	bytes := uint64ArrayToByteArray(data)
	err = getRedisClient().Set(context.Background(), store.key, string(bytes), 0).Err()
	if err != nil {
		return nil, err
	}
	return store, nil
}

// getKey gives the key at which the bits are stored in redis.
func (store *redisBitStore) getKey() string {
	return store.key
}

func (store *redisBitStore) size() uint {
	return store.n
}

func (store *redisBitStore) has(index uint) (bool, error) {
	val, err := getRedisClient().GetBit(context.Background(), store.key, int64(index)).Result()
	if err != nil {
		return false, err
	}
	return val != 0, nil
}

func (store *redisBitStore) hasMulti(indexes []uint) ([]bool, error) {
	if len(indexes) == 0 {
		return nil, ErrEmptyInput
	}
	pipe := getRedisClient().Pipeline()
	ctx := context.Background()
	values := make([]*redis.IntCmd, len(indexes))
	for i := range indexes {
		values[i] = pipe.GetBit(ctx, store.key, int64(indexes[i]))
	}
	_, err := pipe.Exec(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]bool, len(values))
	for i := range values {
		result[i] = values[i].Val() != 0
	}
	return result, nil
}

func (store *redisBitStore) insert(index uint) (bool, error) {
	err := getRedisClient().SetBit(context.Background(), store.key, int64(index), 1).Err()
	if err != nil {
		return false, err
	}
	return true, nil
}

// insertMulti sets every bit in _indexes_ through one pipeline. If the
// pipeline fails partway a prefix of the bits may already be set; since
// setting a bit is idempotent, re-running the same call converges.
func (store *redisBitStore) insertMulti(indexes []uint) (bool, error) {
	if len(indexes) == 0 {
		return false, ErrEmptyInput
	}
	pipe := getRedisClient().Pipeline()
	ctx := context.Background()
	for i := range indexes {
		pipe.SetBit(ctx, store.key, int64(indexes[i]), 1)
	}
	_, err := pipe.Exec(ctx)
	if err != nil {
		return false, err
	}
	return true, nil
}

func (store *redisBitStore) bitCount() (uint, error) {
	bitRange := &redis.BitCount{Start: 0, End: -1}
	val, err := getRedisClient().BitCount(context.Background(), store.key, bitRange).Result()
	if err != nil {
		return 0, err
	}
	return uint(val), nil
}

// release deletes the redis key holding the bits.
func (store *redisBitStore) release() error {
	return getRedisClient().Del(context.Background(), store.key).Err()
}

// uint64ArrayToByteArray lays the words out the way redis addresses bits:
// bit 0 of the store is the most significant bit of the first byte.
func uint64ArrayToByteArray(data []uint64) []byte {
	bytes := make([]byte, len(data)*wordBytes)
	for i, value := range data {
		var word [8]byte
		binary.LittleEndian.PutUint64(word[:], value)
		for j, b := range word {
			bytes[i*wordBytes+j] = util.ConvertByteToLittleEndianByte(b)
		}
	}
	return bytes
}
