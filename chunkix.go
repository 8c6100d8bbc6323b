/*
Package chunkix implements a compressed bitmap index over sets of 32-bit
unsigned integers. The key space is partitioned into chunks of 65536 values
each; a sorted directory maps the high 16 bits of a key to a per-chunk
container holding the low 16 bits. Each container is encoded as a sorted
array, a fixed 65536-bit bitmap, or a single inclusive run, whichever the
caller installed; no conversion between encodings ever happens.

The bitmap encoding can keep its bits either in memory, backed by
https://github.com/bits-and-blooms/bitset, or in redis, using the bit
operations of redis.
*/
package chunkix

const wordSize = int(64)
const wordBytes = wordSize / 8

// chunkBits is the number of addressable offsets inside one chunk.
const chunkBits = uint(1) << 16

// chunkWords is the number of 64-bit words backing one bitmap chunk.
const chunkWords = int(chunkBits) / wordSize

// highBits gives the chunk key of a 32-bit value.
func highBits(v uint32) uint16 {
	return uint16(v >> 16)
}

// lowBits gives the offset of a 32-bit value inside its chunk.
func lowBits(v uint32) uint16 {
	return uint16(v & 0xFFFF)
}
