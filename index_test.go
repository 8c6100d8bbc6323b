package chunkix

import (
	"math/rand"
	"testing"
)

func TestIndexEmpty(t *testing.T) {
	ix := NewIndex()
	if ok, _ := ix.Has(1); ok {
		t.Fatalf("empty index should not contain 1, got %v", ok)
	}
	if n, _ := ix.Cardinality(); n != 0 {
		t.Fatalf("cardinality of empty index should be 0, got %v", n)
	}
	if ix.Chunks() != 0 {
		t.Fatalf("empty index should hold 0 chunks, got %v", ix.Chunks())
	}
}

func TestIndexInsertHas(t *testing.T) {
	ix := NewIndex()
	if ok, err := ix.Insert(1); !ok || err != nil {
		t.Fatalf("insert of 1 should change the index, got %v, %v", ok, err)
	}
	if ok, _ := ix.Has(1); !ok {
		t.Fatalf("should contain 1, got %v", ok)
	}
	if n, _ := ix.Cardinality(); n != 1 {
		t.Fatalf("cardinality should be 1, got %v", n)
	}
}

func TestIndexChunkSplit(t *testing.T) {
	ix := NewIndex()
	ix.Insert(1)
	ix.Insert(65536)
	if n, _ := ix.Cardinality(); n != 2 {
		t.Fatalf("cardinality should be 2, got %v", n)
	}
	if ok, _ := ix.Has(0); ok {
		t.Fatalf("should not contain 0, got %v", ok)
	}
	if ok, _ := ix.Has(65536); !ok {
		t.Fatalf("should contain 65536, got %v", ok)
	}
	if ix.Chunks() != 2 {
		t.Fatalf("index should hold 2 chunks, got %v", ix.Chunks())
	}
}

func TestIndexInsertIdempotent(t *testing.T) {
	ix := NewIndex()
	ix.Insert(5)
	if ok, _ := ix.Insert(5); ok {
		t.Fatalf("second insert of 5 should be a no-op, got %v", ok)
	}
	if n, _ := ix.Cardinality(); n != 1 {
		t.Fatalf("cardinality should be 1, got %v", n)
	}
}

func TestIndexLazyChunksAreArrays(t *testing.T) {
	ix := NewIndex()
	ix.Insert(1 << 20)
	c, ok := ix.Chunk(highBits(1 << 20))
	if !ok {
		t.Fatalf("chunk for key %v should exist", highBits(1<<20))
	}
	if !IsArrayChunk(c) {
		t.Fatalf("lazily created chunk should be array encoded, got %T", c)
	}
}

func TestIndexKeysStaySorted(t *testing.T) {
	ix := NewIndex()
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 5000; i++ {
		if _, err := ix.Insert(rng.Uint32()); err != nil {
			t.Fatalf("insert should succeed, got %v", err)
		}
	}
	for i := 1; i < len(ix.keys); i++ {
		if ix.keys[i-1] >= ix.keys[i] {
			t.Fatalf("keys not strictly ascending at %d: %v >= %v", i, ix.keys[i-1], ix.keys[i])
		}
	}
	if len(ix.keys) != len(ix.chunks) {
		t.Fatalf("keys and chunks should run parallel: %d vs %d", len(ix.keys), len(ix.chunks))
	}
}

func TestIndexSetChunkBitmap(t *testing.T) {
	data := make([]uint64, chunkWords)
	data[0] = 1
	data[chunkWords-1] = 1 << 63
	chunk, _ := NewBitmapChunkFromData(data)

	ix := NewIndex()
	old, replaced, err := ix.SetChunk(0, chunk)
	if err != nil || replaced || old != nil {
		t.Fatalf("installing into empty index should not replace, got %v, %v, %v", old, replaced, err)
	}
	if n, _ := ix.Cardinality(); n != 2 {
		t.Fatalf("cardinality should be 2, got %v", n)
	}
	if ok, _ := ix.Has(0); !ok {
		t.Fatalf("should contain 0, got %v", ok)
	}
	if ok, _ := ix.Has(32768); ok {
		t.Fatalf("should not contain 32768, got %v", ok)
	}
	if ok, _ := ix.Has(65535); !ok {
		t.Fatalf("should contain 65535, got %v", ok)
	}
}

func TestIndexSetChunkReplaces(t *testing.T) {
	ix := NewIndex()
	ix.Insert(3)
	chunk, _ := NewRunChunk(0, 9)
	old, replaced, err := ix.SetChunk(0, chunk)
	if err != nil || !replaced {
		t.Fatalf("installing over an existing chunk should replace, got %v, %v", replaced, err)
	}
	if !IsArrayChunk(old) {
		t.Fatalf("replaced chunk should be the original array chunk, got %T", old)
	}
	if n, _ := ix.Cardinality(); n != 10 {
		t.Fatalf("cardinality should be 10, got %v", n)
	}
}

func TestIndexRunChunkInsertFails(t *testing.T) {
	ix := NewIndex()
	chunk, _ := NewRunChunk(0, 9)
	ix.SetChunk(0, chunk)
	if _, err := ix.Insert(5); err != ErrRunInsert {
		t.Fatalf("insert into run chunk should fail with ErrRunInsert, got %v", err)
	}
	if ok, _ := ix.Has(5); !ok {
		t.Fatalf("should contain 5 through the run chunk, got %v", ok)
	}
}

func TestIndexMulti(t *testing.T) {
	ix := NewIndex()
	if _, err := ix.InsertMulti(nil); err != ErrEmptyInput {
		t.Fatalf("empty insert batch should fail with ErrEmptyInput, got %v", err)
	}
	keys := []uint32{1, 65536, 1 << 30, 1}
	if ok, err := ix.InsertMulti(keys); !ok || err != nil {
		t.Fatalf("insert batch should change the index, got %v, %v", ok, err)
	}
	if n, _ := ix.Cardinality(); n != 3 {
		t.Fatalf("cardinality should be 3, got %v", n)
	}
	got, err := ix.HasMulti([]uint32{1, 2, 65536, 1 << 30})
	if err != nil {
		t.Fatalf("has batch should succeed, got %v", err)
	}
	want := []bool{true, false, true, true}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("batch result %d should be %v, got %v", i, want[i], got[i])
		}
	}
}

func TestIndexInsertHasRoundTrip(t *testing.T) {
	ix := NewIndex()
	rng := rand.New(rand.NewSource(19))
	keys := make([]uint32, 0, 1000)
	for i := 0; i < 1000; i++ {
		keys = append(keys, rng.Uint32())
	}
	for _, k := range keys {
		ix.Insert(k)
	}
	for _, k := range keys {
		if ok, _ := ix.Has(k); !ok {
			t.Fatalf("should contain %v after insert, got %v", k, ok)
		}
	}
}

func TestIndexRelease(t *testing.T) {
	ix := NewIndex()
	ix.Insert(1)
	ix.Insert(1 << 24)
	if err := ix.Release(); err != nil {
		t.Fatalf("release should succeed, got %v", err)
	}
	if err := ix.Release(); err != ErrReleased {
		t.Fatalf("second release should fail with ErrReleased, got %v", err)
	}
	if _, err := ix.Insert(2); err != ErrReleased {
		t.Fatalf("insert after release should fail with ErrReleased, got %v", err)
	}
	if _, err := ix.Has(1); err != ErrReleased {
		t.Fatalf("has after release should fail with ErrReleased, got %v", err)
	}
}
