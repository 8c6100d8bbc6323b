package chunkix

import "fmt"

// RunChunk is the contiguous encoding of a chunk: one inclusive
// [start, end] range of offsets. It has no insertion path; run chunks are
// built whole and installed with Index.SetChunk.
type RunChunk struct {
	start uint16
	end   uint16
}

// NewRunChunk creates a RunChunk covering the inclusive range
// [start, end].
func NewRunChunk(start, end uint16) (*RunChunk, error) {
	if start > end {
		return nil, fmt.Errorf("chunkix: invalid run bounds [%d, %d]", start, end)
	}
	return &RunChunk{start, end}, nil
}

// Cardinality returns the length of the range.
func (chunk *RunChunk) Cardinality() (uint, error) {
	return uint(chunk.end) - uint(chunk.start) + 1, nil
}

// Has checks if the offset lies within the inclusive range.
func (chunk *RunChunk) Has(offset uint16) (bool, error) {
	return chunk.start <= offset && offset <= chunk.end, nil
}

// Insert always fails with ErrRunInsert; the run encoding cannot be
// mutated this way.
func (chunk *RunChunk) Insert(offset uint16) (bool, error) {
	return false, ErrRunInsert
}

// Release is a no-op; a run chunk owns no heap storage beyond itself.
func (chunk *RunChunk) Release() error {
	return nil
}
