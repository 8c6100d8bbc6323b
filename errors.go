package chunkix

import "errors"

var (
	// ErrRunInsert is returned when Insert is invoked on a run chunk.
	// The run encoding has no insertion path; run chunks are built whole
	// via NewRunChunk and installed with Index.SetChunk.
	ErrRunInsert = errors.New("chunkix: insert not supported on run chunk")

	// ErrEmptyInput is returned by batch operations invoked with no keys.
	ErrEmptyInput = errors.New("chunkix: at least 1 key is required")

	// ErrReleased is returned when an operation is attempted on a chunk or
	// index after Release.
	ErrReleased = errors.New("chunkix: use after release")
)
