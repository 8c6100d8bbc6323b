package chunkix

// Container is the capability shared by the three chunk encodings. Every
// method carries an error so that chunks whose storage lives in redis can
// surface transport failures; purely in-memory chunks return nil errors.
//
// Exactly three implementations exist: ArrayChunk, BitmapChunk and
// RunChunk. The set is closed; the index performs no conversion between
// them, so a chunk keeps the encoding it was created with for its entire
// lifetime.
type Container interface {
	// Cardinality returns the number of distinct offsets present.
	Cardinality() (uint, error)

	// Has returns true if the offset is present, else false. Absence is
	// never an error.
	Has(offset uint16) (bool, error)

	// Insert adds the offset. It returns true if the chunk changed and
	// false if the offset was already present. Insertion is idempotent.
	Insert(offset uint16) (bool, error)

	// Release frees the chunk's backing storage. It must be invoked
	// exactly once; no operation is valid on the chunk afterwards.
	Release() error
}

// IsArrayChunk is used to check if the passed container `c`
// is of type *ArrayChunk or not
func IsArrayChunk(c Container) bool {
	switch c.(type) {
	case *ArrayChunk:
		return true
	default:
		return false
	}
}
