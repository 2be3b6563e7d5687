// Package codec defines the serialization and compression collaborators of
// the cache.
//
// The cache core never interprets stored bytes itself: a Serializer turns an
// arbitrary value into a byte sequence and back, and a Compressor optionally
// shrinks and expands that sequence. Both contracts are narrow, fallible,
// and symmetric — whatever Encode/Compress produced at write time must be
// reversed by Decompress/Decode at read time.
//
// Provided implementations: JSON (encoding/json), Deflate (raw deflate via
// compress/flate), and Brotli (github.com/andybalholm/brotli).
package codec

// Serializer converts values to and from their stored byte form.
type Serializer interface {
	// Encode serializes a value into bytes.
	Encode(value any) ([]byte, error)

	// Decode deserializes bytes back into a value.
	Decode(data []byte) (any, error)
}

// Compressor shrinks and expands encoded byte sequences. Implementations
// must be symmetric: Decompress(Compress(data)) == data.
type Compressor interface {
	// Compress returns a compressed copy of data.
	Compress(data []byte) ([]byte, error)

	// Decompress reverses Compress.
	Decompress(data []byte) ([]byte, error)
}
