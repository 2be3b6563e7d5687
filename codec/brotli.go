package codec

import (
	"bytes"
	"io"

	"github.com/andybalholm/brotli"

	"github.com/gkindel/nano-cache/errors"
)

// Brotli is a Compressor backed by github.com/andybalholm/brotli. It trades
// slower writes for better ratios than Deflate on text-heavy payloads, which
// suits caches that are read far more often than written.
type Brotli struct {
	quality int
}

// NewBrotli returns a Brotli compressor at the library's default quality.
func NewBrotli() Brotli {
	return Brotli{quality: brotli.DefaultCompression}
}

// NewBrotliQuality returns a Brotli compressor at the given quality
// (brotli.BestSpeed through brotli.BestCompression).
func NewBrotliQuality(quality int) Brotli {
	return Brotli{quality: quality}
}

// Compress encodes data as a brotli stream.
func (b Brotli) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := brotli.NewWriterLevel(&buf, b.quality)
	if _, err := w.Write(data); err != nil {
		return nil, errors.WrapInvalid(errors.ErrCompressFailed, "Brotli", "Compress", err.Error())
	}
	if err := w.Close(); err != nil {
		return nil, errors.WrapInvalid(errors.ErrCompressFailed, "Brotli", "Compress", err.Error())
	}
	return buf.Bytes(), nil
}

// Decompress decodes a brotli stream.
func (b Brotli) Decompress(data []byte) ([]byte, error) {
	r := brotli.NewReader(bytes.NewReader(data))
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapInvalid(errors.ErrDecompressFailed, "Brotli", "Decompress", err.Error())
	}
	return out, nil
}
