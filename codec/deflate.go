package codec

import (
	"bytes"
	"compress/flate"
	"io"

	"github.com/gkindel/nano-cache/errors"
)

// Deflate is a Compressor producing raw deflate streams (no zlib or gzip
// framing), the storage format the cache has always used.
type Deflate struct {
	level int
}

// NewDeflate returns a Deflate compressor at the default compression level.
func NewDeflate() Deflate {
	return Deflate{level: flate.DefaultCompression}
}

// NewDeflateLevel returns a Deflate compressor at the given flate level.
func NewDeflateLevel(level int) Deflate {
	return Deflate{level: level}
}

// Compress deflates data.
func (d Deflate) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, d.level)
	if err != nil {
		return nil, errors.WrapInvalid(errors.ErrCompressFailed, "Deflate", "Compress", err.Error())
	}
	if _, err := w.Write(data); err != nil {
		return nil, errors.WrapInvalid(errors.ErrCompressFailed, "Deflate", "Compress", err.Error())
	}
	if err := w.Close(); err != nil {
		return nil, errors.WrapInvalid(errors.ErrCompressFailed, "Deflate", "Compress", err.Error())
	}
	return buf.Bytes(), nil
}

// Decompress inflates data.
func (d Deflate) Decompress(data []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer func() { _ = r.Close() }()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapInvalid(errors.ErrDecompressFailed, "Deflate", "Decompress", err.Error())
	}
	return out, nil
}
