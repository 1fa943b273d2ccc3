package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// DeflateCompressor wraps github.com/klauspost/compress/flate, an
// API-compatible and faster drop-in for the standard library's
// compress/flate. This is the codec the traffic-value wire format mandates
// (spec section 4.3/4.6): deflate at maximum compression, inflate recovers
// the original bytes with no framing of its own beyond deflate's.
type DeflateCompressor struct{}

var _ Codec = (*DeflateCompressor)(nil)

// NewDeflateCompressor creates a new Deflate compressor using
// flate.BestCompression.
func NewDeflateCompressor() DeflateCompressor {
	return DeflateCompressor{}
}

// Compress deflates data at maximum compression.
func (c DeflateCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("deflate: create writer: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("deflate: write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("deflate: close: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress inflates a buffer produced by Compress.
func (c DeflateCompressor) Decompress(data []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("deflate: inflate: %w", err)
	}

	return out, nil
}
