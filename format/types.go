// Package format holds the small wire-level enumerations shared across
// roadaux's section codecs, adapted from the teacher's format package.
package format

// CompressionType identifies the byte-level compression algorithm wrapping
// a section payload.
type CompressionType uint8

const (
	CompressionNone    CompressionType = 0x0 // CompressionNone represents no compression.
	CompressionDeflate CompressionType = 0x1 // CompressionDeflate represents Deflate compression.
	CompressionS2      CompressionType = 0x2 // CompressionS2 represents S2 compression.
	CompressionLZ4     CompressionType = 0x3 // CompressionLZ4 represents LZ4 compression.
	CompressionZstd    CompressionType = 0x4 // CompressionZstd represents Zstandard compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionDeflate:
		return "Deflate"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionZstd:
		return "Zstd"
	default:
		return "Unknown"
	}
}
