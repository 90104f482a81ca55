// Package format defines small shared value types used at the boundary between
// the gorilla codec and its optional collaborators (currently: compress).
package format

// CompressionType identifies a general-purpose byte compression algorithm applied
// to an already-closed Gorilla stream. It has no bearing on the codec itself, which
// always uses delta-of-delta timestamps and XOR-encoded values.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
