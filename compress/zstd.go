package compress

import "github.com/arloliu/gorilla/internal/options"

// zstdConfig holds the tunable knobs for a ZstdCompressor.
type zstdConfig struct {
	// level is a zstd compression level in the 1-22 range used by the
	// reference zstd implementation. Zero means "use the package's pooled,
	// warmed-up SpeedDefault encoder" instead of allocating a one-off encoder
	// at a specific level.
	level int
}

// ZstdOption configures a ZstdCompressor at construction time.
type ZstdOption = options.Option[*zstdConfig]

// WithZstdLevel selects a zstd compression level other than the pooled
// default. Closed Gorilla streams are already low-entropy after
// delta-of-delta and XOR encoding, so the default level is usually the right
// tradeoff; WithZstdLevel exists for callers archiving cold, rarely-read
// streams who want to trade encode time for a smaller footprint.
func WithZstdLevel(level int) ZstdOption {
	return options.NoError(func(c *zstdConfig) {
		c.level = level
	})
}

// ZstdCompressor provides Zstandard compression for closed Gorilla byte streams.
//
// This compressor favors ratio over speed, making it suited for:
//   - Cold storage and archival of encoded streams
//   - Long-term retention of historical series
//   - Network transmission where bandwidth is limited
//   - Scenarios where decompression happens infrequently
type ZstdCompressor struct {
	level int
}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor. With no options it reuses
// a pooled, warmed-up encoder at the package's default speed; WithZstdLevel
// opts out of the pool for a one-off encoder at the requested level.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor(opts ...ZstdOption) ZstdCompressor {
	var cfg zstdConfig
	_ = options.Apply(&cfg, opts...)

	return ZstdCompressor{level: cfg.level}
}
