package compress

import (
	"github.com/klauspost/compress/s2"

	"github.com/arloliu/gorilla/internal/options"
)

// s2Config holds the tunable knobs for an S2Compressor.
type s2Config struct {
	better bool
	best   bool
}

// S2Option configures an S2Compressor at construction time.
type S2Option = options.Option[*s2Config]

// WithS2BetterCompression trades some encode speed for a smaller footprint
// via s2.EncodeBetter. Closed Gorilla streams are bit-packed, not
// byte-aligned redundancy, so S2's snappy-compatible fast mode sometimes
// leaves ratio on the table that EncodeBetter's longer match search recovers.
func WithS2BetterCompression() S2Option {
	return options.NoError(func(c *s2Config) {
		c.better = true
	})
}

// WithS2BestCompression selects s2.EncodeBest, the slowest and most
// thorough mode. Intended for one-off archival compression, not hot paths.
func WithS2BestCompression() S2Option {
	return options.NoError(func(c *s2Config) {
		c.best = true
	})
}

type S2Compressor struct {
	better bool
	best   bool
}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor. With no options it uses
// s2.Encode's fast mode; WithS2BetterCompression and WithS2BestCompression
// select S2's slower, higher-ratio encoders.
func NewS2Compressor(opts ...S2Option) S2Compressor {
	var cfg s2Config
	_ = options.Apply(&cfg, opts...)

	return S2Compressor{better: cfg.better, best: cfg.best}
}

// Compress compresses the input data using S2 compression, at the mode
// selected when the compressor was constructed.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	switch {
	case c.best:
		return s2.EncodeBest(nil, data), nil
	case c.better:
		return s2.EncodeBetter(nil, data), nil
	default:
		return s2.Encode(nil, data), nil
	}
}

// Decompress decompresses the input data using S2 decompression. S2's wire
// format is self-describing, so decoding doesn't depend on which encode mode
// produced it.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
