//go:build nobuild

package compress

import (
	"github.com/valyala/gozstd"
)

// Compress compresses the input data using Zstandard compression. c.level
// of zero falls back to gozstd's own default (level 3).
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	level := c.level
	if level == 0 {
		level = 3
	}

	return gozstd.CompressLevel(nil, data, level), nil
}

func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
