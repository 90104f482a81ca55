package gorilla

import (
	"errors"

	"github.com/arloliu/gorilla/bitstream"
	"github.com/arloliu/gorilla/errs"
	"github.com/arloliu/gorilla/internal/pool"
)

// EncodeAll encodes a full batch of timestamps and values in one call and
// returns the closed stream's bytes. timestamps and values must be the same
// length and timestamps must be non-decreasing.
func EncodeAll(header uint64, timestamps []uint64, values []float64, opts ...EncoderOption) ([]byte, error) {
	if len(timestamps) != len(values) {
		return nil, errors.New("gorilla: timestamps and values must have equal length")
	}

	enc := NewEncoder(header, bitstream.NewWriter(), opts...)
	for i, t := range timestamps {
		if err := enc.Encode(NewDataPoint(t, values[i])); err != nil {
			return nil, err
		}
	}

	return enc.Close(), nil
}

// decodeAllScratchSize is the initial capacity requested from the slice
// pool; DecodeAll grows past it with ordinary append if the stream holds
// more points.
const decodeAllScratchSize = 128

// DecodeAll decodes every DataPoint in data into a pair of parallel,
// freshly-allocated slices owned by the caller. Scratch space is drawn from
// a shared pool and returned before DecodeAll returns.
func DecodeAll(data []byte) (timestamps []uint64, values []float64, err error) {
	dec := NewDecoder(bitstream.NewReader(data))

	tsSlice, cleanupTs := pool.GetInt64Slice(decodeAllScratchSize)
	valSlice, cleanupVal := pool.GetFloat64Slice(decodeAllScratchSize)
	defer cleanupTs()
	defer cleanupVal()

	ts := tsSlice[:0]
	vals := valSlice[:0]

	for {
		dp, err := dec.Next()
		if errors.Is(err, errs.ErrEndOfStream) {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		ts = append(ts, int64(dp.Timestamp()))
		vals = append(vals, dp.Value())
	}

	outTs := make([]uint64, len(ts))
	for i, v := range ts {
		outTs[i] = uint64(v)
	}
	outVals := make([]float64, len(vals))
	copy(outVals, vals)

	return outTs, outVals, nil
}
