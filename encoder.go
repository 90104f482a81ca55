package gorilla

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/arloliu/gorilla/bitstream"
	"github.com/arloliu/gorilla/internal/options"
)

// leadingUnknown is the sentinel for "no previous XOR window yet", matching
// the paper's convention of treating the window as absent before the second
// point is encoded.
const leadingUnknown = 0xFF

// Encoder is a stateful, single-use machine that turns an ordered sequence of
// DataPoints into a Gorilla-compressed bit stream.
//
// Encoder is not safe for concurrent use. Timestamps passed to Encode must be
// non-decreasing; the first timestamp must be within 2^14 of header.
type Encoder struct {
	header    uint64
	tPrev     uint64
	deltaPrev uint64
	vPrevBits uint64

	leadingPrev  uint8
	trailingPrev uint8

	first  bool
	closed bool

	cfg    EncoderConfig
	writer *bitstream.Writer
}

// NewEncoder creates an Encoder that writes to writer, using header as the
// stream's start timestamp. Nothing is written until the first Encode call.
func NewEncoder(header uint64, writer *bitstream.Writer, opts ...EncoderOption) *Encoder {
	e := &Encoder{
		header: header,
		first:  true,
		writer: writer,
	}

	_ = options.Apply(&e.cfg, opts...)

	return e
}

// Encode appends one DataPoint to the stream.
//
// The first call writes the 14-bit initial delta and the raw first value;
// subsequent calls write a delta-of-delta bucket and an XOR-compressed value.
// If the Encoder was built with WithValidation, a non-decreasing timestamp
// and an in-range first delta are enforced; violations are returned as an
// error instead of silently wrapping.
func (e *Encoder) Encode(dp DataPoint) error {
	if e.closed {
		panic("gorilla: Encode called on closed Encoder")
	}

	vBits := math.Float64bits(dp.Value())

	if e.first {
		return e.writeFirst(dp.Timestamp(), vBits)
	}

	if e.cfg.validate && dp.Timestamp() < e.tPrev {
		return fmt.Errorf("gorilla: non-decreasing timestamp required, got %d after %d", dp.Timestamp(), e.tPrev)
	}

	e.writeTimestamp(dp.Timestamp())
	e.writeValue(vBits)

	return nil
}

func (e *Encoder) writeFirst(t uint64, vBits uint64) error {
	delta := t - e.header
	if e.cfg.validate && delta >= (1<<14) {
		return fmt.Errorf("gorilla: first delta %d does not fit in 14 bits", delta)
	}

	e.writer.WriteBits(e.header, 64)
	e.writer.WriteBits(delta, 14)
	e.writer.WriteBits(vBits, 64)

	e.tPrev = t
	e.deltaPrev = delta
	e.vPrevBits = vBits
	e.leadingPrev = leadingUnknown
	e.first = false

	return nil
}

// writeTimestamp encodes the delta-of-delta for t using the variable-length
// bucket table, always choosing the narrowest bucket that fits.
func (e *Encoder) writeTimestamp(t uint64) {
	delta := t - e.tPrev
	dod := int64(delta) - int64(e.deltaPrev)

	switch {
	case dod == 0:
		e.writer.WriteBit(0)
	case dod >= -63 && dod <= 64:
		e.writer.WriteBits(0b10, 2)
		e.writer.WriteBits(uint64(dod), 7)
	case dod >= -255 && dod <= 256:
		e.writer.WriteBits(0b110, 3)
		e.writer.WriteBits(uint64(dod), 9)
	case dod >= -2047 && dod <= 2048:
		e.writer.WriteBits(0b1110, 4)
		e.writer.WriteBits(uint64(dod), 12)
	default:
		e.writer.WriteBits(0b1111, 4)
		e.writer.WriteBits(uint64(dod), 32)
	}

	e.tPrev = t
	e.deltaPrev = delta
}

// writeValue encodes vBits against the previous value using XOR and the
// leading/trailing-zero meaningful-window reuse optimization.
func (e *Encoder) writeValue(vBits uint64) {
	xor := vBits ^ e.vPrevBits
	e.vPrevBits = vBits

	if xor == 0 {
		e.writer.WriteBit(0)
		return
	}

	e.writer.WriteBit(1)

	leading := bits.LeadingZeros64(xor)
	if leading > 31 {
		leading = 31
	}
	trailing := bits.TrailingZeros64(xor)

	if e.leadingPrev != leadingUnknown && leading >= int(e.leadingPrev) && trailing >= int(e.trailingPrev) {
		blockSize := 64 - int(e.leadingPrev) - int(e.trailingPrev)
		e.writer.WriteBit(0)
		e.writer.WriteBits(xor>>e.trailingPrev, blockSize)

		return
	}

	significant := 64 - leading - trailing
	e.writer.WriteBit(1)
	e.writer.WriteBits(uint64(leading), 5)
	e.writer.WriteBits(uint64(significant-1), 6)
	e.writer.WriteBits(xor>>trailing, significant)

	e.leadingPrev = uint8(leading)
	e.trailingPrev = uint8(trailing)
}

// endOfStreamDod is the delta-of-delta payload written by Close to mark the
// end of the stream: the widest bucket's all-ones pattern, which the
// "always emit the narrowest bucket" invariant guarantees a real point never
// produces.
const endOfStreamDod = 0xFFFFFFFF

// Close writes the end-of-stream sentinel, flushes the writer, and returns
// the accumulated bytes. The Encoder must not be used again afterward.
//
// Close on an Encoder that never received a point returns an empty slice: the
// sentinel is only meaningful relative to a header that was never written, so
// there is nothing to terminate. A Decoder reading that slice fails on its
// first read with errs.ErrInvalidBitStream rather than reporting a point
// count of zero, since an empty stream and a truncated one look identical.
func (e *Encoder) Close() []byte {
	if e.closed {
		panic("gorilla: Close called twice")
	}

	e.closed = true

	if e.first {
		return e.writer.Close()
	}

	e.writer.WriteBits(0b1111, 4)
	e.writer.WriteBits(endOfStreamDod, 32)

	return e.writer.Close()
}
