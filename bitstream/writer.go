package bitstream

import (
	"github.com/arloliu/gorilla/internal/pool"
)

// Writer accumulates bits MSB-first into a byte buffer.
//
// Bits are packed into an internal 64-bit accumulator and flushed to the
// backing byte buffer eight bits at a time, the same bit-buffer pattern used
// by the Gorilla value encoder: cheap per-bit writes with byte-aligned
// flushes instead of a bounds-checked append per bit.
//
// A Writer is single-use: once Close returns, the Writer must not be reused.
type Writer struct {
	buf *pool.ByteBuffer

	bitBuf   uint64
	bitCount int

	closed bool
}

// NewWriter creates a new Writer backed by a pooled byte buffer.
func NewWriter() *Writer {
	return &Writer{
		buf: pool.GetStreamBuffer(),
	}
}

// WriteBit appends a single bit (0 or 1) at the current cursor.
func (w *Writer) WriteBit(bit uint64) {
	if w.closed {
		panic("bitstream: write on closed Writer")
	}

	w.bitBuf = (w.bitBuf << 1) | (bit & 1)
	w.bitCount++

	if w.bitCount == 64 {
		w.flush()
	}
}

// WriteBits appends the low n bits of value, most-significant bit first.
// n must be in [1, 64].
func (w *Writer) WriteBits(value uint64, n int) {
	if w.closed {
		panic("bitstream: write on closed Writer")
	}

	if n <= 0 {
		return
	}

	if n < 64 {
		value &= (uint64(1) << n) - 1
	}

	available := 64 - w.bitCount
	if n <= available {
		w.bitBuf = (w.bitBuf << n) | value
		w.bitCount += n

		if w.bitCount == 64 {
			w.flush()
		}

		return
	}

	// Split across the accumulator boundary: fill what's left, flush, carry the rest.
	highBits := n - available
	w.bitBuf = (w.bitBuf << available) | (value >> highBits)
	w.bitCount = 64
	w.flush()

	w.bitBuf = value & ((uint64(1) << highBits) - 1)
	w.bitCount = highBits
}

// WriteByte appends 8 bits. Equivalent to WriteBits(uint64(b), 8).
func (w *Writer) WriteByte(b byte) {
	w.WriteBits(uint64(b), 8)
}

// Close flushes any pending bits, zero-padding the final byte's unused low
// bits, and returns the accumulated bytes. The Writer must not be used again.
func (w *Writer) Close() []byte {
	if w.closed {
		panic("bitstream: Close called twice")
	}

	if w.bitCount > 0 {
		// Left-align the residual bits within the final byte before flushing,
		// so padding lands in the low bits as required by the wire format.
		pad := 8 - (w.bitCount % 8)
		if pad != 8 {
			w.bitBuf <<= pad
			w.bitCount += pad
		}
		w.flush()
	}

	out := make([]byte, w.buf.Len())
	copy(out, w.buf.Bytes())

	pool.PutStreamBuffer(w.buf)
	w.buf = nil
	w.closed = true

	return out
}

// flush drains complete bytes out of the bit accumulator into the byte buffer.
func (w *Writer) flush() {
	for w.bitCount >= 8 {
		shift := w.bitCount - 8
		w.buf.AppendByte(byte(w.bitBuf >> shift))
		w.bitCount -= 8
	}

	if w.bitCount == 0 {
		w.bitBuf = 0
	} else {
		w.bitBuf &= (uint64(1) << w.bitCount) - 1
	}
}
