package bitstream

import (
	"encoding/binary"

	"github.com/arloliu/gorilla/errs"
)

// Reader consumes bits MSB-first from an immutable byte slice.
//
// It mirrors Writer's accumulator design: up to 8 bytes are pulled into a
// 64-bit buffer at a time and bits are peeled off the top, instead of
// re-indexing into the source slice on every call.
type Reader struct {
	data    []byte
	bytePos int

	bitBuf   uint64
	bitCount int
}

// NewReader creates a new Reader over data. data is not copied or modified.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// ReadBit consumes a single bit, MSB-first.
func (r *Reader) ReadBit() (uint64, error) {
	if r.bitCount == 0 && !r.fill() {
		return 0, errs.ErrEndOfStream
	}

	bit := r.bitBuf >> 63
	r.bitBuf <<= 1
	r.bitCount--

	return bit, nil
}

// ReadBits consumes n bits, most-significant first, right-aligned into the
// result. n must be in [1, 64].
func (r *Reader) ReadBits(n int) (uint64, error) {
	if n <= 0 {
		return 0, nil
	}

	if n <= r.bitCount {
		shift := 64 - n
		result := r.bitBuf >> shift
		r.bitBuf <<= n
		r.bitCount -= n

		return result, nil
	}

	var result uint64
	remaining := n
	for remaining > 0 {
		if r.bitCount == 0 && !r.fill() {
			return 0, errs.ErrEndOfStream
		}

		take := remaining
		if take > r.bitCount {
			take = r.bitCount
		}

		shift := 64 - take
		chunk := r.bitBuf >> shift
		result = (result << take) | chunk

		r.bitBuf <<= take
		r.bitCount -= take
		remaining -= take
	}

	return result, nil
}

// ReadByte consumes 8 bits. Equivalent to ReadBits(8).
func (r *Reader) ReadByte() (byte, error) {
	v, err := r.ReadBits(8)
	return byte(v), err
}

// PeekBits returns the next n bits without consuming them. n must be in [1, 64].
func (r *Reader) PeekBits(n int) (uint64, error) {
	saved := *r

	v, err := r.ReadBits(n)
	*r = saved

	return v, err
}

// fill refills the bit accumulator from the underlying byte slice, reading up
// to 8 bytes. Returns false once the slice is exhausted.
func (r *Reader) fill() bool {
	if r.bytePos >= len(r.data) {
		return false
	}

	available := len(r.data) - r.bytePos
	n := 8
	if n > available {
		n = available
	}

	if n == 8 {
		r.bitBuf = binary.BigEndian.Uint64(r.data[r.bytePos : r.bytePos+8])
		r.bytePos += 8
		r.bitCount = 64

		return true
	}

	var buf uint64
	for i := 0; i < n; i++ {
		buf = (buf << 8) | uint64(r.data[r.bytePos])
		r.bytePos++
	}
	buf <<= uint(8 * (8 - n))

	r.bitBuf = buf
	r.bitCount = n * 8

	return true
}
