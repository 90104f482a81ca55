package gorilla

import (
	"math"

	"github.com/arloliu/gorilla/bitstream"
	"github.com/arloliu/gorilla/errs"
)

// Decoder is a stateful machine that reverses Encoder's output one DataPoint
// at a time.
//
// Decoder is not safe for concurrent use. Once Next returns a terminal
// result (errs.ErrEndOfStream or an error), every subsequent call returns the
// same terminal result.
type Decoder struct {
	header    uint64
	tPrev     uint64
	deltaPrev uint64
	vPrevBits uint64

	leadingPrev  uint8
	trailingPrev uint8

	first bool
	done  bool
	err   error

	reader *bitstream.Reader
}

// NewDecoder creates a Decoder reading from reader. Nothing is consumed until
// the first Next call.
func NewDecoder(reader *bitstream.Reader) *Decoder {
	return &Decoder{
		reader: reader,
		first:  true,
	}
}

// Next returns the next DataPoint, or a terminal error: errs.ErrEndOfStream
// once the sentinel is recognised, or errs.ErrInvalidBitStream if the stream
// runs out of bits before a complete point could be reconstructed.
func (d *Decoder) Next() (DataPoint, error) {
	if d.done {
		return DataPoint{}, d.err
	}

	if d.first {
		return d.readFirst()
	}

	return d.readNext()
}

func (d *Decoder) readFirst() (DataPoint, error) {
	header, err := d.reader.ReadBits(64)
	if err != nil {
		return d.fail(errs.ErrInvalidBitStream)
	}

	delta, err := d.reader.ReadBits(14)
	if err != nil {
		return d.fail(errs.ErrInvalidBitStream)
	}

	vBits, err := d.reader.ReadBits(64)
	if err != nil {
		return d.fail(errs.ErrInvalidBitStream)
	}

	d.header = header
	t := header + delta

	d.tPrev = t
	d.deltaPrev = delta
	d.vPrevBits = vBits
	d.leadingPrev = leadingUnknown
	d.first = false

	return DataPoint{t: t, v: math.Float64frombits(vBits)}, nil
}

func (d *Decoder) readNext() (DataPoint, error) {
	dod, atEnd, err := d.readDod()
	if err != nil {
		return d.fail(errs.ErrInvalidBitStream)
	}
	if atEnd {
		return d.fail(errs.ErrEndOfStream)
	}

	delta := uint64(int64(d.deltaPrev) + dod)
	t := d.tPrev + delta
	d.tPrev = t
	d.deltaPrev = delta

	vBits, err := d.readValue()
	if err != nil {
		return d.fail(errs.ErrInvalidBitStream)
	}

	return DataPoint{t: t, v: math.Float64frombits(vBits)}, nil
}

// readDod decodes the delta-of-delta bucket, or recognises the end-of-stream
// sentinel and reports atEnd.
func (d *Decoder) readDod() (dod int64, atEnd bool, err error) {
	prefixLen := 0
	for prefixLen < 4 {
		bit, err := d.reader.ReadBit()
		if err != nil {
			return 0, false, err
		}
		if bit == 0 {
			break
		}
		prefixLen++
	}

	bucketBits := [...]int{0, 7, 9, 12}
	switch prefixLen {
	case 0:
		return 0, false, nil
	case 1, 2, 3:
		payload, err := d.reader.ReadBits(bucketBits[prefixLen])
		if err != nil {
			return 0, false, err
		}

		return decodeDod(payload, bucketBits[prefixLen]), false, nil
	default: // 4: either the widest bucket or the end-of-stream sentinel
		payload, err := d.reader.ReadBits(32)
		if err != nil {
			return 0, false, err
		}
		if payload == endOfStreamDod {
			return 0, true, nil
		}

		return decodeDod(payload, 32), false, nil
	}
}

// decodeDod interprets the low n bits of payload per the bucket table's
// asymmetric range: a dod of exactly +2^(n-1) (e.g. +64 in the 7-bit bucket)
// shares its bit pattern with -2^(n-1) under plain two's complement, so the
// encoder's range check excludes -2^(n-1) from that bucket and this decode
// only ever resolves the shared pattern to its positive value. Every other
// payload decodes as ordinary two's-complement.
func decodeDod(payload uint64, n int) int64 {
	half := int64(1) << (n - 1)
	v := int64(payload)
	if v > half {
		return v - (int64(1) << n)
	}

	return v
}

func (d *Decoder) readValue() (uint64, error) {
	control, err := d.reader.ReadBit()
	if err != nil {
		return 0, err
	}

	if control == 0 {
		return d.vPrevBits, nil
	}

	windowBit, err := d.reader.ReadBit()
	if err != nil {
		return 0, err
	}

	var leading, trailing, significant int
	if windowBit == 0 {
		leading = int(d.leadingPrev)
		trailing = int(d.trailingPrev)
		significant = 64 - leading - trailing
	} else {
		leadingBits, err := d.reader.ReadBits(5)
		if err != nil {
			return 0, err
		}
		significantBits, err := d.reader.ReadBits(6)
		if err != nil {
			return 0, err
		}

		leading = int(leadingBits)
		significant = int(significantBits) + 1
		trailing = 64 - leading - significant

		d.leadingPrev = uint8(leading)
		d.trailingPrev = uint8(trailing)
	}

	payload, err := d.reader.ReadBits(significant)
	if err != nil {
		return 0, err
	}

	vBits := (payload << trailing) ^ d.vPrevBits
	d.vPrevBits = vBits

	return vBits, nil
}

func (d *Decoder) fail(err error) (DataPoint, error) {
	d.done = true
	d.err = err

	return DataPoint{}, err
}
