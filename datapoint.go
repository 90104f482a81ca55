package gorilla

import "math"

// DataPoint is an immutable (timestamp, value) pair, the unit of I/O for the
// codec. Timestamps are conventionally Unix seconds; values are IEEE-754
// binary64.
type DataPoint struct {
	t uint64
	v float64
}

// NewDataPoint constructs a DataPoint from a timestamp and a value.
func NewDataPoint(t uint64, v float64) DataPoint {
	return DataPoint{t: t, v: v}
}

// Timestamp returns the data point's timestamp.
func (d DataPoint) Timestamp() uint64 {
	return d.t
}

// Value returns the data point's value.
func (d DataPoint) Value() float64 {
	return d.v
}

// Equal reports whether d and other are bitwise equal: same timestamp and
// same value bit pattern. Unlike ==, two NaNs with identical bits compare
// equal, and +0.0 and -0.0 compare unequal.
func (d DataPoint) Equal(other DataPoint) bool {
	return d.t == other.t && math.Float64bits(d.v) == math.Float64bits(other.v)
}
