// Package errs collects the sentinel errors returned by the gorilla codec.
package errs

import "errors"

var (
	// ErrEndOfStream is returned by Decoder.Next once the end-of-stream sentinel
	// has been recognised. It is terminal: every subsequent call returns it again.
	ErrEndOfStream = errors.New("gorilla: end of stream")

	// ErrInvalidBitStream is returned when the reader runs out of bits before a
	// complete data point could be reconstructed, i.e. the encoded stream was
	// truncated. Terminal.
	ErrInvalidBitStream = errors.New("gorilla: invalid or truncated bit stream")

	// ErrInvalidValue is reserved for bucket or control-bit combinations the
	// format does not define. The current wire format has no such combination,
	// and the Decoder never returns it.
	ErrInvalidValue = errors.New("gorilla: invalid value encoding")
)
