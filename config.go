package gorilla

import "github.com/arloliu/gorilla/internal/options"

// EncoderConfig holds the optional, validated behavior of an Encoder.
//
// The zero value matches the Gorilla paper's reference behavior: no
// precondition checking, callers are trusted to supply monotonically
// non-decreasing timestamps.
type EncoderConfig struct {
	validate bool
}

// EncoderOption configures an Encoder at construction time.
type EncoderOption = options.Option[*EncoderConfig]

// WithValidation enables precondition checking on every Encode call: the
// first delta must fit 14 bits and timestamps must be non-decreasing.
// Violations are reported as errors instead of silently wrapping.
func WithValidation() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.validate = true
	})
}
