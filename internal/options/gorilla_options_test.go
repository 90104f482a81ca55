// An external test package so this file can import the root gorilla package
// (which itself imports options) without creating an import cycle.
package options_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/gorilla"
	"github.com/arloliu/gorilla/bitstream"
)

// TestEncoderOption_AppliedThroughRealOptionMachinery exercises options.Apply
// via gorilla's own EncoderOption/WithValidation, not just the generic
// TestConfig fixture in options_test.go: this is the actual production
// caller of this package.
func TestEncoderOption_AppliedThroughRealOptionMachinery(t *testing.T) {
	writer := bitstream.NewWriter()
	enc := gorilla.NewEncoder(1000, writer, gorilla.WithValidation())

	// A non-decreasing-timestamp violation only becomes an error because
	// WithValidation's options.NoError closure ran and set cfg.validate.
	err := enc.Encode(gorilla.NewDataPoint(1000, 1.0))
	require.NoError(t, err)

	err = enc.Encode(gorilla.NewDataPoint(999, 2.0))
	require.Error(t, err)
}

// TestEncoderOption_DefaultLeavesValidationOff confirms that without any
// EncoderOption, options.Apply on an empty slice is a no-op and the zero
// value of EncoderConfig (validate=false) is what NewEncoder ends up with.
func TestEncoderOption_DefaultLeavesValidationOff(t *testing.T) {
	writer := bitstream.NewWriter()
	enc := gorilla.NewEncoder(1000, writer)

	require.NoError(t, enc.Encode(gorilla.NewDataPoint(1000, 1.0)))
	require.NoError(t, enc.Encode(gorilla.NewDataPoint(999, 2.0)))
}
