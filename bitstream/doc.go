// Package bitstream provides an MSB-first bit-granularity Writer and Reader
// over an in-memory byte buffer.
//
// Higher layers see the stream as a sequence of bits with no concept of byte
// boundaries; Writer and Reader handle the packing and the byte-aligned fast
// paths internally. Reader operations fail with errs.ErrEndOfStream once
// fewer bits remain than requested.
package bitstream
