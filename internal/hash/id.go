// Package hash provides a fast, non-cryptographic fingerprint for closed
// Gorilla byte streams, useful for cache keys and detecting byte-identical
// re-encodes without comparing whole buffers.
package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 of the given byte slice.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}
