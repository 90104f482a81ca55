package gorilla

import "github.com/arloliu/gorilla/internal/hash"

// Fingerprint returns a fast, non-cryptographic hash of a closed stream's
// bytes. It is useful as a cache key or to detect a byte-identical re-encode
// without comparing whole buffers; it has no effect on encoding or decoding.
func Fingerprint(data []byte) uint64 {
	return hash.Fingerprint(data)
}
