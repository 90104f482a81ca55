// Package gorilla implements the streaming compression scheme described in
// "Gorilla: A Fast, Scalable, In-Memory Time Series Database" (Pelkonen et
// al., VLDB 2015): delta-of-delta timestamp encoding with variable-length
// buckets, and XOR-based float encoding with meaningful-bit-window reuse.
//
// An Encoder consumes an ordered sequence of DataPoints sharing a stream-level
// header timestamp and writes a compact bit stream to a bitstream.Writer. A
// Decoder reverses this from a bitstream.Reader, recovering the exact
// original sequence bit-for-bit.
//
//	w := bitstream.NewWriter()
//	enc := gorilla.NewEncoder(header, w)
//	for _, p := range points {
//	    if err := enc.Encode(p); err != nil {
//	        return err
//	    }
//	}
//	data := enc.Close()
//
//	dec := gorilla.NewDecoder(bitstream.NewReader(data))
//	for {
//	    p, err := dec.Next()
//	    if errors.Is(err, errs.ErrEndOfStream) {
//	        break
//	    } else if err != nil {
//	        return err
//	    }
//	    // use p
//	}
//
// Random access, appending to a closed stream, and cross-stream
// deduplication are out of scope; see the compress subpackage for optional
// post-Close byte compression and internal/hash for a stream fingerprint
// helper.
package gorilla
