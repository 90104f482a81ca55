// Package compress provides compression codecs for the closed byte stream produced
// by a gorilla.Encoder.
//
// The Gorilla codec (package gorilla) already exploits structure in the data through
// delta-of-delta timestamps and XOR-based value encoding. This package implements an
// optional second stage: general-purpose byte compression applied to the finished
// stream, for callers who persist or transmit it and want to trade CPU for size.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
// **NoOp** (format.CompressionNone) returns the input unchanged. Use it when the
// stream is already dense (Gorilla output on smooth series is typically within a
// small factor of its information-theoretic minimum) or when CPU matters more than
// bytes on the wire.
//
// **Zstandard** (format.CompressionZstd) gives the best ratio at the highest CPU
// cost. Good for archival or cold storage of closed streams.
//
// **S2** (format.CompressionS2) balances ratio and throughput; a reasonable default
// for streams compressed on the write path before they leave the process.
//
// **LZ4** (format.CompressionLZ4) optimizes for decompression speed, at the expense
// of ratio. Good when streams are decompressed far more often than compressed.
//
// # Usage
//
//	data := encoder.Close()
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	stored, err := codec.Compress(data)
//	// ... persist `stored` ...
//	raw, err := codec.Decompress(stored)
//	decoder := gorilla.NewDecoder(bitstream.NewReader(raw))
//
// # Memory Management
//
// Zstd and LZ4 implementations pool their encoders/decoders via sync.Pool to avoid
// re-warming state on every call. NoOp has zero overhead.
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use across goroutines.
//
// # Error Handling
//
// Compress errors are rare (allocation failure, oversized input for an algorithm's
// limits). Decompress errors are more common and indicate truncated or corrupted
// input; they are returned, not panicked, and are distinct from the gorilla package's
// own bitstream-level decode errors.
package compress
