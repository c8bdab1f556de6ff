// Package huffcode implements a restartable, streaming canonical-Huffman
// codec for HPACK-style header compression (HTTP/2, RFC 7541 §5.2).
//
// # Overview
//
// An Encoder and a Decoder each hold a small amount of carry-over state
// (a partial output byte, or a left-aligned bit window) so a call can
// suspend cleanly when its output buffer runs out and resume on the next
// call as if it had never stopped. Both are driven by a SymbolCoder, an
// external collaborator that maps bytes to prefix-free bit patterns and
// back; this package never hardcodes a particular code table. lib/hpack
// supplies a concrete HPACK-shaped static table.
//
// # Key Features
//
//   - Bit-exact MSB-first packing, matching HPACK's wire format.
//   - No in-band end-of-string symbol: a decode run ends when the
//     remaining bits can no longer match any code, which is exactly what
//     padding with a high-bit-heavy pattern (§6.1's eos_padding, default
//     0xFF) guarantees at the true end of a stream.
//   - A single instance is not safe for concurrent use, but distinct
//     instances sharing the same immutable SymbolCoder may run on separate
//     goroutines freely; see EncodeAll/DecodeAll in batch.go.
//
// # Dependencies
//
// Precondition errors are wrapped with github.com/pkg/errors; in-band
// outcomes (ShortBuffer) are plain sentinel errors checked with errors.Is.
//
// # Thread Safety
//
// Encoder and Decoder are not safe for concurrent use by multiple
// goroutines. A SymbolCoder is expected to be immutable and may be shared
// freely across instances.
package huffcode
