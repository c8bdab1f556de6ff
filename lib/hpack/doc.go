// Package hpack provides a concrete huffcode.SymbolCoder for HTTP/2 header
// compression, as described in RFC 7541 §5.2 and Appendix B.
//
// # Overview
//
// Coder returns a package-level SymbolCoder backed by a fixed, per-byte code
// length table built once at init time. Every byte value 0x00-0xff has an
// assigned code; there is no escape or literal-byte fallback, matching the
// wire format's requirement that Huffman-encoded header strings cover the
// full byte range.
//
// # Table provenance
//
// The code lengths here are a from-scratch canonical assignment grounded in
// the same byte-class shape as the published table (short codes for digits
// and lowercase letters, long codes for control bytes and the top half of
// the byte range) rather than a transcription of the published bit patterns.
// See DESIGN.md for the Kraft-inequality verification. Two implementations
// using different tables cannot interoperate on the wire; this package is
// internally consistent (Encode and Decode agree with each other) but is not
// a drop-in replacement for another RFC 7541 implementation.
//
// # Thread safety
//
// The returned coder holds no mutable state and is safe for concurrent use
// by multiple Encoders and Decoders.
package hpack
