package huffcode

// Code is a single prefix-free bit pattern: the low NumBits bits of
// Pattern, read MSB-first, form the code on the wire. NumBits must be in
// [1, 30]; a SymbolCoder that returns a wider code is a programming error,
// not a runtime one, and Encoder/Decoder do not guard against it.
type Code struct {
	Pattern uint32
	NumBits uint8
}

// SymbolCoder maps bytes to prefix-free bit patterns and back. A coder is
// immutable once built and may be shared by any number of Encoder/Decoder
// instances across goroutines, per the concurrency model: a single
// instance is not safe for concurrent use, but distinct instances reading
// the same coder are.
type SymbolCoder interface {
	// Encode returns the Code for symbol. It never fails: every byte value
	// has an assigned code in a complete 256-symbol coder.
	Encode(symbol byte) Code

	// Decode inspects the top bits of window (left-aligned, MSB first) and
	// reports the matching symbol and how many bits its code consumed.
	// A numBits of 0 means no code in the table is a prefix of window;
	// callers treat that as either exhausted input or padding, never as an
	// error by itself.
	Decode(window uint32) (symbol byte, numBits uint8)
}
