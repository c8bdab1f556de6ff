package huffcode

import "github.com/mbax/huffcode/lib/bitcursor"

// Decoder turns a canonical-Huffman bit-packed stream back into bytes. It
// carries a 64-bit left-aligned bit window so it can resume mid-code
// across calls, exactly mirroring Encoder's restartability.
//
// There is no in-band end-of-string symbol: a decode run ends the moment
// the remaining bits can no longer form a complete, longer-than-what's-left
// code, which is what the encoder's trailing padding is built to trigger.
// Strict, if set, additionally verifies those trailing bits are a valid
// padding pattern (all ones) and reports ErrUnknownSymbol if not.
//
// A zero Decoder is not usable; construct one with NewDecoder.
type Decoder struct {
	Coder  SymbolCoder
	Strict bool

	working uint64 // left-aligned bit window, MSB first
	numBits uint8  // valid bits currently held in working
}

// NewDecoder returns a Decoder ready to decode a single stream using
// coder. coder is borrowed and must remain valid and unmodified for the
// Decoder's lifetime.
func NewDecoder(coder SymbolCoder) *Decoder {
	d := &Decoder{Coder: coder}
	d.Reset()
	return d
}

// Reset clears all per-stream state so the Decoder can be reused for a
// new, independent stream with the same coder and Strict setting.
func (d *Decoder) Reset() {
	d.working = 0
	d.numBits = 0
}

// Decode consumes bits from input, writing decoded bytes to output, both
// of which advance in place. Decode returns nil once input has been
// consumed down to a trailing run of bits too short (or too long-coded)
// to form another symbol — the normal end of a stream. It returns
// ErrShortBuffer if output fills up before that point; the caller should
// supply a fresh output cursor and call Decode again. In Strict mode it
// returns ErrUnknownSymbol if those trailing bits are not valid padding.
func (d *Decoder) Decode(input *bitcursor.Reader, output *bitcursor.Writer) error {
	if d.Coder == nil {
		return newError("Decode: nil SymbolCoder")
	}

	for {
		d.refill(input)

		symbol, bitsRead := d.Coder.Decode(uint32(d.working >> 32))
		if bitsRead == 0 || bitsRead > d.numBits {
			if d.Strict && d.numBits > 0 {
				mask := ^uint64(0) << (64 - d.numBits)
				if d.working&mask != mask {
					return ErrUnknownSymbol
				}
			}
			return nil
		}

		if output.Len() == 0 {
			return ErrShortBuffer
		}

		if !output.Push(symbol) {
			return ErrShortBuffer
		}
		d.working <<= bitsRead
		d.numBits -= bitsRead
	}
}

// refill tops the bit window up to at least 32 valid bits, one input byte
// at a time, stopping early if input runs out first.
func (d *Decoder) refill(input *bitcursor.Reader) {
	for d.numBits < 32 {
		b, ok := input.Next()
		if !ok {
			return
		}
		d.working |= uint64(b) << (64 - 8 - d.numBits)
		d.numBits += 8
	}
}
