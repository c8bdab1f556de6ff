package huffcode

import (
	"github.com/mbax/huffcode/lib/bitbuffer"
	"github.com/mbax/huffcode/lib/bitcursor"
)

// EncodeBytes Huffman-encodes data against coder in a single call,
// returning a freshly allocated, EOS-padded wire buffer. Unlike Encoder,
// callers don't pre-size an output buffer or handle ErrShortBuffer: it is
// built on bitbuffer.Codec's growable bit writer, which reallocates as
// needed (see bitbuffer's package doc).
//
// Padding mirrors Encoder's default: the final partial byte's unused bits
// are set to 1, not left as bitbuffer's default zero fill.
func EncodeBytes(coder SymbolCoder, data []byte) []byte {
	w := bitbuffer.CreateWriter()
	for _, b := range data {
		code := coder.Encode(b)
		w.Write(code.NumBits, uint64(code.Pattern))
	}
	if rem := w.NumWritten() % 8; rem != 0 {
		padBits := uint8(8 - rem)
		w.Write(padBits, (uint64(1)<<padBits)-1)
	}
	return w.Bytes()
}

// DecodeBytes Huffman-decodes wire against coder in a single call,
// growing its output as needed. strict, if true, matches Decoder.Strict:
// trailing bits that aren't a valid all-ones pad are reported as
// ErrUnknownSymbol.
//
// bitbuffer has no read side (it was trimmed down to the write path
// EncodeBytes needs): a bit reader here would need a peek-without-consuming
// primitive, since SymbolCoder.Decode must look ahead up to 32 bits before
// knowing how many it actually consumed. Decoder already solves exactly
// that with its own refill buffer, so DecodeBytes drives one instead of
// building a second bit reader to duplicate the logic.
func DecodeBytes(coder SymbolCoder, wire []byte, strict bool) ([]byte, error) {
	dec := NewDecoder(coder)
	dec.Strict = strict
	in := bitcursor.NewReader(wire)
	var out []byte
	buf := make([]byte, 64)
	for {
		w := bitcursor.NewWriter(buf)
		err := dec.Decode(in, w)
		out = append(out, buf[:len(buf)-w.Len()]...)
		if err == nil {
			return out, nil
		}
		if err != ErrShortBuffer {
			return nil, err
		}
	}
}
