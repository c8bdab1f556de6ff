package huffcode

import "github.com/mbax/huffcode/lib/bitcursor"

// DefaultEOSPadding is the byte whose high bits fill the final partial
// output byte of a stream. HPACK mandates an all-ones padding value; a
// caller that needs a different terminator (for testing short/odd-bit
// codes, say) may set Encoder.EOSPadding directly.
var DefaultEOSPadding byte = 0xFF

// Encoder turns a byte stream into its canonical-Huffman bit-packed form.
// It is restartable: Encode may return ErrShortBuffer when output runs
// out mid-code, and the next call with a fresh output buffer resumes
// exactly where the previous one stopped, with no bits lost or repeated.
//
// A zero Encoder is not usable; construct one with NewEncoder.
type Encoder struct {
	Coder      SymbolCoder
	EOSPadding byte

	working byte // byte under assembly, MSB-first
	bitPos  uint8 // free bits remaining in working, 8 when empty

	flushPending bool // working holds a complete byte not yet pushed

	pendingPattern uint32 // leftover code bits from a short-buffer split
	pendingBits    uint8
	pendingValid   bool

	finalPadded bool // true once EOS padding has been folded into working
	done        bool // true once the final byte has been flushed

	processed uint64
	written   uint64
}

// NewEncoder returns an Encoder ready to encode a single stream using
// coder. coder is borrowed and must remain valid and unmodified for the
// Encoder's lifetime.
func NewEncoder(coder SymbolCoder) *Encoder {
	e := &Encoder{Coder: coder}
	e.Reset()
	return e
}

// Reset clears all per-stream state so the Encoder can be reused for a
// new, independent stream with the same coder.
func (e *Encoder) Reset() {
	e.working = 0
	e.bitPos = 8
	e.flushPending = false
	e.pendingPattern = 0
	e.pendingBits = 0
	e.pendingValid = false
	e.finalPadded = false
	e.done = false
	e.processed = 0
	e.written = 0
	if e.EOSPadding == 0 {
		e.EOSPadding = DefaultEOSPadding
	}
}

// Processed returns the number of input bytes consumed so far across all
// calls to Encode on this Encoder.
func (e *Encoder) Processed() uint64 { return e.processed }

// Written returns the number of output bytes produced so far across all
// calls to Encode on this Encoder.
func (e *Encoder) Written() uint64 { return e.written }

// Encode consumes bytes from input, writing their Huffman codes to
// output, both of which advance in place as bytes are processed. Encode
// returns nil once input is fully drained and the final padded byte has
// been flushed to output. It returns ErrShortBuffer if output fills up
// first; the caller should supply a fresh or enlarged output cursor and
// call Encode again, leaving input exactly where it is.
func (e *Encoder) Encode(input *bitcursor.Reader, output *bitcursor.Writer) error {
	if e.Coder == nil {
		return newError("Encode: nil SymbolCoder")
	}
	if e.done {
		return nil
	}

	if e.flushPending {
		if !output.Push(e.working) {
			return ErrShortBuffer
		}
		e.written++
		e.working = 0
		e.bitPos = 8
		e.flushPending = false
	}

	if e.pendingValid {
		if !e.writeBits(output, e.pendingPattern, e.pendingBits) {
			return ErrShortBuffer
		}
		e.pendingValid = false
	}

	for {
		symbol, ok := input.Peek()
		if !ok {
			break
		}
		code := e.Coder.Encode(symbol)
		wrote := e.writeBits(output, code.Pattern, code.NumBits)
		// The symbol's whole code is captured in working/pending the
		// instant writeBits returns, whether or not output had room for
		// all of it, so advance past it now regardless of wrote: leaving
		// it under the cursor would re-Peek and re-encode it next call,
		// on top of the residual bits writeBits already stashed.
		input.Advance(1)
		e.processed++
		if !wrote {
			Trace("short-buffer", "Encoder.Encode", "mid-code")
			return ErrShortBuffer
		}
	}

	if !e.finalPadded {
		if e.bitPos < 8 {
			e.working |= e.EOSPadding >> (8 - e.bitPos)
		}
		e.finalPadded = true
	}
	if e.bitPos < 8 {
		if !output.Push(e.working) {
			e.flushPending = true
			return ErrShortBuffer
		}
		e.written++
		e.working = 0
		e.bitPos = 8
	}
	e.done = true
	return nil
}

// writeBits packs the low numBits of pattern, MSB first, into the
// accumulator and flushes full bytes to output. It returns false if
// output fills before every bit is written: e.flushPending marks the
// stalled byte for retry, and any bits of pattern not yet merged into
// working are saved in e.pendingPattern/e.pendingBits for the next call.
func (e *Encoder) writeBits(output *bitcursor.Writer, pattern uint32, numBits uint8) bool {
	bitsToWrite := numBits
	for bitsToWrite > 0 {
		bitsForCurrent := bitsToWrite
		if e.bitPos < bitsForCurrent {
			bitsForCurrent = e.bitPos
		}
		bitsToCut := 32 - bitsToWrite
		contribution := (pattern << bitsToCut) >> (32 - e.bitPos)
		e.working |= byte(contribution)
		e.bitPos -= bitsForCurrent
		bitsToWrite -= bitsForCurrent
		if e.bitPos == 0 {
			if !output.Push(e.working) {
				e.flushPending = true
				e.pendingPattern = pattern
				e.pendingBits = bitsToWrite
				e.pendingValid = bitsToWrite > 0
				return false
			}
			e.written++
			e.working = 0
			e.bitPos = 8
		}
	}
	return true
}
