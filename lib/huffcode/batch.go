package huffcode

import (
	"golang.org/x/sync/errgroup"

	"github.com/mbax/huffcode/lib/bitcursor"
)

// EncodeAll runs one independent Encoder per (input, output) pair
// concurrently, one goroutine each, sharing coder across all of them.
// It exercises the codec's concurrency model directly: a single Encoder
// is never shared, but distinct instances over the same immutable coder
// may run in parallel freely. Each output slice must already be sized to
// hold its stream's encoded form in full; EncodeAll does not retry on
// ErrShortBuffer.
func EncodeAll(coder SymbolCoder, inputs [][]byte, outputs [][]byte) error {
	if len(inputs) != len(outputs) {
		return newError("EncodeAll: %d inputs but %d outputs", len(inputs), len(outputs))
	}
	var g errgroup.Group
	for i := range inputs {
		i := i
		g.Go(func() error {
			enc := NewEncoder(coder)
			in := bitcursor.NewReader(inputs[i])
			out := bitcursor.NewWriter(outputs[i])
			return enc.Encode(in, out)
		})
	}
	return g.Wait()
}

// DecodeAll is EncodeAll's counterpart: one independent Decoder per
// (input, output) pair, run concurrently.
func DecodeAll(coder SymbolCoder, inputs [][]byte, outputs [][]byte) error {
	if len(inputs) != len(outputs) {
		return newError("DecodeAll: %d inputs but %d outputs", len(inputs), len(outputs))
	}
	var g errgroup.Group
	for i := range inputs {
		i := i
		g.Go(func() error {
			dec := NewDecoder(coder)
			in := bitcursor.NewReader(inputs[i])
			out := bitcursor.NewWriter(outputs[i])
			return dec.Decode(in, out)
		})
	}
	return g.Wait()
}
