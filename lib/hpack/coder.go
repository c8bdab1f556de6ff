package hpack

import (
	pkgerrors "github.com/pkg/errors"

	"github.com/mbax/huffcode/internal/huffgen"
	"github.com/mbax/huffcode/lib/huffcode"
)

// staticCoder implements huffcode.SymbolCoder against the package-level
// codes table, decoding via a trie rather than a generated decision tree
// (see DESIGN.md for why).
type staticCoder struct {
	trie *huffgen.Node
}

var coder = buildCoder()

// Coder returns the package's static HPACK-shaped SymbolCoder. The
// returned value holds no mutable state and is shared by every caller;
// it is not a fresh instance per call.
func Coder() huffcode.SymbolCoder {
	return coder
}

func buildCoder() *staticCoder {
	points := make([]huffgen.CodePoint, 0, 256)
	for symbol := 0; symbol < 256; symbol++ {
		c := codes[symbol]
		points = append(points, huffgen.CodePoint{
			Symbol:  byte(symbol),
			Pattern: c.Pattern,
			NumBits: c.NumBits,
		})
	}
	trie, err := huffgen.BuildTrie(points)
	if err != nil {
		panic(pkgerrors.Wrap(err, "hpack: building static decode trie"))
	}
	return &staticCoder{trie: trie}
}

// Encode looks up symbol's canonical code directly in the table.
func (c *staticCoder) Encode(symbol byte) huffcode.Code {
	return codes[symbol]
}

// Decode walks the static trie against window's leading bits.
func (c *staticCoder) Decode(window uint32) (symbol byte, numBits uint8) {
	return c.trie.Decode(window)
}
