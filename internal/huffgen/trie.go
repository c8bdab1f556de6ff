// Package huffgen builds a binary decision trie from a table of
// (symbol, pattern, bit width) code points and can emit it either as a
// runtime-walkable Node tree or as generated Go source implementing the
// same decisions as nested if/else statements.
//
// Ported structurally from the trie-population loop in
// original_source/source/generator/generator.c, which builds the same
// shape of tree to emit the static decoder found in
// aws-c-compression's huffman_static_decode.c.
package huffgen

import "fmt"

// CodePoint is one entry of a code table: byte value symbol encodes to the
// low NumBits bits of Pattern, read MSB-first.
type CodePoint struct {
	Symbol  byte
	Pattern uint32
	NumBits uint8
}

// Node is one branch point of the decision trie. A leaf (Value != nil)
// never has children: BuildTrie rejects any code that is a strict prefix
// of another code in the table, in either insertion order.
type Node struct {
	Value    *CodePoint
	Children [2]*Node
}

// BuildTrie inserts every point into a fresh trie rooted at the returned
// Node. It returns an error if two points collide: either identical
// patterns of the same width, or one pattern that is a bitwise prefix of
// another, either of which would make decoding ambiguous.
func BuildTrie(points []CodePoint) (*Node, error) {
	root := &Node{}
	for _, p := range points {
		if p.NumBits == 0 || p.NumBits > 32 {
			return nil, fmt.Errorf("huffgen: symbol %#x has invalid width %d", p.Symbol, p.NumBits)
		}
		node := root
		for i := int(p.NumBits) - 1; i >= 0; i-- {
			if node.Value != nil {
				return nil, fmt.Errorf("huffgen: an earlier, shorter code is a prefix of symbol %#x's code", p.Symbol)
			}
			bit := (p.Pattern >> uint(i)) & 1
			child := node.Children[bit]
			if child == nil {
				child = &Node{}
				node.Children[bit] = child
			}
			node = child
		}
		if node.Value != nil || node.Children[0] != nil || node.Children[1] != nil {
			return nil, fmt.Errorf("huffgen: symbol %#x collides with an existing code", p.Symbol)
		}
		cp := p
		node.Value = &cp
	}
	return root, nil
}

// Decode walks the trie against window, the next 32 bits of input left
// aligned in a uint32 (the same convention huffcode.SymbolCoder.Decode
// uses). It returns the matched symbol and its code width, or (0, 0) if no
// path in the trie matches -- either window's leading bits are padding, or
// they don't form a valid code at all.
func (root *Node) Decode(window uint32) (symbol byte, numBits uint8) {
	node := root
	for i := uint8(0); i < 32; i++ {
		if node.Value != nil {
			return node.Value.Symbol, i
		}
		bit := (window >> 31) & 1
		next := node.Children[bit]
		if next == nil {
			return 0, 0
		}
		node = next
		window <<= 1
	}
	if node.Value != nil {
		return node.Value.Symbol, 32
	}
	return 0, 0
}
