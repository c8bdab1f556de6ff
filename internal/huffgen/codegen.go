package huffgen

import (
	"fmt"
	"io"
)

// Generate emits a standalone Go source file defining a decode function
// with the given name, implementing root as nested if/else statements
// rather than a runtime trie walk. It mirrors the structure of
// huffman_node_write_decode / huffman_node_write_decode_handle_value in
// original_source/source/generator/generator.c: the 1-child branch is
// always written before the 0-child branch at each node.
//
// The emitted function has signature
//
//	func <funcName>(window uint32) (symbol byte, numBits uint8)
//
// matching huffcode.SymbolCoder.Decode's bit-window convention, so the
// generated file can be dropped into any package that wants a
// decision-tree decoder instead of an internal/huffgen.Node walk.
func Generate(w io.Writer, packageName, funcName string, root *Node) error {
	if _, err := fmt.Fprintf(w, "package %s\n\n", packageName); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "func %s(window uint32) (symbol byte, numBits uint8) {\n", funcName); err != nil {
		return err
	}
	if err := writeNode(w, root, 0, "\t"); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "}\n")
	return err
}

func writeNode(w io.Writer, node *Node, depth int, indent string) error {
	if node == nil {
		_, err := fmt.Fprintf(w, "%sreturn 0, 0\n", indent)
		return err
	}
	if node.Value != nil {
		_, err := fmt.Fprintf(w, "%sreturn %#02x, %d\n", indent, node.Value.Symbol, depth)
		return err
	}

	if _, err := fmt.Fprintf(w, "%sif (window>>%d)&1 != 0 {\n", indent, 31-depth); err != nil {
		return err
	}
	if err := writeNode(w, node.Children[1], depth+1, indent+"\t"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s} else {\n", indent); err != nil {
		return err
	}
	if err := writeNode(w, node.Children[0], depth+1, indent+"\t"); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s}\n", indent)
	return err
}
