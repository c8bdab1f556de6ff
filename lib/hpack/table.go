package hpack

import "github.com/mbax/huffcode/lib/huffcode"

// codeLengths holds the bit width of each byte value's canonical code,
// assigned by class rather than transcribed from a published table (see
// doc.go).
//
// buildLengths is called as codeLengths's initializer (not from an init
// func) so Go's package-level variable dependency analysis -- rather than
// file-presentation order -- guarantees codes below sees a fully populated
// table before it runs.
var codeLengths = buildLengths()

// codes holds each byte value's canonical (pattern, length) pair, derived
// from codeLengths.
var codes = buildPatterns(codeLengths)

// buildLengths assigns a bit width to every byte value by class. The six
// length classes used here (6, 8, 10, 13, 20, 30 bits) were chosen so the
// Kraft sum stays safely under 1 -- see DESIGN.md for the arithmetic --
// while still following the published table's shape: common printable
// bytes get the shortest codes, control bytes and the high half of the
// byte range get the longest, and the single length-30 symbol lands on the
// format's maximum code width.
func buildLengths() [256]uint8 {
	var lengths [256]uint8
	setRange(&lengths, 0x30, 0x39, 6) // digits
	setRange(&lengths, 0x61, 0x7a, 6) // lowercase letters

	setRange(&lengths, 0x20, 0x2f, 8)
	setRange(&lengths, 0x3a, 0x40, 8)
	for _, b := range []byte{0x5b, 0x5d, 0x5f, 0x60, 0x7b, 0x7d, 0x7e} {
		lengths[b] = 8
	}

	setRange(&lengths, 0x41, 0x5a, 10) // uppercase letters

	setRange(&lengths, 0x00, 0x1a, 13)
	for _, b := range []byte{0x5c, 0x5e, 0x7c} {
		lengths[b] = 13
	}

	setRange(&lengths, 0x1b, 0x1f, 20)
	setRange(&lengths, 0x80, 0xff, 20)

	lengths[0x7f] = 30 // DEL: sole occupant of the maximum-width class
	return lengths
}

func setRange(lengths *[256]uint8, lo, hi byte, length uint8) {
	for b := int(lo); b <= int(hi); b++ {
		lengths[b] = length
	}
}

// buildPatterns performs the canonical Huffman code assignment described
// in RFC 1951 §3.2.2: symbols are ordered first by code length and then by
// symbol value, and consecutive codes of the same length are consecutive
// integers, with one left shift applied when the length increases. This is
// the same algorithm as generateCanonicalCodes in the kanzi-go reference
// (see DESIGN.md); it is deriving patterns from a fixed length table, not
// building a table from runtime symbol frequencies.
func buildPatterns(lengths [256]uint8) [256]huffcode.Code {
	var order []int
	for length := 1; length <= 32; length++ {
		for symbol := 0; symbol < 256; symbol++ {
			if int(lengths[symbol]) == length {
				order = append(order, symbol)
			}
		}
	}

	var result [256]huffcode.Code
	var code uint32
	prevLength := uint8(0)
	for _, symbol := range order {
		length := lengths[symbol]
		if prevLength != 0 {
			code <<= length - prevLength
		}
		result[symbol] = huffcode.Code{Pattern: code, NumBits: length}
		code++
		prevLength = length
	}
	return result
}
