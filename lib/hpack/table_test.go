package hpack

import "testing"

func TestEveryByteHasALength(t *testing.T) {
	for symbol := 0; symbol < 256; symbol++ {
		if codeLengths[symbol] == 0 {
			t.Errorf("byte %#02x has no assigned code length", symbol)
		}
		if codeLengths[symbol] > 30 {
			t.Errorf("byte %#02x has length %d, exceeding the 30-bit maximum", symbol, codeLengths[symbol])
		}
	}
}

func TestKraftInequalityHolds(t *testing.T) {
	// Sum of 2^-length over all symbols must not exceed 1, or canonical
	// assignment would be forced to overflow some code's width.
	var sumNumerator, sumDenominator uint64 = 0, 1 << 30
	for symbol := 0; symbol < 256; symbol++ {
		length := codeLengths[symbol]
		sumNumerator += sumDenominator >> length
	}
	if sumNumerator > sumDenominator {
		t.Fatalf("Kraft inequality violated: sum = %d/%d > 1", sumNumerator, sumDenominator)
	}
}

func TestPatternsFitTheirWidth(t *testing.T) {
	for symbol := 0; symbol < 256; symbol++ {
		c := codes[symbol]
		if c.NumBits != codeLengths[symbol] {
			t.Errorf("byte %#02x: codes table width %d disagrees with codeLengths %d", symbol, c.NumBits, codeLengths[symbol])
		}
		if c.NumBits < 32 && c.Pattern>>c.NumBits != 0 {
			t.Errorf("byte %#02x: pattern %#x has bits set above its %d-bit width", symbol, c.Pattern, c.NumBits)
		}
	}
}

func TestPatternsAreUniquePrefixFree(t *testing.T) {
	// Exhaustively checking prefix-freedom over all 256*256 pairs is cheap
	// and catches what hand arithmetic can't: any accidental code-length
	// table or construction bug that makes two symbols collide.
	for i := 0; i < 256; i++ {
		a := codes[i]
		for j := i + 1; j < 256; j++ {
			b := codes[j]
			short, long := a, b
			if long.NumBits < short.NumBits {
				short, long = long, short
			}
			shift := long.NumBits - short.NumBits
			if long.Pattern>>shift == short.Pattern {
				t.Fatalf("bytes %#02x and %#02x are not prefix-free: %#x/%d vs %#x/%d",
					i, j, a.Pattern, a.NumBits, b.Pattern, b.NumBits)
			}
		}
	}
}

func TestCoderRoundTripsEveryByte(t *testing.T) {
	c := Coder()
	for symbol := 0; symbol < 256; symbol++ {
		code := c.Encode(byte(symbol))
		window := code.Pattern << (32 - code.NumBits)
		gotSymbol, gotBits := c.Decode(window)
		if gotSymbol != byte(symbol) || gotBits != code.NumBits {
			t.Errorf("byte %#02x: Decode(Encode(...)) = %#02x,%d; want %#02x,%d",
				symbol, gotSymbol, gotBits, symbol, code.NumBits)
		}
	}
}

func TestDELHitsMaximumWidth(t *testing.T) {
	if codeLengths[0x7f] != 30 {
		t.Errorf("expected DEL to use the maximum 30-bit code, got %d", codeLengths[0x7f])
	}
}
