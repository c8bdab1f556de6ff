package huffgen

import "testing"

// sameSmallTable as huffcode's smallCoder test fixture: a=00, b=01,
// c=100, d=101.
func sameSmallTable() []CodePoint {
	return []CodePoint{
		{Symbol: 'a', Pattern: 0b00, NumBits: 2},
		{Symbol: 'b', Pattern: 0b01, NumBits: 2},
		{Symbol: 'c', Pattern: 0b100, NumBits: 3},
		{Symbol: 'd', Pattern: 0b101, NumBits: 3},
	}
}

func TestBuildTrieDecodesEveryCode(t *testing.T) {
	root, err := BuildTrie(sameSmallTable())
	if err != nil {
		t.Fatalf("BuildTrie: %v", err)
	}

	cases := []struct {
		window  uint32
		wantSym byte
		wantLen uint8
	}{
		{0b00 << 30, 'a', 2},
		{0b01 << 30, 'b', 2},
		{0b100 << 29, 'c', 3},
		{0b101 << 29, 'd', 3},
	}
	for _, c := range cases {
		sym, n := root.Decode(c.window)
		if sym != c.wantSym || n != c.wantLen {
			t.Errorf("Decode(%032b) = %q,%d; want %q,%d", c.window, sym, n, c.wantSym, c.wantLen)
		}
	}
}

func TestBuildTrieRejectsUnmappedRegion(t *testing.T) {
	root, err := BuildTrie(sameSmallTable())
	if err != nil {
		t.Fatalf("BuildTrie: %v", err)
	}
	// 11x is unmapped by this table.
	sym, n := root.Decode(0b110 << 29)
	if n != 0 {
		t.Errorf("expected no match in the unmapped region, got %q,%d", sym, n)
	}
}

func TestBuildTriePrefixCollision(t *testing.T) {
	points := []CodePoint{
		{Symbol: 'a', Pattern: 0b0, NumBits: 1},
		{Symbol: 'b', Pattern: 0b01, NumBits: 2}, // 'a's code (0) is a prefix of this
	}
	if _, err := BuildTrie(points); err == nil {
		t.Fatal("expected an error for a prefix collision")
	}
}

func TestBuildTrieDuplicatePattern(t *testing.T) {
	points := []CodePoint{
		{Symbol: 'a', Pattern: 0b00, NumBits: 2},
		{Symbol: 'b', Pattern: 0b00, NumBits: 2},
	}
	if _, err := BuildTrie(points); err == nil {
		t.Fatal("expected an error for a duplicate pattern")
	}
}
