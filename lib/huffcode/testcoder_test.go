package huffcode

// smallCoder is a four-symbol prefix-free coder used across this
// package's tests. It is deliberately incomplete (Kraft sum 0.75): the
// 11x region of the code space matches nothing, which is exactly what
// lets round-trip tests exercise the "trailing bits aren't a real code"
// termination path with ordinary all-ones padding.
//
//	'a' (0x61) -> 00   (2 bits)
//	'b' (0x62) -> 01   (2 bits)
//	'c' (0x63) -> 100  (3 bits)
//	'd' (0x64) -> 101  (3 bits)
type smallCoder struct{}

func (smallCoder) Encode(symbol byte) Code {
	switch symbol {
	case 'a':
		return Code{Pattern: 0b00, NumBits: 2}
	case 'b':
		return Code{Pattern: 0b01, NumBits: 2}
	case 'c':
		return Code{Pattern: 0b100, NumBits: 3}
	case 'd':
		return Code{Pattern: 0b101, NumBits: 3}
	default:
		return Code{Pattern: 0b00, NumBits: 2}
	}
}

func (smallCoder) Decode(window uint32) (byte, uint8) {
	switch window >> 30 {
	case 0b00:
		return 'a', 2
	case 0b01:
		return 'b', 2
	}
	switch window >> 29 {
	case 0b100:
		return 'c', 3
	case 0b101:
		return 'd', 3
	}
	return 0, 0
}

// wideCoder has a single symbol whose code is 30 bits wide, the maximum
// this package supports, for exercising that boundary directly.
type wideCoder struct{}

const wideSymbol = 'z'
const wideBits = 30
const widePattern = 0x3FFFFFFE // 30 ones except the last bit, an arbitrary distinguishable pattern

func (wideCoder) Encode(symbol byte) Code {
	return Code{Pattern: widePattern, NumBits: wideBits}
}

func (wideCoder) Decode(window uint32) (byte, uint8) {
	if window>>2 == widePattern {
		return wideSymbol, wideBits
	}
	return 0, 0
}
