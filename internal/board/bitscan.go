package board

// De Bruijn bit scanning (Kim Walisch, Mark Dickinson).
// Both scans require a non-zero input; the result for 0 is meaningless.

const debruijn64 = 0x03f79d71b4cb0a89

var bitScanIndex = [64]Square{
	0, 47, 1, 56, 48, 27, 2, 60,
	57, 49, 41, 37, 28, 16, 3, 61,
	54, 58, 35, 52, 50, 42, 21, 44,
	38, 32, 29, 23, 17, 11, 4, 62,
	46, 55, 26, 59, 40, 36, 15, 53,
	34, 51, 20, 43, 31, 22, 10, 45,
	25, 39, 14, 33, 19, 30, 9, 24,
	13, 18, 8, 12, 7, 6, 5, 63,
}

// BitScanForward returns the index of the least significant set bit.
func BitScanForward(b Bitboard) Square {
	return bitScanIndex[(uint64(b^(b-1))*debruijn64)>>58]
}

// BitScanReverse returns the index of the most significant set bit.
func BitScanReverse(b Bitboard) Square {
	b |= b >> 1
	b |= b >> 2
	b |= b >> 4
	b |= b >> 8
	b |= b >> 16
	b |= b >> 32
	return bitScanIndex[(uint64(b)*debruijn64)>>58]
}
