package board

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	InitCache()
	os.Exit(m.Run())
}

func mustParseFEN(t *testing.T, fen string) *Position {
	t.Helper()
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("Failed to parse FEN %q: %v", fen, err)
	}
	return pos
}

func TestBitScan(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		bb := sq.Bitboard()
		if got := BitScanForward(bb); got != sq {
			t.Errorf("BitScanForward(%v) = %v", sq, got)
		}
		if got := BitScanReverse(bb); got != sq {
			t.Errorf("BitScanReverse(%v) = %v", sq, got)
		}
	}

	bb := C2.Bitboard() | F5.Bitboard() | G7.Bitboard()
	if got := BitScanForward(bb); got != C2 {
		t.Errorf("BitScanForward = %v, want c2", got)
	}
	if got := BitScanReverse(bb); got != G7 {
		t.Errorf("BitScanReverse = %v, want g7", got)
	}
	if got := Universe.LSB(); got != A1 {
		t.Errorf("Universe.LSB() = %v, want a1", got)
	}
	if got := Empty.MSB(); got != NoSquare {
		t.Errorf("Empty.MSB() = %v, want NoSquare", got)
	}
}

func TestSquares(t *testing.T) {
	tests := []struct {
		s    string
		sq   Square
		file File
		rank Rank
	}{
		{"a1", A1, FileA, Rank1},
		{"e4", E4, FileE, Rank4},
		{"h8", H8, FileH, Rank8},
		{"d6", D6, FileD, Rank6},
	}
	for _, tc := range tests {
		sq, err := ParseSquare(tc.s)
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", tc.s, err)
		}
		if sq != tc.sq || sq.File() != tc.file || sq.Rank() != tc.rank {
			t.Errorf("ParseSquare(%q) = %v (file %d rank %d)", tc.s, sq, sq.File(), sq.Rank())
		}
		if sq.String() != tc.s {
			t.Errorf("%v.String() = %q", sq, sq.String())
		}
	}

	for _, bad := range []string{"", "i1", "a9", "e44"} {
		if _, err := ParseSquare(bad); err == nil {
			t.Errorf("ParseSquare(%q) should fail", bad)
		}
	}
}

func TestMasks(t *testing.T) {
	diag := B1.Bitboard() | C2.Bitboard() | D3.Bitboard() | E4.Bitboard() | F5.Bitboard() | G6.Bitboard() | H7.Bitboard()
	if got := DiagonalMask(E4); got != diag {
		t.Errorf("DiagonalMask(e4) =\n%v", got)
	}
	anti := H1.Bitboard() | G2.Bitboard() | F3.Bitboard() | E4.Bitboard() | D5.Bitboard() | C6.Bitboard() | B7.Bitboard() | A8.Bitboard()
	if got := AntiDiagonalMask(E4); got != anti {
		t.Errorf("AntiDiagonalMask(e4) =\n%v", got)
	}
	if DiagonalMask(A1) != DiagonalMasks[7] || DiagonalMask(H1) != H1.Bitboard() {
		t.Error("DiagonalMask indexing is wrong")
	}
	if AntiDiagonalMask(H1) != AntiDiagonalMasks[7] || AntiDiagonalMask(A1) != A1.Bitboard() {
		t.Error("AntiDiagonalMask indexing is wrong")
	}
	for sq := A1; sq <= H8; sq++ {
		bb := sq.Bitboard()
		for _, m := range []Bitboard{FileMask(sq), RankMask(sq), DiagonalMask(sq), AntiDiagonalMask(sq)} {
			if m&bb == 0 {
				t.Fatalf("mask for %v does not contain it", sq)
			}
		}
	}
	if H4.Bitboard().East() != 0 || A4.Bitboard().West() != 0 {
		t.Error("east/west shifts wrap around the board")
	}
}
