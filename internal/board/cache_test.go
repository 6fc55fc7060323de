package board

import (
	"math/rand"
	"testing"
)

func TestNewAttackCache(t *testing.T) {
	c, err := NewAttackCache()
	if err != nil {
		t.Fatalf("NewAttackCache: %v", err)
	}

	tests := []struct {
		sq     Square
		knight int
		king   int
	}{
		{A1, 2, 3},
		{H8, 2, 3},
		{B1, 3, 5},
		{E4, 8, 8},
		{H4, 4, 5},
		{G7, 4, 8},
	}
	for _, tc := range tests {
		if got := c.Knight(tc.sq).PopCount(); got != tc.knight {
			t.Errorf("knight attacks from %v: %d squares, want %d", tc.sq, got, tc.knight)
		}
		if got := c.King(tc.sq).PopCount(); got != tc.king {
			t.Errorf("king attacks from %v: %d squares, want %d", tc.sq, got, tc.king)
		}
	}

	// No knight jump may wrap from the h-file to the a-file.
	if c.Knight(H1)&(FileABB|FileBBB) != 0 {
		t.Errorf("knight on h1 wraps:\n%v", c.Knight(H1))
	}
	if c.Lookup(Knight, G1, 0) != c.Knight(G1) || c.Lookup(King, G1, 0) != c.King(G1) {
		t.Error("Lookup for knight/king should return the step tables")
	}
}

func TestSlidingMask(t *testing.T) {
	c := SharedCache()

	rook := c.SlidingMask(Rook, A1)
	want := (FileABB | Rank1BB) &^ (A1.Bitboard() | A8.Bitboard() | H1.Bitboard())
	if rook != want {
		t.Errorf("rook mask a1 =\n%v\nwant\n%v", rook, want)
	}
	if got := c.SlidingMask(Rook, E4).PopCount(); got != 10 {
		t.Errorf("rook mask e4 has %d bits, want 10", got)
	}
	if got := c.SlidingMask(Bishop, D4).PopCount(); got != 9 {
		t.Errorf("bishop mask d4 has %d bits, want 9", got)
	}
	if c.SlidingMask(Bishop, C3)&Edges != 0 {
		t.Error("bishop mask includes edge squares")
	}
	if c.SlidingMask(Queen, C3) != Empty {
		t.Error("queen has no sliding mask of its own")
	}
}

func TestSlidingAttacksMatchRayCasting(t *testing.T) {
	c := SharedCache()
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 2000; i++ {
		// sparse random occupancy
		occ := Bitboard(rng.Uint64() & rng.Uint64() & rng.Uint64())
		sq := Square(rng.Intn(64))

		if got, want := c.RookAttacks(sq, occ), rookAttacksSlow(sq, occ); got != want {
			t.Fatalf("rook %v occ %016x:\n%v\nwant\n%v", sq, uint64(occ), got, want)
		}
		if got, want := c.BishopAttacks(sq, occ), bishopAttacksSlow(sq, occ); got != want {
			t.Fatalf("bishop %v occ %016x:\n%v\nwant\n%v", sq, uint64(occ), got, want)
		}

		h := c.Hash(sq, occ&c.SlidingMask(Rook, sq), Rook)
		if c.Lookup(Rook, sq, h) != c.RookAttacks(sq, occ) {
			t.Fatal("Lookup(Hash(...)) disagrees with RookAttacks")
		}
	}
}

func TestInitCacheTwicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("second InitCache should panic")
		}
	}()
	InitCache()
}
