package board

import (
	"fmt"
	"sync/atomic"
)

// AttackCache holds the precomputed attack tables. It is built once and is
// read-only afterwards, so a single instance may be shared by any number of
// boards and goroutines.
type AttackCache struct {
	knight [64]Bitboard
	king   [64]Bitboard

	rookMask   [64]Bitboard
	bishopMask [64]Bitboard

	// Dense tables indexed by the magic hash of the masked occupancy.
	rook   [64][4096]Bitboard
	bishop [64][512]Bitboard
}

// NewAttackCache builds all attack tables. It returns an error if a magic
// constant maps two occupancies with different attack sets to one slot.
func NewAttackCache() (*AttackCache, error) {
	c := new(AttackCache)
	c.initKnightAttacks()
	c.initKingAttacks()
	if err := c.initSliders(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *AttackCache) initKnightAttacks() {
	for sq := A1; sq <= H8; sq++ {
		bb := sq.Bitboard()

		// one file sideways, two ranks up or down
		lr1 := (bb>>1)&NotFileH | (bb<<1)&NotFileA
		// two files sideways, one rank up or down
		lr2 := (bb>>2)&NotFileGH | (bb<<2)&NotFileAB

		c.knight[sq] = lr1<<16 | lr1>>16 | lr2<<8 | lr2>>8
	}
}

func (c *AttackCache) initKingAttacks() {
	for sq := A1; sq <= H8; sq++ {
		bb := sq.Bitboard()
		lr := bb.East() | bb.West()
		c.king[sq] = lr | lr.North() | lr.South() | bb.North() | bb.South()
	}
}

func (c *AttackCache) initSliders() error {
	for sq := A1; sq <= H8; sq++ {
		c.rookMask[sq] = rookMask(sq)
		c.bishopMask[sq] = bishopMask(sq)

		if err := fillSlider(c.rook[sq][:], sq, Rook, c.rookMask[sq], rookAttacksSlow); err != nil {
			return err
		}
		if err := fillSlider(c.bishop[sq][:], sq, Bishop, c.bishopMask[sq], bishopAttacksSlow); err != nil {
			return err
		}
	}
	return nil
}

// fillSlider enumerates every occupancy subset of mask and stores its ray
// attack set at the subset's hash slot.
func fillSlider(table []Bitboard, sq Square, kind PieceKind, mask Bitboard, slow func(Square, Bitboard) Bitboard) error {
	bits := relevantBits(kind, sq)
	if mask.PopCount() != int(bits) {
		return fmt.Errorf("%v mask on %v has %d bits, want %d", kind, sq, mask.PopCount(), bits)
	}

	variants := 1 << bits
	filled := make([]bool, variants)
	for i := 0; i < variants; i++ {
		occ := occupancySubset(i, mask)
		h := hash(sq, occ, kind)
		attacks := slow(sq, occ)
		if filled[h] && table[h] != attacks {
			return fmt.Errorf("magic collision for %v on %v at slot %d", kind, sq, h)
		}
		table[h] = attacks
		filled[h] = true
	}
	return nil
}

func relevantBits(kind PieceKind, sq Square) uint8 {
	if kind == Rook {
		return rookRelevantBits[sq]
	}
	return bishopRelevantBits[sq]
}

func hash(sq Square, occupancy Bitboard, kind PieceKind) uint16 {
	if kind == Rook {
		return uint16((uint64(occupancy) * rookMagicNumbers[sq]) >> (64 - rookRelevantBits[sq]))
	}
	return uint16((uint64(occupancy) * bishopMagicNumbers[sq]) >> (64 - bishopRelevantBits[sq]))
}

// SlidingMask returns the relevant occupancy mask of a rook or bishop on sq.
// Any other kind yields an empty mask.
func (c *AttackCache) SlidingMask(kind PieceKind, sq Square) Bitboard {
	switch kind {
	case Rook:
		return c.rookMask[sq]
	case Bishop:
		return c.bishopMask[sq]
	}
	return Empty
}

// Hash maps an occupancy already masked by SlidingMask to its table slot.
func (c *AttackCache) Hash(sq Square, occupancy Bitboard, kind PieceKind) uint16 {
	return hash(sq, occupancy, kind)
}

// Lookup returns the cached sliding attack set stored at slot h.
// Knight and king lookups ignore h.
func (c *AttackCache) Lookup(kind PieceKind, sq Square, h uint16) Bitboard {
	switch kind {
	case Rook:
		return c.rook[sq][h]
	case Bishop:
		return c.bishop[sq][h]
	case Knight:
		return c.knight[sq]
	case King:
		return c.king[sq]
	}
	return Empty
}

// Knight returns the knight attack set from sq on an empty board.
func (c *AttackCache) Knight(sq Square) Bitboard {
	return c.knight[sq]
}

// King returns the king attack set from sq on an empty board.
func (c *AttackCache) King(sq Square) Bitboard {
	return c.king[sq]
}

// RookAttacks returns rook attacks from sq given the full board occupancy.
func (c *AttackCache) RookAttacks(sq Square, occupied Bitboard) Bitboard {
	return c.rook[sq][hash(sq, occupied&c.rookMask[sq], Rook)]
}

// BishopAttacks returns bishop attacks from sq given the full board occupancy.
func (c *AttackCache) BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return c.bishop[sq][hash(sq, occupied&c.bishopMask[sq], Bishop)]
}

var shared atomic.Pointer[AttackCache]

// InitCache builds the process-wide cache used by NewPosition and
// NewBoardRepresentation. It must run exactly once, before any board is
// created; a second call panics.
func InitCache() {
	c, err := NewAttackCache()
	if err != nil {
		panic(err)
	}
	if !shared.CompareAndSwap(nil, c) {
		panic("board: InitCache called twice")
	}
}

// SharedCache returns the cache built by InitCache.
func SharedCache() *AttackCache {
	c := shared.Load()
	if c == nil {
		panic("board: attack cache used before InitCache")
	}
	return c
}
