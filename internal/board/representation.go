package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartPlacement is the piece-placement field of the standard initial position.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// BoardRepresentation is the set of piece bitboards plus the unions derived
// from them. Derived bitboards are recomputed on every mutation, so the
// value is always internally consistent.
type BoardRepresentation struct {
	pieces    [2][6]Bitboard // [Color][PieceKind]
	sides     [2]Bitboard    // union of each color's pieces
	occupancy Bitboard       // sides[White] | sides[Black]

	cache *AttackCache
}

// NewBoardRepresentation returns the standard initial layout backed by cache.
func NewBoardRepresentation(cache *AttackCache) *BoardRepresentation {
	b := &BoardRepresentation{cache: cache}
	b.pieces[White] = [6]Bitboard{
		Pawn:   Rank2BB,
		Rook:   A1.Bitboard() | H1.Bitboard(),
		Knight: B1.Bitboard() | G1.Bitboard(),
		Bishop: C1.Bitboard() | F1.Bitboard(),
		Queen:  D1.Bitboard(),
		King:   E1.Bitboard(),
	}
	for k := range b.pieces[White] {
		// black mirrors white across the middle of the board
		b.pieces[Black][k] = flipVertical(b.pieces[White][k])
	}
	b.update()
	return b
}

// ParsePlacement builds a board from a FEN piece-placement field: ranks 8 to
// 1 separated by '/', digits for runs of empty squares, uppercase letters for
// white pieces and lowercase for black.
func ParsePlacement(cache *AttackCache, placement string) (*BoardRepresentation, error) {
	b := &BoardRepresentation{cache: cache}

	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		r := Rank(7 - i)
		f := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if f > 7 {
				return nil, fmt.Errorf("too many squares in rank %d", r+1)
			}
			if ch >= '1' && ch <= '8' {
				f += int(ch - '0')
				continue
			}
			c, k := PieceFromChar(ch)
			if k == NoPieceKind {
				return nil, fmt.Errorf("invalid piece character: %c", ch)
			}
			b.pieces[c][k] |= NewSquare(File(f), r).Bitboard()
			f++
		}
		if f != 8 {
			return nil, fmt.Errorf("invalid number of squares in rank %d: got %d", r+1, f)
		}
	}

	b.update()
	return b, nil
}

// Copy returns an independent copy sharing the same read-only cache.
func (b *BoardRepresentation) Copy() *BoardRepresentation {
	c := *b
	return &c
}

func flipVertical(bb Bitboard) Bitboard {
	var out Bitboard
	for bb != 0 {
		sq := bb.PopLSB()
		out |= (sq ^ 56).Bitboard()
	}
	return out
}

// update recomputes the derived union bitboards from the piece bitboards.
func (b *BoardRepresentation) update() {
	b.sides[White], b.sides[Black] = Empty, Empty
	for _, k := range pieceKinds {
		b.sides[White] |= b.pieces[White][k]
		b.sides[Black] |= b.pieces[Black][k]
	}
	b.occupancy = b.sides[White] | b.sides[Black]
}

// AddPiece places a piece of the given color and kind on sq.
func (b *BoardRepresentation) AddPiece(c Color, k PieceKind, sq Square) {
	b.pieces[c][k] |= sq.Bitboard()
	b.update()
}

// RemovePiece clears a piece of the given color and kind from sq.
func (b *BoardRepresentation) RemovePiece(c Color, k PieceKind, sq Square) {
	b.pieces[c][k] &^= sq.Bitboard()
	b.update()
}

// Pieces returns the bitboard of one color and kind.
func (b *BoardRepresentation) Pieces(c Color, k PieceKind) Bitboard {
	return b.pieces[c][k]
}

// Side returns the union of all pieces of one color.
func (b *BoardRepresentation) Side(c Color) Bitboard {
	return b.sides[c]
}

// Occupancy returns the union of all pieces on the board.
func (b *BoardRepresentation) Occupancy() Bitboard {
	return b.occupancy
}

// PieceAt returns the color and kind on sq, or NoColor, NoPieceKind.
func (b *BoardRepresentation) PieceAt(sq Square) (Color, PieceKind) {
	bb := sq.Bitboard()
	if b.occupancy&bb == 0 {
		return NoColor, NoPieceKind
	}
	c := White
	if b.sides[Black]&bb != 0 {
		c = Black
	}
	for _, k := range pieceKinds {
		if b.pieces[c][k]&bb != 0 {
			return c, k
		}
	}
	return NoColor, NoPieceKind
}

// PawnCaptureSquares returns the diagonal squares a pawn of color c on sq
// strikes, regardless of what stands on them.
func PawnCaptureSquares(c Color, sq Square) Bitboard {
	bb := sq.Bitboard()
	if c == White {
		return bb.NorthWest() | bb.NorthEast()
	}
	return bb.SouthWest() | bb.SouthEast()
}

// PawnAttacks returns the enemy-occupied squares a pawn of color c on sq can
// capture on.
func (b *BoardRepresentation) PawnAttacks(c Color, sq Square) Bitboard {
	return PawnCaptureSquares(c, sq) & b.sides[c.Other()]
}

// PawnAdvances returns the empty squares a pawn of color c on sq can push
// to, including the double step from its starting rank.
func (b *BoardRepresentation) PawnAdvances(c Color, sq Square) Bitboard {
	bb := sq.Bitboard()
	empty := ^b.occupancy
	if c == White {
		single := bb.North() & empty
		return single | (single&Rank3BB).North()&empty
	}
	single := bb.South() & empty
	return single | (single&Rank6BB).South()&empty
}

// KnightAttacks returns knight targets from sq not held by color c.
func (b *BoardRepresentation) KnightAttacks(c Color, sq Square) Bitboard {
	return b.cache.Knight(sq) &^ b.sides[c]
}

// KingAttacks returns king targets from sq not held by color c.
func (b *BoardRepresentation) KingAttacks(c Color, sq Square) Bitboard {
	return b.cache.King(sq) &^ b.sides[c]
}

// RookAttacks returns rook targets from sq not held by color c.
func (b *BoardRepresentation) RookAttacks(c Color, sq Square) Bitboard {
	occ := b.occupancy & b.cache.SlidingMask(Rook, sq)
	return b.cache.Lookup(Rook, sq, b.cache.Hash(sq, occ, Rook)) &^ b.sides[c]
}

// BishopAttacks returns bishop targets from sq not held by color c.
func (b *BoardRepresentation) BishopAttacks(c Color, sq Square) Bitboard {
	occ := b.occupancy & b.cache.SlidingMask(Bishop, sq)
	return b.cache.Lookup(Bishop, sq, b.cache.Hash(sq, occ, Bishop)) &^ b.sides[c]
}

// QueenAttacks returns queen targets from sq not held by color c.
func (b *BoardRepresentation) QueenAttacks(c Color, sq Square) Bitboard {
	return b.RookAttacks(c, sq) | b.BishopAttacks(c, sq)
}

// Attacks returns the pseudo-legal capture set of a piece of color c and
// kind k on sq. For pawns this is the diagonal capture set only.
func (b *BoardRepresentation) Attacks(c Color, k PieceKind, sq Square) Bitboard {
	switch k {
	case Pawn:
		return b.PawnAttacks(c, sq)
	case Rook:
		return b.RookAttacks(c, sq)
	case Knight:
		return b.KnightAttacks(c, sq)
	case Bishop:
		return b.BishopAttacks(c, sq)
	case Queen:
		return b.QueenAttacks(c, sq)
	case King:
		return b.KingAttacks(c, sq)
	}
	return Empty
}

// IsAttackedBy reports whether any piece of color by attacks a square in
// target, scanning every piece of that color.
func (b *BoardRepresentation) IsAttackedBy(by Color, target Bitboard) bool {
	for _, k := range pieceKinds {
		pieces := b.pieces[by][k]
		for pieces != 0 {
			sq := pieces.PopLSB()
			if b.Attacks(by, k, sq)&target != 0 {
				return true
			}
		}
	}
	return false
}

// Placement returns the FEN piece-placement field for the board.
func (b *BoardRepresentation) Placement() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			c, k := b.PieceAt(NewSquare(File(f), Rank(r)))
			if k == NoPieceKind {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(PieceChar(c, k))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
