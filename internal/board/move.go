package board

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is returned by ParseMove when the coordinates do not name a
// legal move in the position.
var ErrIllegalMove = errors.New("illegal move")

// Move is an immutable move record. It carries no special-move flag:
// castling, en passant and promotion are recognised from the piece kind and
// geometry when the move is applied.
type Move struct {
	From, To      Square
	Piece         PieceKind
	Captured      PieceKind
	Color         Color
	CapturedColor Color
	Promotion     PieceKind // NoPieceKind unless a pawn reaches the last rank
}

// IsCapture reports whether the move removes an enemy piece.
func (m Move) IsCapture() bool {
	return m.CapturedColor != NoColor
}

// String returns the coordinate form of the move (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPieceKind {
		s += string(m.Promotion.Char())
	}
	return s
}

// ParseMove resolves a coordinate move string against the legal moves of p.
// A pawn reaching the last rank without a promotion letter promotes to a
// queen.
func ParseMove(p *Position, s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("invalid move string: %q", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, err
	}
	promo := NoPieceKind
	if len(s) == 5 {
		_, promo = PieceFromChar(s[4])
		if promo != Queen && promo != Rook && promo != Bishop && promo != Knight {
			return Move{}, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
	}

	for _, m := range p.GenerateMoves() {
		if m.From != from || m.To != to {
			continue
		}
		if m.Promotion == promo || (promo == NoPieceKind && m.Promotion == Queen) {
			return m, nil
		}
	}
	return Move{}, fmt.Errorf("%s: %w", s, ErrIllegalMove)
}
