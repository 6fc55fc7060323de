package board

import (
	"fmt"
	"strings"
)

// DebugMoveValidation makes Apply log moves whose piece is not on its
// origin square. Moves taken from GenerateMoves never trigger it.
var DebugMoveValidation = false

// Position is a board plus the game state needed to generate legal moves.
type Position struct {
	board BoardRepresentation

	side      Color
	enPassant Square // target square for en passant, NoSquare if none

	shortCastle [2]bool
	longCastle  [2]bool
	castled     [2]bool

	// isCheck caches whether side is in check; Apply refreshes it.
	isCheck bool

	halfMoveClock int // plies since the last capture or pawn move
	plies         int // plies since the start of the game
}

// NewPosition returns the standard initial position using the shared cache.
// InitCache must have been called.
func NewPosition() *Position {
	return NewPositionWithCache(SharedCache())
}

// NewPositionWithCache returns the standard initial position backed by cache.
func NewPositionWithCache(cache *AttackCache) *Position {
	return &Position{
		board:       *NewBoardRepresentation(cache),
		side:        White,
		enPassant:   NoSquare,
		shortCastle: [2]bool{true, true},
		longCastle:  [2]bool{true, true},
	}
}

// Copy returns an independent snapshot of the position.
func (p *Position) Copy() *Position {
	c := *p
	return &c
}

// Board returns the underlying board representation. It must not be mutated.
func (p *Position) Board() *BoardRepresentation {
	return &p.board
}

// GetPiece returns the color and kind on sq, or NoColor, NoPieceKind.
func (p *Position) GetPiece(sq Square) (Color, PieceKind) {
	return p.board.PieceAt(sq)
}

// PlayerNow returns the side to move.
func (p *Position) PlayerNow() Color {
	return p.side
}

// GetEnPassant returns the en passant target square, or NoSquare.
func (p *Position) GetEnPassant() Square {
	return p.enPassant
}

// CanCastle reports whether c still holds the short (kingSide) or long right.
func (p *Position) CanCastle(c Color, kingSide bool) bool {
	if kingSide {
		return p.shortCastle[c]
	}
	return p.longCastle[c]
}

// CastlingHappened reports whether c has castled in this game.
func (p *Position) CastlingHappened(c Color) bool {
	return p.castled[c]
}

// InCheck returns the cached check state of the side to move.
func (p *Position) InCheck() bool {
	return p.isCheck
}

// HalfMoveClock returns the number of plies since the last capture or pawn move.
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// FullMoveNumber returns the FEN full-move number, starting at 1.
func (p *Position) FullMoveNumber() int {
	return p.plies/2 + 1
}

// MoveCounter returns the number of plies played since the initial position.
func (p *Position) MoveCounter() int {
	return p.plies
}

// Validate checks that the position can be used for move generation.
func (p *Position) Validate() error {
	if p.board.Pieces(White, King).PopCount() != 1 {
		return fmt.Errorf("white must have exactly one king")
	}
	if p.board.Pieces(Black, King).PopCount() != 1 {
		return fmt.Errorf("black must have exactly one king")
	}
	if (p.board.Pieces(White, Pawn)|p.board.Pieces(Black, Pawn))&(Rank1BB|Rank8BB) != 0 {
		return fmt.Errorf("pawns cannot be on rank 1 or 8")
	}
	return nil
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	for r := 7; r >= 0; r-- {
		fmt.Fprintf(&sb, "%d  ", r+1)
		for f := 0; f < 8; f++ {
			c, k := p.GetPiece(NewSquare(File(f), Rank(r)))
			if k == NoPieceKind {
				sb.WriteString(". ")
			} else {
				sb.WriteByte(PieceChar(c, k))
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Side to move: %s\n", p.side)
	fmt.Fprintf(&sb, "Castling: %s\n", p.castlingString())
	fmt.Fprintf(&sb, "En passant: %s\n", p.enPassant)
	fmt.Fprintf(&sb, "Half-move clock: %d\n", p.halfMoveClock)
	fmt.Fprintf(&sb, "Full move: %d\n", p.FullMoveNumber())
	return sb.String()
}
