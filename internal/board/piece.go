package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceKind is the kind of a chess piece. The order is the index order of
// the per-color piece bitboards.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Rook
	Knight
	Bishop
	Queen
	King
	NoPieceKind PieceKind = 6
)

// pieceKinds lists the six real kinds in bitboard order.
var pieceKinds = [6]PieceKind{Pawn, Rook, Knight, Bishop, Queen, King}

// String returns the piece kind name.
func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Rook:
		return "Rook"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the lowercase FEN letter for the kind, or ' ' for NoPieceKind.
func (k PieceKind) Char() byte {
	if k >= NoPieceKind {
		return ' '
	}
	return "prnbqk"[k]
}

// PieceChar returns the FEN letter for a colored piece:
// uppercase for white, lowercase for black.
func PieceChar(c Color, k PieceKind) byte {
	ch := k.Char()
	if c == White && ch != ' ' {
		ch -= 'a' - 'A'
	}
	return ch
}

// PieceFromChar converts a FEN letter to a color and kind.
// Unknown letters yield NoColor, NoPieceKind.
func PieceFromChar(ch byte) (Color, PieceKind) {
	c := Black
	if ch >= 'A' && ch <= 'Z' {
		c = White
		ch += 'a' - 'A'
	}
	switch ch {
	case 'p':
		return c, Pawn
	case 'r':
		return c, Rook
	case 'n':
		return c, Knight
	case 'b':
		return c, Bishop
	case 'q':
		return c, Queen
	case 'k':
		return c, King
	default:
		return NoColor, NoPieceKind
	}
}
