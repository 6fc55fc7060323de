package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = StartPlacement + " w KQkq - 0 1"

// ParseFEN parses a FEN string using the shared cache.
// InitCache must have been called.
func ParseFEN(fen string) (*Position, error) {
	return ParseFENWithCache(SharedCache(), fen)
}

// ParseFENWithCache parses a FEN string into a Position backed by cache. The
// half-move clock and full-move number are optional.
func ParseFENWithCache(cache *AttackCache, fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, fmt.Errorf("invalid FEN: need at least 4 fields, got %d", len(parts))
	}

	b, err := ParsePlacement(cache, parts[0])
	if err != nil {
		return nil, err
	}
	pos := &Position{
		board:     *b,
		enPassant: NoSquare,
	}

	switch parts[1] {
	case "w":
		pos.side = White
	case "b":
		pos.side = Black
	default:
		return nil, fmt.Errorf("invalid side to move: %s", parts[1])
	}

	if err := parseCastlingRights(pos, parts[2]); err != nil {
		return nil, err
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant square: %s", parts[3])
		}
		pos.enPassant = sq
	}

	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil {
			return nil, fmt.Errorf("invalid half-move clock: %s", parts[4])
		}
		pos.halfMoveClock = hmc
	}

	fullMove := 1
	if len(parts) > 5 {
		fullMove, err = strconv.Atoi(parts[5])
		if err != nil || fullMove < 1 {
			return nil, fmt.Errorf("invalid full-move number: %s", parts[5])
		}
	}
	pos.plies = 2 * (fullMove - 1)
	if pos.side == Black {
		pos.plies++
	}

	pos.isCheck = pos.IsCheck()
	return pos, nil
}

func parseCastlingRights(pos *Position, castling string) error {
	if castling == "-" {
		return nil
	}
	for _, c := range castling {
		switch c {
		case 'K':
			pos.shortCastle[White] = true
		case 'Q':
			pos.longCastle[White] = true
		case 'k':
			pos.shortCastle[Black] = true
		case 'q':
			pos.longCastle[Black] = true
		default:
			return fmt.Errorf("invalid castling character: %c", c)
		}
	}
	return nil
}

func (p *Position) castlingString() string {
	s := ""
	if p.shortCastle[White] {
		s += "K"
	}
	if p.longCastle[White] {
		s += "Q"
	}
	if p.shortCastle[Black] {
		s += "k"
	}
	if p.longCastle[Black] {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}

// FEN returns the FEN representation of the position.
func (p *Position) FEN() string {
	var sb strings.Builder

	sb.WriteString(p.board.Placement())

	sb.WriteByte(' ')
	if p.side == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.castlingString())

	sb.WriteByte(' ')
	sb.WriteString(p.enPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMoveNumber()))

	return sb.String()
}
