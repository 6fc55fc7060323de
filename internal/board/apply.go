package board

import "log"

// Apply plays m on the position. m must come from GenerateMoves of this
// position; other moves leave the position in an unspecified state.
func (p *Position) Apply(m Move) {
	p.apply(m, m.From != m.To)
}

// apply commits m. The check flag is refreshed only when refreshCheck is set;
// the scratch copies made by IsLegal skip it.
func (p *Position) apply(m Move, refreshCheck bool) {
	us, them := m.Color, m.Color.Other()

	if DebugMoveValidation && !p.board.Pieces(us, m.Piece).IsSet(m.From) {
		log.Printf("APPLY: %v %v not on %v (move %v, fen %s)", us, m.Piece, m.From, m, p.FEN())
	}

	enPassant := m.Piece == Pawn && m.To == p.enPassant && m.From.File() != m.To.File()

	p.board.RemovePiece(us, m.Piece, m.From)
	if m.IsCapture() {
		if !enPassant {
			p.board.RemovePiece(m.CapturedColor, m.Captured, m.To)
		}
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	placed := m.Piece
	if m.Promotion != NoPieceKind {
		placed = m.Promotion
	}
	p.board.AddPiece(us, placed, m.To)

	p.enPassant = NoSquare

	switch m.Piece {
	case Pawn:
		p.halfMoveClock = 0
		switch {
		case enPassant:
			p.board.RemovePiece(them, Pawn, enPassantVictim(us, m.To))
		case m.To == m.From+16 || m.From == m.To+16:
			// The target is only recorded when an enemy pawn stands beside
			// the pushed pawn and could take it.
			to := m.To.Bitboard()
			if (to.East()|to.West())&p.board.Pieces(them, Pawn) != 0 {
				p.enPassant = (m.From + m.To) / 2
			}
		}
	case King:
		p.shortCastle[us], p.longCastle[us] = false, false
		switch {
		case m.To == m.From+2:
			p.board.RemovePiece(us, Rook, m.From+3)
			p.board.AddPiece(us, Rook, m.From+1)
			p.castled[us] = true
		case m.From == m.To+2:
			p.board.RemovePiece(us, Rook, m.From-4)
			p.board.AddPiece(us, Rook, m.From-1)
			p.castled[us] = true
		}
	case Rook:
		p.voidRookRight(us, m.From)
	}
	if m.Captured == Rook {
		p.voidRookRight(them, m.To)
	}

	p.plies++
	p.side = them
	if refreshCheck {
		p.isCheck = p.IsCheck()
	}
}

// voidRookRight clears the castling right tied to a rook of color c leaving
// or being captured on sq.
func (p *Position) voidRookRight(c Color, sq Square) {
	rank := Rank1
	if c == Black {
		rank = Rank8
	}
	switch sq {
	case NewSquare(FileH, rank):
		p.shortCastle[c] = false
	case NewSquare(FileA, rank):
		p.longCastle[c] = false
	}
}
