package board

// maxMoves bounds the number of legal moves in any chess position.
const maxMoves = 218

// GenerateMoves returns every legal move for the side to move.
func (p *Position) GenerateMoves() []Move {
	moves := make([]Move, 0, maxMoves)
	for _, k := range pieceKinds {
		pieces := p.board.Pieces(p.side, k)
		for pieces != 0 {
			sq := pieces.PopLSB()
			moves = p.appendMovesForPiece(moves, k, sq)
		}
	}
	return moves
}

// GenerateMovesForPiece returns the legal moves of the side-to-move piece of
// kind k standing on sq.
func (p *Position) GenerateMovesForPiece(k PieceKind, sq Square) []Move {
	return p.appendMovesForPiece(nil, k, sq)
}

func (p *Position) appendMovesForPiece(moves []Move, k PieceKind, from Square) []Move {
	us := p.side

	switch k {
	case Pawn:
		moves = p.appendPawnMoves(moves, from, p.board.PawnAttacks(us, from), true)
		moves = p.appendPawnMoves(moves, from, p.board.PawnAdvances(us, from), false)
		moves = p.appendEnPassant(moves, from)
	case Knight:
		moves = p.appendTargets(moves, Knight, from, p.board.KnightAttacks(us, from), true)
	case King:
		moves = p.appendTargets(moves, King, from, p.board.KingAttacks(us, from), true)
		moves = p.appendCastling(moves, from, true)
		moves = p.appendCastling(moves, from, false)
	case Rook:
		moves = p.appendSlider(moves, Rook, from, p.board.RookAttacks(us, from),
			FileMask(from), RankMask(from))
	case Bishop:
		moves = p.appendSlider(moves, Bishop, from, p.board.BishopAttacks(us, from),
			DiagonalMask(from), AntiDiagonalMask(from))
	case Queen:
		moves = p.appendSlider(moves, Queen, from, p.board.QueenAttacks(us, from),
			FileMask(from), RankMask(from), DiagonalMask(from), AntiDiagonalMask(from))
	}
	return moves
}

// newMove builds a move of the side to move, looking up the captured piece
// when lookup is set.
func (p *Position) newMove(k PieceKind, from, to Square, lookup bool) Move {
	m := Move{
		From:          from,
		To:            to,
		Piece:         k,
		Captured:      NoPieceKind,
		Color:         p.side,
		CapturedColor: NoColor,
		Promotion:     NoPieceKind,
	}
	if lookup {
		m.CapturedColor, m.Captured = p.board.PieceAt(to)
	}
	return m
}

func (p *Position) appendLegal(moves []Move, m Move) []Move {
	if p.IsLegal(m) {
		moves = append(moves, m)
	}
	return moves
}

// appendTargets expands a target bitboard into one move per destination.
func (p *Position) appendTargets(moves []Move, k PieceKind, from Square, targets Bitboard, lookup bool) []Move {
	for targets != 0 {
		to := targets.PopLSB()
		moves = p.appendLegal(moves, p.newMove(k, from, to, lookup))
	}
	return moves
}

// appendSlider expands the attacks of a sliding piece ray by ray. Along each
// ray only the farthest reachable square can hold a piece (the nearest
// blocker); the squares before it are empty and become quiet moves.
func (p *Position) appendSlider(moves []Move, k PieceKind, from Square, attacks Bitboard, lines ...Bitboard) []Move {
	below := from.Bitboard() - 1
	for _, line := range lines {
		ray := attacks & line
		low, high := ray&below, ray&^below
		if low != 0 {
			extreme := BitScanForward(low)
			low &^= extreme.Bitboard()
			moves = p.appendLegal(moves, p.newMove(k, from, extreme, true))
		}
		if high != 0 {
			extreme := BitScanReverse(high)
			high &^= extreme.Bitboard()
			moves = p.appendLegal(moves, p.newMove(k, from, extreme, true))
		}
		moves = p.appendTargets(moves, k, from, low|high, false)
	}
	return moves
}

var promotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

func (p *Position) appendPawnMoves(moves []Move, from Square, targets Bitboard, lookup bool) []Move {
	last := Rank8BB
	if p.side == Black {
		last = Rank1BB
	}
	for targets != 0 {
		to := targets.PopLSB()
		m := p.newMove(Pawn, from, to, lookup)
		if last.IsSet(to) {
			for _, promo := range promotionKinds {
				m.Promotion = promo
				moves = p.appendLegal(moves, m)
			}
			continue
		}
		moves = p.appendLegal(moves, m)
	}
	return moves
}

// appendEnPassant adds the en passant capture from sq when the target square
// is on one of the pawn's capture diagonals.
func (p *Position) appendEnPassant(moves []Move, from Square) []Move {
	ep := p.enPassant
	if ep == NoSquare || PawnCaptureSquares(p.side, from)&ep.Bitboard() == 0 {
		return moves
	}
	them := p.side.Other()
	if !p.board.Pieces(them, Pawn).IsSet(enPassantVictim(p.side, ep)) {
		return moves
	}
	m := p.newMove(Pawn, from, ep, false)
	m.Captured, m.CapturedColor = Pawn, them
	return p.appendLegal(moves, m)
}

// enPassantVictim returns the square of the pawn removed when a pawn of
// color c captures en passant on ep.
func enPassantVictim(c Color, ep Square) Square {
	if c == White {
		return ep - 8
	}
	return ep + 8
}

// appendCastling adds short or long castling for the king on from. The
// right must be held, the king must not be in check, the squares between
// king and rook must be empty and the square the king crosses must not be
// attacked; the destination is covered by the legality filter.
func (p *Position) appendCastling(moves []Move, from Square, short bool) []Move {
	us := p.side
	if !p.CanCastle(us, short) || p.isCheck {
		return moves
	}
	home, rank := E1, Rank1
	if us == Black {
		home, rank = E8, Rank8
	}
	if from != home {
		return moves
	}

	var between Bitboard
	var rookSq, transit, dest Square
	if short {
		rookSq, transit, dest = NewSquare(FileH, rank), home+1, home+2
		between = transit.Bitboard() | dest.Bitboard()
	} else {
		rookSq, transit, dest = NewSquare(FileA, rank), home-1, home-2
		between = transit.Bitboard() | dest.Bitboard() | (home - 3).Bitboard()
	}
	if p.board.Occupancy()&between != 0 || !p.board.Pieces(us, Rook).IsSet(rookSq) {
		return moves
	}
	if !p.IsLegal(p.newMove(King, home, transit, false)) {
		return moves
	}
	return p.appendLegal(moves, p.newMove(King, home, dest, false))
}

// IsLegal reports whether m leaves the mover's king unattacked. It applies m
// to a copy of the position and rescans every enemy piece's attacks.
func (p *Position) IsLegal(m Move) bool {
	next := *p
	next.apply(m, false)
	king := next.board.Pieces(m.Color, King)
	return !next.board.IsAttackedBy(m.Color.Other(), king)
}

// IsCheck reports whether the king of the side to move is attacked, by
// testing the null move of the king onto its own square.
func (p *Position) IsCheck() bool {
	kings := p.board.Pieces(p.side, King)
	if kings == 0 {
		return false
	}
	king := BitScanForward(kings)
	return !p.IsLegal(Move{
		From:          king,
		To:            king,
		Piece:         King,
		Captured:      NoPieceKind,
		Color:         p.side,
		CapturedColor: NoColor,
		Promotion:     NoPieceKind,
	})
}

// NoMoves reports whether the side to move has no legal move.
func (p *Position) NoMoves() bool {
	return len(p.GenerateMoves()) == 0
}

// IsCheckmate reports whether the side to move is checkmated.
func (p *Position) IsCheckmate() bool {
	return p.isCheck && p.NoMoves()
}

// IsStalemate reports whether the side to move is stalemated.
func (p *Position) IsStalemate() bool {
	return !p.isCheck && p.NoMoves()
}
