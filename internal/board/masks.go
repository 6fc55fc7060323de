package board

// File masks
const (
	FileABB Bitboard = 0x0101010101010101
	FileBBB Bitboard = 0x0202020202020202
	FileCBB Bitboard = 0x0404040404040404
	FileDBB Bitboard = 0x0808080808080808
	FileEBB Bitboard = 0x1010101010101010
	FileFBB Bitboard = 0x2020202020202020
	FileGBB Bitboard = 0x4040404040404040
	FileHBB Bitboard = 0x8080808080808080
)

// Rank masks
const (
	Rank1BB Bitboard = 0x00000000000000FF
	Rank2BB Bitboard = 0x000000000000FF00
	Rank3BB Bitboard = 0x0000000000FF0000
	Rank4BB Bitboard = 0x00000000FF000000
	Rank5BB Bitboard = 0x000000FF00000000
	Rank6BB Bitboard = 0x0000FF0000000000
	Rank7BB Bitboard = 0x00FF000000000000
	Rank8BB Bitboard = 0xFF00000000000000
)

const (
	Empty    Bitboard = 0
	Universe Bitboard = 0xFFFFFFFFFFFFFFFF

	NotFileA  Bitboard = ^FileABB
	NotFileH  Bitboard = ^FileHBB
	NotFileAB Bitboard = ^(FileABB | FileBBB)
	NotFileGH Bitboard = ^(FileGBB | FileHBB)

	// Edges is the board frame; edge squares never block a ray further.
	Edges Bitboard = FileABB | FileHBB | Rank1BB | Rank8BB
)

// FileMasks is indexed by File.
var FileMasks = [8]Bitboard{FileABB, FileBBB, FileCBB, FileDBB, FileEBB, FileFBB, FileGBB, FileHBB}

// RankMasks is indexed by Rank.
var RankMasks = [8]Bitboard{Rank1BB, Rank2BB, Rank3BB, Rank4BB, Rank5BB, Rank6BB, Rank7BB, Rank8BB}

// DiagonalMasks holds the a1-h8 direction diagonals, indexed by 7-file+rank
// (0 is the single square h1, 7 the long diagonal a1-h8, 14 the square a8).
var DiagonalMasks = [15]Bitboard{
	0x0000000000000080,
	0x0000000000008040,
	0x0000000000804020,
	0x0000000080402010,
	0x0000008040201008,
	0x0000804020100804,
	0x0080402010080402,
	0x8040201008040201,
	0x4020100804020100,
	0x2010080402010000,
	0x1008040201000000,
	0x0804020100000000,
	0x0402010000000000,
	0x0201000000000000,
	0x0100000000000000,
}

// AntiDiagonalMasks holds the h1-a8 direction diagonals, indexed by file+rank
// (0 is the single square a1, 7 the long diagonal h1-a8, 14 the square h8).
var AntiDiagonalMasks = [15]Bitboard{
	0x0000000000000001,
	0x0000000000000102,
	0x0000000000010204,
	0x0000000001020408,
	0x0000000102040810,
	0x0000010204081020,
	0x0001020408102040,
	0x0102040810204080,
	0x0204081020408000,
	0x0408102040800000,
	0x0810204080000000,
	0x1020408000000000,
	0x2040800000000000,
	0x4080000000000000,
	0x8000000000000000,
}

// FileMask returns the file through sq.
func FileMask(sq Square) Bitboard {
	return FileMasks[sq.File()]
}

// RankMask returns the rank through sq.
func RankMask(sq Square) Bitboard {
	return RankMasks[sq.Rank()]
}

// DiagonalMask returns the a1-h8 direction diagonal through sq.
func DiagonalMask(sq Square) Bitboard {
	return DiagonalMasks[7-int(sq.File())+int(sq.Rank())]
}

// AntiDiagonalMask returns the h1-a8 direction diagonal through sq.
func AntiDiagonalMask(sq Square) Bitboard {
	return AntiDiagonalMasks[int(sq.File())+int(sq.Rank())]
}
