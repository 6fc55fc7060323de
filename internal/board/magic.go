package board

// Fixed magic multipliers for the relevant-occupancy hash. Each constant maps
// every occupancy subset of its square's mask to a distinct slot of a table
// sized by the relevant bit count (or to a slot shared by an identical
// attack set).

var rookRelevantBits = [64]uint8{
	12, 11, 11, 11, 11, 11, 11, 12,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	12, 11, 11, 11, 11, 11, 11, 12,
}

var bishopRelevantBits = [64]uint8{
	6, 5, 5, 5, 5, 5, 5, 6,
	5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 7, 7, 7, 7, 5, 5,
	5, 5, 7, 9, 9, 7, 5, 5,
	5, 5, 7, 9, 9, 7, 5, 5,
	5, 5, 7, 7, 7, 7, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5,
	6, 5, 5, 5, 5, 5, 5, 6,
}

var rookMagicNumbers = [64]uint64{
	0x0a8002c000108020, 0x06c00049b0002001, 0x0100200010090040, 0x2480041000800801,
	0x0280028004000800, 0x0900410008040022, 0x0280020001001080, 0x2880002041000080,
	0xa000800080400034, 0x0004808020004000, 0x2290802004801000, 0x0411000d00100020,
	0x0402800800040080, 0x000b000401004208, 0x2409000100040200, 0x0001002100004082,
	0x0022878001e24000, 0x1090810021004010, 0x0801030040200012, 0x0500808008001000,
	0x0a08018014000880, 0x8000808004000200, 0x0201008080010200, 0x0801020000441091,
	0x0000800080204005, 0x1040200040100048, 0x0000120200402082, 0x0d14880480100080,
	0x0012040280080080, 0x0100040080020080, 0x9020010080800200, 0x0813241200148449,
	0x0491604001800080, 0x0100401000402001, 0x4820010021001040, 0x0400402202000812,
	0x0209009005000802, 0x0810800601800400, 0x4301083214000150, 0x204026458e001401,
	0x0040204000808000, 0x8001008040010020, 0x8410820820420010, 0x1003001000090020,
	0x0804040008008080, 0x0012000810020004, 0x1000100200040208, 0x430000a044020001,
	0x0280009023410300, 0x00e0100040002240, 0x0000200100401700, 0x2244100408008080,
	0x0008000400801980, 0x0002000810040200, 0x8010100228810400, 0x2000009044210200,
	0x4080008040102101, 0x0040002080411d01, 0x2005524060000901, 0x0502001008400422,
	0x489a000810200402, 0x0001004400080a13, 0x4000011008020084, 0x0026002114058042,
}

var bishopMagicNumbers = [64]uint64{
	0x89a1121896040240, 0x2004844802002010, 0x2068080051921000, 0x62880a0220200808,
	0x0004042004000000, 0x0100822020200011, 0xc00444222012000a, 0x0028808801216001,
	0x0400492088408100, 0x0201c401040c0084, 0x00840800910a0010, 0x0000082080240060,
	0x2000840504006000, 0x30010c4108405004, 0x1008005410080802, 0x8144042209100900,
	0x0208081020014400, 0x004800201208ca00, 0x0f18140408012008, 0x1004002802102001,
	0x0841000820080811, 0x0040200200a42008, 0x0000800054042000, 0x88010400410c9000,
	0x0520040470104290, 0x1004040051500081, 0x2002081833080021, 0x000400c00c010142,
	0x941408200c002000, 0x0658810000806011, 0x0188071040440a00, 0x4800404002011c00,
	0x0104442040404200, 0x0511080202091021, 0x0004022401120400, 0x80c0040400080120,
	0x8040010040820802, 0x0480810700020090, 0x0102008e00040242, 0x0809005202050100,
	0x8002024220104080, 0x0431008804142000, 0x0019001802081400, 0x0200014208040080,
	0x3308082008200100, 0x041010500040c020, 0x4012020c04210308, 0x208220a202004080,
	0x0111040120082000, 0x6803040141280a00, 0x2101004202410000, 0x8200000041108022,
	0x0000021082088000, 0x0002410204010040, 0x0040100400809000, 0x0822088220820214,
	0x0040808090012004, 0x00910224040218c9, 0x0402814422015008, 0x0090014004842410,
	0x0001000042304105, 0x0010008830412a00, 0x2520081090008908, 0x40102000a0a60140,
}

// occupancySubset returns the index-th subset of mask: bit i of index
// decides whether the i-th lowest square of mask is occupied.
func occupancySubset(index int, mask Bitboard) Bitboard {
	var occ Bitboard
	for i := 0; mask != 0; i++ {
		sq := mask.PopLSB()
		if index&(1<<i) != 0 {
			occ |= sq.Bitboard()
		}
	}
	return occ
}

// slidingAttacksSlow ray-casts from sq in each (df, dr) direction until the
// board edge or the first occupied square, which is included.
func slidingAttacksSlow(sq Square, occupied Bitboard, dirs [4][2]int) Bitboard {
	var attacks Bitboard
	for _, d := range dirs {
		f, r := int(sq.File())+d[0], int(sq.Rank())+d[1]
		for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
			bb := NewSquare(File(f), Rank(r)).Bitboard()
			attacks |= bb
			if occupied&bb != 0 {
				break
			}
			f += d[0]
			r += d[1]
		}
	}
	return attacks
}

var (
	rookDirections   = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	bishopDirections = [4][2]int{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
)

func rookAttacksSlow(sq Square, occupied Bitboard) Bitboard {
	return slidingAttacksSlow(sq, occupied, rookDirections)
}

func bishopAttacksSlow(sq Square, occupied Bitboard) Bitboard {
	return slidingAttacksSlow(sq, occupied, bishopDirections)
}

// rookMask returns the relevant occupancy mask for a rook on sq: its empty
// board rays without the last square of each ray.
func rookMask(sq Square) Bitboard {
	file, rank := FileMask(sq), RankMask(sq)
	vertical := file &^ (Rank1BB | Rank8BB)
	horizontal := rank &^ (FileABB | FileHBB)
	return (vertical | horizontal) &^ sq.Bitboard()
}

// bishopMask returns the relevant occupancy mask for a bishop on sq.
func bishopMask(sq Square) Bitboard {
	return bishopAttacksSlow(sq, 0) &^ Edges
}
