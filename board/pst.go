package board

// PieceValue holds base centipawn values per spec.md §4.5, indexed by
// PieceType (Knight..King; Empty is never looked up).
var PieceValue = [NumPieceTypes]int32{
	Knight: 310,
	Bishop: 320,
	Rook:   500,
	Queen:  900,
	Pawn:   100,
	King:   20000,
}

// mirror flips a square vertically (rank 1 <-> rank 8) so a single White-
// oriented piece-square table can be reused for Black, per spec.md §4.5's
// "mirrored vertically for BLACK".
func mirror(sq Square) Square { return sq ^ 56 }

// PSTMiddlegame / PSTEndgame are piece-square tables from White's
// perspective, indexed [PieceType][Square]. Grounded on engine/evaluation.go's
// PSQT_MG/PSQT_EG shape, reindexed to spec.md's PieceType ordinal order and
// values. Shared between the incremental material invariant (Position) and
// full phase-interpolated evaluation (search package), so both consult the
// same table rather than drifting apart.
var PSTMiddlegame = [NumPieceTypes][64]int32{
	Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -20, -20, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	Rook: {
		0, 0, 0, 5, 5, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-10, 5, 5, 5, 5, 5, 0, -10,
		0, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	King: {
		20, 30, 10, 0, 0, 10, 30, 20,
		20, 20, 0, 0, 0, 0, 20, 20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	},
}

var PSTEndgame = [NumPieceTypes][64]int32{
	Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		10, 10, 10, 10, 10, 10, 10, 10,
		15, 15, 20, 20, 20, 20, 15, 15,
		20, 20, 25, 30, 30, 25, 20, 20,
		30, 30, 35, 40, 40, 35, 30, 30,
		50, 50, 55, 60, 60, 55, 50, 50,
		80, 80, 80, 80, 80, 80, 80, 80,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Knight: PSTMiddlegame[Knight],
	Bishop: PSTMiddlegame[Bishop],
	Rook:   PSTMiddlegame[Rook],
	Queen:  PSTMiddlegame[Queen],
	King: {
		-50, -30, -30, -30, -30, -30, -30, -50,
		-30, -30, 0, 0, 0, 0, -30, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-50, -40, -30, -20, -20, -30, -40, -50,
	},
}

// PSTValue returns the piece-square bonus for a piece of type pt and color
// c standing on sq, from the requested table. Black uses the White table
// mirrored vertically.
func PSTValue(c Color, pt PieceType, sq Square, table *[NumPieceTypes][64]int32) int32 {
	if c == Black {
		sq = mirror(sq)
	}
	return table[pt][sq]
}
