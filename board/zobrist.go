package board

import "math/rand"

// Zobrist keys. Grounded on goosemg/zobrist.go's seeding idiom (same fixed
// seed, same table shapes) with one addition: pawnsKey, a standalone
// pawn-only hash the teacher's Board never tracked, required for the
// pawn-structure cache (spec.md §3, §4.5).
var pieceSquareKey [2][NumPieceTypes][64]uint64
var castlingKeyTable [16]uint64
var epFileKeyTable [8]uint64
var sideToMoveKey uint64

func init() {
	rnd := rand.New(rand.NewSource(0xC0DE))

	for c := 0; c < 2; c++ {
		for pt := 0; pt < NumPieceTypes; pt++ {
			for sq := 0; sq < 64; sq++ {
				pieceSquareKey[c][pt][sq] = rnd.Uint64()
			}
		}
	}
	for i := range castlingKeyTable {
		castlingKeyTable[i] = rnd.Uint64()
	}
	for i := range epFileKeyTable {
		epFileKeyTable[i] = rnd.Uint64()
	}
	sideToMoveKey = rnd.Uint64()
}

// pieceKey returns the Zobrist key for a piece of type pt and color c on sq.
func pieceKey(c Color, pt PieceType, sq Square) uint64 {
	return pieceSquareKey[c][pt][sq]
}

// castlingKey returns the Zobrist key contribution for a given rights mask.
func castlingKey(rights CastlingRights) uint64 {
	return castlingKeyTable[rights]
}

// epKey returns the Zobrist key contribution for an en-passant target
// square, or 0 if sq is NoSquare.
func epKey(sq Square) uint64 {
	if sq == NoSquare {
		return 0
	}
	return epFileKeyTable[sq.File()]
}
