package search

import (
	"math/bits"

	"github.com/gonzaloarro/MORA-CHESS-ENGINE/board"
)

// Mobility multipliers and flat bonuses, per spec.md §4.5.
const (
	knightMobilityWeight = 8
	sliderMobilityWeight = 4
	pawnMobilityWeight   = 4
	bishopPairBonus      = 32
	rookOpenFileBonus    = 40
	rookSemiOpenBonus    = 20
	sideToMoveBonus      = 25
	phaseBonusThreshold  = 0.20
)

// initialNonKingMaterial is the sum, across both sides, of every piece
// value except the king, in the starting position — the denominator of
// spec.md §4.5's phase-percentage formula.
const initialNonKingMaterial = 2 * (8*100 + 2*310 + 2*320 + 2*500 + 900)

func fullMaterial(p *board.Position, c board.Color) int32 {
	var total int32
	for pt := board.PieceType(0); pt < board.NumPieceTypes; pt++ {
		total += int32(bits.OnesCount64(uint64(p.PieceBB(c, board.PieceType(pt))))) * board.PieceValue[pt]
	}
	return total
}

func nonKingMaterial(p *board.Position, c board.Color) int32 {
	var total int32
	for pt := board.PieceType(0); pt < board.King; pt++ {
		total += int32(bits.OnesCount64(uint64(p.PieceBB(c, pt)))) * board.PieceValue[pt]
	}
	return total
}

// phaseWeight returns the middlegame weight in [0,1]; 1 = full material
// (opening), 0 = bare kings (endgame). Endgame weight is 1-phaseWeight.
func phaseWeight(p *board.Position) float64 {
	total := nonKingMaterial(p, board.White) + nonKingMaterial(p, board.Black)
	w := float64(total) / float64(initialNonKingMaterial)
	if w > 1 {
		w = 1
	}
	if w < 0 {
		w = 0
	}
	return w
}

// Evaluate returns a centipawn score from the side-to-move's perspective,
// per spec.md §4.5. Grounded on engine/evaluation.go's term list
// (material, PST, pawn structure, mobility, bishop pair, rook files, king
// safety, side-to-move bonus), restated against spec's exact constants.
func Evaluate(p *board.Position, pawnHash *PawnHashTable) int {
	mg := phaseWeight(p)
	eg := 1 - mg

	var total int32

	if p.HasMatingMaterial(board.White) {
		total += fullMaterial(p, board.White)
	}
	if p.HasMatingMaterial(board.Black) {
		total -= fullMaterial(p, board.Black)
	}

	occAll := p.AllOccupied()
	whitePawnAtt := board.PawnAttackSet(p.PieceBB(board.White, board.Pawn), board.White)
	blackPawnAtt := board.PawnAttackSet(p.PieceBB(board.Black, board.Pawn), board.Black)

	for c := board.Color(0); c < 2; c++ {
		sign := sideSign(c)
		own := p.Occupied(c)
		enemyPawnAtt := whitePawnAtt
		if c == board.White {
			enemyPawnAtt = blackPawnAtt
		}

		for pt := board.PieceType(0); pt < board.NumPieceTypes; pt++ {
			bb := uint64(p.PieceBB(c, pt))
			for bb != 0 {
				sqIdx := bits.TrailingZeros64(bb)
				bb &= bb - 1
				sq := board.Square(sqIdx)

				if pt == board.King {
					continue // handled via king safety / endgame PST below
				}

				mgVal := board.PSTValue(c, pt, sq, &board.PSTMiddlegame)
				egVal := board.PSTValue(c, pt, sq, &board.PSTEndgame)
				total += sign * int32(mg*float64(mgVal)+eg*float64(egVal))

				switch pt {
				case board.Knight:
					mobility := board.KnightAttacks(sq) &^ own &^ enemyPawnAtt
					total += sign * int32(bits.OnesCount64(uint64(mobility))) * knightMobilityWeight
				case board.Bishop:
					mobility := board.BishopAttacks(sq, occAll) &^ own
					total += sign * int32(bits.OnesCount64(uint64(mobility))) * sliderMobilityWeight
				case board.Rook:
					mobility := board.RookAttacks(sq, occAll) &^ own
					total += sign * int32(bits.OnesCount64(uint64(mobility))) * sliderMobilityWeight
					total += sign * rookFileBonus(p, c, sq)
				case board.Queen:
					mobility := board.QueenAttacks(sq, occAll) &^ own
					total += sign * int32(bits.OnesCount64(uint64(mobility))) * sliderMobilityWeight
				}
			}
		}

		if bits.OnesCount64(uint64(p.PieceBB(c, board.Bishop))) >= 2 {
			total += sign * bishopPairBonus
		}

		pushTargets := uint64(0)
		pawns := p.PieceBB(c, board.Pawn)
		empty := ^occAll
		if c == board.White {
			pushTargets = uint64((pawns << 8) & empty)
		} else {
			pushTargets = uint64((pawns >> 8) & empty)
		}
		total += sign * int32(bits.OnesCount64(pushTargets)) * pawnMobilityWeight

		// King term: middlegame safety interpolated with endgame PST.
		kingSq := p.KingSquare(c)
		kingEg := board.PSTValue(c, board.King, kingSq, &board.PSTEndgame)
		total += sign * int32(eg*float64(kingEg))
	}

	info := pawnHash.pawnsInfo(p)
	total += info.Score

	ksWhite := kingSafetyScore(p, board.White, &info)
	ksBlack := kingSafetyScore(p, board.Black, &info)
	total += int32(mg * float64(ksWhite-ksBlack))

	var result int
	if p.SideToMove() == board.White {
		result = int(total)
	} else {
		result = int(-total)
	}

	if mg > phaseBonusThreshold {
		result += sideToMoveBonus
	}

	return result
}

func rookFileBonus(p *board.Position, c board.Color, sq board.Square) int32 {
	file := sq.File()
	fileBB := board.Bitboard(0x0101010101010101) << uint(file)
	ownPawnsOnFile := p.PieceBB(c, board.Pawn) & fileBB
	enemyPawnsOnFile := p.PieceBB(c.Opponent(), board.Pawn) & fileBB
	if ownPawnsOnFile == 0 && enemyPawnsOnFile == 0 {
		return rookOpenFileBonus
	}
	if ownPawnsOnFile == 0 {
		return rookSemiOpenBonus
	}
	return 0
}

// MaterialOnly is the cheap stand-pat estimate quiescence uses before
// committing to the full Evaluate pass, per spec.md §4.7.
func MaterialOnly(p *board.Position) int {
	var total int32
	if p.HasMatingMaterial(board.White) {
		total += fullMaterial(p, board.White)
	}
	if p.HasMatingMaterial(board.Black) {
		total -= fullMaterial(p, board.Black)
	}
	if p.SideToMove() == board.White {
		return int(total)
	}
	return int(-total)
}
