package search

import (
	"math/bits"

	"github.com/gonzaloarro/MORA-CHESS-ENGINE/board"
)

// King-safety constants, per spec.md §4.5.
const (
	kingInCenterPenalty   = -40
	shelterRank2Bonus     = 20
	shelterRank3Bonus     = 10
	stormCloseRankPenalty = -25
	stormMediumPenalty    = -15
	stormLongPenalty      = -5
	flankFileEnemyPenalty = -30
	flankFileOwnPenalty   = -20
	frontFileEnemyPenalty = -50
	frontFileOwnPenalty   = -60
	queenZoneAttackPenalty = -30
)

// kingSafetyScore returns the unweighted king-safety term for c's king, from
// c's point of view (negative is worse for c). Evaluate subtracts Black's
// term from White's and weights the difference by the middlegame phase.
func kingSafetyScore(p *board.Position, c board.Color, info *PawnsInfo) int32 {
	them := c.Opponent()
	kingSq := p.KingSquare(c)
	file := kingSq.File()

	// Wing detection: files 0-2 queenside, 5-7 kingside, 3-4 center.
	if file >= 3 && file <= 4 {
		return kingInCenterPenalty
	}

	var score int32
	wingFiles := [3]int{file - 1, file, file + 1}
	if file == 0 {
		wingFiles = [3]int{0, 0, 1}
	} else if file == 7 {
		wingFiles = [3]int{6, 7, 7}
	}

	ownPawns := uint64(p.PieceBB(c, board.Pawn))
	enemyPawns := uint64(p.PieceBB(them, board.Pawn))

	shelterRank2, shelterRank3 := 1, 2 // 0-based rank indexes of ranks 2 and 3
	if c == board.Black {
		shelterRank2, shelterRank3 = 6, 5
	}

	for _, f := range wingFiles {
		fileMaskBB := uint64(0x0101010101010101) << uint(f)
		own := ownPawns & fileMaskBB
		if own == 0 {
			// Semi-open file: no own pawn shelters this file.
			if f == file {
				score += frontFileOwnPenalty
			} else {
				score += flankFileOwnPenalty
			}
		} else {
			for own != 0 {
				sq := bits.TrailingZeros64(own)
				own &= own - 1
				rank := sq >> 3
				if rank == shelterRank2 {
					score += shelterRank2Bonus
				} else if rank == shelterRank3 {
					score += shelterRank3Bonus
				}
			}
		}

		enemy := enemyPawns & fileMaskBB
		if enemy == 0 {
			if f == file {
				score += frontFileEnemyPenalty
			} else {
				score += flankFileEnemyPenalty
			}
			continue
		}
		for enemy != 0 {
			sq := bits.TrailingZeros64(enemy)
			enemy &= enemy - 1
			rank := sq >> 3
			dist := rank - shelterRank2
			if dist < 0 {
				dist = -dist
			}
			switch {
			case dist <= 1:
				score += stormCloseRankPenalty
			case dist <= 3:
				score += stormMediumPenalty
			default:
				score += stormLongPenalty
			}
		}
	}

	enemyQueens := p.PieceBB(them, board.Queen)
	q := uint64(enemyQueens)
	for q != 0 {
		sq := board.Square(bits.TrailingZeros64(q))
		q &= q - 1
		if board.QueenAttacks(sq, p.AllOccupied())&board.KingAttacks(kingSq) != 0 {
			score += queenZoneAttackPenalty
		}
	}

	_ = info
	return score
}
