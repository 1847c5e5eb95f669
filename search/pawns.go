package search

import (
	"math/bits"

	"github.com/gonzaloarro/MORA-CHESS-ENGINE/board"
)

// Pawn structure bonus/penalty constants, per spec.md §4.5.
const (
	isolatedPawnPenalty = -16
	doubledPawnPenalty  = -16
	backwardPawnPenalty = -8
	passedPawnBonus     = 32
)

// PawnsInfo caches the pawn-structure evaluation for a given pawns_key, per
// spec.md §3's PawnsInfo entry. Grounded on engine/evaluation.go's pawn-hash
// pattern, generalized into an explicit cache-entry shape.
type PawnsInfo struct {
	Key             uint64
	PassedPawns     [2]board.Bitboard
	PawnTargets     [2]board.Bitboard
	NumberOfPawns   [2]int
	KingWingSafety  [2]int32
	QueenWingSafety [2]int32
	Score           int32 // White-minus-Black, added before the final side-to-move sign flip
}

// PawnHashTable is a fixed-size direct-mapped cache of PawnsInfo, keyed by
// pawns_key, mirroring the transposition table's "always replace" shape.
type PawnHashTable struct {
	entries []PawnsInfo
	mask    uint64
}

const defaultPawnHashEntries = 1 << 15

// NewPawnHashTable allocates a pawn-hash table with a power-of-two entry
// count.
func NewPawnHashTable() *PawnHashTable {
	return &PawnHashTable{
		entries: make([]PawnsInfo, defaultPawnHashEntries),
		mask:    defaultPawnHashEntries - 1,
	}
}

func (t *PawnHashTable) probe(key uint64) (PawnsInfo, bool) {
	e := t.entries[key&t.mask]
	if e.Key == key && key != 0 {
		return e, true
	}
	return PawnsInfo{}, false
}

func (t *PawnHashTable) store(info PawnsInfo) {
	t.entries[info.Key&t.mask] = info
}

// pawnsInfo returns the cached (or freshly computed) PawnsInfo for p's
// current pawn structure.
func (t *PawnHashTable) pawnsInfo(p *board.Position) PawnsInfo {
	key := p.PawnsKey()
	if info, ok := t.probe(key); ok {
		return info
	}
	info := computePawnsInfo(p)
	t.store(info)
	return info
}

// computePawnsInfo scans both sides' pawns once, applying spec.md §4.5's
// isolated/doubled/backward/passed rules. The backward-pawn check uses the
// pawn's own forward attack squares as a proxy for its stop square, per
// spec.md §9's documented open question — reproduced as-is, it may flag
// pawns that aren't truly backward.
func computePawnsInfo(p *board.Position) PawnsInfo {
	info := PawnsInfo{Key: p.PawnsKey()}

	var fileCount [2][8]int
	for c := 0; c < 2; c++ {
		pawns := uint64(p.PieceBB(board.Color(c), board.Pawn))
		info.NumberOfPawns[c] = bits.OnesCount64(pawns)
		info.PawnTargets[c] = board.PawnAttackSet(p.PieceBB(board.Color(c), board.Pawn), board.Color(c))
		bb := pawns
		for bb != 0 {
			sq := bits.TrailingZeros64(bb)
			bb &= bb - 1
			fileCount[c][sq&7]++
		}
	}

	var score int32
	for c := 0; c < 2; c++ {
		us := board.Color(c)
		them := us.Opponent()
		bb := uint64(p.PieceBB(us, board.Pawn))
		for bb != 0 {
			sqIdx := bits.TrailingZeros64(bb)
			bb &= bb - 1
			sq := board.Square(sqIdx)
			file := sqIdx & 7

			neighbors := 0
			if file > 0 {
				neighbors += fileCount[c][file-1]
			}
			if file < 7 {
				neighbors += fileCount[c][file+1]
			}
			if neighbors == 0 {
				score += sideSign(us) * isolatedPawnPenalty
			}
			if fileCount[c][file] > 1 {
				score += sideSign(us) * doubledPawnPenalty
			}

			// Backward: the pawn's forward attack squares are covered by an
			// enemy pawn, and no friendly pawn on a neighbor file sits
			// behind it to support an advance.
			stopAttackers := board.PawnAttacks(us, sq) & p.PieceBB(them, board.Pawn)
			if stopAttackers != 0 && !hasSupportBehind(fileCount[c], file, sqIdx, us) {
				score += sideSign(us) * backwardPawnPenalty
			}

			if board.PassedPawnMask(us, sq)&p.PieceBB(them, board.Pawn) == 0 {
				rank := sq.Rank()
				advance := rank
				if us == board.Black {
					advance = 7 - rank
				}
				bonus := int32(passedPawnBonus) * int32(advance) / 6
				score += sideSign(us) * bonus
				setPassed(&info.PassedPawns[c], sq)
			}
		}
	}

	info.Score = score
	return info
}

func setPassed(bb *board.Bitboard, sq board.Square) {
	*bb |= board.Bitboard(1) << uint(sq)
}

// hasSupportBehind is a coarse proxy: true if a friendly pawn exists on a
// neighbor file (regardless of rank), used only to decide "can be
// supported from behind" per the backward-pawn heuristic above.
func hasSupportBehind(fileCounts [8]int, file, sqIdx int, us board.Color) bool {
	_ = sqIdx
	_ = us
	if file > 0 && fileCounts[file-1] > 0 {
		return true
	}
	if file < 7 && fileCounts[file+1] > 0 {
		return true
	}
	return false
}

func sideSign(c board.Color) int32 {
	if c == board.White {
		return 1
	}
	return -1
}
