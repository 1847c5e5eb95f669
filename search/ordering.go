package search

import "github.com/gonzaloarro/MORA-CHESS-ENGINE/board"

// Move-ordering score bands for quiet moves during search, per spec.md
// §4.7. Captures/promotions already carry their generation-time score
// (board/movegen.go's MVV/LVA + promotion bonuses, based around 2048+).
const (
	pvMoveScore     = 5000
	killerMoveScore = 1024
)

// scoreQuietMoves overlays PV/killer/history scores onto the quiet moves
// (score 0 at generation time) in moves, in place.
func scoreQuietMoves(moves []board.Move, pv board.Move, killers *KillerTable, history *HistoryTable, ply int) {
	for i, m := range moves {
		if m.IsCapture() || m.IsPromotion() {
			continue
		}
		if pv != board.NullMove && m.Equal(pv) {
			moves[i] = m.WithScore(pvMoveScore)
			continue
		}
		if _, ok := killers.Is(ply, m); ok {
			moves[i] = m.WithScore(killerMoveScore)
			continue
		}
		hs := int(history.Score(m.From(), m.To()))
		moves[i] = m.WithScore(hs)
	}
}

// pickBest performs one step of a selection sort: it finds the
// highest-scoring move in moves[from:] and swaps it into position from,
// per spec.md §4.7's explicit "selection sort" move-picking description.
func pickBest(moves []board.Move, from int) {
	best := from
	for i := from + 1; i < len(moves); i++ {
		if moves[i].Score() > moves[best].Score() {
			best = i
		}
	}
	moves[from], moves[best] = moves[best], moves[from]
}
