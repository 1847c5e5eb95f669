package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/gonzaloarro/MORA-CHESS-ENGINE/board"
)

// Search-wide constants, per spec.md §4.7/§6.
const (
	MateScore       = 32000
	infBound        = 1000000
	DrawScore       = 0
	DefaultMaxDepth = 32
	nullMoveR       = 2
	lmrMinMoveIndex = 4
	lmrMinDepth     = 2
	timeoutPollMask = 2047 // poll every 2048 nodes
	lazyEvalMargin  = 100
	deltaPruneMargin = 900
	captureSeeMargin = 200
)

func isMateScore(score int) bool {
	abs := score
	if abs < 0 {
		abs = -abs
	}
	return abs >= MateScore-MaxPly
}

// Searcher bundles the process-wide search state: transposition table,
// pawn hash, killer/history tables and the time manager. Grounded on
// engine/search.go's shape (TT/timeHandler/GlobalStop globals), threaded
// explicitly through a struct instead of literal package globals per
// spec.md §9's "prefer a single engine context" design note.
type Searcher struct {
	TT       *TranspositionTable
	PawnHash *PawnHashTable
	Killers  *KillerTable
	History  *HistoryTable
	Time     *Manager

	nodes   uint64
	stopped bool
}

// NewSearcher builds a Searcher with a default-sized (128MB) TT.
func NewSearcher() *Searcher {
	return &Searcher{
		TT:       NewTranspositionTable(128),
		PawnHash: NewPawnHashTable(),
		Killers:  NewKillerTable(),
		History:  NewHistoryTable(),
		Time:     NewManager(),
	}
}

// NewGame resets all process-wide search state between games.
func (s *Searcher) NewGame() {
	s.TT.Clear()
	s.Killers.Reset()
	s.History.Reset()
}

// Stop requests cooperative cancellation of any in-progress search.
func (s *Searcher) Stop() { s.Time.Stop() }

// Nodes returns the node count of the most recent search.
func (s *Searcher) Nodes() uint64 { return s.nodes }

// Search runs iterative deepening from depth 1 to maxDepth, emitting an
// `info` line per completed iteration and returning the best move found so
// far when time runs out, per spec.md §4.7.
func (s *Searcher) Search(pos *board.Position, maxDepth int) board.Move {
	s.nodes = 0
	s.stopped = false
	pos.SetSearchPly(0)

	var best board.Move
	if fallback := board.GenerateMoves(pos); len(fallback) > 0 {
		for _, m := range fallback {
			if pos.MakeMove(m) {
				pos.UndoMove()
				best = m
				break
			}
		}
	}

	startTime := time.Now()
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	for depth := 1; depth <= maxDepth; depth++ {
		score := s.alphabeta(pos, -infBound, infBound, depth, 0, true)
		if s.stopped {
			break
		}

		pv := s.TT.ExtractPV(pos, depth)
		if len(pv) > 0 {
			best = pv[0]
		}

		elapsed := time.Since(startTime)
		fmt.Printf("info depth %d score %s nodes %d time %d nps %d pv %s\n",
			depth, formatScore(score), s.nodes, elapsed.Milliseconds(), nps(s.nodes, elapsed), formatPV(pv))

		if float64(elapsed.Milliseconds())*2 > float64(s.Time.BudgetMS()) {
			break
		}
	}

	return best
}

// alphabeta is a negamax search with null-move pruning, PVS and late-move
// reductions, per spec.md §4.7. Grounded on engine/search.go's
// rootsearch/alphabeta shape, trimmed to the heuristic set SPEC_FULL.md §11
// names (no aspiration windows, RFP, LMP, singular extensions, IID, or
// SEE-based pruning).
func (s *Searcher) alphabeta(pos *board.Position, alpha, beta, depth, ply int, isRoot bool) int {
	s.nodes++
	if s.nodes&timeoutPollMask == 0 && s.Time.TimedOut() {
		s.stopped = true
		return 0
	}

	if !isRoot && (pos.IsFiftyMoveDraw() || pos.IsRepetition()) {
		return DrawScore
	}

	pvMove := board.NullMove
	if score, mv, found := s.TT.Probe(pos.PositionKey(), depth, alpha, beta, ply); found {
		pvMove = mv
		if !isRoot && score != NoCutoff {
			return score
		}
	}

	inCheck := pos.InCheck(pos.SideToMove())
	if inCheck {
		depth++
	}

	if depth <= 0 {
		return s.quiescence(pos, alpha, beta, ply)
	}

	if !inCheck && !isRoot && depth > nullMoveR && !pos.Endgame() {
		pos.MakeNullMove()
		score := -s.alphabeta(pos, -beta, -beta+1, depth-nullMoveR-1, ply+1, false)
		pos.UndoNullMove()
		if s.stopped {
			return 0
		}
		if score >= beta && !isMateScore(score) {
			return beta
		}
	}

	moves := board.GenerateMoves(pos)
	scoreQuietMoves(moves, pvMove, s.Killers, s.History, ply)

	bestMove := board.NullMove
	bestScore := -infBound
	nodeType := NodeAlpha
	legalCount := 0

	for i := range moves {
		pickBest(moves, i)
		m := moves[i]
		if !pos.MakeMove(m) {
			continue
		}
		legalCount++

		var score int
		if legalCount == 1 {
			score = -s.alphabeta(pos, -beta, -alpha, depth-1, ply+1, false)
		} else {
			reduction := 0
			if legalCount >= lmrMinMoveIndex && !inCheck && !m.IsCapture() && depth > lmrMinDepth {
				reduction = 1
			}
			score = -s.alphabeta(pos, -alpha-1, -alpha, depth-1-reduction, ply+1, false)
			if score > alpha && (reduction > 0 || score < beta) {
				score = -s.alphabeta(pos, -beta, -alpha, depth-1, ply+1, false)
			}
		}

		pos.UndoMove()
		if s.stopped {
			return 0
		}

		if score >= beta {
			if !m.IsCapture() && !m.IsPromotion() {
				s.Killers.Store(ply, m)
				s.History.Add(m.From(), m.To(), depth)
			}
			s.TT.Store(pos.PositionKey(), m, beta, depth, NodeBeta, ply)
			return beta
		}
		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
			nodeType = NodeExact
		}
	}

	if legalCount == 0 {
		if inCheck {
			return -MateScore + ply
		}
		return DrawScore
	}

	s.TT.Store(pos.PositionKey(), bestMove, alpha, depth, nodeType, ply)
	return alpha
}

// quiescence extends the search past depth=0 through captures and
// promotions (or all moves when in check), per spec.md §4.7.
func (s *Searcher) quiescence(pos *board.Position, alpha, beta, ply int) int {
	s.nodes++
	if s.nodes&timeoutPollMask == 0 && s.Time.TimedOut() {
		s.stopped = true
		return 0
	}

	if !pos.HasMatingMaterial(board.White) && !pos.HasMatingMaterial(board.Black) {
		return DrawScore
	}

	standPat := MaterialOnly(pos)
	if standPat >= beta+lazyEvalMargin {
		return beta
	}

	full := Evaluate(pos, s.PawnHash)
	if full >= beta {
		return beta
	}
	if full < alpha-deltaPruneMargin {
		return alpha
	}
	if full > alpha {
		alpha = full
	}

	inCheck := pos.InCheck(pos.SideToMove())
	var moves []board.Move
	if inCheck {
		// Falls back to full pseudo-legal generation without a dedicated
		// evasion generator, per spec.md §9 — correct but slow by design.
		moves = board.GenerateMoves(pos)
	} else {
		moves = board.GenerateCaptures(pos)
		moves = append(moves, board.GeneratePromotions(pos)...)
	}
	scoreQuietMoves(moves, board.NullMove, s.Killers, s.History, ply)

	for i := range moves {
		pickBest(moves, i)
		m := moves[i]

		if !inCheck && m.IsCapture() {
			capturedPT := pos.PieceOn(m.To())
			capturedVal := int(board.PieceValue[board.Pawn])
			if capturedPT != board.Empty {
				capturedVal = int(board.PieceValue[capturedPT])
			}
			if capturedVal+captureSeeMargin+full < alpha {
				continue
			}
		}

		if !pos.MakeMove(m) {
			continue
		}
		score := -s.quiescence(pos, -beta, -alpha, ply+1)
		pos.UndoMove()
		if s.stopped {
			return 0
		}

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

func formatScore(score int) string {
	if isMateScore(score) {
		abs := score
		if abs < 0 {
			abs = -abs
		}
		mateIn := (MateScore-abs)/2 + 1
		if score < 0 {
			mateIn = -mateIn
		}
		return fmt.Sprintf("mate %d", mateIn)
	}
	return fmt.Sprintf("cp %d", score)
}

func formatPV(pv []board.Move) string {
	parts := make([]string, len(pv))
	for i, m := range pv {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

func nps(nodes uint64, elapsed time.Duration) uint64 {
	ms := elapsed.Milliseconds()
	if ms == 0 {
		ms = 1
	}
	return nodes * 1000 / uint64(ms)
}
