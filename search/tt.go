package search

import "github.com/gonzaloarro/MORA-CHESS-ENGINE/board"

// Node types for transposition entries, per spec.md §3.
type NodeType uint8

const (
	NodeExact NodeType = iota
	NodeAlpha
	NodeBeta
)

// NoCutoff is the probe sentinel meaning "no usable cutoff score".
const NoCutoff = -1

// TTEntry is a single transposition-table slot, per spec.md §3.
type TTEntry struct {
	Key      uint64
	BestMove board.Move
	Score    int
	Depth    int
	NodeType NodeType
	valid    bool
}

const ttEntrySize = 32 // approximate bytes per slot, for Hash-MB sizing

// TranspositionTable is a flat always-replace array indexed by
// key mod capacity, per spec.md §4.6. The teacher's clustered/least-depth-
// replace refinement (engine/transposition.go) is deliberately not reused —
// spec mandates unconditional replace-on-collision.
type TranspositionTable struct {
	entries []TTEntry
}

// NewTranspositionTable allocates a table sized by the UCI Hash option in
// megabytes, clamped to [1, 1024] by the caller.
func NewTranspositionTable(mb int) *TranspositionTable {
	capacity := (mb * 1024 * 1024) / ttEntrySize
	if capacity < 1 {
		capacity = 1
	}
	return &TranspositionTable{entries: make([]TTEntry, capacity)}
}

func (t *TranspositionTable) index(key uint64) uint64 {
	return key % uint64(len(t.entries))
}

// Clear resets every slot, used by ucinewgame.
func (t *TranspositionTable) Clear() {
	for i := range t.entries {
		t.entries[i] = TTEntry{}
	}
}

// Resize reallocates the table for a new Hash MB value.
func (t *TranspositionTable) Resize(mb int) {
	capacity := (mb * 1024 * 1024) / ttEntrySize
	if capacity < 1 {
		capacity = 1
	}
	t.entries = make([]TTEntry, capacity)
}

// Store overwrites the slot for key unconditionally ("always replace").
// Mate scores are stored ply-adjusted (root-relative, as the search produces
// them, becomes relative to the storing node; Probe converts back), matching the teacher's engine/transposition.go rather
// than spec.md §9's literal "the source does not adjust" description — see
// DESIGN.md for why this repo keeps the teacher's adjustment.
func (t *TranspositionTable) Store(key uint64, best board.Move, score, depth int, nodeType NodeType, ply int) {
	adjusted := score
	if isMateScore(score) {
		if score > 0 {
			adjusted = score + ply
		} else {
			adjusted = score - ply
		}
	}
	t.entries[t.index(key)] = TTEntry{
		Key:      key,
		BestMove: best,
		Score:    adjusted,
		Depth:    depth,
		NodeType: nodeType,
		valid:    true,
	}
}

// Probe returns (score, pvMove, found). score is NoCutoff when the entry
// cannot be used as a cutoff at the requested depth/window, per spec.md
// §4.6; pvMove is populated whenever the key matches regardless of depth.
func (t *TranspositionTable) Probe(key uint64, depth, alpha, beta, ply int) (int, board.Move, bool) {
	e := &t.entries[t.index(key)]
	if !e.valid || e.Key != key {
		return NoCutoff, board.NullMove, false
	}

	pv := e.BestMove

	if e.Depth < depth {
		return NoCutoff, pv, true
	}

	score := e.Score
	if isMateScore(score) {
		if score > 0 {
			score -= ply
		} else {
			score += ply
		}
	}

	switch e.NodeType {
	case NodeExact:
		return score, pv, true
	case NodeAlpha:
		if score <= alpha {
			return alpha, pv, true
		}
	case NodeBeta:
		if score >= beta {
			return beta, pv, true
		}
	}
	return NoCutoff, pv, true
}

// ExtractPV walks the table from p's current position, repeatedly probing
// and playing the stored best move, up to maxLen plies, per spec.md §4.6.
// The position is left unchanged (every played move is undone).
func (t *TranspositionTable) ExtractPV(p *board.Position, maxLen int) []board.Move {
	pv := make([]board.Move, 0, maxLen)
	played := 0
	for played < maxLen {
		e := &t.entries[t.index(p.PositionKey())]
		if !e.valid || e.Key != p.PositionKey() || e.BestMove == board.NullMove {
			break
		}
		if !p.MakeMove(e.BestMove) {
			break
		}
		pv = append(pv, e.BestMove)
		played++
	}
	for i := 0; i < played; i++ {
		p.UndoMove()
	}
	return pv
}
