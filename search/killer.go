package search

import "github.com/gonzaloarro/MORA-CHESS-ENGINE/board"

// MaxPly bounds the killer table and search recursion depth.
const MaxPly = 128

// KillerTable holds two killer-move slots per ply, per spec.md §4.7.
// Grounded on engine/killer.go's slot-0/slot-1 scheme, ported from
// dragontoothmg.Move onto board.Move.
type KillerTable struct {
	slots [MaxPly][2]board.Move
}

// NewKillerTable returns an empty killer table.
func NewKillerTable() *KillerTable { return &KillerTable{} }

// Store promotes move into ply's killer slot 0, shifting the previous
// slot-0 occupant into slot 1, per spec.md §4.7.
func (k *KillerTable) Store(ply int, move board.Move) {
	if ply < 0 || ply >= MaxPly {
		return
	}
	if k.slots[ply][0].Equal(move) {
		return
	}
	k.slots[ply][1] = k.slots[ply][0]
	k.slots[ply][0] = move
}

// Is reports whether move matches either killer slot at ply.
func (k *KillerTable) Is(ply int, move board.Move) (slot int, ok bool) {
	if ply < 0 || ply >= MaxPly {
		return 0, false
	}
	if k.slots[ply][0] != board.NullMove && k.slots[ply][0].Equal(move) {
		return 0, true
	}
	if k.slots[ply][1] != board.NullMove && k.slots[ply][1].Equal(move) {
		return 1, true
	}
	return 0, false
}

// Reset clears every slot, used by ucinewgame.
func (k *KillerTable) Reset() {
	for i := range k.slots {
		k.slots[i] = [2]board.Move{}
	}
}

// HistoryTable is the history heuristic: history[from][to] incremented by
// depth on a quiet beta cutoff, aged by halving on overflow. Grounded on
// engine/searchutil.go's historyMove table.
type HistoryTable struct {
	scores [64][64]int32
}

// NewHistoryTable returns an empty history table.
func NewHistoryTable() *HistoryTable { return &HistoryTable{} }

const historyOverflow = 1 << 24

// Add increments history[from][to] by depth, aging the whole table by
// halving if any entry would overflow, per spec.md §4.7's literal
// `history[from][to] += depth`.
func (h *HistoryTable) Add(from, to board.Square, depth int) {
	h.scores[from][to] += int32(depth)
	if h.scores[from][to] >= historyOverflow {
		h.age()
	}
}

func (h *HistoryTable) age() {
	for f := range h.scores {
		for t := range h.scores[f] {
			h.scores[f][t] /= 2
		}
	}
}

// Score returns the current history score for a from/to pair.
func (h *HistoryTable) Score(from, to board.Square) int32 {
	return h.scores[from][to]
}

// Reset clears every entry, used by ucinewgame.
func (h *HistoryTable) Reset() {
	for f := range h.scores {
		for t := range h.scores[f] {
			h.scores[f][t] = 0
		}
	}
}
