package search_test

import (
	"strings"
	"testing"

	"github.com/gonzaloarro/MORA-CHESS-ENGINE/board"
	"github.com/gonzaloarro/MORA-CHESS-ENGINE/search"
)

func TestSearch_FindsMateInOne(t *testing.T) {
	p := board.NewPosition()
	p.LoadFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")

	s := search.NewSearcher()
	s.Time.Start(10000, 1, false, 0)
	best := s.Search(p, 4)

	if best.String() != "a1a8" {
		t.Fatalf("expected mating move a1a8, got %s", best.String())
	}
}

func TestSearch_ReturnsLegalMoveUnderTightBudget(t *testing.T) {
	p := board.NewPosition()
	s := search.NewSearcher()
	s.Time.Start(1, 1, false, 0) // near-zero budget: deepening stops after the first iteration that takes 1ms or more

	best := s.Search(p, 10)
	if best == board.NullMove {
		t.Fatalf("expected a fallback move even under a near-zero time budget")
	}
	if !p.MakeMove(best) {
		t.Fatalf("returned move %s is not legal in the start position", best.String())
	}
	p.UndoMove()
}

func TestEvaluate_SymmetricStartPosition(t *testing.T) {
	p := board.NewPosition()
	pawnHash := search.NewPawnHashTable()
	if score := search.Evaluate(p, pawnHash); score <= -100 || score >= 100 {
		t.Fatalf("expected roughly balanced start position, got %d", score)
	}
}

func TestTranspositionTable_StoreProbe(t *testing.T) {
	tt := search.NewTranspositionTable(1)
	m := board.NewMove(board.Square(12), board.Square(28), board.FlagDoublePush)
	tt.Store(0xABCD, m, 55, 4, search.NodeExact, 0)

	score, mv, found := tt.Probe(0xABCD, 4, -1000, 1000, 0)
	if !found {
		t.Fatalf("expected entry to be found")
	}
	if score != 55 {
		t.Fatalf("expected score 55, got %d", score)
	}
	if !mv.Equal(m) {
		t.Fatalf("expected stored move to round-trip")
	}
}

func TestTranspositionTable_MateScorePlyAdjustment(t *testing.T) {
	tt := search.NewTranspositionTable(1)
	m := board.NewMove(board.Square(4), board.Square(12), board.FlagQuiet)
	mateScore := search.MateScore - 3 // mate in a few plies, found at search ply 5
	tt.Store(0x1234, m, mateScore, 6, search.NodeExact, 5)

	// Probing from the root (ply 0) should report the score adjusted back
	// to be root-relative, still comfortably within mating range.
	score, _, found := tt.Probe(0x1234, 6, -search.MateScore, search.MateScore, 0)
	if !found {
		t.Fatalf("expected entry to be found")
	}
	if score <= 0 {
		t.Fatalf("expected a positive mate score relative to root, got %d", score)
	}
}

func TestUCIMoveFormatting(t *testing.T) {
	p := board.NewPosition()
	moves := board.GenerateMoves(p)
	found := false
	for _, m := range moves {
		if strings.HasPrefix(m.String(), "e2e4") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected e2e4 among the legal opening moves")
	}
}
