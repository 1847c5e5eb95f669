package board_test

import (
	"testing"

	"github.com/gonzaloarro/MORA-CHESS-ENGINE/board"
)

// perft counts leaf nodes of the move tree at depth plies from p, per
// spec.md §9's glossary entry. Grounded on tests/perft_test.go's
// ParseFEN+Perft usage, rebuilt against the Position/MakeMove/UndoMove API.
func perft(p *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range board.GenerateMoves(p) {
		if !p.MakeMove(m) {
			continue
		}
		nodes += perft(p, depth-1)
		p.UndoMove()
	}
	return nodes
}

func TestPerftInitialPosition(t *testing.T) {
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	for _, c := range cases {
		p := board.NewPosition()
		if got := perft(p, c.depth); got != c.want {
			t.Fatalf("perft depth %d: got %d want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftInitialPositionDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	cases := []struct {
		depth int
		want  uint64
	}{
		{5, 4865609},
		{6, 119060324},
	}
	for _, c := range cases {
		p := board.NewPosition()
		if got := perft(p, c.depth); got != c.want {
			t.Fatalf("perft depth %d: got %d want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}
	for _, c := range cases {
		p := board.NewPosition()
		p.LoadFEN(fen)
		if got := perft(p, c.depth); got != c.want {
			t.Fatalf("Kiwipete depth %d: got %d want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftKiwipeteDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	p := board.NewPosition()
	p.LoadFEN(fen)
	if got := perft(p, 4); got != 4085603 {
		t.Fatalf("Kiwipete depth 4: got %d want %d", got, 4085603)
	}
}
