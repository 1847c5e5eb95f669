package board_test

import (
	"testing"

	"github.com/gonzaloarro/MORA-CHESS-ENGINE/board"
)

func TestCheckmate_BackRank(t *testing.T) {
	p := board.NewPosition()
	p.LoadFEN("6k1/5ppp/8/8/8/8/8/R6K w - - 0 1")
	m := findMove(t, p, sq(0, 0), sq(0, 7)) // Ra1-a8
	if !p.MakeMove(m) {
		t.Fatalf("MakeMove(Ra8) failed")
	}
	if !p.InCheckmate() {
		t.Fatalf("expected checkmate after Ra8")
	}
}

func TestStalemate(t *testing.T) {
	p := board.NewPosition()
	p.LoadFEN("7k/5K2/6Q1/8/8/8/8/8 b - - 0 1")
	if p.InCheckmate() {
		t.Fatalf("position should not be checkmate")
	}
	if !p.InStalemate() {
		t.Fatalf("expected stalemate")
	}
}

func TestFiftyMoveDraw(t *testing.T) {
	p := board.NewPosition()
	p.LoadFEN("8/8/8/4k3/8/8/8/4K2R w K - 99 50")
	if p.IsFiftyMoveDraw() {
		t.Fatalf("should not be a fifty-move draw yet")
	}
	m := findMove(t, p, sq(4, 0), sq(4, 1)) // Ke1-e2, a non-reset quiet move
	if !p.MakeMove(m) {
		t.Fatalf("MakeMove failed")
	}
	if !p.IsFiftyMoveDraw() {
		t.Fatalf("expected fifty-move draw after 100th half-move")
	}
}

func TestInsufficientMaterial(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want bool
	}{
		{"KvK", "8/8/4k3/8/8/4K3/8/8 w - - 0 1", false},
		{"KBvK", "8/8/4k3/8/8/4K3/8/3B4 w - - 0 1", false},
		{"KNvK", "8/8/4k3/8/8/4K3/8/3N4 w - - 0 1", false},
		{"KNNvK", "8/8/4k3/8/8/4K3/8/2NN4 w - - 0 1", false},
		{"KQvK", "8/8/4k3/8/8/4K3/8/3Q4 w - - 0 1", true},
		{"KPvK", "8/8/4k3/8/8/4K3/4P3/8 w - - 0 1", true},
	}
	for _, c := range cases {
		p := board.NewPosition()
		p.LoadFEN(c.fen)
		gotWhite := p.HasMatingMaterial(board.White)
		if gotWhite != c.want {
			t.Errorf("%s: HasMatingMaterial(White) = %v, want %v", c.name, gotWhite, c.want)
		}
	}
}

func TestRepetition_KnightShuffle(t *testing.T) {
	p := board.NewPosition()

	play := func(from, to board.Square) {
		m := findMove(t, p, from, to)
		if !p.MakeMove(m) {
			t.Fatalf("move %v->%v illegal unexpectedly", from, to)
		}
	}

	play(sq(6, 0), sq(5, 2)) // Ng1-f3
	play(sq(6, 7), sq(5, 5)) // Ng8-f6
	play(sq(5, 2), sq(6, 0)) // Nf3-g1
	play(sq(5, 5), sq(6, 7)) // Nf6-g8: position repeats

	if p.IsRepetition() {
		t.Fatalf("should not be a repetition after only two occurrences")
	}

	play(sq(6, 0), sq(5, 2))
	play(sq(6, 7), sq(5, 5))
	play(sq(5, 2), sq(6, 0))
	play(sq(5, 5), sq(6, 7)) // third occurrence

	if !p.IsRepetition() {
		t.Fatalf("expected repetition after third occurrence")
	}
}
