package board_test

import (
	"testing"

	"github.com/gonzaloarro/MORA-CHESS-ENGINE/board"
)

func findMove(t *testing.T, p *board.Position, from, to board.Square) board.Move {
	t.Helper()
	for _, m := range board.GenerateMoves(p) {
		if m.From() == from && m.To() == to {
			return m
		}
	}
	t.Fatalf("no move %v->%v found", from, to)
	return board.NullMove
}

func sq(file, rank int) board.Square { return board.Square(rank*8 + file) }

func TestMakeUndo_NormalMove(t *testing.T) {
	p := board.NewPosition()
	startKey := p.PositionKey()
	startFEN := p.ToFEN()

	m := findMove(t, p, sq(4, 1), sq(4, 3)) // e2e4
	if !p.MakeMove(m) {
		t.Fatalf("MakeMove(e2e4) failed")
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("invalid position after MakeMove: %v", err)
	}

	p.UndoMove()
	if err := p.Validate(); err != nil {
		t.Fatalf("invalid position after UndoMove: %v", err)
	}
	if p.PositionKey() != startKey {
		t.Fatalf("zobrist key mismatch after undo")
	}
	if p.ToFEN() != startFEN {
		t.Fatalf("FEN mismatch after undo: got %q want %q", p.ToFEN(), startFEN)
	}
}

func TestMakeUndo_Capture(t *testing.T) {
	p := board.NewPosition()
	p.LoadFEN("7k/r7/8/8/8/8/8/R3K3 w - - 0 1")
	startKey := p.PositionKey()

	m := findMove(t, p, sq(0, 0), sq(0, 6)) // a1xa7
	if !p.MakeMove(m) {
		t.Fatalf("MakeMove(a1a7) failed")
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("invalid position after capture: %v", err)
	}
	p.UndoMove()
	if p.PositionKey() != startKey {
		t.Fatalf("zobrist key mismatch after undo capture")
	}
}

func TestMakeUndo_EnPassant(t *testing.T) {
	p := board.NewPosition()
	p.LoadFEN("k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	startKey := p.PositionKey()

	m := findMove(t, p, sq(4, 4), sq(3, 5)) // e5d6 en passant
	if m.Flag() != board.FlagEnPassant {
		t.Fatalf("expected en-passant flag, got %d", m.Flag())
	}
	if !p.MakeMove(m) {
		t.Fatalf("MakeMove(en passant) failed")
	}
	if p.PieceOn(sq(3, 4)) != board.Empty {
		t.Fatalf("captured pawn still on d5 after en passant")
	}
	p.UndoMove()
	if p.PositionKey() != startKey {
		t.Fatalf("zobrist key mismatch after undo en passant")
	}
}

func TestMakeUndo_Promotion(t *testing.T) {
	p := board.NewPosition()
	p.LoadFEN("8/4P3/8/8/8/8/k6K/8 w - - 0 1")
	startKey := p.PositionKey()

	var promo board.Move
	for _, m := range board.GenerateMoves(p) {
		if m.From() == sq(4, 6) && m.To() == sq(4, 7) && m.Flag() == board.FlagPromoQueen {
			promo = m
		}
	}
	if promo == board.NullMove {
		t.Fatalf("queen promotion not found")
	}
	if !p.MakeMove(promo) {
		t.Fatalf("MakeMove(promotion) failed")
	}
	if p.PieceOn(sq(4, 7)) != board.Queen {
		t.Fatalf("expected queen on e8 after promotion, got %v", p.PieceOn(sq(4, 7)))
	}
	p.UndoMove()
	if p.PositionKey() != startKey {
		t.Fatalf("zobrist key mismatch after undo promotion")
	}
	if p.PieceOn(sq(4, 6)) != board.Pawn {
		t.Fatalf("expected pawn back on e7 after undo")
	}
}

func TestMakeUndo_Castle(t *testing.T) {
	p := board.NewPosition()
	p.LoadFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	startKey := p.PositionKey()

	m := findMove(t, p, sq(4, 0), sq(6, 0)) // e1g1 castle
	if !m.IsCastle() {
		t.Fatalf("expected castle flag")
	}
	if !p.MakeMove(m) {
		t.Fatalf("MakeMove(O-O) failed")
	}
	if p.PieceOn(sq(5, 0)) != board.Rook || p.PieceOn(sq(6, 0)) != board.King {
		t.Fatalf("rook/king not placed correctly after castling")
	}
	p.UndoMove()
	if p.PositionKey() != startKey {
		t.Fatalf("zobrist key mismatch after undo castle")
	}
}

func TestNullMove_RoundTrip(t *testing.T) {
	p := board.NewPosition()
	startKey := p.PositionKey()
	stm := p.SideToMove()

	p.MakeNullMove()
	if p.SideToMove() == stm {
		t.Fatalf("side to move did not flip on null move")
	}
	p.UndoNullMove()
	if p.PositionKey() != startKey {
		t.Fatalf("zobrist key mismatch after undo null move")
	}
	if p.SideToMove() != stm {
		t.Fatalf("side to move not restored after undo null move")
	}
}
