package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gonzaloarro/MORA-CHESS-ENGINE/board"
	"github.com/gonzaloarro/MORA-CHESS-ENGINE/search"
)

func atoi(s string) int { v, _ := strconv.Atoi(s); return v }

// main runs the UCI command loop, per spec.md §6. Grounded on
// cmd/uci/main.go's bufio.NewReader + strings.Split token scanning,
// trimmed of the teacher's NNUE accumulator/opening-book/tuning wiring
// (out of scope per SPEC_FULL.md's Non-goals) and reworked so `go`
// searches run in a goroutine, letting `stop` interrupt them.
func main() {
	reader := bufio.NewReader(os.Stdin)
	pos := board.NewPosition()
	searcher := search.NewSearcher()

	searching := false
	done := make(chan struct{})

	fmt.Println("id name MoraChessEngine")
	fmt.Println("id author gonzaloarro")
	fmt.Println("option name Hash type spin default 128 min 1 max 1024")
	fmt.Println("uciok")

	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			if err != nil {
				return
			}
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "quit":
			if searching {
				searcher.Stop()
				<-done
			}
			return

		case "uci":
			fmt.Println("id name MoraChessEngine")
			fmt.Println("id author gonzaloarro")
			fmt.Println("option name Hash type spin default 128 min 1 max 1024")
			fmt.Println("uciok")

		case "isready":
			fmt.Println("readyok")

		case "ucinewgame":
			if searching {
				searcher.Stop()
				<-done
			}
			pos = board.NewPosition()
			searcher.NewGame()

		case "setoption":
			handleSetOption(fields, searcher)

		case "position":
			if searching {
				searcher.Stop()
				<-done
			}
			pos = parsePosition(fields)

		case "go":
			if searching {
				searcher.Stop()
				<-done
			}
			searching = true
			done = make(chan struct{})
			go runGo(searcher, pos, fields, done, &searching)

		case "stop":
			if searching {
				searcher.Stop()
				<-done
			}
		}
	}
}

func handleSetOption(fields []string, searcher *search.Searcher) {
	// "setoption name Hash value <mb>" — the only non-tuning option
	// SPEC_FULL.md keeps; every teacher tuning-weight setoption key is
	// dropped per spec's Non-goals.
	name := ""
	value := ""
	for i := 1; i < len(fields); i++ {
		switch fields[i] {
		case "name":
			if i+1 < len(fields) {
				name = fields[i+1]
			}
		case "value":
			if i+1 < len(fields) {
				value = fields[i+1]
			}
		}
	}
	if strings.EqualFold(name, "Hash") {
		if mb := atoi(value); mb > 0 {
			if mb > 1024 {
				mb = 1024
			}
			searcher.TT.Resize(mb)
		}
	}
}

func parsePosition(fields []string) *board.Position {
	if len(fields) < 2 {
		return board.NewPosition()
	}

	var pos *board.Position
	movesIdx := -1

	if fields[1] == "startpos" {
		pos = board.NewPosition()
		if len(fields) > 2 && fields[2] == "moves" {
			movesIdx = 3
		}
	} else if fields[1] == "fen" {
		rest := fields[2:]
		fenFields := rest
		for i, f := range rest {
			if f == "moves" {
				fenFields = rest[:i]
				movesIdx = 2 + i + 1
				break
			}
		}
		pos = board.NewPosition()
		pos.LoadFEN(strings.Join(fenFields, " "))
	} else {
		pos = board.NewPosition()
	}

	if movesIdx >= 0 {
		for i := movesIdx; i < len(fields); i++ {
			applyUCIMove(pos, fields[i])
		}
	}
	return pos
}

// applyUCIMove matches a long-algebraic UCI move string against the
// pseudo-legal move list and plays it, per spec.md §6's "position" handling.
func applyUCIMove(pos *board.Position, uci string) {
	for _, m := range board.GenerateMoves(pos) {
		if m.String() == uci {
			pos.MakeMove(m)
			return
		}
	}
}

func runGo(searcher *search.Searcher, pos *board.Position, fields []string, done chan struct{}, searching *bool) {
	defer func() {
		*searching = false
		close(done)
	}()

	depth := 0
	infinite := false
	movetime := -1
	wtime, btime, winc, binc := -1, -1, 0, 0
	movestogo := 0

	for i := 1; i < len(fields); i++ {
		switch fields[i] {
		case "depth":
			if i+1 < len(fields) {
				depth = atoi(fields[i+1])
			}
		case "movetime":
			if i+1 < len(fields) {
				movetime = atoi(fields[i+1])
			}
		case "wtime":
			if i+1 < len(fields) {
				wtime = atoi(fields[i+1])
			}
		case "btime":
			if i+1 < len(fields) {
				btime = atoi(fields[i+1])
			}
		case "winc":
			if i+1 < len(fields) {
				winc = atoi(fields[i+1])
			}
		case "binc":
			if i+1 < len(fields) {
				binc = atoi(fields[i+1])
			}
		case "movestogo":
			if i+1 < len(fields) {
				movestogo = atoi(fields[i+1])
			}
		case "infinite":
			infinite = true
		}
	}

	plies := pos.HistoryPly()
	switch {
	case infinite:
		searcher.Time.Start(0, 0, true, plies)
	case movetime > 0:
		searcher.Time.Start(movetime, 1, false, plies)
	default:
		timeLeft := wtime
		inc := winc
		if pos.SideToMove() == board.Black {
			timeLeft = btime
			inc = binc
		}
		if timeLeft < 0 {
			timeLeft = 0
		}
		searcher.Time.Start(timeLeft+inc, movestogo, false, plies)
	}

	best := searcher.Search(pos, depth)
	if best == board.NullMove {
		fmt.Println("bestmove (none)")
	} else {
		fmt.Printf("bestmove %s\n", best.String())
	}
}
