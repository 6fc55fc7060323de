package perft

import (
	"context"
	"errors"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/Ravenwolve/Chess/internal/board"
)

func TestMain(m *testing.M) {
	board.InitCache()
	os.Exit(m.Run())
}

const (
	kiwipete  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position3 = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	position4 = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	position5 = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	epPin     = "8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1"
)

func mustParseFEN(t *testing.T, fen string) *board.Position {
	t.Helper()
	pos, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("Failed to parse FEN %q: %v", fen, err)
	}
	return pos
}

func TestPerft(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		expected []int64 // indexed by depth-1
	}{
		{"start", board.StartFEN, []int64{20, 400, 8902}},
		{"kiwipete", kiwipete, []int64{48, 2039, 97862}},
		{"position3", position3, []int64{14, 191, 2812, 43238}},
		{"position4", position4, []int64{6, 264, 9467}},
		{"position5", position5, []int64{44, 1486, 62379}},
		{"en passant pin", epPin, []int64{6, 94}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := mustParseFEN(t, tc.fen)
			for i, want := range tc.expected {
				depth := i + 1
				if got := Count(pos, depth); got != want {
					t.Errorf("perft(%d) = %d, want %d", depth, got, want)
				}
			}
			if pos.FEN() != tc.fen {
				t.Errorf("perft modified the position: %s", pos.FEN())
			}
		})
	}
}

func TestParallelMatchesCount(t *testing.T) {
	pos := mustParseFEN(t, kiwipete)
	for _, workers := range []int{1, 4, 0} {
		got, err := Parallel(context.Background(), pos, 3, workers)
		if err != nil {
			t.Fatalf("Parallel(workers=%d): %v", workers, err)
		}
		if got != 97862 {
			t.Errorf("Parallel(workers=%d) = %d, want 97862", workers, got)
		}
	}
}

func TestDivide(t *testing.T) {
	pos := board.NewPosition()
	counts, err := Divide(context.Background(), pos, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(counts) != 20 {
		t.Fatalf("divide returned %d root moves, want 20", len(counts))
	}
	if total := Total(counts); total != 8902 {
		t.Errorf("divide total = %d, want 8902", total)
	}
	if !slices.IsSortedFunc(counts, func(a, b MoveCount) int {
		return strings.Compare(a.Move.String(), b.Move.String())
	}) {
		t.Error("divide result is not sorted")
	}

	want := map[string]int64{"e2e4": 600, "d2d4": 560, "g1f3": 440, "a2a3": 380, "b2b4": 421}
	for _, c := range counts {
		if n, ok := want[c.Move.String()]; ok && c.Nodes != n {
			t.Errorf("%v: %d nodes, want %d", c.Move, c.Nodes, n)
		}
	}
}

func TestCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pos := board.NewPosition()
	if _, err := Parallel(ctx, pos, 5, 2); !errors.Is(err, context.Canceled) {
		t.Errorf("Parallel on a cancelled context: err = %v", err)
	}
	if _, err := Divide(ctx, pos, 5, 2); !errors.Is(err, context.Canceled) {
		t.Errorf("Divide on a cancelled context: err = %v", err)
	}
}

// TestAgainstDragontooth walks two plies of each position and compares the
// legal move list at every node with dragontoothmg's.
func TestAgainstDragontooth(t *testing.T) {
	for _, fen := range []string{board.StartFEN, kiwipete, position3, position4, position5, epPin} {
		t.Run(fen, func(t *testing.T) {
			pos := mustParseFEN(t, fen)
			ref := dragontoothmg.ParseFen(fen)
			compareTrees(t, pos, &ref, 2)
		})
	}
}

func compareTrees(t *testing.T, pos *board.Position, ref *dragontoothmg.Board, depth int) {
	t.Helper()

	moves := pos.GenerateMoves()
	got := make([]string, 0, len(moves))
	for _, m := range moves {
		got = append(got, m.String())
	}
	refMoves := ref.GenerateLegalMoves()
	want := make([]string, 0, len(refMoves))
	for _, m := range refMoves {
		want = append(want, m.String())
	}
	slices.Sort(got)
	slices.Sort(want)
	if !slices.Equal(got, want) {
		t.Fatalf("move lists differ in %s\ngot  %v\nwant %v", pos.FEN(), got, want)
	}

	if depth <= 1 {
		return
	}
	for _, rm := range refMoves {
		m, err := board.ParseMove(pos, rm.String())
		if err != nil {
			t.Fatalf("%s in %s: %v", rm.String(), pos.FEN(), err)
		}
		next := pos.Copy()
		next.Apply(m)
		unapply := ref.Apply(rm)
		compareTrees(t, next, ref, depth-1)
		unapply()
	}
}
