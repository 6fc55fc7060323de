// Package console implements a line-based command protocol for inspecting
// positions: set up a position, list its legal moves, and run perft.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/Ravenwolve/Chess/internal/board"
	"github.com/Ravenwolve/Chess/internal/perft"
	"github.com/Ravenwolve/Chess/internal/storage"
)

// errQuit stops Run without being reported.
var errQuit = errors.New("quit")

// Console holds the current position and executes commands against it.
type Console struct {
	position *board.Position
	out      io.Writer

	store   *storage.Storage // nil disables the perft cache
	workers int
}

// New creates a console writing to out, starting from the initial position.
// store may be nil.
func New(out io.Writer, store *storage.Storage, workers int) *Console {
	return &Console{
		position: board.NewPosition(),
		out:      out,
		store:    store,
		workers:  workers,
	}
}

// Position returns the current position.
func (c *Console) Position() *board.Position {
	return c.position
}

// Run reads commands from in until EOF or "quit". Command errors are written
// to the output and do not stop the loop.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		err := c.Execute(ctx, line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
	}
	return scanner.Err()
}

// Execute runs a single command line.
//
// Commands:
//   - position startpos [moves e2e4 ...]
//   - position fen <fen> [moves e2e4 ...]
//   - move e2e4 [e7e5 ...]
//   - moves
//   - d | fen
//   - perft <depth>
//   - divide <depth>
//   - quit
func (c *Console) Execute(ctx context.Context, line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}
	cmd, args := parts[0], parts[1:]

	switch cmd {
	case "position":
		return c.handlePosition(args)
	case "move":
		return c.applyMoves(c.position, args)
	case "moves":
		c.handleMoves()
	case "d":
		fmt.Fprint(c.out, c.position.String())
		fmt.Fprintf(c.out, "Fen: %s\n", c.position.FEN())
	case "fen":
		fmt.Fprintln(c.out, c.position.FEN())
	case "perft":
		return c.handlePerft(ctx, args)
	case "divide":
		return c.handleDivide(ctx, args)
	case "quit":
		return errQuit
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
	return nil
}

// handlePosition sets up a new position. The current one is kept if the
// FEN or any of the moves is invalid.
func (c *Console) handlePosition(args []string) error {
	if len(args) == 0 {
		return errors.New("position: missing startpos or fen")
	}

	rest := args[1:]
	var moves []string
	if i := slices.Index(rest, "moves"); i >= 0 {
		rest, moves = rest[:i], rest[i+1:]
	}

	var pos *board.Position
	switch args[0] {
	case "startpos":
		pos = board.NewPosition()
	case "fen":
		var err error
		pos, err = board.ParseFEN(strings.Join(rest, " "))
		if err != nil {
			return err
		}
		if err := pos.Validate(); err != nil {
			return fmt.Errorf("invalid position: %w", err)
		}
	default:
		return fmt.Errorf("position: unknown argument %q", args[0])
	}

	if err := c.applyMoves(pos, moves); err != nil {
		return err
	}
	c.position = pos

	if board.DebugMoveValidation {
		fmt.Fprintf(c.out, "debug: %s in check=%v legal=%d\n",
			pos.FEN(), pos.InCheck(), len(pos.GenerateMoves()))
	}
	return nil
}

func (c *Console) applyMoves(pos *board.Position, moves []string) error {
	for _, s := range moves {
		m, err := board.ParseMove(pos, s)
		if err != nil {
			return err
		}
		pos.Apply(m)
	}
	return nil
}

func (c *Console) handleMoves() {
	moves := c.position.GenerateMoves()
	strs := make([]string, len(moves))
	for i, m := range moves {
		strs[i] = m.String()
	}
	slices.Sort(strs)
	fmt.Fprintf(c.out, "%s\n", strings.Join(strs, " "))

	switch {
	case c.position.IsCheckmate():
		fmt.Fprintln(c.out, "checkmate")
	case c.position.IsStalemate():
		fmt.Fprintln(c.out, "stalemate")
	case c.position.InCheck():
		fmt.Fprintln(c.out, "check")
	}
	fmt.Fprintf(c.out, "Legal moves: %d\n", len(moves))
}

func parseDepth(args []string) (int, error) {
	if len(args) == 0 {
		return 0, errors.New("missing depth")
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 0 {
		return 0, fmt.Errorf("invalid depth: %s", args[0])
	}
	return depth, nil
}

// handlePerft counts the nodes at the given depth, answering from the store
// when the result is already known.
func (c *Console) handlePerft(ctx context.Context, args []string) error {
	depth, err := parseDepth(args)
	if err != nil {
		return err
	}
	fen := c.position.FEN()

	if c.store != nil {
		rec, ok, err := c.store.LoadPerft(fen, depth)
		if err != nil {
			return err
		}
		if ok {
			fmt.Fprintf(c.out, "Nodes: %d\n", rec.Nodes)
			fmt.Fprintf(c.out, "Cached: %v\n", rec.Recorded.Format(time.RFC3339))
			return nil
		}
	}

	start := time.Now()
	nodes, err := perft.Parallel(ctx, c.position, depth, c.workers)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	c.printStats(nodes, elapsed)
	return c.save(&storage.PerftRecord{FEN: fen, Depth: depth, Nodes: nodes, Elapsed: elapsed})
}

// handleDivide prints the node count below every root move.
func (c *Console) handleDivide(ctx context.Context, args []string) error {
	depth, err := parseDepth(args)
	if err != nil {
		return err
	}
	if depth == 0 {
		return errors.New("divide needs depth >= 1")
	}

	start := time.Now()
	counts, err := perft.Divide(ctx, c.position, depth, c.workers)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	divide := make(map[string]int64, len(counts))
	for _, mc := range counts {
		fmt.Fprintf(c.out, "%s: %d\n", mc.Move, mc.Nodes)
		divide[mc.Move.String()] = mc.Nodes
	}
	fmt.Fprintln(c.out)

	nodes := perft.Total(counts)
	c.printStats(nodes, elapsed)
	return c.save(&storage.PerftRecord{
		FEN:     c.position.FEN(),
		Depth:   depth,
		Nodes:   nodes,
		Divide:  divide,
		Elapsed: elapsed,
	})
}

func (c *Console) printStats(nodes int64, elapsed time.Duration) {
	fmt.Fprintf(c.out, "Nodes: %d\n", nodes)
	fmt.Fprintf(c.out, "Time: %v\n", elapsed)
	if elapsed > 0 {
		nps := float64(nodes) / elapsed.Seconds()
		fmt.Fprintf(c.out, "NPS: %.0f\n", nps)
	}
}

func (c *Console) save(rec *storage.PerftRecord) error {
	if c.store == nil {
		return nil
	}
	if err := c.store.SavePerft(rec); err != nil {
		return fmt.Errorf("save perft result: %w", err)
	}
	return nil
}
