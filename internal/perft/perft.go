// Package perft counts the leaf nodes of the legal move tree. The counts are
// the standard way to check a move generator against published results.
package perft

import (
	"context"
	"runtime"
	"slices"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/Ravenwolve/Chess/internal/board"
)

// MoveCount is the number of leaf nodes below one root move.
type MoveCount struct {
	Move  board.Move
	Nodes int64
}

// Count returns the number of leaf nodes depth plies below pos.
func Count(pos *board.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}

	moves := pos.GenerateMoves()
	if depth == 1 {
		return int64(len(moves))
	}

	var nodes int64
	for _, m := range moves {
		next := pos.Copy()
		next.Apply(m)
		nodes += Count(next, depth-1)
	}
	return nodes
}

// count is Count with cancellation checked at every interior node.
func count(ctx context.Context, pos *board.Position, depth int) (int64, error) {
	if depth <= 1 {
		return Count(pos, depth), nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var nodes int64
	for _, m := range pos.GenerateMoves() {
		next := pos.Copy()
		next.Apply(m)
		n, err := count(ctx, next, depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}

// Divide returns the leaf count below every root move, sorted by the move's
// coordinate string. Root moves are counted on up to workers goroutines;
// workers <= 0 uses GOMAXPROCS.
func Divide(ctx context.Context, pos *board.Position, depth, workers int) ([]MoveCount, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	moves := pos.GenerateMoves()
	result := make([]MoveCount, len(moves))
	if depth == 0 {
		return result[:0], nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, m := range moves {
		i, m := i, m
		next := pos.Copy()
		next.Apply(m)
		g.Go(func() error {
			n, err := count(ctx, next, depth-1)
			if err != nil {
				return err
			}
			result[i] = MoveCount{Move: m, Nodes: n}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(result, func(a, b MoveCount) int {
		return strings.Compare(a.Move.String(), b.Move.String())
	})
	return result, nil
}

// Parallel returns the same total as Count, splitting the root moves across
// up to workers goroutines.
func Parallel(ctx context.Context, pos *board.Position, depth, workers int) (int64, error) {
	if depth <= 1 {
		return Count(pos, depth), nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var nodes atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, m := range pos.GenerateMoves() {
		next := pos.Copy()
		next.Apply(m)
		g.Go(func() error {
			n, err := count(ctx, next, depth-1)
			if err != nil {
				return err
			}
			nodes.Add(n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return nodes.Load(), nil
}

// Total sums the counts of a divide result.
func Total(counts []MoveCount) int64 {
	var total int64
	for _, c := range counts {
		total += c.Nodes
	}
	return total
}
