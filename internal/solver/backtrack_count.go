package solver

import (
	"context"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

// CountSolutions explores the same search as Solve but keeps going after a
// solution is found, stopping once limit solutions are seen. It works on a
// copy, so the caller's board is untouched.
func (s *Backtracking) CountSolutions(ctx context.Context, b *domain.Board, limit int) (int, ports.Stats, error) {
	start := time.Now()
	if limit < 1 {
		limit = 1
	}
	if !givensConsistent(b) {
		return 0, ports.Stats{Duration: time.Since(start)}, nil
	}
	grid := b.Clone()
	n := uint8(grid.Size())
	nodes := 0
	count := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= limit {
			return true // stop early
		}
		r, c, ok := grid.FirstEmpty()
		if !ok {
			count++
			return count >= limit
		}
		for v := uint8(1); v <= n; v++ {
			nodes++
			if grid.CanPlace(r, c, v) {
				grid.Set(r, c, v)
				if dfs() {
					return true
				}
				grid.Set(r, c, 0)
			}
		}
		return false
	}
	_ = dfs()
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return count, st, err
	}
	return count, st, nil
}
