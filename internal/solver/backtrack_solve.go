package solver

import (
	"context"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

// Solve fills b in place. On false every tentative assignment has been
// retracted, so the board is bit-for-bit the one the caller passed in.
func (s *Backtracking) Solve(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	if !givensConsistent(b) {
		return false, ports.Stats{Duration: time.Since(start)}, nil
	}
	n := uint8(b.Size())
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := b.FirstEmpty()
		if !ok {
			return true
		}
		for v := uint8(1); v <= n; v++ {
			nodes++
			if b.CanPlace(r, c, v) {
				b.Set(r, c, v)
				if dfs() {
					return true
				}
				b.Set(r, c, 0)
			}
		}
		return false
	}
	solved := dfs()
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return false, st, err
	}
	return solved, st, nil
}
