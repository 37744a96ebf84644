package solver

import "svw.info/sudoku-solver/internal/domain"

// Backtracking is the reference depth-first solver. It scans row-major for
// the first empty cell and tries digits 1..N ascending, so identical input
// always yields the identical search and, on multi-solution boards, the
// identical solution.
type Backtracking struct{}

func NewBacktracking() *Backtracking { return &Backtracking{} }

// givensConsistent reports whether the filled cells are already free of
// row/col/box duplicates. The search never revisits filled cells, so
// without this check a board with conflicting givens could be "completed"
// around the conflict.
func givensConsistent(b *domain.Board) bool {
	n := b.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if v := b.Get(r, c); v != 0 && !b.CanPlace(r, c, v) {
				return false
			}
		}
	}
	return true
}
