package generator

import "svw.info/sudoku-solver/internal/ports"

// UniqueGenerator creates puzzles with a unique solution using a provided
// Solver for the uniqueness checks.
type UniqueGenerator struct {
	Solver ports.Solver
}

func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}
