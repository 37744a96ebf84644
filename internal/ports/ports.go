package ports

import (
	"context"
	"time"

	"svw.info/sudoku-solver/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver searches for a full assignment. Solve mutates the board in place
// when it succeeds and leaves it exactly as passed in when it does not; an
// unsolvable board is a plain false result, not an error. The error return
// is reserved for context cancellation.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (bool, Stats, error)
	// CountSolutions counts distinct solutions up to limit. The board is
	// unchanged afterwards.
	CountSolutions(ctx context.Context, b *domain.Board, limit int) (int, Stats, error)
}

// Generator creates new puzzles at a target size and difficulty.
type Generator interface {
	Generate(ctx context.Context, size int, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical step up to a max strategy tier.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
	Delete(ctx context.Context, id string) error
	Close() error
}
