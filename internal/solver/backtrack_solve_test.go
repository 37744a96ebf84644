package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/validator"
)

// A classic, uniquely solvable Sudoku ('.' = empty) and its solution.
const (
	samplePuzzle = `
		53..7....
		6..195...
		.98....6.
		8...6...3
		4..8.3..1
		7...2...6
		.6....28.
		...419..5
		....8..79`
	sampleSolution = `
		534678912
		672195348
		198342567
		859761423
		426853791
		713924856
		961537284
		287419635
		345286179`
)

func mustParse(t *testing.T, text string) *domain.Board {
	t.Helper()
	b, err := domain.ParseText(text)
	require.NoError(t, err)
	return b
}

func TestBacktrackingSolveClassic(t *testing.T) {
	b := mustParse(t, samplePuzzle)
	want := mustParse(t, sampleSolution)

	solved, st, err := NewBacktracking().Solve(context.Background(), b)
	require.NoError(t, err)
	require.True(t, solved)
	require.True(t, b.Equal(want), "solution mismatch:\n%s", b)
	require.Greater(t, st.Nodes, 0)
}

func TestBacktrackingSolveMutatesInPlace(t *testing.T) {
	b := mustParse(t, samplePuzzle)

	solved, _, err := NewBacktracking().Solve(context.Background(), b)
	require.NoError(t, err)
	require.True(t, solved)
	require.True(t, b.Complete())
	// givens survive
	require.EqualValues(t, 5, b.Get(0, 0))
	require.True(t, b.Fixed(0, 0))
}

func TestBacktrackingSolvedBoardIdempotent(t *testing.T) {
	b := mustParse(t, sampleSolution)
	before := b.Clone()

	solved, st, err := NewBacktracking().Solve(context.Background(), b)
	require.NoError(t, err)
	require.True(t, solved)
	require.True(t, b.Equal(before))
	require.Equal(t, 0, st.Nodes)
}

func TestBacktrackingEmptyBoardFindsValidGrid(t *testing.T) {
	b, err := domain.New(9)
	require.NoError(t, err)

	solved, _, err := NewBacktracking().Solve(context.Background(), b)
	require.NoError(t, err)
	require.True(t, solved)
	require.True(t, b.Complete())
	ok, conflicts, err := validator.New().Validate(context.Background(), b)
	require.NoError(t, err)
	require.True(t, ok, "conflicts: %v", conflicts)

	// deterministic: a second run from empty yields the identical grid
	b2, err := domain.New(9)
	require.NoError(t, err)
	solved, _, err = NewBacktracking().Solve(context.Background(), b2)
	require.NoError(t, err)
	require.True(t, solved)
	require.True(t, b.Equal(b2))
}

func TestBacktrackingConflictingGivensRevert(t *testing.T) {
	b, err := domain.New(9)
	require.NoError(t, err)
	b.Set(0, 0, 5)
	b.Set(0, 1, 5) // duplicate in the same row
	b.MarkGivens()
	before := b.Clone()

	solved, _, err := NewBacktracking().Solve(context.Background(), b)
	require.NoError(t, err)
	require.False(t, solved)
	require.True(t, b.Equal(before), "board must be untouched on failure")
}

func TestBacktrackingUnsolvableRevert(t *testing.T) {
	// a full row missing only 9, with 9 blocked in that row's last free
	// cell by its column
	b, err := domain.New(9)
	require.NoError(t, err)
	for c := 0; c < 8; c++ {
		b.Set(0, c, uint8(c+1))
	}
	b.Set(1, 8, 9) // box+column block: (0,8) can only take 9, which conflicts
	b.MarkGivens()
	before := b.Clone()

	solved, _, err := NewBacktracking().Solve(context.Background(), b)
	require.NoError(t, err)
	require.False(t, solved)
	require.True(t, b.Equal(before))
}

func TestBacktrackingSingleCell(t *testing.T) {
	b, err := domain.New(1)
	require.NoError(t, err)

	solved, _, err := NewBacktracking().Solve(context.Background(), b)
	require.NoError(t, err)
	require.True(t, solved)
	require.EqualValues(t, 1, b.Get(0, 0))
}

func TestBacktrackingFourByFour(t *testing.T) {
	// 4×4 case with the known first solution for ascending digit order
	b := mustParse(t, `
		2...
		4...
		..2.
		....`)
	want := mustParse(t, `
		2134
		4312
		1423
		3241`)

	solved, _, err := NewBacktracking().Solve(context.Background(), b)
	require.NoError(t, err)
	require.True(t, solved)
	require.True(t, b.Equal(want), "got:\n%s", b)
}

func TestBacktrackingCanceled(t *testing.T) {
	b, err := domain.New(9)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	solved, _, err := NewBacktracking().Solve(ctx, b)
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, solved)
	empty, _ := domain.New(9)
	require.True(t, b.Equal(empty), "board must be reverted on cancellation")
}

func TestCountSolutions(t *testing.T) {
	s := NewBacktracking()

	unique := mustParse(t, samplePuzzle)
	n, _, err := s.CountSolutions(context.Background(), unique, 2)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.False(t, unique.Complete(), "board must be untouched")

	empty, err := domain.New(4)
	require.NoError(t, err)
	n, _, err = s.CountSolutions(context.Background(), empty, 3)
	require.NoError(t, err)
	require.Equal(t, 3, n, "an empty 4×4 has many solutions; count stops at the limit")

	conflict, err := domain.New(9)
	require.NoError(t, err)
	conflict.Set(0, 0, 5)
	conflict.Set(0, 1, 5)
	n, _, err = s.CountSolutions(context.Background(), conflict, 2)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestBacktrackingSolveUnder1s(t *testing.T) {
	b := mustParse(t, samplePuzzle)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	solved, st, err := NewBacktracking().Solve(ctx, b)
	require.NoError(t, err)
	require.True(t, solved)
	require.Less(t, st.Duration, time.Second)
	t.Logf("solved in %v, nodes=%d", st.Duration, st.Nodes)
}
