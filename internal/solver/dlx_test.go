package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/validator"
)

func TestDLXSolveClassic(t *testing.T) {
	b := mustParse(t, samplePuzzle)
	want := mustParse(t, sampleSolution)

	solved, st, err := NewDLX().Solve(context.Background(), b)
	require.NoError(t, err)
	require.True(t, solved)
	require.True(t, b.Equal(want), "unique puzzle must match the known solution:\n%s", b)
	t.Logf("dlx nodes=%d dur=%v", st.Nodes, st.Duration)
}

func TestDLXKeepsGivens(t *testing.T) {
	b := mustParse(t, samplePuzzle)
	solved, _, err := NewDLX().Solve(context.Background(), b)
	require.NoError(t, err)
	require.True(t, solved)
	require.EqualValues(t, 5, b.Get(0, 0))
	require.EqualValues(t, 3, b.Get(0, 1))
	require.True(t, b.Complete())
}

func TestDLXConflictingGivens(t *testing.T) {
	b, err := domain.New(9)
	require.NoError(t, err)
	b.Set(0, 0, 5)
	b.Set(0, 1, 5)
	before := b.Clone()

	solved, _, err := NewDLX().Solve(context.Background(), b)
	require.NoError(t, err)
	require.False(t, solved)
	require.True(t, b.Equal(before))
}

func TestDLXEmptyBoardValid(t *testing.T) {
	for _, size := range []int{1, 4, 9} {
		b, err := domain.New(size)
		require.NoError(t, err)
		solved, _, err := NewDLX().Solve(context.Background(), b)
		require.NoError(t, err)
		require.True(t, solved, "size %d", size)
		ok, conflicts, err := validator.New().Validate(context.Background(), b)
		require.NoError(t, err)
		require.True(t, ok, "size %d conflicts: %v", size, conflicts)
	}
}

func TestDLXCountAgreesWithBacktracking(t *testing.T) {
	puzzles := []string{
		samplePuzzle,
		"2...4.....2.....", // 4×4 with several solutions
	}
	for _, text := range puzzles {
		b := mustParse(t, text)
		nd, _, err := NewDLX().CountSolutions(context.Background(), b, 4)
		require.NoError(t, err)
		nb, _, err := NewBacktracking().CountSolutions(context.Background(), b, 4)
		require.NoError(t, err)
		require.Equal(t, nb, nd, "puzzle %q", text)
	}
}
