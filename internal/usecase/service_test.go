package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/solver"
)

func TestServiceGuardsMissingDeps(t *testing.T) {
	var u Service
	ctx := context.Background()
	b, err := domain.New(9)
	require.NoError(t, err)

	_, _, err = u.Solve(ctx, b)
	require.Error(t, err)
	_, _, err = u.Generate(ctx, 9, 1, domain.Easy)
	require.Error(t, err)
	_, _, err = u.Validate(ctx, b)
	require.Error(t, err)
	_, _, err = u.Hint(ctx, b, domain.StrategySingles)
	require.Error(t, err)
	require.Error(t, u.Save(ctx, nil))
	_, err = u.Load(ctx, "x")
	require.Error(t, err)
	_, err = u.List(ctx)
	require.Error(t, err)
	require.Error(t, u.Delete(ctx, "x"))
}

func TestServiceDelegatesSolve(t *testing.T) {
	u := NewService(solver.NewBacktracking(), nil, nil, nil, nil)
	b, err := domain.New(1)
	require.NoError(t, err)
	solved, _, err := u.Solve(context.Background(), b)
	require.NoError(t, err)
	require.True(t, solved)
	require.EqualValues(t, 1, b.Get(0, 0))
}
