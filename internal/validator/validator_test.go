package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudoku-solver/internal/domain"
)

func TestValidateCleanBoard(t *testing.T) {
	b, err := domain.ParseText("53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79")
	require.NoError(t, err)

	ok, conflicts, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, conflicts)
}

func TestValidateFindsConflicts(t *testing.T) {
	cases := []struct {
		name string
		set  [][3]int // row, col, value
		want domain.CellCoord
	}{
		{"row", [][3]int{{0, 0, 5}, {0, 8, 5}}, domain.CellCoord{Row: 0, Col: 8}},
		{"column", [][3]int{{0, 4, 7}, {8, 4, 7}}, domain.CellCoord{Row: 8, Col: 4}},
		{"box", [][3]int{{3, 3, 2}, {5, 5, 2}}, domain.CellCoord{Row: 5, Col: 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := domain.New(9)
			require.NoError(t, err)
			for _, s := range tc.set {
				b.Set(s[0], s[1], uint8(s[2]))
			}
			ok, conflicts, err := New().Validate(context.Background(), b)
			require.NoError(t, err)
			require.False(t, ok)
			require.Contains(t, conflicts, tc.want)
		})
	}
}

func TestValidateEmptyBoardOK(t *testing.T) {
	for _, size := range []int{1, 4, 9, 16, 25} {
		b, err := domain.New(size)
		require.NoError(t, err)
		ok, conflicts, err := New().Validate(context.Background(), b)
		require.NoError(t, err)
		require.True(t, ok, "size %d: %v", size, conflicts)
	}
}
