package validator

import (
	"context"

	"svw.info/sudoku-solver/internal/domain"
)

// FastValidator scans each row, column, and box once with a digit bitmask.
// domain.MaxSize keeps every mask within a uint64.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	n := b.Size()
	box := b.BoxSize()
	conf := make([]domain.CellCoord, 0, 8)
	scan := func(cells func(i int) (int, int)) {
		var m uint64
		for i := 0; i < n; i++ {
			r, c := cells(i)
			val := b.Get(r, c)
			if val == 0 {
				continue
			}
			bit := uint64(1) << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	for r := 0; r < n; r++ {
		r := r
		scan(func(i int) (int, int) { return r, i })
	}
	for c := 0; c < n; c++ {
		c := c
		scan(func(i int) (int, int) { return i, c })
	}
	for br := 0; br < box; br++ {
		for bc := 0; bc < box; bc++ {
			br, bc := br, bc
			scan(func(i int) (int, int) {
				return br*box + i/box, bc*box + i%box
			})
		}
	}
	return len(conf) == 0, conf, nil
}
