package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/gofrs/uuid/v5"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

// targetGivens scales the classic 9×9 clue counts to the board area.
func targetGivens(size int, d domain.Difficulty) int {
	base := 24 // Expert
	switch d {
	case domain.Easy:
		base = 40
	case domain.Medium:
		base = 34
	case domain.Hard:
		base = 28
	}
	cells := size * size
	t := base * cells / 81
	if t < 1 {
		t = 1
	}
	return t
}

// Generate builds a full random solution for the seed, then carves cells in
// random order as long as the puzzle keeps a unique solution.
func (g *UniqueGenerator) Generate(ctx context.Context, size int, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	full, err := domain.New(size)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	if !fillRandom(ctx, rng, full) {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Duration: time.Since(start)}, err
		}
		return nil, ports.Stats{Duration: time.Since(start)}, context.Canceled
	}

	puz := full.Clone()
	cells := size * size
	positions := rng.Perm(cells)

	target := targetGivens(size, diff)
	deadline := start.Add(900 * time.Millisecond)
	nodes := 0

	for _, pos := range positions {
		if time.Now().After(deadline) || ctx.Err() != nil {
			break
		}
		if puz.FilledCount() <= target {
			break
		}
		r, c := pos/size, pos%size
		old := puz.Get(r, c)
		if old == 0 {
			continue
		}
		puz.Set(r, c, 0)
		count, st, _ := g.Solver.CountSolutions(ctx, puz, 2)
		nodes += st.Nodes
		if count != 1 {
			puz.Set(r, c, old)
		}
	}
	puz.MarkGivens()

	id, err := uuid.NewV4()
	if err != nil {
		return nil, ports.Stats{}, err
	}
	p := &domain.Puzzle{
		ID:         id.String(),
		Seed:       seed,
		Difficulty: diff,
		Board:      puz,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fillRandom solves an empty grid into a full valid solution, trying digits
// in a fresh random order at every cell.
func fillRandom(ctx context.Context, rng *rand.Rand, grid *domain.Board) bool {
	n := grid.Size()
	nums := make([]uint8, n)
	for i := range nums {
		nums[i] = uint8(i + 1)
	}
	var dfs func(r, c int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == n {
			return true
		}
		nr, nc := r, c+1
		if nc == n {
			nr, nc = r+1, 0
		}
		rng.Shuffle(n, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		order := append([]uint8(nil), nums...)
		for _, v := range order {
			if grid.CanPlace(r, c, v) {
				grid.Set(r, c, v)
				if dfs(nr, nc) {
					return true
				}
				grid.Set(r, c, 0)
			}
		}
		return false
	}
	return dfs(0, 0)
}
