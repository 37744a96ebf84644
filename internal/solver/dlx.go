package solver

import (
	"context"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

// DLX implements Algorithm X / Dancing Links as an alternative engine.
// Exact-cover mapping for size n: 4n² constraint columns, n³ candidate rows
// (r,c,v). Column groups, in order: cell (r,c) filled, row r has v, col c
// has v, box b has v. DLX picks its own branch order (smallest column
// first), so on multi-solution boards it may return a different solution
// than Backtracking.
type DLX struct{}

func NewDLX() *DLX { return &DLX{} }

// node/column structures (classic dancing links)
type node struct {
	left, right, up, down *node
	col                   *column
	rowIdx                int // identifies the (r,c,v) candidate
}

type column struct {
	node
	size   int
	active bool // whether this constraint column is currently uncovered
}

type dlx struct {
	n, box    int
	nCells    int
	cols      []*column
	rowHead   []*node
	sol       []*node
	solLen    int
	nodes     int
	activeCnt int // number of active (uncovered) columns
}

func newDLX(n, box int) *dlx {
	nCells := n * n
	d := &dlx{
		n:       n,
		box:     box,
		nCells:  nCells,
		cols:    make([]*column, 4*nCells),
		rowHead: make([]*node, nCells*n),
		sol:     make([]*node, nCells),
	}
	for i := range d.cols {
		c := &column{active: true}
		c.up = &c.node
		c.down = &c.node
		d.cols[i] = c
	}
	d.activeCnt = len(d.cols)

	// build rows for all (r,c,v)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			for v := 1; v <= n; v++ {
				row := d.rowIndex(r, c, v)
				var first, prev *node
				for _, colID := range d.rowColumns(r, c, v) {
					col := d.cols[colID]
					nd := &node{col: col, rowIdx: row}
					// vertical insert at the bottom
					nd.down = &col.node
					nd.up = col.node.up
					col.node.up.down = nd
					col.node.up = nd
					col.size++
					// horizontal ring for the 4 nodes of the row
					if first == nil {
						first = nd
						nd.left = nd
						nd.right = nd
					} else {
						nd.left = prev
						nd.right = prev.right
						prev.right.left = nd
						prev.right = nd
					}
					prev = nd
				}
				d.rowHead[row] = first
			}
		}
	}
	return d
}

func (d *dlx) rowIndex(r, c, v int) int {
	return (r*d.n+c)*d.n + (v - 1)
}

func (d *dlx) rowColumns(r, c, v int) [4]int {
	cell := r*d.n + c
	rowN := d.nCells + r*d.n + (v - 1)
	colN := 2*d.nCells + c*d.n + (v - 1)
	box := (r/d.box)*d.box + (c / d.box)
	boxN := 3*d.nCells + box*d.n + (v - 1)
	return [4]int{cell, rowN, colN, boxN}
}

func (d *dlx) decodeRow(row int) (r, c, v int) {
	cell := row / d.n
	v = (row % d.n) + 1
	r = cell / d.n
	c = cell % d.n
	return
}

// core operations
func (d *dlx) cover(col *column) {
	if col.active {
		col.active = false
		d.activeCnt--
	}
	for i := col.down; i != &col.node; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

func (d *dlx) uncover(col *column) {
	for i := col.up; i != &col.node; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	if !col.active {
		col.active = true
		d.activeCnt++
	}
}

// chooseColumn returns the active column with the smallest size.
func (d *dlx) chooseColumn() *column {
	var best *column
	for _, c := range d.cols {
		if c.active {
			if best == nil || c.size < best.size {
				best = c
				if best.size == 0 {
					break
				}
			}
		}
	}
	return best
}

func (d *dlx) search(ctx context.Context, k, wantCount int, found *int) bool {
	select {
	case <-ctx.Done():
		return true // stop search
	default:
	}
	// all constraints covered → solution
	if d.activeCnt == 0 {
		d.solLen = k
		(*found)++
		return *found >= wantCount
	}

	c := d.chooseColumn()
	if c == nil || c.size == 0 {
		return false
	}
	d.cover(c)
	for r := c.down; r != &c.node; r = r.down {
		d.nodes++
		d.sol[k] = r
		for j := r.right; j != r; j = j.right {
			if j.col.active {
				d.cover(j.col)
			}
		}
		if d.search(ctx, k+1, wantCount, found) {
			for j := r.left; j != r; j = j.left {
				d.uncover(j.col)
			}
			d.uncover(c)
			return true
		}
		// backtrack: uncover in reverse order
		for j := r.left; j != r; j = j.left {
			d.uncover(j.col)
		}
	}
	d.uncover(c)
	return false
}

// applyGiven selects the candidate row for a clue and covers its columns,
// the same move the search would make.
func (d *dlx) applyGiven(r, c, v int) {
	head := d.rowHead[d.rowIndex(r, c, v)]
	for j := head; ; j = j.right {
		d.cover(j.col)
		if j.right == head {
			break
		}
	}
}

func (d *dlx) run(ctx context.Context, b *domain.Board, want int) int {
	for r := 0; r < d.n; r++ {
		for c := 0; c < d.n; c++ {
			if v := int(b.Get(r, c)); v > 0 {
				d.applyGiven(r, c, v)
			}
		}
	}
	found := 0
	_ = d.search(ctx, 0, want, &found)
	return found
}

func (s *DLX) Solve(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	// covering columns of conflicting givens would corrupt the matrix, so
	// reject those boards before building it
	if !givensConsistent(b) {
		return false, ports.Stats{Duration: time.Since(start)}, nil
	}
	d := newDLX(b.Size(), b.BoxSize())
	found := d.run(ctx, b, 1)
	st := ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return false, st, err
	}
	if found < 1 {
		return false, st, nil
	}
	// write the chosen rows into the board; givens keep their cells
	for i := 0; i < d.solLen; i++ {
		r, c, v := d.decodeRow(d.sol[i].rowIdx)
		b.Set(r, c, uint8(v))
	}
	return true, st, nil
}

func (s *DLX) CountSolutions(ctx context.Context, b *domain.Board, limit int) (int, ports.Stats, error) {
	start := time.Now()
	if limit < 1 {
		limit = 1
	}
	if !givensConsistent(b) {
		return 0, ports.Stats{Duration: time.Since(start)}, nil
	}
	d := newDLX(b.Size(), b.BoxSize())
	found := d.run(ctx, b, limit)
	st := ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return found, st, err
	}
	return found, st, nil
}
