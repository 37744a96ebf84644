package domain

import (
	"fmt"
	"math"
	"strings"
)

// MaxSize bounds the supported grid sizes. Larger grids would overflow the
// uint64 unit masks used by the validator and are useless in practice anyway.
const MaxSize = 25

// Board is an N×N Sudoku grid. N must be a perfect square; the boxes are
// √N×√N. A cell value of 0 means empty, filled cells hold 1..N. Givens
// (clues supplied with the puzzle) are tracked separately from values the
// solver fills in.
type Board struct {
	size  int
	box   int
	cells []uint8
	fixed []bool
}

// New returns an empty board of the given size.
func New(size int) (*Board, error) {
	box, err := boxSide(size)
	if err != nil {
		return nil, err
	}
	return &Board{
		size:  size,
		box:   box,
		cells: make([]uint8, size*size),
		fixed: make([]bool, size*size),
	}, nil
}

// FromCells builds a board from a row-major cell slice. Non-empty cells
// become givens.
func FromCells(size int, cells []uint8) (*Board, error) {
	b, err := New(size)
	if err != nil {
		return nil, err
	}
	if len(cells) != size*size {
		return nil, fmt.Errorf("board: want %d cells, got %d", size*size, len(cells))
	}
	for i, v := range cells {
		if int(v) > size {
			return nil, fmt.Errorf("board: cell %d holds %d, max is %d", i, v, size)
		}
		b.cells[i] = v
		b.fixed[i] = v != 0
	}
	return b, nil
}

func boxSide(size int) (int, error) {
	if size < 1 || size > MaxSize {
		return 0, fmt.Errorf("board: size %d out of range [1,%d]", size, MaxSize)
	}
	box := int(math.Sqrt(float64(size)))
	if box*box != size {
		return 0, fmt.Errorf("board: size %d is not a perfect square", size)
	}
	return box, nil
}

// Size returns N.
func (b *Board) Size() int { return b.size }

// BoxSize returns √N, the side length of a box.
func (b *Board) BoxSize() int { return b.box }

func (b *Board) idx(row, col int) int {
	if row < 0 || row >= b.size || col < 0 || col >= b.size {
		panic(fmt.Sprintf("board: coordinate (%d,%d) out of range for size %d", row, col, b.size))
	}
	return row*b.size + col
}

// Get returns the digit at (row, col), 0 if empty. Out-of-range coordinates
// are a caller bug and panic.
func (b *Board) Get(row, col int) uint8 {
	return b.cells[b.idx(row, col)]
}

// Set assigns a digit at (row, col), or clears the cell with 0. No
// constraint check happens here; that is the solver's job.
func (b *Board) Set(row, col int, v uint8) {
	if int(v) > b.size {
		panic(fmt.Sprintf("board: value %d out of range for size %d", v, b.size))
	}
	b.cells[b.idx(row, col)] = v
}

// Fixed reports whether (row, col) holds a given.
func (b *Board) Fixed(row, col int) bool {
	return b.fixed[b.idx(row, col)]
}

// MarkGivens freezes the current non-empty cells as givens.
func (b *Board) MarkGivens() {
	for i, v := range b.cells {
		b.fixed[i] = v != 0
	}
}

// CanPlace reports whether placing v at (row, col) would leave the row,
// column, and box free of duplicate v. The cell's own current value is
// ignored, so the query also works for already-filled cells.
func (b *Board) CanPlace(row, col int, v uint8) bool {
	self := b.idx(row, col)
	for i := 0; i < b.size; i++ {
		if j := row*b.size + i; j != self && b.cells[j] == v {
			return false
		}
		if j := i*b.size + col; j != self && b.cells[j] == v {
			return false
		}
	}
	br, bc := (row/b.box)*b.box, (col/b.box)*b.box
	for dr := 0; dr < b.box; dr++ {
		for dc := 0; dc < b.box; dc++ {
			if j := (br+dr)*b.size + (bc + dc); j != self && b.cells[j] == v {
				return false
			}
		}
	}
	return true
}

// Complete reports whether every cell is filled. It does not re-validate;
// validity is maintained by the writer.
func (b *Board) Complete() bool {
	for _, v := range b.cells {
		if v == 0 {
			return false
		}
	}
	return true
}

// FirstEmpty returns the row-major first empty cell, or ok=false if the
// board is complete.
func (b *Board) FirstEmpty() (row, col int, ok bool) {
	for i, v := range b.cells {
		if v == 0 {
			return i / b.size, i % b.size, true
		}
	}
	return 0, 0, false
}

// FilledCount returns the number of non-empty cells.
func (b *Board) FilledCount() int {
	n := 0
	for _, v := range b.cells {
		if v != 0 {
			n++
		}
	}
	return n
}

// Clone returns a deep copy.
func (b *Board) Clone() *Board {
	c := &Board{size: b.size, box: b.box}
	c.cells = append([]uint8(nil), b.cells...)
	c.fixed = append([]bool(nil), b.fixed...)
	return c
}

// Equal reports whether two boards have the same size and cell values.
// The given/solved distinction is not compared.
func (b *Board) Equal(o *Board) bool {
	if o == nil || b.size != o.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid with box separators, one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.size; r++ {
		if r > 0 && r%b.box == 0 {
			for i := 0; i < b.size+b.size/b.box-1; i++ {
				if (i+1)%(b.box+1) == 0 {
					sb.WriteByte('+')
				} else {
					sb.WriteByte('-')
				}
			}
			sb.WriteByte('\n')
		}
		for c := 0; c < b.size; c++ {
			if c > 0 && c%b.box == 0 {
				sb.WriteByte('|')
			}
			if v := b.cells[r*b.size+c]; v == 0 {
				sb.WriteByte('.')
			} else if b.size > 9 {
				fmt.Fprintf(&sb, "%d ", v)
			} else {
				sb.WriteByte('0' + v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
