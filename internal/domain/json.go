package domain

import (
	"encoding/json"
	"fmt"
)

// boardJSON is the wire/persistence shape. Cells are ints rather than a
// byte slice so the JSON stays a plain number array instead of base64.
type boardJSON struct {
	Size  int    `json:"size"`
	Cells []int  `json:"cells"`
	Fixed []bool `json:"fixed,omitempty"`
}

func (b *Board) MarshalJSON() ([]byte, error) {
	out := boardJSON{Size: b.size, Cells: make([]int, len(b.cells))}
	for i, v := range b.cells {
		out.Cells[i] = int(v)
	}
	for _, f := range b.fixed {
		if f {
			out.Fixed = b.fixed
			break
		}
	}
	return json.Marshal(out)
}

func (b *Board) UnmarshalJSON(data []byte) error {
	var in boardJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	cells := make([]uint8, len(in.Cells))
	for i, v := range in.Cells {
		if v < 0 || v > in.Size {
			return fmt.Errorf("board: cell %d holds %d, max is %d", i, v, in.Size)
		}
		cells[i] = uint8(v)
	}
	nb, err := FromCells(in.Size, cells)
	if err != nil {
		return err
	}
	if len(in.Fixed) == len(nb.fixed) {
		copy(nb.fixed, in.Fixed)
	}
	*b = *nb
	return nil
}
