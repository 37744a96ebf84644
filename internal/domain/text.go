package domain

import (
	"fmt"
	"strings"
)

// ParseText reads the conventional one-line puzzle notation: one character
// per cell in row-major order, '1'..'9' for digits and '.', '0', or '_' for
// empty. Whitespace and line breaks are ignored, so a pretty-printed grid
// parses too (separators aside). Limited to sizes whose digits fit one
// character, i.e. N ≤ 9.
func ParseText(s string) (*Board, error) {
	var cells []uint8
	for _, r := range s {
		switch {
		case r == '.' || r == '0' || r == '_':
			cells = append(cells, 0)
		case r >= '1' && r <= '9':
			cells = append(cells, uint8(r-'0'))
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '|' || r == '-' || r == '+':
			continue
		default:
			return nil, fmt.Errorf("board: unexpected character %q in puzzle text", r)
		}
	}
	size := 0
	for n := 1; n*n <= MaxSize; n++ {
		if sq := n * n; sq*sq == len(cells) {
			size = sq
		}
	}
	if size == 0 {
		return nil, fmt.Errorf("board: puzzle text has %d cells, not a supported square size", len(cells))
	}
	return FromCells(size, cells)
}

// Text renders the board in one-line notation, '.' for empty. Sizes above 9
// have no single-character digits and are not representable.
func (b *Board) Text() (string, error) {
	if b.size > 9 {
		return "", fmt.Errorf("board: size %d has no one-line text form", b.size)
	}
	var sb strings.Builder
	for _, v := range b.cells {
		if v == 0 {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('0' + v)
		}
	}
	return sb.String(), nil
}
