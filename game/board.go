package game

import (
	"fmt"
	"strings"
)

// Board is a value type: assigning or passing it copies every cell.
type Board [Size][Size]Player

// ParseBoard reads 9 cells in row-major order. X and O mark players; '.', '-'
// and ' ' mark empty cells. Rows may be separated by '/' or newlines.
func ParseBoard(s string) (Board, error) {
	var b Board
	cells := strings.Map(func(r rune) rune {
		if r == '/' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, s)
	if len(cells) != Size*Size {
		return b, fmt.Errorf("board must have %d cells, got %d", Size*Size, len(cells))
	}
	for i, c := range cells {
		var p Player
		switch c {
		case 'X', 'x':
			p = X
		case 'O', 'o':
			p = O
		case '.', '-', ' ':
			p = None
		default:
			return b, fmt.Errorf("unexpected cell %q at index %d", c, i)
		}
		b[i/Size][i%Size] = p
	}
	return b, nil
}

// Play returns a copy of the board with the move applied for player.
func (b Board) Play(m Move, p Player) (Board, error) {
	if p != X && p != O {
		return b, fmt.Errorf("%w: no player to place at %v", ErrInvalidMove, m)
	}
	if !m.InBounds() {
		return b, fmt.Errorf("%w: %v is off the board", ErrInvalidMove, m)
	}
	if b[m.Row][m.Col] != None {
		return b, fmt.Errorf("%w: %v is taken by %v", ErrInvalidMove, m, b[m.Row][m.Col])
	}
	b[m.Row][m.Col] = p
	return b, nil
}

func (b Board) Count(p Player) int {
	n := 0
	for _, row := range b {
		for _, cell := range row {
			if cell == p {
				n++
			}
		}
	}
	return n
}

func (b Board) Full() bool {
	return b.Count(None) == 0
}

// Compact renders the board in the format accepted by ParseBoard.
func (b Board) Compact() string {
	var sb strings.Builder
	for _, row := range b {
		for _, cell := range row {
			sb.WriteString(cell.String())
		}
	}
	return sb.String()
}

func (b Board) String() string {
	var sb strings.Builder
	for i, row := range b {
		if i > 0 {
			sb.WriteString("\n---------\n")
		}
		for j, cell := range row {
			if j > 0 {
				sb.WriteString(" | ")
			}
			if cell == None {
				sb.WriteString(" ")
			} else {
				sb.WriteString(cell.String())
			}
		}
	}
	return sb.String()
}
