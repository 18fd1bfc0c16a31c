package game

import "fmt"

// Move represents a cell coordinate on the board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (m Move) InBounds() bool {
	return m.Row >= 0 && m.Row < Size && m.Col >= 0 && m.Col < Size
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}
