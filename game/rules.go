package game

// All rows, columns and both diagonals
var lines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// LegalMoves returns every empty cell in row-major order.
func LegalMoves(b Board) []Move {
	moves := make([]Move, 0, Size*Size)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col] == None {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

// CheckWinner reports a win when any line holds three marks of one player,
// and a draw when no line is complete and the board is full.
func CheckWinner(b Board) Outcome {
	for _, line := range lines {
		first := b[line[0].Row][line[0].Col]
		if first == None {
			continue
		}
		if b[line[1].Row][line[1].Col] == first && b[line[2].Row][line[2].Col] == first {
			return Outcome{Status: Win, Winner: first}
		}
	}
	if b.Full() {
		return Outcome{Status: Draw}
	}
	return Outcome{Status: InProgress}
}
