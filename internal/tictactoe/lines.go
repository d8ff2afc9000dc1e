package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// Line is three cells that win the game when one player holds all of them.
type Line [3]entity.Coord

// WinCombos is scanned in this order: rows top to bottom, columns left to right,
// then the two diagonals. The first complete line decides the winner.
var WinCombos = [8]Line{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 2}},
}

// findWinningLine returns the first line in WinCombos held entirely by one player.
func findWinningLine(board *entity.Board) (Line, entity.Player, bool) {
	for _, line := range WinCombos {
		candidate, ok := board.GetCell(line[0].Row, line[0].Col)
		if !ok {
			continue
		}

		if lineHeldBy(board, line, candidate) {
			return line, candidate, true
		}
	}

	return Line{}, 0, false
}

func lineHeldBy(board *entity.Board, line Line, player entity.Player) bool {
	for _, coord := range line {
		current, ok := board.GetCell(coord.Row, coord.Col)
		if !ok || current != player {
			return false
		}
	}

	return true
}

// deriveOutcome computes the outcome purely from the board contents.
func deriveOutcome(board *entity.Board) entity.Outcome {
	if _, winner, ok := findWinningLine(board); ok {
		return entity.Won(winner)
	}

	if board.IsFull() {
		return entity.Drawn()
	}

	return entity.InProgress()
}
