package entity

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// BoardSize is the number of rows and columns on the board.
const BoardSize = 3

// Coord addresses a single cell.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is the 3x3 grid. The zero value is an empty board.
type Board struct {
	cells [BoardSize][BoardSize]Player
}

func NewBoard() *Board {
	return &Board{}
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// GetCell returns the occupant of the cell and whether it is occupied.
// Coordinates outside the board read as unoccupied.
func (that *Board) GetCell(row, col int) (Player, bool) {
	if !that.InBounds(row, col) {
		return 0, false
	}

	player := that.cells[row][col]

	return player, player.Valid()
}

// SetCell is the only way a mark gets onto the board. The board is left untouched on error.
func (that *Board) SetCell(row, col int, player Player) error {
	if !that.InBounds(row, col) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCell, row, col)
	}

	if !player.Valid() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidMark, player)
	}

	if that.cells[row][col].Valid() {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	that.cells[row][col] = player

	return nil
}

func (that *Board) IsFull() bool {
	return that.Count() == BoardSize*BoardSize
}

// Count returns the number of occupied cells.
func (that *Board) Count() int {
	count := 0
	for _, row := range that.cells {
		for _, cell := range row {
			if cell.Valid() {
				count++
			}
		}
	}

	return count
}

func (that *Board) Clear() {
	that.cells = [BoardSize][BoardSize]Player{}
}

// Cells returns a copy of the grid; zero entries are unoccupied.
func (that *Board) Cells() [BoardSize][BoardSize]Player {
	return that.cells
}

func (that *Board) Clone() *Board {
	return &Board{cells: that.cells}
}

func (that Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.cells)
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var cells [BoardSize][BoardSize]Player
	if err := json.Unmarshal(data, &cells); err != nil {
		return fmt.Errorf("failed to unmarshal board: %w", err)
	}

	that.cells = cells

	return nil
}
