package entity

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
)

// Unoccupied marks a cell that no player has claimed yet.
const Unoccupied = -1

// Board is a rows x columns grid stored row by row; row 0 is the top row and
// pieces settle towards row Rows-1.
type Board struct {
	Rows    int   `json:"rows"`
	Columns int   `json:"columns"`
	Cells   []int `json:"cells"`
}

func NewBoard(rows, columns int) (*Board, error) {
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: board %dx%d", apperror.ErrInvalidConfig, rows, columns)
	}

	cells := make([]int, rows*columns)
	for i := range cells {
		cells[i] = Unoccupied
	}

	return &Board{
		Rows:    rows,
		Columns: columns,
		Cells:   cells,
	}, nil
}

func (that *Board) Len() int {
	return len(that.Cells)
}

func (that *Board) Index(row, column int) int {
	return row*that.Columns + column
}

func (that *Board) Row(cell int) int {
	return cell / that.Columns
}

func (that *Board) Column(cell int) int {
	return cell % that.Columns
}

func (that *Board) InBounds(row, column int) bool {
	return row >= 0 && row < that.Rows && column >= 0 && column < that.Columns
}

func (that *Board) ValidColumn(column int) bool {
	return column >= 0 && column < that.Columns
}

// Occupant returns the player index holding the cell, or Unoccupied.
func (that *Board) Occupant(cell int) int {
	return that.Cells[cell]
}

// FindFirstUnoccupied returns the lowest free cell of the column.
func (that *Board) FindFirstUnoccupied(column int) (int, bool) {
	if !that.ValidColumn(column) {
		return 0, false
	}

	for row := that.Rows - 1; row >= 0; row-- {
		cell := that.Index(row, column)
		if that.Cells[cell] == Unoccupied {
			return cell, true
		}
	}

	return 0, false
}

func (that *Board) Occupy(cell, player int) error {
	if cell < 0 || cell >= len(that.Cells) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Cells[cell] != Unoccupied {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that.Cells[cell] = player

	return nil
}

func (that *Board) IsFull() bool {
	for _, occupant := range that.Cells {
		if occupant == Unoccupied {
			return false
		}
	}

	return true
}
