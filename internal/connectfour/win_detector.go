package connectfour

import "github.com/rocketscienceinc/connectfour-backend/internal/entity"

type direction struct {
	dRow    int
	dColumn int
}

// Walking backward from a start cell: horizontal (flat step 1), vertical
// (step columns), diagonal (step columns+1), anti-diagonal (step columns-1).
var directions = [...]direction{
	{dRow: 0, dColumn: -1},
	{dRow: -1, dColumn: 0},
	{dRow: -1, dColumn: -1},
	{dRow: -1, dColumn: 1},
}

// FindWinningLine reports the cells of a run of winLength cells owned by
// player that passes through placed, or nil when there is none.
//
// Start cells are scanned from the last cell backward and directions in the
// order above; the first matching window wins. Every step is checked against
// row and column bounds, so a walk never continues across a board edge.
func FindWinningLine(board *entity.Board, placed, winLength, player int) []int {
	if winLength <= 0 || placed < 0 || placed >= board.Len() {
		return nil
	}

	for start := board.Len() - 1; start >= 0; start-- {
		for _, dir := range directions {
			if line := walk(board, start, dir, winLength, player, placed); line != nil {
				return line
			}
		}
	}

	return nil
}

func walk(board *entity.Board, start int, dir direction, winLength, player, placed int) []int {
	row, column := board.Row(start), board.Column(start)

	// cheap rejection before allocating
	endRow, endColumn := row+dir.dRow*(winLength-1), column+dir.dColumn*(winLength-1)
	if !board.InBounds(endRow, endColumn) {
		return nil
	}

	line := make([]int, 0, winLength)
	throughPlaced := false

	for i := 0; i < winLength; i++ {
		cell := board.Index(row+dir.dRow*i, column+dir.dColumn*i)
		if board.Occupant(cell) != player {
			return nil
		}

		if cell == placed {
			throughPlaced = true
		}

		line = append(line, cell)
	}

	if !throughPlaced {
		return nil
	}

	return line
}
