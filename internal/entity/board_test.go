package entity

import (
	"testing"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("Every cell starts unoccupied", func(t *testing.T) {
		board, err := NewBoard(3, 4)
		require.NoError(t, err)

		assert.Equal(t, 12, board.Len())
		for cell := range board.Cells {
			assert.Equal(t, Unoccupied, board.Occupant(cell))
		}
	})

	t.Run("Rejects non-positive dimensions", func(t *testing.T) {
		_, err := NewBoard(0, 4)
		require.ErrorIs(t, err, apperror.ErrInvalidConfig)

		_, err = NewBoard(3, -1)
		require.ErrorIs(t, err, apperror.ErrInvalidConfig)
	})
}

func TestBoard_Coordinates(t *testing.T) {
	board, err := NewBoard(3, 4)
	require.NoError(t, err)

	assert.Equal(t, 6, board.Index(1, 2))
	assert.Equal(t, 1, board.Row(6))
	assert.Equal(t, 2, board.Column(6))
	assert.True(t, board.InBounds(2, 3))
	assert.False(t, board.InBounds(3, 0))
	assert.False(t, board.InBounds(0, -1))
}

func TestBoard_FindFirstUnoccupied(t *testing.T) {
	t.Run("Returns the bottom cell of an empty column", func(t *testing.T) {
		// Given: an empty 3x3 board
		board, err := NewBoard(3, 3)
		require.NoError(t, err)

		// When: looking for a free cell in column 1
		cell, ok := board.FindFirstUnoccupied(1)

		// Then: the bottom row cell is returned
		require.True(t, ok)
		assert.Equal(t, board.Index(2, 1), cell)
	})

	t.Run("Stacks on top of occupied cells", func(t *testing.T) {
		board, err := NewBoard(3, 3)
		require.NoError(t, err)
		require.NoError(t, board.Occupy(board.Index(2, 0), 0))

		cell, ok := board.FindFirstUnoccupied(0)

		require.True(t, ok)
		assert.Equal(t, board.Index(1, 0), cell)
	})

	t.Run("Returns none for a full column", func(t *testing.T) {
		// Given: a column filled to the top
		board, err := NewBoard(3, 3)
		require.NoError(t, err)
		for row := 0; row < 3; row++ {
			require.NoError(t, board.Occupy(board.Index(row, 2), row%2))
		}

		// When: looking for a free cell
		_, ok := board.FindFirstUnoccupied(2)

		// Then: nothing is found
		assert.False(t, ok)
	})

	t.Run("Returns none for an out-of-range column", func(t *testing.T) {
		board, err := NewBoard(3, 3)
		require.NoError(t, err)

		_, ok := board.FindFirstUnoccupied(3)
		assert.False(t, ok)

		_, ok = board.FindFirstUnoccupied(-1)
		assert.False(t, ok)
	})
}

func TestBoard_Occupy(t *testing.T) {
	t.Run("Sets the occupant once", func(t *testing.T) {
		board, err := NewBoard(2, 2)
		require.NoError(t, err)

		require.NoError(t, board.Occupy(3, 1))
		assert.Equal(t, 1, board.Occupant(3))

		err = board.Occupy(3, 0)
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, 1, board.Occupant(3))
	})

	t.Run("Rejects cells outside the board", func(t *testing.T) {
		board, err := NewBoard(2, 2)
		require.NoError(t, err)

		require.ErrorIs(t, board.Occupy(4, 0), apperror.ErrInvalidCell)
		require.ErrorIs(t, board.Occupy(-1, 0), apperror.ErrInvalidCell)
	})
}

func TestBoard_IsFull(t *testing.T) {
	board, err := NewBoard(2, 2)
	require.NoError(t, err)

	for cell := 0; cell < 3; cell++ {
		require.NoError(t, board.Occupy(cell, cell%2))
		assert.False(t, board.IsFull())
	}

	require.NoError(t, board.Occupy(3, 1))
	assert.True(t, board.IsFull())
}
