package apperror

import "errors"

var (
	ErrGameAlreadyFinished = errors.New("game is already finished")
	ErrGameIsNotStarted    = errors.New("game is not started")
	ErrGameAlreadyStarted  = errors.New("game is already started")
	ErrGameNotFound        = errors.New("game not found")
	ErrInvalidColumn       = errors.New("invalid column index")
	ErrColumnFull          = errors.New("column is full")
	ErrInvalidCell         = errors.New("invalid cell index")
	ErrCellOccupied        = errors.New("cell is already occupied")
	ErrInvalidConfig       = errors.New("invalid game configuration")
)
