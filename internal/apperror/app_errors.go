package apperror

import "errors"

var (
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrBoardFull    = errors.New("the board has no empty cells")
)
