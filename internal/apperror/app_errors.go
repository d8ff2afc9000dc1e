package apperror

import (
	"errors"
	"fmt"
)

// ErrMoveRejected is the class of every move the engine refuses to apply.
var ErrMoveRejected = errors.New("move rejected")

var (
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrMoveRejected)
	ErrInvalidCell  = fmt.Errorf("%w: invalid cell", ErrMoveRejected)
	ErrGameFinished = errors.New("game is already finished")
	ErrGameNotFound = errors.New("game not found")
	ErrInvalidMark  = errors.New("invalid player mark")
)
