package apperror

import "errors"

var (
	ErrInvalidCoordinate = errors.New("coordinate is out of the board")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidMark       = errors.New("invalid mark")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrGameAlreadyOver   = errors.New("game is already over")
	ErrSessionNotFound   = errors.New("session not found")
)
