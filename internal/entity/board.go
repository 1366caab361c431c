package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// BoardSize is the number of rows and columns of the board.
const BoardSize = 3

// Mark is the content of a single cell.
type Mark uint8

const (
	Empty Mark = iota
	PlayerMark
	OpponentMark
)

const (
	playerSymbol   = "X"
	opponentSymbol = "O"
)

func (that Mark) String() string {
	switch that {
	case PlayerMark:
		return playerSymbol
	case OpponentMark:
		return opponentSymbol
	default:
		return ""
	}
}

// Opponent returns the mark of the other side. Empty stays Empty.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerMark:
		return OpponentMark
	case OpponentMark:
		return PlayerMark
	default:
		return Empty
	}
}

// MarshalText - fails for values outside the three defined marks, so a broken
// cell is never stored as Empty.
func (that Mark) MarshalText() ([]byte, error) {
	switch that {
	case Empty, PlayerMark, OpponentMark:
		return []byte(that.String()), nil
	default:
		return nil, fmt.Errorf("%w: mark(%d)", apperror.ErrInvalidMark, uint8(that))
	}
}

func (that *Mark) UnmarshalText(text []byte) error {
	mark, err := ParseMark(string(text))
	if err != nil {
		return err
	}

	*that = mark

	return nil
}

// ParseMark - converts "X", "O" or "" into a Mark.
func ParseMark(value string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case playerSymbol:
		return PlayerMark, nil
	case opponentSymbol:
		return OpponentMark, nil
	case "":
		return Empty, nil
	default:
		return Empty, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, value)
	}
}

// Move is a board coordinate.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// Board is the 3x3 grid. The zero value is an empty board.
type Board [BoardSize][BoardSize]Mark

// IsValidCoordinate reports whether row and col address a cell.
func IsValidCoordinate(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Place puts mark on an empty cell. The board is left untouched on error.
func (that *Board) Place(row, col int, mark Mark) error {
	if !IsValidCoordinate(row, col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCoordinate, row, col)
	}

	if mark == Empty {
		return apperror.ErrInvalidMark
	}

	if that[row][col] != Empty {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, row, col)
	}

	that[row][col] = mark

	return nil
}

// Clear resets a cell. It is meant for search backtracking only.
func (that *Board) Clear(row, col int) {
	that[row][col] = Empty
}

func (that *Board) Cell(row, col int) Mark {
	return that[row][col]
}

func (that *Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

// EmptyCells - lists the free cells in row-major order.
func (that *Board) EmptyCells() []Move {
	cells := make([]Move, 0, BoardSize*BoardSize)
	for row := range BoardSize {
		for col := range BoardSize {
			if that[row][col] == Empty {
				cells = append(cells, Move{Row: row, Col: col})
			}
		}
	}

	return cells
}

// Count returns how many cells hold mark.
func (that *Board) Count(mark Mark) int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == mark {
				count++
			}
		}
	}

	return count
}

// String renders the board as three rows separated by "/", empty cells as ".".
func (that Board) String() string {
	var sb strings.Builder
	for row := range BoardSize {
		if row > 0 {
			sb.WriteByte('/')
		}
		for col := range BoardSize {
			if that[row][col] == Empty {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(that[row][col].String())
		}
	}

	return sb.String()
}

// ParseBoard reads nine cells in row-major order. X and O are marks; ".",
// "-", "_" and space are empty. Row separators "/" and line breaks are skipped.
func ParseBoard(value string) (Board, error) {
	var board Board

	cells := make([]Mark, 0, BoardSize*BoardSize)
	for _, r := range value {
		switch r {
		case '/', '\n', '\r', '|':
			continue
		case 'x', 'X':
			cells = append(cells, PlayerMark)
		case 'o', 'O':
			cells = append(cells, OpponentMark)
		case '.', '-', '_', ' ':
			cells = append(cells, Empty)
		default:
			return board, fmt.Errorf("%w: unexpected %q in board", apperror.ErrInvalidMark, r)
		}
	}

	if len(cells) != BoardSize*BoardSize {
		return board, fmt.Errorf("%w: board needs %d cells, got %d", apperror.ErrInvalidCoordinate, BoardSize*BoardSize, len(cells))
	}

	for i, mark := range cells {
		board[i/BoardSize][i%BoardSize] = mark
	}

	return board, nil
}
