package tictactoe

import "github.com/rocketscienceinc/tictactoe-minimax/internal/entity"

// WinCombos holds the cells of entity.Lines, index for index.
var WinCombos = buildWinCombos()

func buildWinCombos() [len(entity.Lines)][entity.BoardSize]entity.Move {
	var combos [len(entity.Lines)][entity.BoardSize]entity.Move
	for i, line := range entity.Lines {
		combos[i] = line.Cells()
	}

	return combos
}

// Evaluate - derives the outcome of a board. A move completes at most one new
// line, so as long as the board is evaluated after every move the first
// complete line found is the only winner.
func Evaluate(board *entity.Board) entity.Outcome {
	if i, ok := completedLine(board); ok {
		first := WinCombos[i][0]
		return entity.WinnerOutcome(board.Cell(first.Row, first.Col))
	}

	if board.IsFull() {
		return entity.Tie
	}

	return entity.None
}

// WinningLine - returns the line that decided the game, if the board is won.
func WinningLine(board *entity.Board) (entity.Line, bool) {
	i, ok := completedLine(board)
	if !ok {
		return entity.Line{}, false
	}

	return entity.Lines[i], true
}

func completedLine(board *entity.Board) (int, bool) {
	for i, combo := range WinCombos {
		a := board.Cell(combo[0].Row, combo[0].Col)
		b := board.Cell(combo[1].Row, combo[1].Col)
		c := board.Cell(combo[2].Row, combo[2].Col)
		if a != entity.Empty && a == b && b == c {
			return i, true
		}
	}

	return 0, false
}
