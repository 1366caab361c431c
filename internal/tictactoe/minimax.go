package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// winScore is the value of an immediate win. Subtracting the depth makes the
// search prefer faster wins and slower losses.
const winScore = 10

// SearchResult is the chosen move together with its minimax value.
type SearchResult struct {
	Move  entity.Move
	Score int
	Nodes int
}

// BestMove - picks the optimal move for the opponent.
func BestMove(board *entity.Board) (entity.Move, error) {
	result, err := Search(board, entity.OpponentMark)
	if err != nil {
		return entity.Move{}, err
	}

	return result.Move, nil
}

// Search runs a full-depth minimax for mover on a copy of board. Candidate
// cells are tried in row-major order and the first one with the strictly
// highest score wins ties.
func Search(board *entity.Board, mover entity.Mark) (SearchResult, error) {
	if mover == entity.Empty {
		return SearchResult{}, apperror.ErrInvalidMark
	}

	if outcome := Evaluate(board); outcome.IsTerminal() {
		return SearchResult{}, fmt.Errorf("%w: %s", apperror.ErrGameAlreadyOver, outcome)
	}

	s := &searcher{board: *board, mover: mover}

	result := SearchResult{}
	found := false
	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			if s.board[row][col] != entity.Empty {
				continue
			}

			s.board[row][col] = mover
			score := s.value(1, false)
			s.board.Clear(row, col)

			if !found || score > result.Score {
				result.Move = entity.Move{Row: row, Col: col}
				result.Score = score
				found = true
			}
		}
	}

	result.Nodes = s.nodes

	return result, nil
}

type searcher struct {
	board entity.Board
	mover entity.Mark
	nodes int
}

// value scores the board from the mover's point of view. Every simulated
// placement is cleared again before the loop moves on.
func (that *searcher) value(depth int, maximizing bool) int {
	that.nodes++

	switch Evaluate(&that.board) {
	case entity.WinnerOutcome(that.mover):
		return winScore - depth
	case entity.WinnerOutcome(that.mover.Opponent()):
		return depth - winScore
	case entity.Tie:
		return 0
	}

	mark := that.mover
	if !maximizing {
		mark = that.mover.Opponent()
	}

	best := 0
	first := true
	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			if that.board[row][col] != entity.Empty {
				continue
			}

			that.board[row][col] = mark
			score := that.value(depth+1, !maximizing)
			that.board.Clear(row, col)

			switch {
			case first:
				best = score
				first = false
			case maximizing && score > best:
				best = score
			case !maximizing && score < best:
				best = score
			}
		}
	}

	return best
}
