package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestMove(t *testing.T) {
	tests := []struct {
		name     string
		board    string
		expected entity.Move
	}{
		{name: "Takes the center after a corner opening", board: "X../.../...", expected: entity.Move{Row: 1, Col: 1}},
		{name: "Completes its own row", board: "X.X/OO./X..", expected: entity.Move{Row: 1, Col: 2}},
		{name: "Prefers winning over blocking", board: "XX./OO./X..", expected: entity.Move{Row: 1, Col: 2}},
		{name: "Blocks the player's row", board: "XX./.O./...", expected: entity.Move{Row: 0, Col: 2}},
		{name: "Finds a forced win", board: "XXO/.../...", expected: entity.Move{Row: 1, Col: 2}},
		{name: "Answers an edge opening in the corner", board: ".X./XO./...", expected: entity.Move{Row: 0, Col: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a board where the opponent is to move
			board := mustBoard(t, tt.board)

			// When: asking for the best move
			move, err := BestMove(&board)

			// Then: the expected cell is chosen
			require.NoError(t, err)
			assert.Equal(t, tt.expected, move)
		})
	}
}

func TestSearch_Scores(t *testing.T) {
	t.Run("Immediate win scores highest", func(t *testing.T) {
		board := mustBoard(t, "XX./OO./X..")

		result, err := Search(&board, entity.OpponentMark)

		require.NoError(t, err)
		assert.Equal(t, winScore-1, result.Score)
		assert.Positive(t, result.Nodes)
	})

	t.Run("Forced win scores by its depth", func(t *testing.T) {
		board := mustBoard(t, "XXO/.../...")

		result, err := Search(&board, entity.OpponentMark)

		require.NoError(t, err)
		assert.Equal(t, winScore-5, result.Score)
	})

	t.Run("Empty board is a draw for either side", func(t *testing.T) {
		var board entity.Board

		result, err := Search(&board, entity.PlayerMark)

		require.NoError(t, err)
		assert.Equal(t, 0, result.Score)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, result.Move)
	})

	t.Run("Searches for the player as well", func(t *testing.T) {
		board := mustBoard(t, "XX./OO./...")

		result, err := Search(&board, entity.PlayerMark)

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 2}, result.Move)
		assert.Equal(t, winScore-1, result.Score)
	})
}

func TestBestMove_LeavesBoardUntouched(t *testing.T) {
	// Given: a board in the middle of a game
	board := mustBoard(t, "X.O/.X./...")
	before := board

	// When: searching
	_, err := BestMove(&board)

	// Then: the caller's board is exactly as before
	require.NoError(t, err)
	assert.Equal(t, before, board)
}

func TestBestMove_Errors(t *testing.T) {
	t.Run("Won board", func(t *testing.T) {
		board := mustBoard(t, "XXX/OO./...")

		_, err := BestMove(&board)

		require.ErrorIs(t, err, apperror.ErrGameAlreadyOver)
	})

	t.Run("Full board", func(t *testing.T) {
		board := mustBoard(t, "XOX/XOO/OXX")

		_, err := BestMove(&board)

		require.ErrorIs(t, err, apperror.ErrGameAlreadyOver)
	})

	t.Run("Empty mover", func(t *testing.T) {
		var board entity.Board

		_, err := Search(&board, entity.Empty)

		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

// The player tries every possible sequence of moves; the opponent always
// answers with BestMove. The player must never win.
func TestBestMove_NeverLoses(t *testing.T) {
	games := 0

	var play func(board entity.Board)
	play = func(board entity.Board) {
		for _, move := range board.EmptyCells() {
			next := board
			require.NoError(t, next.Place(move.Row, move.Col, entity.PlayerMark))

			switch Evaluate(&next) {
			case entity.PlayerWins:
				t.Fatalf("player won on %s", next)
			case entity.Tie:
				games++
				continue
			}

			reply, err := BestMove(&next)
			require.NoError(t, err)
			require.NoError(t, next.Place(reply.Row, reply.Col, entity.OpponentMark))

			switch Evaluate(&next) {
			case entity.OpponentWins:
				games++
				continue
			case entity.PlayerWins:
				t.Fatalf("player won on %s", next)
			}

			play(next)
		}
	}

	play(entity.Board{})

	assert.Positive(t, games)
}

func TestSearch_PerfectPlayIsATie(t *testing.T) {
	// Given: an empty board and both sides searching
	var board entity.Board
	mover := entity.PlayerMark

	// When: the game is played out
	for !Evaluate(&board).IsTerminal() {
		result, err := Search(&board, mover)
		require.NoError(t, err)
		require.NoError(t, board.Place(result.Move.Row, result.Move.Col, mover))
		mover = mover.Opponent()
	}

	// Then: nobody wins
	assert.Equal(t, entity.Tie, Evaluate(&board))
	assert.Equal(t, "XXO/OOX/XOX", board.String())
}
