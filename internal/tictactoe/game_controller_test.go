package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameController_PlacePlayerMove(t *testing.T) {
	t.Run("Player move hands the turn to the opponent", func(t *testing.T) {
		// Given: a new round
		round := entity.NewRound()
		controller := NewGameController(&round)

		// When: the player takes the top-left corner
		outcome, err := controller.PlacePlayerMove(0, 0)
		require.NoError(t, err)

		// Then: the round is waiting for the opponent
		assert.Equal(t, entity.None, outcome)

		expected := entity.Round{
			State:    entity.AwaitingOpponentMove,
			Outcome:  entity.None,
			LastMove: entity.Move{Row: 0, Col: 0},
			Moves:    1,
		}
		expected.Board[0][0] = entity.PlayerMark
		assert.Equal(t, expected, round)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: the opponent holds the center and it is the player's turn
		round := entity.NewRound()
		round.Board[1][1] = entity.OpponentMark
		before := round
		controller := NewGameController(&round)

		// When: the player clicks the center
		_, err := controller.PlacePlayerMove(1, 1)

		// Then: ErrCellOccupied is returned and the round is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, round)
	})

	t.Run("Error on invalid coordinate", func(t *testing.T) {
		round := entity.NewRound()
		controller := NewGameController(&round)

		_, err := controller.PlacePlayerMove(3, -1)

		require.ErrorIs(t, err, apperror.ErrInvalidCoordinate)
		assert.Equal(t, entity.NewRound(), round)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: the player has already moved
		round := entity.NewRound()
		controller := NewGameController(&round)
		_, err := controller.PlacePlayerMove(0, 0)
		require.NoError(t, err)
		before := round

		// When: the player tries to move again
		_, err = controller.PlacePlayerMove(2, 2)

		// Then: ErrNotYourTurn is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, before, round)
	})

	t.Run("Completing a line ends the round", func(t *testing.T) {
		// Given: the player has two in the top row
		round := entity.NewRound()
		round.Board = mustBoard(t, "XX./OO./...")
		controller := NewGameController(&round)

		// When: the player completes the row
		outcome, err := controller.PlacePlayerMove(0, 2)

		// Then: the player wins and the top row is reported
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerWins, outcome)
		assert.Equal(t, entity.GameOver, round.State)

		line, ok := controller.WinningLine()
		require.True(t, ok)
		assert.Equal(t, entity.Line{Kind: entity.Row, Index: 0}, line)
	})
}

func TestGameController_RequestOpponentMove(t *testing.T) {
	t.Run("Opponent answers a corner with the center", func(t *testing.T) {
		round := entity.NewRound()
		controller := NewGameController(&round)
		_, err := controller.PlacePlayerMove(0, 0)
		require.NoError(t, err)

		move, outcome, err := controller.RequestOpponentMove()

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Col: 1}, move)
		assert.Equal(t, entity.None, outcome)
		assert.Equal(t, entity.AwaitingPlayerMove, round.State)
		assert.Equal(t, entity.OpponentMark, round.Board.Cell(1, 1))
		assert.Equal(t, 2, round.Moves)
	})

	t.Run("Error when it is the player's turn", func(t *testing.T) {
		round := entity.NewRound()
		controller := NewGameController(&round)

		_, _, err := controller.RequestOpponentMove()

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, entity.NewRound(), round)
	})
}

func TestGameController_FullRound(t *testing.T) {
	// Given: a new round
	round := entity.NewRound()
	controller := NewGameController(&round)

	// When: the player walks into a losing line
	for _, move := range []entity.Move{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}} {
		outcome, err := controller.PlacePlayerMove(move.Row, move.Col)
		require.NoError(t, err)
		require.Equal(t, entity.None, outcome)

		_, outcome, err = controller.RequestOpponentMove()
		require.NoError(t, err)
		if outcome.IsTerminal() {
			break
		}
	}

	// Then: the opponent wins along the anti diagonal
	assert.Equal(t, entity.OpponentWins, round.Outcome)
	assert.Equal(t, entity.GameOver, round.State)
	assert.Equal(t, entity.Move{Row: 2, Col: 0}, round.LastMove)
	assert.Equal(t, "XXO/XO./O..", round.Board.String())

	line, ok := controller.WinningLine()
	require.True(t, ok)
	assert.Equal(t, entity.Line{Kind: entity.Diagonal, Index: 1}, line)

	// And: further moves are rejected without touching the board
	before := round
	_, err := controller.PlacePlayerMove(2, 2)
	require.ErrorIs(t, err, apperror.ErrGameAlreadyOver)
	_, _, err = controller.RequestOpponentMove()
	require.ErrorIs(t, err, apperror.ErrGameAlreadyOver)
	assert.Equal(t, before, round)
}

func TestGameController_Reset(t *testing.T) {
	// Given: a finished round
	round := entity.Round{
		Board:   mustBoard(t, "XOX/XOO/OXX"),
		State:   entity.GameOver,
		Outcome: entity.Tie,
		Moves:   9,
	}
	controller := NewGameController(&round)

	_, ok := controller.WinningLine()
	assert.False(t, ok)

	// When: resetting
	controller.Reset()

	// Then: the round is fresh and the player moves first
	assert.Equal(t, entity.NewRound(), round)
	assert.Same(t, &round, controller.Round())
}
