package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound_ConfirmTurn(t *testing.T) {
	t.Run("Player may move in a fresh round", func(t *testing.T) {
		// Given: a new round
		round := NewRound()

		// When: checking the player's turn
		err := round.ConfirmTurn(PlayerMark)

		// Then: it should return nil error
		assert.NoError(t, err)
	})

	t.Run("Returns ErrNotYourTurn for the opponent in a fresh round", func(t *testing.T) {
		round := NewRound()

		err := round.ConfirmTurn(OpponentMark)

		assert.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Returns ErrGameAlreadyOver once the round is over", func(t *testing.T) {
		// Given: a finished round
		round := Round{State: GameOver, Outcome: Tie}

		// When: either side tries to move
		// Then: it should return ErrGameAlreadyOver
		assert.ErrorIs(t, round.ConfirmTurn(PlayerMark), apperror.ErrGameAlreadyOver)
		assert.ErrorIs(t, round.ConfirmTurn(OpponentMark), apperror.ErrGameAlreadyOver)
	})
}

func TestScore_Record(t *testing.T) {
	var score Score

	score.Record(PlayerWins)
	score.Record(OpponentWins)
	score.Record(OpponentWins)
	score.Record(Tie)
	score.Record(None)

	assert.Equal(t, Score{Player: 1, Opponent: 2}, score)
}

func TestSession_JSONRoundTrip(t *testing.T) {
	// Given: a session in the middle of a round
	session := NewSession("abc", time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, session.Round.Board.Place(0, 0, PlayerMark))
	session.Round.State = AwaitingOpponentMove
	session.Round.LastMove = Move{Row: 0, Col: 0}
	session.Round.Moves = 1
	session.Score = Score{Player: 2, Opponent: 3}

	// When: it is encoded and decoded
	data, err := json.Marshal(session)
	require.NoError(t, err)

	var decoded Session
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Then: the state is preserved and enums are written by name
	assert.Equal(t, *session, decoded)
	assert.Contains(t, string(data), `"state":"awaiting_opponent_move"`)
	assert.Contains(t, string(data), `"outcome":"none"`)
}
