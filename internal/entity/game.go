package entity

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// RoundState is the turn state machine of a single round. Evaluation happens
// inside each move call, so an evaluating state is never observed from outside.
type RoundState uint8

const (
	AwaitingPlayerMove RoundState = iota
	AwaitingOpponentMove
	GameOver
)

var roundStateNames = map[RoundState]string{
	AwaitingPlayerMove:   "awaiting_player_move",
	AwaitingOpponentMove: "awaiting_opponent_move",
	GameOver:             "game_over",
}

func (that RoundState) String() string {
	if name, ok := roundStateNames[that]; ok {
		return name
	}

	return fmt.Sprintf("state(%d)", uint8(that))
}

func (that RoundState) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *RoundState) UnmarshalText(text []byte) error {
	for state, name := range roundStateNames {
		if name == string(text) {
			*that = state
			return nil
		}
	}

	return fmt.Errorf("unknown round state %q", text)
}

// Round is one game from an empty board to its outcome.
type Round struct {
	Board    Board      `json:"board"`
	State    RoundState `json:"state"`
	Outcome  Outcome    `json:"outcome"`
	LastMove Move       `json:"last_move"`
	Moves    int        `json:"moves"`
}

// NewRound returns an empty round where the player moves first.
func NewRound() Round {
	return Round{State: AwaitingPlayerMove, Outcome: None}
}

func (that *Round) IsOver() bool {
	return that.State == GameOver
}

func (that *Round) IsPlayerTurn() bool {
	return that.State == AwaitingPlayerMove
}

func (that *Round) IsOpponentTurn() bool {
	return that.State == AwaitingOpponentMove
}

// ConfirmTurn - checks that mark is allowed to move now.
func (that *Round) ConfirmTurn(mark Mark) error {
	switch {
	case that.IsOver():
		return apperror.ErrGameAlreadyOver
	case mark == PlayerMark && that.IsPlayerTurn():
		return nil
	case mark == OpponentMark && that.IsOpponentTurn():
		return nil
	default:
		return fmt.Errorf("%w: %s while %s", apperror.ErrNotYourTurn, mark, that.State)
	}
}

// Score counts games won by each side within one session.
type Score struct {
	Player   int `json:"player"`
	Opponent int `json:"opponent"`
}

// Record adds a finished game to the tally. Ties and unfinished games are ignored.
func (that *Score) Record(outcome Outcome) {
	switch outcome {
	case PlayerWins:
		that.Player++
	case OpponentWins:
		that.Opponent++
	}
}

// Session is everything a single player's run of the program keeps between rounds.
type Session struct {
	ID        string    `json:"id"`
	Round     Round     `json:"round"`
	Score     Score     `json:"score"`
	Rounds    int       `json:"rounds"`
	CreatedAt time.Time `json:"created_at"`
}

func NewSession(id string, createdAt time.Time) *Session {
	return &Session{
		ID:        id,
		Round:     NewRound(),
		CreatedAt: createdAt,
	}
}
