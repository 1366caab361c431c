package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// GameController drives one round through its turn state machine. It does
// not own the round, so the same controller can be pointed at a round that
// was loaded from storage.
type GameController struct {
	round *entity.Round
}

func NewGameController(round *entity.Round) *GameController {
	return &GameController{round: round}
}

// Round returns the round the controller works on.
func (that *GameController) Round() *entity.Round {
	return that.round
}

// PlacePlayerMove - applies the human move and evaluates the board. On any
// error the round is left as it was.
func (that *GameController) PlacePlayerMove(row, col int) (entity.Outcome, error) {
	if err := that.makeTurn(entity.PlayerMark, row, col); err != nil {
		return that.round.Outcome, fmt.Errorf("invalid player move: %w", err)
	}

	return that.round.Outcome, nil
}

// RequestOpponentMove - computes the optimal reply, applies it and evaluates.
func (that *GameController) RequestOpponentMove() (entity.Move, entity.Outcome, error) {
	if err := that.round.ConfirmTurn(entity.OpponentMark); err != nil {
		return entity.Move{}, that.round.Outcome, fmt.Errorf("invalid opponent move: %w", err)
	}

	move, err := BestMove(&that.round.Board)
	if err != nil {
		return entity.Move{}, that.round.Outcome, fmt.Errorf("failed to search opponent move: %w", err)
	}

	if err = that.makeTurn(entity.OpponentMark, move.Row, move.Col); err != nil {
		return entity.Move{}, that.round.Outcome, fmt.Errorf("invalid opponent move: %w", err)
	}

	return move, that.round.Outcome, nil
}

// Reset - clears the board and hands the first move back to the player.
func (that *GameController) Reset() {
	*that.round = entity.NewRound()
}

// WinningLine - returns the completed line of a won round.
func (that *GameController) WinningLine() (entity.Line, bool) {
	if that.round.Outcome != entity.PlayerWins && that.round.Outcome != entity.OpponentWins {
		return entity.Line{}, false
	}

	return WinningLine(&that.round.Board)
}

func (that *GameController) makeTurn(mark entity.Mark, row, col int) error {
	if err := that.round.ConfirmTurn(mark); err != nil {
		return err
	}

	if err := that.round.Board.Place(row, col, mark); err != nil {
		return err
	}

	that.round.LastMove = entity.Move{Row: row, Col: col}
	that.round.Moves++
	that.updateGameStatus(mark)

	return nil
}

// updateGameStatus - evaluates the board after a move and picks the next state.
func (that *GameController) updateGameStatus(mover entity.Mark) {
	that.round.Outcome = Evaluate(&that.round.Board)

	switch {
	case that.round.Outcome.IsTerminal():
		that.round.State = entity.GameOver
	case mover == entity.PlayerMark:
		that.round.State = entity.AwaitingOpponentMove
	default:
		that.round.State = entity.AwaitingPlayerMove
	}
}
