package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager owns sessions: it runs rounds through the game controller,
// keeps the score and stores the result after every step.
type GameManager struct {
	logger      *slog.Logger
	sessionRepo sessionRepo
	now         func() time.Time
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo) *GameManager {
	return &GameManager{
		logger:      logger.With("component", "game_manager"),
		sessionRepo: sessionRepo,
		now:         time.Now,
	}
}

// StartSession - creates a session with an empty round and a zero score.
func (that *GameManager) StartSession(ctx context.Context) (*entity.Session, error) {
	session := entity.NewSession(uuid.NewString(), that.now().UTC())

	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	that.logger.Info("session started", "session_id", session.ID)

	return session, nil
}

func (that *GameManager) GetSession(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// PlacePlayerMove - applies the human move. On a rejected move the stored
// session is returned unchanged together with the error.
func (that *GameManager) PlacePlayerMove(ctx context.Context, id string, row, col int) (*entity.Session, error) {
	session, err := that.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	controller := tictactoe.NewGameController(&session.Round)

	outcome, err := controller.PlacePlayerMove(row, col)
	if err != nil {
		return session, fmt.Errorf("failed to make player move: %w", err)
	}

	if err = that.finishTurn(ctx, session, outcome); err != nil {
		return nil, err
	}

	return session, nil
}

// RequestOpponentMove - lets the engine pick and apply the opponent's move.
func (that *GameManager) RequestOpponentMove(ctx context.Context, id string) (entity.Move, *entity.Session, error) {
	log := that.logger.With("method", "RequestOpponentMove", "session_id", id)

	session, err := that.GetSession(ctx, id)
	if err != nil {
		return entity.Move{}, nil, err
	}

	controller := tictactoe.NewGameController(&session.Round)

	started := that.now()

	move, outcome, err := controller.RequestOpponentMove()
	if err != nil {
		return entity.Move{}, session, fmt.Errorf("failed to make opponent move: %w", err)
	}

	log.Debug("opponent moved", "move", move.String(), "took", that.now().Sub(started))

	if err = that.finishTurn(ctx, session, outcome); err != nil {
		return entity.Move{}, nil, err
	}

	return move, session, nil
}

// PlayAgain - starts a new round and keeps the score. An unfinished round is
// dropped without counting.
func (that *GameManager) PlayAgain(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	tictactoe.NewGameController(&session.Round).Reset()

	if err = that.updateSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// EndSession - removes the session and returns its final state.
func (that *GameManager) EndSession(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = that.sessionRepo.DeleteByID(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete session: %w", err)
	}

	that.logger.Info("session ended",
		"session_id", id,
		"rounds", session.Rounds,
		"player_score", session.Score.Player,
		"opponent_score", session.Score.Opponent,
	)

	return session, nil
}

// finishTurn records the score exactly once, on the move that ended the
// round, and stores the session.
func (that *GameManager) finishTurn(ctx context.Context, session *entity.Session, outcome entity.Outcome) error {
	if outcome.IsTerminal() {
		session.Score.Record(outcome)
		session.Rounds++

		that.logger.Info("round finished",
			"session_id", session.ID,
			"outcome", outcome.String(),
			"player_score", session.Score.Player,
			"opponent_score", session.Score.Opponent,
		)
	}

	return that.updateSession(ctx, session)
}

func (that *GameManager) updateSession(ctx context.Context, session *entity.Session) error {
	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	return nil
}
