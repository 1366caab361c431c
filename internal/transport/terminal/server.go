package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var errQuit = errors.New("player quit")

type gameManager interface {
	StartSession(ctx context.Context) (*entity.Session, error)
	PlacePlayerMove(ctx context.Context, id string, row, col int) (*entity.Session, error)
	RequestOpponentMove(ctx context.Context, id string) (entity.Move, *entity.Session, error)
	PlayAgain(ctx context.Context, id string) (*entity.Session, error)
	EndSession(ctx context.Context, id string) (*entity.Session, error)
}

// Server is the presentation layer: it turns typed coordinates into engine
// calls and draws whatever the engine returns.
type Server struct {
	logger  *slog.Logger
	manager gameManager

	input io.Reader
	out   io.Writer
	delay time.Duration

	commands map[string]func(ctx context.Context, session *entity.Session) error
}

func New(logger *slog.Logger, manager gameManager, input io.Reader, out io.Writer, delay time.Duration) *Server {
	server := &Server{
		logger:  logger.With("component", "terminal"),
		manager: manager,
		input:   input,
		out:     out,
		delay:   delay,

		commands: make(map[string]func(context.Context, *entity.Session) error),
	}

	server.commands["q"] = server.handleQuit
	server.commands["quit"] = server.handleQuit
	server.commands["exit"] = server.handleQuit
	server.commands["h"] = server.handleHelp
	server.commands["help"] = server.handleHelp
	server.commands["b"] = server.handleBoard
	server.commands["board"] = server.handleBoard
	server.commands["s"] = server.handleScore
	server.commands["score"] = server.handleScore

	return server
}

// Run - plays rounds until the player quits, input ends or ctx is cancelled.
// The session is always ended before returning, and the input reader is
// released on every return path.
func (that *Server) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := readLines(ctx, that.input)

	session, err := that.manager.StartSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	defer func() {
		final, endErr := that.manager.EndSession(context.WithoutCancel(ctx), session.ID)
		if endErr != nil {
			log.Error("failed to end session", "error", endErr)
			return
		}
		that.printf("Final score: %s\n", formatScore(final.Score))
	}()

	that.printf("Tic-Tac-Toe: you are %s, the computer is %s. Type \"help\" for commands.\n",
		entity.PlayerMark, entity.OpponentMark)
	that.drawBoard(&session.Round, nil)

	for {
		switch {
		case session.Round.IsOver():
			session, err = that.finishRound(ctx, session, lines)
		case session.Round.IsOpponentTurn():
			session, err = that.opponentTurn(ctx, session)
		default:
			session, err = that.playerTurn(ctx, session, lines)
		}

		switch {
		case errors.Is(err, errQuit), errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}
	}
}

func (that *Server) playerTurn(ctx context.Context, session *entity.Session, lines <-chan string) (*entity.Session, error) {
	that.printf("Your move (row col): ")

	line, err := readLine(ctx, lines)
	if err != nil {
		return session, err
	}

	if handler, ok := that.commands[strings.ToLower(line)]; ok {
		return session, handler(ctx, session)
	}

	row, col, err := parseMove(line)
	if err != nil {
		that.printf("Enter a row and a column, for example \"2 3\".\n")
		return session, nil
	}

	return that.handlePlayerMove(ctx, session, row, col)
}

func (that *Server) opponentTurn(ctx context.Context, session *entity.Session) (*entity.Session, error) {
	if err := that.wait(ctx); err != nil {
		return session, err
	}

	move, updated, err := that.manager.RequestOpponentMove(ctx, session.ID)
	if err != nil {
		return session, fmt.Errorf("failed to get opponent move: %w", err)
	}

	that.printf("Computer plays %d %d\n", move.Row+1, move.Col+1)
	that.drawRound(&updated.Round)

	return updated, nil
}

func (that *Server) finishRound(ctx context.Context, session *entity.Session, lines <-chan string) (*entity.Session, error) {
	switch session.Round.Outcome {
	case entity.PlayerWins:
		that.printf("You win!\n")
	case entity.OpponentWins:
		that.printf("The computer wins!\n")
	case entity.Tie:
		that.printf("It's a tie!\n")
	}

	that.printf("Score: %s\n", formatScore(session.Score))

	for {
		that.printf("Play again? [y/n]: ")

		line, err := readLine(ctx, lines)
		if err != nil {
			return session, err
		}

		switch strings.ToLower(line) {
		case "y", "yes":
			updated, err := that.manager.PlayAgain(ctx, session.ID)
			if err != nil {
				return session, fmt.Errorf("failed to start a new round: %w", err)
			}

			that.drawBoard(&updated.Round, nil)

			return updated, nil
		case "n", "no", "q", "quit", "exit":
			return session, errQuit
		}
	}
}

// wait is the pause before the computer answers. It only exists so the reply
// does not appear instantly.
func (that *Server) wait(ctx context.Context) error {
	if that.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(that.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (that *Server) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

// readLines feeds trimmed input lines into a channel that closes on EOF or
// once ctx is done.
func readLines(ctx context.Context, input io.Reader) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(input)
		for scanner.Scan() {
			select {
			case lines <- strings.TrimSpace(scanner.Text()):
			case <-ctx.Done():
				return
			}
		}
	}()

	return lines
}

func readLine(ctx context.Context, lines <-chan string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}
