package terminal

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var errBadInput = errors.New("expected a row and a column")

const helpText = `Commands:
  <row> <col>  place your mark, rows and columns are numbered 1 to 3
  board        show the board
  score        show the score
  help         show this text
  quit         leave the game
`

func (that *Server) handleQuit(_ context.Context, _ *entity.Session) error {
	return errQuit
}

func (that *Server) handleHelp(_ context.Context, _ *entity.Session) error {
	that.printf("%s", helpText)
	return nil
}

func (that *Server) handleBoard(_ context.Context, session *entity.Session) error {
	that.drawRound(&session.Round)
	return nil
}

func (that *Server) handleScore(_ context.Context, session *entity.Session) error {
	that.printf("Score: %s\n", formatScore(session.Score))
	return nil
}

// handlePlayerMove sends a 0-based move to the manager. Rejected moves keep
// the current session and only print a hint.
func (that *Server) handlePlayerMove(ctx context.Context, session *entity.Session, row, col int) (*entity.Session, error) {
	updated, err := that.manager.PlacePlayerMove(ctx, session.ID, row, col)
	switch {
	case err == nil:
		that.drawRound(&updated.Round)
		return updated, nil
	case errors.Is(err, apperror.ErrInvalidCoordinate):
		that.printf("Row and column must be between 1 and %d.\n", entity.BoardSize)
	case errors.Is(err, apperror.ErrCellOccupied):
		that.printf("That cell is taken.\n")
	case errors.Is(err, apperror.ErrNotYourTurn), errors.Is(err, apperror.ErrGameAlreadyOver):
		that.logger.Debug("ignored move", "row", row, "col", col, "error", err)
	default:
		return session, fmt.Errorf("failed to place move: %w", err)
	}

	if updated != nil {
		return updated, nil
	}

	return session, nil
}

// parseMove reads a 1-based "row col" pair. "2 3", "2,3" and "23" are all
// accepted. The result is 0-based and not range checked.
func parseMove(line string) (int, int, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})

	if len(fields) == 1 && len(fields[0]) == 2 {
		fields = []string{fields[0][:1], fields[0][1:]}
	}

	if len(fields) != 2 {
		return 0, 0, errBadInput
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", errBadInput, err)
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", errBadInput, err)
	}

	return row - 1, col - 1, nil
}

// drawRound draws the board and brackets the winning line, if any.
func (that *Server) drawRound(round *entity.Round) {
	line, ok := tictactoe.WinningLine(&round.Board)
	if !ok {
		that.drawBoard(round, nil)
		return
	}

	that.drawBoard(round, &line)
}

func (that *Server) drawBoard(round *entity.Round, highlight *entity.Line) {
	that.printf("%s", renderBoard(&round.Board, highlight))
}

func renderBoard(board *entity.Board, highlight *entity.Line) string {
	var sb strings.Builder

	sb.WriteString("   ")
	for col := range entity.BoardSize {
		fmt.Fprintf(&sb, " %d  ", col+1)
	}
	sb.WriteString("\n")

	for row := range entity.BoardSize {
		if row > 0 {
			sb.WriteString("   ---+---+---\n")
		}

		fmt.Fprintf(&sb, "%d  ", row+1)

		for col := range entity.BoardSize {
			if col > 0 {
				sb.WriteString("|")
			}

			mark := board.Cell(row, col).String()
			if mark == "" {
				mark = " "
			}

			if highlight != nil && highlight.Contains(row, col) {
				fmt.Fprintf(&sb, "[%s]", mark)
			} else {
				fmt.Fprintf(&sb, " %s ", mark)
			}
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

func formatScore(score entity.Score) string {
	return fmt.Sprintf("you %d - computer %d", score.Player, score.Opponent)
}
