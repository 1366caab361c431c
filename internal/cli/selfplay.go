package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

func newSelfPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selfplay",
		Short: "Let the engine play both sides from an empty board",
		Long: `selfplay lets the minimax engine play X and O against itself, X first.
Perfect play from an empty board always ends in a tie.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return selfPlay(cmd.OutOrStdout())
		},
	}
}

func selfPlay(out io.Writer) error {
	var board entity.Board

	mover := entity.PlayerMark
	outcome := entity.None

	for turn := 1; !outcome.IsTerminal(); turn++ {
		result, err := tictactoe.Search(&board, mover)
		if err != nil {
			return fmt.Errorf("search failed on turn %d: %w", turn, err)
		}

		if err = board.Place(result.Move.Row, result.Move.Col, mover); err != nil {
			return fmt.Errorf("engine chose an illegal move on turn %d: %w", turn, err)
		}

		fmt.Fprintf(out, "%d. %s plays %d %d (score %d, %d nodes)\n",
			turn, mover, result.Move.Row+1, result.Move.Col+1, result.Score, result.Nodes)

		outcome = tictactoe.Evaluate(&board)
		mover = mover.Opponent()
	}

	fmt.Fprintf(out, "board:   %s\n", board.String())
	fmt.Fprintf(out, "outcome: %s\n", outcome)

	return nil
}
