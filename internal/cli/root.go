package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
)

// NewRootCmd creates the root command. Without a subcommand it starts an
// interactive game, like "play".
func NewRootCmd(logger *slog.Logger, conf *config.Config) *cobra.Command {
	play := newPlayCmd(logger, conf)

	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe against a computer that never loses",
		Long: `tictactoe is a terminal tic-tac-toe game. You play X and always move
first; the computer plays O and picks its moves with a full minimax search.

The solve and selfplay commands expose the search engine directly.`,
		RunE:         play.RunE,
		SilenceUsage: true,
	}

	rootCmd.Flags().AddFlagSet(play.Flags())

	rootCmd.AddCommand(play)
	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newSelfPlayCmd())

	return rootCmd
}
