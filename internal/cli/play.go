package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-minimax/internal"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
)

func newPlayCmd(logger *slog.Logger, conf *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := conf.Validate(); err != nil {
				return err
			}

			return application.RunApp(cmd.Context(), logger, conf, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().DurationVar(&conf.OpponentDelay, "delay", conf.OpponentDelay, "Pause before the computer moves (env: TICTACTOE_OPPONENT_DELAY)")
	cmd.Flags().StringVar(&conf.Storage.Driver, "storage", conf.Storage.Driver, "Session storage: memory, redis (env: TICTACTOE_STORAGE)")

	return cmd
}
