package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

// SolveResult is what "solve" reports about a position. Move is 1-based and
// only set for positions that are still open.
type SolveResult struct {
	Board       string         `json:"board"`
	Mover       entity.Mark    `json:"mover"`
	Outcome     entity.Outcome `json:"outcome"`
	WinningLine string         `json:"winning_line,omitempty"`
	Move        *entity.Move   `json:"move,omitempty"`
	Score       int            `json:"score"`
	Nodes       int            `json:"nodes"`
}

func newSolveCmd() *cobra.Command {
	var (
		board  string
		mover  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print the outcome of a position and the best move for the side to play",
		Example: `  tictactoe solve --board "XX./OO./..."
  tictactoe solve --board "XX./OO./..." --mover X -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := solve(board, mover)
			if err != nil {
				return err
			}

			return printSolveResult(cmd.OutOrStdout(), output, result)
		},
	}

	cmd.Flags().StringVar(&board, "board", "", `Board as nine cells in row order, "." for empty, "/" between rows`)
	cmd.Flags().StringVar(&mover, "mover", entity.OpponentMark.String(), "Side to play: X or O")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json")
	_ = cmd.MarkFlagRequired("board")

	return cmd
}

func solve(value, moverValue string) (*SolveResult, error) {
	board, err := entity.ParseBoard(value)
	if err != nil {
		return nil, fmt.Errorf("invalid board: %w", err)
	}

	mover, err := entity.ParseMark(moverValue)
	if err != nil {
		return nil, fmt.Errorf("invalid mover: %w", err)
	}

	result := &SolveResult{
		Board:   board.String(),
		Mover:   mover,
		Outcome: tictactoe.Evaluate(&board),
	}

	if line, ok := tictactoe.WinningLine(&board); ok {
		result.WinningLine = line.String()
	}

	if result.Outcome.IsTerminal() {
		return result, nil
	}

	search, err := tictactoe.Search(&board, mover)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	result.Move = &entity.Move{Row: search.Move.Row + 1, Col: search.Move.Col + 1}
	result.Score = search.Score
	result.Nodes = search.Nodes

	return result, nil
}

func printSolveResult(out io.Writer, format string, result *SolveResult) error {
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintf(out, "board:   %s\n", result.Board)
	fmt.Fprintf(out, "outcome: %s\n", result.Outcome)

	if result.WinningLine != "" {
		fmt.Fprintf(out, "line:    %s\n", result.WinningLine)
	}

	if result.Move != nil {
		fmt.Fprintf(out, "mover:   %s\n", result.Mover)
		fmt.Fprintf(out, "move:    %d %d\n", result.Move.Row, result.Move.Col)
		fmt.Fprintf(out, "score:   %d\n", result.Score)
		fmt.Fprintf(out, "nodes:   %d\n", result.Nodes)
	}

	return nil
}
