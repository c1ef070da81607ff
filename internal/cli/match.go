package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match commands",
	}

	cmd.AddCommand(newMatchCreateCmd())
	cmd.AddCommand(newMatchGetCmd())
	cmd.AddCommand(newMatchListCmd())
	cmd.AddCommand(newMatchDeleteCmd())
	cmd.AddCommand(newMatchConfigCmd())
	cmd.AddCommand(newMatchLegalCmd())
	cmd.AddCommand(newMatchMoveCmd())
	cmd.AddCommand(newMatchAgentCmd())
	cmd.AddCommand(newMatchUndoCmd())
	cmd.AddCommand(newMatchResetCmd())
	cmd.AddCommand(newMatchResignCmd())
	cmd.AddCommand(newMatchPauseCmd())

	return cmd
}

// configFlags declares the match settings flags and collects the ones the
// user actually set, so untouched settings keep their server-side values.
type configFlags struct {
	mode        string
	humanSide   string
	depth       int
	heuristic   string
	tieBreak    string
	layout      string
	blackTimeMs int64
	whiteTimeMs int64
	maxMoves    int
	moveLimitMs int64
}

func (f *configFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.mode, "mode", "", "Match mode: hvh, hva, ava")
	cmd.Flags().StringVar(&f.humanSide, "human-side", "", "Side the human controls in hva mode: black, white")
	cmd.Flags().IntVar(&f.depth, "depth", 0, "Agent search depth (1-5)")
	cmd.Flags().StringVar(&f.heuristic, "heuristic", "", "Evaluation preset: balanced, material")
	cmd.Flags().StringVar(&f.tieBreak, "tie-break", "", "Search tie-break policy")
	cmd.Flags().StringVar(&f.layout, "layout", "", "Starting layout: standard, belgian_daisy, german_daisy")
	cmd.Flags().Int64Var(&f.blackTimeMs, "black-time-ms", 0, "Black's starting clock in ms")
	cmd.Flags().Int64Var(&f.whiteTimeMs, "white-time-ms", 0, "White's starting clock in ms")
	cmd.Flags().IntVar(&f.maxMoves, "max-moves", 0, "Move limit (0 = unlimited)")
	cmd.Flags().Int64Var(&f.moveLimitMs, "move-limit-ms", 0, "Per-move time limit in ms (0 = unlimited)")
}

func (f *configFlags) body(cmd *cobra.Command) map[string]any {
	body := map[string]any{}
	if cmd.Flags().Changed("mode") {
		body["mode"] = f.mode
	}
	if cmd.Flags().Changed("human-side") {
		body["human_side"] = f.humanSide
	}
	if cmd.Flags().Changed("depth") {
		body["depth"] = f.depth
	}
	if cmd.Flags().Changed("heuristic") {
		body["heuristic"] = f.heuristic
	}
	if cmd.Flags().Changed("tie-break") {
		body["tie_break"] = f.tieBreak
	}
	if cmd.Flags().Changed("layout") {
		body["layout"] = f.layout
	}
	if cmd.Flags().Changed("black-time-ms") {
		body["black_time_ms"] = f.blackTimeMs
	}
	if cmd.Flags().Changed("white-time-ms") {
		body["white_time_ms"] = f.whiteTimeMs
	}
	if cmd.Flags().Changed("max-moves") {
		body["max_moves"] = f.maxMoves
	}
	if cmd.Flags().Changed("move-limit-ms") {
		body["move_time_limit_ms"] = f.moveLimitMs
	}
	return body
}

func newMatchCreateCmd() *cobra.Command {
	flags := &configFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new match",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Match

			if err := client.Post("/api/v1/matches", flags.body(cmd), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newMatchGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show match state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Match

			if err := client.Get(fmt.Sprintf("/api/v1/matches/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your matches",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MatchList

			if err := client.Get("/api/v1/matches", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/v1/matches/%s", args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Match deleted")
			return nil
		},
	}
}

func newMatchConfigCmd() *cobra.Command {
	flags := &configFlags{}

	cmd := &cobra.Command{
		Use:   "config <id>",
		Short: "Update match settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := flags.body(cmd)
			if len(body) == 0 {
				return fmt.Errorf("no settings given")
			}

			var result Match

			if err := client.Patch(fmt.Sprintf("/api/v1/matches/%s/config", args[0]), body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newMatchLegalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "legal <id>",
		Short: "List legal moves for the side to move",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result LegalMovesResult

			if err := client.Get(fmt.Sprintf("/api/v1/matches/%s/legal-moves", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <marbles> <direction>",
		Short: "Play a move",
		Long: `Play a move. Marbles are comma-separated cells, direction is a
compass name.

Examples:
  abalone match move MATCH1 c3 NW
  abalone match move MATCH1 c3,c4,c5 E`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			marbles := strings.Split(args[1], ",")
			direction := strings.ToUpper(args[2])

			req := map[string]any{
				"marbles":   marbles,
				"direction": direction,
			}
			var result MoveResult

			if err := client.Post(fmt.Sprintf("/api/v1/matches/%s/moves", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchAgentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "agent <id>",
		Short: "Have the agent play its move",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MoveResult

			if err := client.Post(fmt.Sprintf("/api/v1/matches/%s/agent-move", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo <id>",
		Short: "Undo the last move",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Match

			if err := client.Post(fmt.Sprintf("/api/v1/matches/%s/undo", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <id>",
		Short: "Restart the match from the opening position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Match

			if err := client.Post(fmt.Sprintf("/api/v1/matches/%s/reset", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchResignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resign <id>",
		Short: "Resign for the side to move",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Match

			if err := client.Post(fmt.Sprintf("/api/v1/matches/%s/resign", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchPauseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pause <id>",
		Short: "Pause or resume the match clocks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Match

			if err := client.Post(fmt.Sprintf("/api/v1/matches/%s/pause", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
