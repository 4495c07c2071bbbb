package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/wordled/internal/game"
	"github.com/robalobadob/wordle/apps/wordled/internal/puzzle"
)

var (
	checkSolution string
	checkJSON     bool
)

var checkCmd = &cobra.Command{
	Use:   "check <guess>",
	Short: "Score a guess without starting the server",
	Long: `Score a guess against today's word, or against --solution.
With --solution the guess only has to match the solution's length.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := buildPuzzle(cfg)
		if err != nil {
			return err
		}
		return runCheck(cmd.OutOrStdout(), p, args[0], checkSolution, checkJSON)
	},
}

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Print today's date key and word",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := buildPuzzle(cfg)
		if err != nil {
			return err
		}
		word, err := p.Solution()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", p.Today(), word)
		return err
	},
}

func init() {
	rootCmd.AddCommand(checkCmd, todayCmd)
	checkCmd.Flags().StringVar(&checkSolution, "solution", "", "Solution to score against (default: today's word)")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Print structured JSON instead of the compact form")
}

// runCheck scores guess and prints the result to w.
func runCheck(w io.Writer, p *puzzle.Puzzle, guess, solution string, asJSON bool) error {
	var (
		fb  *game.GuessFeedback
		err error
	)
	if solution != "" {
		fb, err = game.Evaluate(strings.ToLower(strings.TrimSpace(guess)), strings.ToLower(strings.TrimSpace(solution)))
	} else {
		fb, err = p.Check(guess)
	}
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(fb)
	}
	out, err := fb.Compact()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
