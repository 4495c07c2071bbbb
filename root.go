package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/wordled/internal/daily"
	"github.com/robalobadob/wordle/apps/wordled/internal/puzzle"
	"github.com/robalobadob/wordle/apps/wordled/internal/store"
	"github.com/robalobadob/wordle/apps/wordled/internal/words"
)

var (
	v         = newViper()
	cfg       Config
	logCloser io.Closer = nopCloser{}
)

var rootCmd = &cobra.Command{
	Use:   "wordled",
	Short: "Daily word-guess server",
	Long: `wordled serves a daily five-letter word puzzle over HTTP.
Clients POST a guess and receive per-letter feedback: good, wrong position, or invalid.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = loadConfig(v)
		logCloser = setupLogging(cfg, cmd.ErrOrStderr())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logCloser.Close()
	},
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("answers", "", "Answer word list file (one word per line)")
	rootCmd.PersistentFlags().String("allowed", "", "Allowed guess list file (one word per line)")
	rootCmd.PersistentFlags().String("salt", "", "Salt for the daily word sequence")
	_ = v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("words_answers_file", rootCmd.PersistentFlags().Lookup("answers"))
	_ = v.BindPFlag("words_allowed_file", rootCmd.PersistentFlags().Lookup("allowed"))
	_ = v.BindPFlag("daily_salt", rootCmd.PersistentFlags().Lookup("salt"))
}

// buildPuzzle loads the word lists and wires the daily selector.
func buildPuzzle(cfg Config) (*puzzle.Puzzle, error) {
	list, err := words.Load(cfg.AnswersFile, cfg.AllowedFile)
	if err != nil {
		return nil, fmt.Errorf("load word lists: %w", err)
	}
	a, g := list.Stats()
	log.Info().Int("answers", a).Int("allowed", g).Msg("word lists loaded")
	return puzzle.New(list, daily.Selector{Salt: cfg.DailySalt}), nil
}

// openStore returns the SQLite store when a path is configured, memory otherwise.
func openStore(ctx context.Context, cfg Config) (store.Store, error) {
	if cfg.DBPath == "" {
		log.Info().Msg("tallies kept in memory")
		return store.NewMemoryStore(), nil
	}
	st, err := store.OpenSQLite(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", cfg.DBPath, err)
	}
	log.Info().Str("db", cfg.DBPath).Msg("tallies stored in sqlite")
	return st, nil
}
