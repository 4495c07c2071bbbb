package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/robalobadob/wordle/apps/wordled/internal/httpserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP API server. POST /guess returns compact feedback
("10110:no:5"), POST /guess-json returns structured feedback.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	for _, c := range []*cobra.Command{rootCmd, serveCmd} {
		c.Flags().String("port", "", "Port to listen on (default 5175)")
		c.Flags().String("db", "", "SQLite file for daily tallies (empty keeps them in memory)")
		c.Flags().Bool("spoiler", false, "Expose GET /spoil with today's word")
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	// Flags exist on both root and serve; bind whichever command is running.
	_ = v.BindPFlag("port", cmd.Flags().Lookup("port"))
	_ = v.BindPFlag("db_path", cmd.Flags().Lookup("db"))
	_ = v.BindPFlag("enable_spoiler", cmd.Flags().Lookup("spoiler"))
	cfg = loadConfig(v)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p, err := buildPuzzle(cfg)
	if err != nil {
		return err
	}
	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	srv := httpserver.New(p, st, httpserver.Config{
		ClientOrigin:   cfg.ClientOrigin,
		EnableSpoiler:  cfg.EnableSpoiler,
		RequestTimeout: cfg.RequestTimeout,
		RateLimit:      rate.Limit(cfg.RateLimitRPS),
		RateBurst:      cfg.RateLimitBurst,
	})

	log.Info().Str("port", cfg.Port).Str("date", p.Today()).Bool("spoiler", cfg.EnableSpoiler).Msg("starting wordled")
	if err := srv.Start(ctx, ":"+cfg.Port); err != nil {
		log.Error().Err(err).Msg("server exited")
		return err
	}
	return nil
}
