package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordled/internal/daily"
	"github.com/robalobadob/wordle/apps/wordled/internal/game"
	"github.com/robalobadob/wordle/apps/wordled/internal/puzzle"
	"github.com/robalobadob/wordle/apps/wordled/internal/words"
)

func TestLoadConfig_Defaults(t *testing.T) {
	c := loadConfig(newViper())
	if c.Port != "5175" || c.LogLevel != "info" || c.DBPath != "" {
		t.Errorf("defaults = %+v", c)
	}
	if c.RateLimitRPS != 5 || c.RateLimitBurst != 10 || c.RequestTimeout != 10*time.Second {
		t.Errorf("limits = %v/%d/%v", c.RateLimitRPS, c.RateLimitBurst, c.RequestTimeout)
	}
	if c.EnableSpoiler {
		t.Error("spoiler must be off by default")
	}
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DB_PATH", "/tmp/w.db")
	t.Setenv("ENABLE_SPOILER", "true")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("DAILY_SALT", "pepper")

	c := loadConfig(newViper())
	if c.Port != "9000" || c.DBPath != "/tmp/w.db" || !c.EnableSpoiler || c.RequestTimeout != 3*time.Second || c.DailySalt != "pepper" {
		t.Errorf("env config = %+v", c)
	}
}

func testPuzzle(t *testing.T) *puzzle.Puzzle {
	t.Helper()
	list, err := words.New([]string{"erase"}, []string{"speed"})
	if err != nil {
		t.Fatalf("words.New: %v", err)
	}
	return puzzle.New(list, daily.Selector{})
}

func TestRunCheck(t *testing.T) {
	p := testPuzzle(t)

	var buf bytes.Buffer
	if err := runCheck(&buf, p, "speed", "", false); err != nil {
		t.Fatalf("runCheck: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "10110:no:5" {
		t.Errorf("today's check = %q", got)
	}

	buf.Reset()
	if err := runCheck(&buf, p, "ABCDE", "edcba", false); err != nil {
		t.Fatalf("runCheck: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "11211:no:5" {
		t.Errorf("explicit solution check = %q", got)
	}

	buf.Reset()
	if err := runCheck(&buf, p, "crane", "crane", true); err != nil {
		t.Fatalf("runCheck: %v", err)
	}
	var fb game.GuessFeedback
	if err := json.Unmarshal(buf.Bytes(), &fb); err != nil || !fb.Success {
		t.Errorf("json output = %s (%v)", buf.String(), err)
	}
}

func TestRunCheck_Errors(t *testing.T) {
	p := testPuzzle(t)
	var buf bytes.Buffer
	if err := runCheck(&buf, p, "zzzzz", "", false); !errors.Is(err, puzzle.ErrNotInWordList) {
		t.Errorf("expected ErrNotInWordList, got %v", err)
	}
	if err := runCheck(&buf, p, "crane", "cranes", false); !errors.Is(err, game.ErrMismatchedLengths) {
		t.Errorf("expected ErrMismatchedLengths, got %v", err)
	}
}

func TestSetupLogging_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "wordled.log")
	var console bytes.Buffer
	closer := setupLogging(Config{LogLevel: "info", LogFormat: "json", LogFile: path}, &console)
	log.Info().Str("k", "v").Msg("hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(b), `"message":"hello"`) {
		t.Errorf("log file = %s", b)
	}
	if !strings.Contains(console.String(), `"k":"v"`) {
		t.Errorf("console = %s", console.String())
	}
}
