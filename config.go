package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the resolved runtime configuration.
// Precedence: CLI flag > environment (including .env) > default.
type Config struct {
	Port      string
	LogLevel  string
	LogFormat string // "console" or "json"
	LogFile   string // rotating file, empty disables

	DBPath      string // empty keeps tallies in memory
	AnswersFile string
	AllowedFile string
	DailySalt   string

	EnableSpoiler  bool
	ClientOrigin   string
	RateLimitRPS   float64
	RateLimitBurst int
	RequestTimeout time.Duration
}

// newViper returns a viper instance reading the process environment, with
// defaults for every key.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("port", "5175")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("log_file", "")
	v.SetDefault("db_path", "")
	v.SetDefault("words_answers_file", "")
	v.SetDefault("words_allowed_file", "")
	v.SetDefault("daily_salt", "")
	v.SetDefault("enable_spoiler", false)
	v.SetDefault("client_origin", "http://localhost:5173")
	v.SetDefault("rate_limit_rps", 5.0)
	v.SetDefault("rate_limit_burst", 10)
	v.SetDefault("request_timeout", "10s")
	v.AutomaticEnv()
	return v
}

// loadConfig loads .env (if present) and resolves the configuration.
func loadConfig(v *viper.Viper) Config {
	_ = godotenv.Load()
	return Config{
		Port:           v.GetString("port"),
		LogLevel:       v.GetString("log_level"),
		LogFormat:      v.GetString("log_format"),
		LogFile:        v.GetString("log_file"),
		DBPath:         v.GetString("db_path"),
		AnswersFile:    v.GetString("words_answers_file"),
		AllowedFile:    v.GetString("words_allowed_file"),
		DailySalt:      v.GetString("daily_salt"),
		EnableSpoiler:  v.GetBool("enable_spoiler"),
		ClientOrigin:   v.GetString("client_origin"),
		RateLimitRPS:   v.GetFloat64("rate_limit_rps"),
		RateLimitBurst: v.GetInt("rate_limit_burst"),
		RequestTimeout: v.GetDuration("request_timeout"),
	}
}
