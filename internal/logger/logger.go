package logger

import (
	"os"
	"strings"
	"time"

	"github.com/lshigami/examsched/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init sets up the global zerolog logger with a console writer. It runs
// before configuration is loaded so config loading itself can log.
func Init() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().
		Timestamp().
		Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// Configure applies the loaded configuration: JSON output outside dev and
// the configured level.
func Configure(cfg *config.Config) {
	if cfg.Env != "dev" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Str("service", "examsched").Logger()
	}
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || cfg.LogLevel == "" {
		log.Warn().Str("level", cfg.LogLevel).Msg("Invalid LOG_LEVEL, keeping info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}
