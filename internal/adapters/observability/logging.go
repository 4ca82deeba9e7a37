package observability

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a zerolog Logger tagged with the service name.
// APP_ENV=dev (or development) switches to a human-friendly console writer
// and lowers the level to Debug; everything else logs Info-level JSON.
func NewLogger(env string) zerolog.Logger {
	level := zerolog.InfoLevel
	out := zerolog.New(os.Stdout)
	if env == "dev" || env == "development" {
		level = zerolog.DebugLevel
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}
	return out.Level(level).With().
		Timestamp().
		Str("service", "voiceofdine").
		Logger()
}
