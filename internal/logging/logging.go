package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New builds the application logger. Development environments get a
// human-readable console writer; everything else logs JSON.
func New(env, level string) zerolog.Logger {
	var w io.Writer = os.Stdout
	if strings.EqualFold(env, "development") {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	logger := zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger()

	// Redirect the global zerolog instance for libraries that use it.
	log.Logger = logger

	return logger
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
