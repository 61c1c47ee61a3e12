package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// setupLogger builds the logger for one command run. Logs go to logFile as
// JSON when set, otherwise to stderr in console form. The returned func
// closes the log file and must be called when the command finishes.
func setupLogger(logFile, logLevel string) (zerolog.Logger, func(), error) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(logLevel)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.Nop(), func() {}, fmt.Errorf("invalid log level %q (want debug, info, warn or error)", logLevel)
	}

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	closeLog := func() {}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return zerolog.Nop(), func() {}, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeLog = func() { _ = f.Close() }
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("version", version).
		Logger()

	return logger, closeLog, nil
}

// debugLogger adapts a zerolog logger to the Debugf interface the API
// clients accept.
type debugLogger struct {
	logger zerolog.Logger
}

func (l debugLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}
