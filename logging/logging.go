package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const consoleTimeFormat = "2006-01-02T15:04:05.000000Z07:00"

var (
	L              zerolog.Logger
	logFile        io.Closer // open file, closed on Close or when replaced
	consoleEnabled bool      = true
	console        io.Writer = os.Stderr
	fileOutput     io.Writer
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	updateLogger()
}

func SetLogLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

// SetLogLevelString accepts the zerolog level names (trace, debug, info, warn, error...).
func SetLogLevelString(level string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	SetLogLevel(lvl)
	return nil
}

func SetLogOutput(path string, filename string) error {
	if logFile != nil {
		logFile.Close()
	}

	logFilePath := filepath.Join(path, filename)

	if err := os.MkdirAll(path, 0750); err != nil {
		return err
	}

	file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	logFile = file
	fileOutput = file
	updateLogger()
	L.Info().Msgf("writing logs to %s", logFilePath)

	return nil
}

func SetConsoleLogging(enabled bool) {
	consoleEnabled = enabled
	updateLogger()
}

// SetConsoleWriter redirects console output. The CLI keeps stdout for JSON,
// tests point it at a buffer.
func SetConsoleWriter(w io.Writer) {
	console = w
	updateLogger()
}

func updateLogger() {
	var out io.Writer
	switch {
	case fileOutput != nil && consoleEnabled:
		out = io.MultiWriter(fileOutput, console)
	case fileOutput != nil:
		out = fileOutput
	case consoleEnabled:
		out = console
	default:
		out = io.Discard
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: consoleTimeFormat,
	}

	L = zerolog.New(output).With().Caller().Timestamp().Logger()
}

func Close() error {
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		fileOutput = nil
		updateLogger()
		return err
	}
	return nil
}
