package tween

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LogConfig configures the logger built by NewLogger.
type LogConfig struct {
	// Level is one of trace, debug, info, warn, error or disabled.
	Level string `mapstructure:"level" validate:"omitempty,oneof=trace debug info warn error disabled"`
	// Format is console or json.
	Format string `mapstructure:"format" validate:"omitempty,oneof=console json"`
	// Output is stdout, stderr or a file path.
	Output string `mapstructure:"output"`
}

// NewLogger builds a zerolog logger from cfg. The returned closer releases
// the output file, if one was opened.
func NewLogger(cfg LogConfig) (zerolog.Logger, io.Closer, error) {
	var w io.Writer
	var closer io.Closer = nopCloser{}
	switch cfg.Output {
	case "", "stderr":
		w = os.Stderr
	case "stdout":
		w = os.Stdout
	default:
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, err
		}
		w, closer = f, f
	}

	if cfg.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}

	log := zerolog.New(w).With().Timestamp().Logger().Level(parseLevel(cfg.Level))
	return log, closer, nil
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
