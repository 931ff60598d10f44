// Package logger builds the structured slog logger shared by every entry point.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds the logger configuration.
type Config struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// NewLogger initializes a new slog logger based on the provided configuration.
// When output is nil the destination is chosen from cfg.Output.
func NewLogger(cfg Config, output io.Writer) *slog.Logger {
	if output == nil {
		output = Writer(cfg)
	}

	level := new(slog.Level)
	if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.Level))); err != nil {
		*level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch cfg.Format {
	case "text":
		handler = slog.NewTextHandler(output, opts)
	case "json":
		fallthrough
	default:
		// CloudWatch indexes JSON fields, so json is the default for Lambda.
		handler = slog.NewJSONHandler(output, opts)
	}

	return slog.New(handler)
}

// Writer resolves the configured log destination.
func Writer(cfg Config) io.Writer {
	switch cfg.Output {
	case "stderr":
		return os.Stderr
	default:
		return os.Stdout
	}
}
