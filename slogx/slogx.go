package slogx

import (
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options controls the logger created with [New].
type Options struct {
	// Level is one of debug, info, warn, error, or fatal. Empty means info.
	Level string
	// File is an optional path that receives every record as JSON, in addition to the console.
	File string
	// Output is the console destination, [os.Stderr] by default.
	Output io.Writer
	// Prefix is shown before each console message.
	Prefix string
	// NoColor disables styling of console output.
	NoColor bool
}

// ParseLevel interprets a level name, case-insensitive.
func ParseLevel(level string) (slog.Level, error) {
	if len(strings.TrimSpace(level)) == 0 {
		return slog.LevelInfo, nil
	}
	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return 0, fmt.Errorf("unknown log level '%s': %w", level, err)
	}
	return slog.Level(lvl), nil
}

// New creates a logger writing styled text to the console, and JSON to [Options.File] when it's set.
// The returned [io.Closer] releases the log file, and is safe to call when there is none.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	console := log.NewWithOptions(out, log.Options{
		Level:           log.Level(level),
		Prefix:          opts.Prefix,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	console.SetStyles(levelStyles())
	if opts.NoColor {
		console.SetColorProfile(termenv.Ascii)
	}
	if len(opts.File) == 0 {
		return slog.New(console), nopCloser{}, nil
	}
	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0640)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	file := NewDedupeHandler(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return slog.New(MergeHandlers(console, file)), f, nil
}

func levelStyles() *log.Styles {
	styles := log.DefaultStyles()
	level := func(label, color string) lipgloss.Style {
		return lipgloss.NewStyle().
			SetString(label).
			Bold(true).
			MaxWidth(4).
			Foreground(lipgloss.Color(color))
	}
	styles.Levels[log.DebugLevel] = level("DEBU", "63")
	styles.Levels[log.InfoLevel] = level("INFO", "86")
	styles.Levels[log.WarnLevel] = level("WARN", "192")
	styles.Levels[log.ErrorLevel] = level("ERRO", "204")
	styles.Levels[log.FatalLevel] = level("FATA", "134")
	styles.Key = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	return styles
}

type nopCloser struct{}

func (nopCloser) Close() error {
	return nil
}
