// Package logging sets up structured logging with log/slog. Every
// logger made here carries a run id, so the lines from one filtering
// run can be picked out of a shared log.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Format is the log output format.
type Format int

const (
	// FormatText is for people.
	FormatText Format = iota
	// FormatJSON is for machines.
	FormatJSON
)

// RunIDKey is the attribute holding the run id.
const RunIDKey = "run_id"

// ParseLevel understands debug, info, warn and error.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}

// ParseFormat understands text and json.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	}
	return FormatText, fmt.Errorf("log format %q: want text or json", s)
}

// New returns a logger writing to w with a fresh run id attached.
func New(w io.Writer, level slog.Level, format Format) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	}
	var h slog.Handler
	if format == FormatJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With(RunIDKey, uuid.NewString())
}

// Init makes a logger as New does and installs it as the default.
func Init(w io.Writer, level slog.Level, format Format) *slog.Logger {
	lg := New(w, level, format)
	slog.SetDefault(lg)
	return lg
}
