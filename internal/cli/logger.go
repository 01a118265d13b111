package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// newLogger creates a slog.Logger writing to w at the named level ("debug",
// "info", "warn", "error") in the named format ("text", "json"). Unknown names
// are errors rather than silent fallbacks. It does not set the global logger.
func newLogger(level, format string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q (want debug, info, warn or error)", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (want text or json)", format)
	}
}
