package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// InitLogger sets up global logging with compact timestamps and file:line sources.
// With a non-empty logFile, output is written to both stdout and the file.
// The returned close function must be called on shutdown.
func InitLogger(level slog.Level, logFile string) (func() error, error) {
	var out io.Writer = os.Stdout
	closeFn := func() error { return nil }

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return closeFn, fmt.Errorf("open log file: %w", err)
		}
		out = io.MultiWriter(os.Stdout, f)
		closeFn = f.Close
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level:       level,
		AddSource:   true,
		ReplaceAttr: replaceAttr,
	})
	slog.SetDefault(slog.New(handler))
	return closeFn, nil
}

func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		if t, ok := a.Value.Any().(time.Time); ok {
			a.Value = slog.StringValue(t.Format("15:04:05"))
		}
	}
	if a.Key == slog.SourceKey {
		if source, ok := a.Value.Any().(*slog.Source); ok {
			file := source.File
			if lastSlash := strings.LastIndexByte(file, '/'); lastSlash >= 0 {
				file = file[lastSlash+1:]
			}
			a.Value = slog.StringValue(fmt.Sprintf("%s:%d", file, source.Line))
		}
	}
	return a
}

// ParseLevel maps a flag value to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}
