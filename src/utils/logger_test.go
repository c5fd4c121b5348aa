package utils

import (
	"log/slog"
	"testing"
	"time"
)

func TestReplaceAttrFormatsTime(t *testing.T) {
	ts := time.Date(2024, 3, 1, 13, 4, 5, 0, time.UTC)
	a := replaceAttr(nil, slog.Time(slog.TimeKey, ts))
	if got := a.Value.String(); got != "13:04:05" {
		t.Errorf("expected 13:04:05, got %s", got)
	}
}

func TestReplaceAttrShortensSource(t *testing.T) {
	a := replaceAttr(nil, slog.Any(slog.SourceKey, &slog.Source{File: "/home/x/src/elev/fsm.go", Line: 42}))
	if got := a.Value.String(); got != "fsm.go:42" {
		t.Errorf("expected fsm.go:42, got %s", got)
	}
}

func TestParseLevel(t *testing.T) {
	if l, err := ParseLevel("debug"); err != nil || l != slog.LevelDebug {
		t.Errorf("expected debug, got %v, %v", l, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}
