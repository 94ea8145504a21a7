package logging

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(level Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return FromZap(zap.New(core)), logs
}

func TestLogger_WritesStructuredFields(t *testing.T) {
	logger, logs := newObservedLogger(LevelInfo)

	logger.With("component", "espn").WarnContext(context.Background(), "request failed",
		"status", 503,
		"error", errors.New("boom"),
	)
	logger.Debug("dropped")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["component"] != "espn" {
		t.Fatalf("expected bound field, got %v", fields)
	}
	if fields["status"] != int64(503) {
		t.Fatalf("expected status field, got %v", fields["status"])
	}
	if fields["error"] != "boom" {
		t.Fatalf("expected error field, got %v", fields["error"])
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Fatalf("unexpected level %s", entries[0].Level)
	}
}

func TestLogger_MirrorReceivesBoundArgs(t *testing.T) {
	logger, _ := newObservedLogger(LevelInfo)

	var (
		gotMsg  string
		gotArgs []any
		calls   int
	)
	SetMirror(func(_ context.Context, level Level, msg string, args ...any) {
		calls++
		gotMsg = msg
		gotArgs = args
	})
	t.Cleanup(func() { SetMirror(nil) })

	logger.With("service", "gridiron-teams").Info("http_request", "http_path", "/v1/teams")
	logger.Debug("below level")

	if calls != 1 {
		t.Fatalf("expected one mirrored record, got %d", calls)
	}
	if gotMsg != "http_request" {
		t.Fatalf("unexpected message %q", gotMsg)
	}
	want := []any{"service", "gridiron-teams", "http_path", "/v1/teams"}
	if len(gotArgs) != len(want) {
		t.Fatalf("unexpected args %v", gotArgs)
	}
	for i := range want {
		if gotArgs[i] != want[i] {
			t.Fatalf("arg %d=%v, want %v", i, gotArgs[i], want[i])
		}
	}
}

func TestLogger_NilReceiverFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	if logger.With("k", "v") == nil {
		t.Fatalf("expected logger from nil receiver")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		" error ": LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q)=%s, want %s", raw, got, want)
		}
	}
}
