package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/gridiron-teams/internal/platform/logging"
	otellog "go.opentelemetry.io/otel/log"
)

func TestIsQuietRequestLog(t *testing.T) {
	if !isQuietRequestLog("http_request", []any{"http_method", "GET", "http_path", "/healthz"}) {
		t.Fatalf("expected health check log to be skipped")
	}
	if isQuietRequestLog("http_request", []any{"http_path", "/v1/teams"}) {
		t.Fatalf("did not expect team list log to be skipped")
	}
	if isQuietRequestLog("espn request failed", []any{"http_path", "/healthz"}) {
		t.Fatalf("did not expect non-request event to be skipped")
	}
	if isQuietRequestLog("http_request", []any{"http_path"}) {
		t.Fatalf("did not expect dangling key to be skipped")
	}
}

func TestLogAttributes(t *testing.T) {
	attrs := logAttributes([]any{"team_id", "12", "status", 503, 7, "x", "dangling"})
	if len(attrs) != 4 {
		t.Fatalf("expected 4 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "team_id" || attrs[0].Value.AsString() != "12" {
		t.Fatalf("unexpected team_id attribute: %+v", attrs[0])
	}
	if attrs[1].Key != "status" || attrs[1].Value.AsInt64() != 503 {
		t.Fatalf("unexpected status attribute: %+v", attrs[1])
	}
	if attrs[2].Key != "arg_2" {
		t.Fatalf("expected positional key for non-string key, got %q", attrs[2].Key)
	}
	if attrs[3].Key != "dangling" || attrs[3].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected dangling attribute: %+v", attrs[3])
	}
}

func TestLogValue(t *testing.T) {
	type count int32

	cases := []struct {
		name string
		in   any
		kind otellog.Kind
	}{
		{name: "nil", in: nil, kind: otellog.KindEmpty},
		{name: "error", in: errors.New("boom"), kind: otellog.KindString},
		{name: "duration", in: 150 * time.Millisecond, kind: otellog.KindString},
		{name: "named int", in: count(3), kind: otellog.KindInt64},
		{name: "float32", in: float32(1.5), kind: otellog.KindFloat64},
		{name: "slice", in: []string{"a", "b"}, kind: otellog.KindSlice},
		{name: "map", in: map[string]any{"wins": 11, "clinched": true}, kind: otellog.KindMap},
		{name: "int keyed map", in: map[int]string{1: "a"}, kind: otellog.KindString},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := logValue(tc.in, 0).Kind(); got != tc.kind {
				t.Fatalf("expected kind %s, got %s", tc.kind, got)
			}
		})
	}

	nested := logValue(map[string]any{"a": map[string]any{"b": map[string]any{"c": 1}}}, 0)
	inner := nested.AsMap()[0].Value.AsMap()[0].Value.AsMap()[0].Value
	if inner.Kind() != otellog.KindString {
		t.Fatalf("expected depth-limited value to be stringified, got %s", inner.Kind())
	}
}

func TestSeverityOf(t *testing.T) {
	cases := map[logging.Level]otellog.Severity{
		logging.LevelDebug: otellog.SeverityDebug,
		logging.LevelInfo:  otellog.SeverityInfo,
		logging.LevelWarn:  otellog.SeverityWarn,
		logging.LevelError: otellog.SeverityError,
	}
	for level, want := range cases {
		if got := severityOf(level); got != want {
			t.Fatalf("level %s: expected %v, got %v", level, want, got)
		}
	}
}
