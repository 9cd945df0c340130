package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
)

func TestNew_JSONCarriesComponentAndFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf, FormatJSON, LevelInfo).Named("pipeline").Named("silver")

	logger.Debug("hidden")
	logger.Warn("skip match", "match_id", "101", "reason", "parse_error", "error", errors.New("bad json"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line above debug, got %d: %s", len(lines), buf.String())
	}

	var got map[string]any
	if err := sonic.UnmarshalString(lines[0], &got); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if got["component"] != "pipeline.silver" || got["match_id"] != "101" || got["error"] != "bad json" {
		t.Fatalf("unexpected log line %v", got)
	}
	if got["level"] != "WARN" {
		t.Fatalf("unexpected level %v", got["level"])
	}
}

func TestInfoContext_WithoutSpanAddsNoTraceFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(&buf, FormatJSON, LevelDebug).InfoContext(context.Background(), "run finished", "processed", 3)
	if strings.Contains(buf.String(), "trace_id") {
		t.Fatalf("unexpected trace fields: %s", buf.String())
	}
	if !strings.Contains(buf.String(), `"processed":3`) {
		t.Fatalf("missing field: %s", buf.String())
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	t.Parallel()

	cases := map[string]Level{"debug": LevelDebug, " WARNING ": LevelWarn, "error": LevelError, "verbose": LevelInfo}
	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", raw, got, want)
		}
	}
	if ParseFormat("Console") != FormatConsole || ParseFormat("") != FormatJSON {
		t.Fatalf("unexpected format parsing")
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	if logger.Named("x") == nil {
		t.Fatalf("expected named child of default")
	}
}
