package console_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-loading/internal/logging"
	"github.com/goliatone/go-loading/internal/logging/console"
)

func TestConsoleLogger_WritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2024, 3, 14, 15, 9, 26, 535897000, time.UTC)

	minLevel := console.LevelDebug
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		TimeFunc: func() time.Time { return now },
		MinLevel: &minLevel,
	})

	logger := provider.GetLogger("loading.spinner")
	logger = logging.WithFields(logger, map[string]any{"module": "loading.spinner"})
	ctx := logging.ContextWithFields(context.Background(), map[string]any{
		"session": "nb-1",
	})
	logger = logger.WithContext(ctx)

	logger.Warn("spinner.margin.overflow", "margin", 5.5, "size", 20.0, "reason", errors.New("too wide"))

	got := strings.TrimSpace(buf.String())
	want := `2024-03-14T15:09:26.535897Z WARN spinner.margin.overflow logger=loading.spinner margin=5.5 module=loading.spinner reason="too wide" session=nb-1 size=20`
	if got != want {
		t.Fatalf("unexpected log entry\nwant: %s\ngot:  %s", want, got)
	}
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	minLevel := console.LevelInfo
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		TimeFunc: time.Now,
		MinLevel: &minLevel,
	})

	logger := provider.GetLogger("loading.test")
	logger.Debug("ignored.debug", "foo", "bar")
	logger.Info("included.info", "foo", "bar")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected single log line, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "included.info") {
		t.Fatalf("expected info log to be written, got %s", lines[0])
	}
}

func TestConsoleLogger_PositionalFields(t *testing.T) {
	var buf bytes.Buffer
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		TimeFunc: func() time.Time { return time.Unix(0, 0) },
	})

	provider.GetLogger("x").Info("msg", 42, "value", "dangling")

	got := strings.TrimSpace(buf.String())
	if !strings.Contains(got, "field_0=value") || !strings.Contains(got, "field_1=dangling") {
		t.Fatalf("expected positional fields, got %s", got)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]console.Level{
		"trace":   console.LevelTrace,
		"WARNING": console.LevelWarn,
		" error ": console.LevelError,
	}
	for input, want := range cases {
		got, ok := console.ParseLevel(input)
		if !ok || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", input, got, ok, want)
		}
	}
	if level, ok := console.ParseLevel("loud"); ok || level != console.LevelInfo {
		t.Fatalf("expected unknown level to fall back to info, got %v %v", level, ok)
	}
}
