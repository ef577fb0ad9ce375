package loading_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-loading"
)

func TestNewWidgetStandalone(t *testing.T) {
	w, err := loading.NewWidget(loading.NewRing(), loading.WithSize(30), loading.WithColor("teal"))
	if err != nil {
		t.Fatalf("NewWidget() unexpected error: %v", err)
	}
	value := w.Value()
	if !strings.Contains(value, "width: 30px;") || !strings.Contains(value, "solid teal;") {
		t.Fatalf("unexpected markup:\n%s", value)
	}
	if !strings.HasPrefix(value, "<style>\n") || !strings.Contains(value, `<div class="`+w.ID()+`">`) {
		t.Fatalf("expected document wrap scoped by id:\n%s", value)
	}
}

func TestModuleBuildsWidgetsByName(t *testing.T) {
	m, err := loading.New(loading.DefaultConfig())
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	t.Cleanup(m.Close)

	if got := m.Variants(); len(got) != 2 {
		t.Fatalf("expected built-in variants, got %v", got)
	}

	w, err := m.NewWidget("Dual Ring", loading.WithBorder(loading.ParseDimension("25%")))
	if err != nil {
		t.Fatalf("NewWidget() unexpected error: %v", err)
	}
	if border, _ := w.Number("border"); border != 4 {
		t.Fatalf("expected 25%% border of 16, got %v", border)
	}

	m.Register("dots", func() loading.Variant {
		return loading.NewCustom("dots", ".${css_class} i { color: ${color}; }", "<i>.</i>")
	})
	if _, err := m.NewWidget("dots"); err != nil {
		t.Fatalf("expected registered variant, got %v", err)
	}
	if _, err := m.NewWidget("bars"); err == nil {
		t.Fatal("expected unknown variant error")
	}
}

func TestModuleCreateAndSync(t *testing.T) {
	ctx := context.Background()
	m, err := loading.New(loading.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	var changes []loading.Change
	m.Hub().Subscribe(func(c loading.Change) { changes = append(changes, c) })

	w, err := m.Create(ctx, loading.Ring, nil)
	if err != nil {
		t.Fatal(err)
	}
	snapshot, err := m.Sync(ctx, w.ID(), map[string]any{"size": 50, "color": "#abc"})
	if err != nil {
		t.Fatalf("Sync() unexpected error: %v", err)
	}
	if !strings.Contains(snapshot.Value, "width: 50px;") {
		t.Fatalf("expected synced size:\n%s", snapshot.Value)
	}
	if len(changes) != 1 {
		t.Fatalf("expected one hub change, got %d", len(changes))
	}
	if _, err := m.Sync(ctx, w.ID(), map[string]any{"size": 0}); err == nil {
		t.Fatal("expected schema rejection of size 0")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := loading.DefaultConfig()
	cfg.Logging.Enabled = true
	cfg.Logging.Provider = "syslog"
	if _, err := loading.New(cfg); !errors.Is(err, loading.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestTwoWidgetsDifferOnlyByID(t *testing.T) {
	a, err := loading.NewWidget(loading.NewDualRing())
	if err != nil {
		t.Fatal(err)
	}
	b, err := loading.NewWidget(loading.NewDualRing())
	if err != nil {
		t.Fatal(err)
	}
	if a.ID() == b.ID() {
		t.Fatal("expected unique ids")
	}
	if strings.ReplaceAll(a.Value(), a.ID(), "ID") != strings.ReplaceAll(b.Value(), b.ID(), "ID") {
		t.Fatal("expected markup to differ only by id")
	}
}
