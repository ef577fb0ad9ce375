package spinner

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/goliatone/go-loading/internal/params"
)

func TestApplyPartialState(t *testing.T) {
	w := newRing(t)
	var changes int
	w.Subscribe(func(Change) { changes++ })

	err := w.Apply(map[string]any{
		"size":   40.0,
		"border": "50%",
		"color":  "navy",
		"label":  "loading",
	})
	if err != nil {
		t.Fatalf("Apply() unexpected error: %v", err)
	}
	if changes != 1 {
		t.Fatalf("expected a single render for Apply, got %d", changes)
	}
	assertNumber(t, w, params.KeySize, 40)
	assertNumber(t, w, params.KeyBorder, 16)
	if got, _ := w.Params().String("label"); got != "loading" {
		t.Fatalf("expected custom parameter, got %q", got)
	}
	if !strings.Contains(w.Value(), "solid navy;") {
		t.Fatalf("expected color applied:\n%s", w.Value())
	}
}

func TestApplyDecodedJSON(t *testing.T) {
	w := newRing(t)

	decoder := json.NewDecoder(strings.NewReader(`{"size": 30, "margin": null, "border": 2}`))
	decoder.UseNumber()
	var state map[string]any
	if err := decoder.Decode(&state); err != nil {
		t.Fatal(err)
	}
	if err := w.Apply(state); err != nil {
		t.Fatalf("Apply() unexpected error: %v", err)
	}
	assertNumber(t, w, params.KeySize, 30)
	assertNumber(t, w, params.KeyBorder, 2)
	assertNumber(t, w, params.KeyMargin, 3)
}

func TestApplyIsAllOrNothing(t *testing.T) {
	w := newRing(t)
	before := w.Snapshot()

	err := w.Apply(map[string]any{
		"size":  50.0,
		"color": "red;}",
	})
	if err == nil {
		t.Fatal("expected unsafe color to fail Apply")
	}
	after := w.Snapshot()
	if after.Value != before.Value || after.Renders != before.Renders {
		t.Fatal("expected widget unchanged after failed Apply")
	}
	assertNumber(t, w, params.KeySize, 20)
}

func TestApplyRejectsNonNumericSize(t *testing.T) {
	w := newRing(t)
	if err := w.Apply(map[string]any{"size": "big"}); err == nil {
		t.Fatal("expected error for string size")
	}
}

func TestSnapshotJSON(t *testing.T) {
	w := newRing(t)
	payload, err := json.Marshal(w.Snapshot())
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["id"] != "a1" || decoded["variant"] != RingName {
		t.Fatalf("unexpected snapshot %v", decoded)
	}
	if decoded["renders"].(float64) != 1 {
		t.Fatalf("expected one render, got %v", decoded["renders"])
	}
	if decoded["border"] != "auto" || decoded["margin"] != "auto" {
		t.Fatalf("expected auto inputs, got border=%v margin=%v", decoded["border"], decoded["margin"])
	}
}

func TestSnapshotKeepsRequestedDimensions(t *testing.T) {
	w := newRing(t)
	w.SetBorder(params.Pct(120))
	w.SetMargin(params.Px(5))

	snap := w.Snapshot()
	if snap.Border != "120%" || snap.Margin != "5px" {
		t.Fatalf("expected requested inputs, got border=%q margin=%q", snap.Border, snap.Margin)
	}
	if snap.Params[params.KeyBorder] != 8.0 {
		t.Fatalf("expected clamped border in params, got %v", snap.Params[params.KeyBorder])
	}
	if w.Margin() != params.Px(5) {
		t.Fatalf("Margin() = %+v", w.Margin())
	}

	if err := w.Apply(map[string]any{"border": "3em"}); err != nil {
		t.Fatal(err)
	}
	if got := w.Snapshot().Border; got != "auto" {
		t.Fatalf("malformed border should read as auto, got %q", got)
	}
}
