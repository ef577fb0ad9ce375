package spinnerscmd

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/goliatone/go-command/dispatcher"

	"github.com/goliatone/go-loading/internal/hub"
	"github.com/goliatone/go-loading/internal/identity"
	"github.com/goliatone/go-loading/internal/spinner"
	"github.com/goliatone/go-loading/internal/validation"
)

// flakySanitizer rejects one color a fixed number of times, standing in for
// a palette check backed by a service that is briefly unavailable.
type flakySanitizer struct {
	mu       sync.Mutex
	color    string
	failures int
	rejected int
}

func (s *flakySanitizer) SanitizeValue(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if key != "color" || value != s.color || s.failures == 0 {
		return nil
	}
	s.failures--
	s.rejected++
	return errors.New("palette check unavailable")
}

func newFlakyHub(t *testing.T, sanitizer *flakySanitizer) (*hub.Hub, *spinner.Widget) {
	t.Helper()
	validator, err := validation.NewStateValidator()
	if err != nil {
		t.Fatalf("NewStateValidator() unexpected error: %v", err)
	}
	h := hub.New(nil,
		hub.WithValidator(validator),
		hub.WithWidgetOptions(
			spinner.WithIDGenerator(identity.Deterministic(t.Name(), "r")),
			spinner.WithSanitizer(sanitizer),
		),
	)
	widget, err := h.Create(context.Background(), spinner.RingName, nil)
	if err != nil {
		t.Fatalf("create widget: %v", err)
	}
	return h, widget
}

func TestDispatcherRetriesTransientSyncFailure(t *testing.T) {
	sanitizer := &flakySanitizer{color: "purple", failures: 1}
	h, widget := newFlakyHub(t, sanitizer)

	result, err := Register(h, RegistrationOptions{Dispatch: true, MaxRetries: 1})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	t.Cleanup(result.Unsubscribe)

	var synced spinner.Snapshot
	err = dispatcher.Dispatch(context.Background(), SyncStateCommand{
		WidgetID: widget.ID(),
		State:    map[string]any{"color": "purple"},
		Reply:    func(s spinner.Snapshot) { synced = s },
	})
	if err != nil {
		t.Fatalf("dispatch: expected success after retry, got %v", err)
	}
	if sanitizer.rejected != 1 {
		t.Fatalf("expected one rejected attempt, got %d", sanitizer.rejected)
	}
	if !strings.Contains(synced.Value, "solid purple;") {
		t.Fatalf("expected retried sync to render purple:\n%s", synced.Value)
	}
	if synced.Renders != 2 {
		t.Fatalf("expected failed attempt not to render, got %d renders", synced.Renders)
	}
}

func TestDispatcherSyncRetryExhaustion(t *testing.T) {
	sanitizer := &flakySanitizer{color: "purple", failures: 10}
	h, widget := newFlakyHub(t, sanitizer)

	result, err := Register(h, RegistrationOptions{Dispatch: true, MaxRetries: 2})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	t.Cleanup(result.Unsubscribe)

	err = dispatcher.Dispatch(context.Background(), SyncStateCommand{
		WidgetID: widget.ID(),
		State:    map[string]any{"color": "purple", "size": 40},
	})
	if err == nil {
		t.Fatal("expected dispatcher to return error after exhausting retries")
	}
	if sanitizer.rejected != 3 {
		t.Fatalf("expected 3 attempts (initial + 2 retries), got %d", sanitizer.rejected)
	}

	snapshot := widget.Snapshot()
	if strings.Contains(snapshot.Value, "purple") || !strings.Contains(snapshot.Value, "width: 20px;") {
		t.Fatalf("expected failed syncs to leave the widget untouched:\n%s", snapshot.Value)
	}
}
