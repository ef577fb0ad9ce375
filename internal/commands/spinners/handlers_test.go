package spinnerscmd

import (
	"context"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-command/dispatcher"

	"github.com/goliatone/go-loading/internal/hub"
	"github.com/goliatone/go-loading/internal/identity"
	"github.com/goliatone/go-loading/internal/logging"
	"github.com/goliatone/go-loading/internal/spinner"
	"github.com/goliatone/go-loading/internal/validation"
)

func newTestHub(t *testing.T) *hub.Hub {
	t.Helper()
	validator, err := validation.NewStateValidator()
	if err != nil {
		t.Fatalf("NewStateValidator() unexpected error: %v", err)
	}
	return hub.New(nil,
		hub.WithValidator(validator),
		hub.WithWidgetOptions(spinner.WithIDGenerator(identity.Deterministic(t.Name(), "s"))),
	)
}

func TestMessageValidation(t *testing.T) {
	if err := (SyncStateCommand{}).Validate(); err == nil {
		t.Fatal("expected sync without widget_id to fail")
	}
	if err := (SyncStateCommand{WidgetID: "a1"}).Validate(); err != nil {
		t.Fatalf("unexpected sync validation error: %v", err)
	}
	if err := (CreateWidgetCommand{}).Validate(); err == nil {
		t.Fatal("expected create without variant to fail")
	}
	if err := (CreateWidgetCommand{Variant: "ring"}).Validate(); err != nil {
		t.Fatalf("unexpected create validation error: %v", err)
	}
	if err := (CloseWidgetCommand{}).Validate(); err == nil {
		t.Fatal("expected close without widget_id to fail")
	}
}

func TestCreateSyncCloseHandlers(t *testing.T) {
	ctx := context.Background()
	h := newTestHub(t)
	logger := logging.NoOp()

	var created spinner.Snapshot
	create := NewCreateWidgetHandler(h, logger)
	err := create.Execute(ctx, CreateWidgetCommand{
		Variant: "Dual Ring",
		State:   map[string]any{"size": 48},
		Reply:   func(s spinner.Snapshot) { created = s },
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" || created.Variant != spinner.DualRingName {
		t.Fatalf("unexpected created snapshot %+v", created)
	}

	var synced spinner.Snapshot
	sync := NewSyncStateHandler(h, logger)
	err = sync.Execute(ctx, SyncStateCommand{
		WidgetID: created.ID,
		State:    map[string]any{"color": "purple"},
		Reply:    func(s spinner.Snapshot) { synced = s },
	})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if !strings.Contains(synced.Value, "purple") {
		t.Fatalf("expected synced markup, got:\n%s", synced.Value)
	}

	closeHandler := NewCloseWidgetHandler(h, logger)
	if err := closeHandler.Execute(ctx, CloseWidgetCommand{WidgetID: created.ID}); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, ok := h.Get(created.ID); ok {
		t.Fatal("expected widget removed from hub")
	}
}

func TestSyncHandlerKeepsDomainErrorCategory(t *testing.T) {
	ctx := context.Background()
	h := newTestHub(t)
	widget, err := h.Create(ctx, spinner.RingName, nil)
	if err != nil {
		t.Fatal(err)
	}

	handler := NewSyncStateHandler(h, nil)
	err = handler.Execute(ctx, SyncStateCommand{WidgetID: widget.ID(), State: map[string]any{"size": -2}})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}

	err = handler.Execute(ctx, SyncStateCommand{WidgetID: "missing"})
	if !goerrors.IsCategory(err, goerrors.CategoryNotFound) {
		t.Fatalf("expected not found category, got %v", err)
	}
}

type recordingRegistry struct {
	handlers []any
}

func (r *recordingRegistry) RegisterCommand(handler any) error {
	r.handlers = append(r.handlers, handler)
	return nil
}

func TestRegisterBuildsHandlers(t *testing.T) {
	registry := &recordingRegistry{}
	result, err := Register(newTestHub(t), RegistrationOptions{Registry: registry})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if result.Handlers.Sync == nil || result.Handlers.Create == nil || result.Handlers.Close == nil {
		t.Fatalf("expected all handlers built, got %+v", result.Handlers)
	}
	if len(registry.handlers) != 3 {
		t.Fatalf("expected three registered handlers, got %d", len(registry.handlers))
	}
	if len(result.Subscriptions) != 0 {
		t.Fatal("expected no dispatcher subscriptions unless requested")
	}
}

func TestRegisterWithNilHub(t *testing.T) {
	result, err := Register(nil, RegistrationOptions{Dispatch: true})
	if err != nil || result == nil || result.Handlers.Sync != nil {
		t.Fatalf("expected empty result, got %+v %v", result, err)
	}
}

func TestDispatcherRoutesSpinnerCommands(t *testing.T) {
	ctx := context.Background()
	h := newTestHub(t)

	result, err := Register(h, RegistrationOptions{Dispatch: true})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	t.Cleanup(result.Unsubscribe)
	if len(result.Subscriptions) != 3 {
		t.Fatalf("expected three subscriptions, got %d", len(result.Subscriptions))
	}

	var id string
	if err := dispatcher.Dispatch(ctx, CreateWidgetCommand{
		Variant: spinner.RingName,
		Reply:   func(s spinner.Snapshot) { id = s.ID },
	}); err != nil {
		t.Fatalf("dispatch create: %v", err)
	}
	if id == "" {
		t.Fatal("expected reply with widget id")
	}

	if err := dispatcher.Dispatch(ctx, SyncStateCommand{WidgetID: id, State: map[string]any{"border": "25%"}}); err != nil {
		t.Fatalf("dispatch sync: %v", err)
	}
	widget, ok := h.Get(id)
	if !ok {
		t.Fatal("expected widget in hub")
	}
	if border, _ := widget.Number("border"); border != 4 {
		t.Fatalf("expected border 4 after sync, got %v", border)
	}

	if err := dispatcher.Dispatch(ctx, CloseWidgetCommand{WidgetID: id}); err != nil {
		t.Fatalf("dispatch close: %v", err)
	}
	if len(h.IDs()) != 0 {
		t.Fatalf("expected hub empty, got %v", h.IDs())
	}
}
