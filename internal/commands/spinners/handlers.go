package spinnerscmd

import (
	"context"
	"strings"

	"github.com/goliatone/go-loading/internal/commands"
	"github.com/goliatone/go-loading/internal/hub"
	"github.com/goliatone/go-loading/internal/logging"
	"github.com/goliatone/go-loading/pkg/interfaces"
)

// SyncStateHandler routes host state to the hub.
type SyncStateHandler struct {
	inner *commands.Handler[SyncStateCommand]
}

// NewSyncStateHandler constructs a handler wired to the provided hub.
func NewSyncStateHandler(h *hub.Hub, logger interfaces.Logger, opts ...commands.HandlerOption[SyncStateCommand]) *SyncStateHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg SyncStateCommand) error {
		id := strings.TrimSpace(msg.WidgetID)
		snapshot, err := h.Sync(ctx, id, msg.State)
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"widget_id": id,
			"renders":   snapshot.Renders,
		}).Debug("spinners.command.state.synced")
		if msg.Reply != nil {
			msg.Reply(snapshot)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[SyncStateCommand]{
		commands.WithLogger[SyncStateCommand](baseLogger),
		commands.WithOperation[SyncStateCommand]("spinners.state.sync"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SyncStateHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SyncStateCommand].
func (h *SyncStateHandler) Execute(ctx context.Context, msg SyncStateCommand) error {
	return h.inner.Execute(ctx, msg)
}

// CreateWidgetHandler creates live widgets through the hub.
type CreateWidgetHandler struct {
	inner *commands.Handler[CreateWidgetCommand]
}

// NewCreateWidgetHandler constructs a handler wired to the provided hub.
func NewCreateWidgetHandler(h *hub.Hub, logger interfaces.Logger, opts ...commands.HandlerOption[CreateWidgetCommand]) *CreateWidgetHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg CreateWidgetCommand) error {
		widget, err := h.Create(ctx, strings.TrimSpace(msg.Variant), msg.State)
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"widget_id": widget.ID(),
			"variant":   widget.VariantName(),
		}).Info("spinners.command.widget.created")
		if msg.Reply != nil {
			msg.Reply(widget.Snapshot())
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[CreateWidgetCommand]{
		commands.WithLogger[CreateWidgetCommand](baseLogger),
		commands.WithOperation[CreateWidgetCommand]("spinners.widget.create"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CreateWidgetHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[CreateWidgetCommand].
func (h *CreateWidgetHandler) Execute(ctx context.Context, msg CreateWidgetCommand) error {
	return h.inner.Execute(ctx, msg)
}

// CloseWidgetHandler removes live widgets from the hub.
type CloseWidgetHandler struct {
	inner *commands.Handler[CloseWidgetCommand]
}

// NewCloseWidgetHandler constructs a handler wired to the provided hub.
func NewCloseWidgetHandler(h *hub.Hub, logger interfaces.Logger, opts ...commands.HandlerOption[CloseWidgetCommand]) *CloseWidgetHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg CloseWidgetCommand) error {
		id := strings.TrimSpace(msg.WidgetID)
		if err := h.Close(ctx, id); err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"widget_id": id,
		}).Info("spinners.command.widget.closed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[CloseWidgetCommand]{
		commands.WithLogger[CloseWidgetCommand](baseLogger),
		commands.WithOperation[CloseWidgetCommand]("spinners.widget.close"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CloseWidgetHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[CloseWidgetCommand].
func (h *CloseWidgetHandler) Execute(ctx context.Context, msg CloseWidgetCommand) error {
	return h.inner.Execute(ctx, msg)
}
