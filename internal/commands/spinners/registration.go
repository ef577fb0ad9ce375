package spinnerscmd

import (
	"errors"
	"time"

	"github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"

	"github.com/goliatone/go-loading/internal/commands"
	"github.com/goliatone/go-loading/internal/hub"
	"github.com/goliatone/go-loading/pkg/interfaces"
)

// CommandRegistry records command handlers so hosts can expose them via CLI or RPC.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CommandSubscription allows hosts to tear down dispatcher subscriptions.
type CommandSubscription interface {
	Unsubscribe()
}

// RegistrationOptions configures how handlers are built and registered.
type RegistrationOptions struct {
	Registry       CommandRegistry
	LoggerProvider interfaces.LoggerProvider
	// Timeout bounds each execution. Zero keeps commands.DefaultCommandTimeout.
	Timeout time.Duration
	// Dispatch subscribes the handlers to the go-command dispatcher.
	Dispatch bool
	// MaxRetries is passed to the dispatcher runner.
	MaxRetries int
}

// Handlers groups the spinner command handlers.
type Handlers struct {
	Sync   *SyncStateHandler
	Create *CreateWidgetHandler
	Close  *CloseWidgetHandler
}

// RegistrationResult captures the constructed handlers and any dispatcher
// subscriptions.
type RegistrationResult struct {
	Handlers      Handlers
	Subscriptions []CommandSubscription
}

// Unsubscribe tears down every dispatcher subscription.
func (r *RegistrationResult) Unsubscribe() {
	if r == nil {
		return
	}
	for _, sub := range r.Subscriptions {
		sub.Unsubscribe()
	}
	r.Subscriptions = nil
}

// Register builds the handlers for h and registers them with the configured
// integrations.
func Register(h *hub.Hub, opts RegistrationOptions) (*RegistrationResult, error) {
	if h == nil {
		return &RegistrationResult{}, nil
	}
	logger := commands.CommandLogger(opts.LoggerProvider, "spinners")

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = commands.DefaultCommandTimeout
	}

	handlers := Handlers{
		Sync:   NewSyncStateHandler(h, logger, commands.WithTimeout[SyncStateCommand](timeout)),
		Create: NewCreateWidgetHandler(h, logger, commands.WithTimeout[CreateWidgetCommand](timeout)),
		Close:  NewCloseWidgetHandler(h, logger, commands.WithTimeout[CloseWidgetCommand](timeout)),
	}
	result := &RegistrationResult{Handlers: handlers}

	var errs error
	if opts.Registry != nil {
		for _, handler := range []any{handlers.Sync, handlers.Create, handlers.Close} {
			if err := opts.Registry.RegisterCommand(handler); err != nil {
				errs = errors.Join(errs, err)
			}
		}
	}

	if opts.Dispatch {
		retries := runner.WithMaxRetries(opts.MaxRetries)
		result.Subscriptions = append(result.Subscriptions,
			dispatcher.SubscribeCommand(handlers.Sync, retries),
			dispatcher.SubscribeCommand(handlers.Create, retries),
			dispatcher.SubscribeCommand(handlers.Close, retries),
		)
	}

	return result, errs
}
