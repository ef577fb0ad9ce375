package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-loading/pkg/interfaces"
)

const (
	rootModule    = "loading"
	spinnerModule = "loading.spinner"
	hubModule     = "loading.hub"
	catalogModule = "loading.catalog"
)

const (
	fieldWidgetID = "widget_id"
	fieldVariant  = "variant"
)

// ModuleLogger returns the provider's logger for module with a "module"
// field attached. A nil provider yields a no-op logger.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if strings.TrimSpace(module) == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// SpinnerLogger returns the logger namespace used by widgets.
func SpinnerLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, spinnerModule)
}

// HubLogger returns the logger namespace used by the live widget hub.
func HubLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, hubModule)
}

// CatalogLogger returns the logger namespace used while loading variant files.
func CatalogLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, catalogModule)
}

// WithWidgetContext adds widget id and variant fields, skipping empty values.
func WithWidgetContext(logger interfaces.Logger, widgetID, variant string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(widgetID); trimmed != "" {
		fields[fieldWidgetID] = trimmed
	}
	if trimmed := strings.TrimSpace(variant); trimmed != "" {
		fields[fieldVariant] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
