package spinnerscmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-loading/internal/spinner"
)

const (
	syncStateMessageType    = "spinners.state.sync"
	createWidgetMessageType = "spinners.widget.create"
	closeWidgetMessageType  = "spinners.widget.close"
)

// SyncStateCommand applies partial host state to a live widget.
type SyncStateCommand struct {
	WidgetID string         `json:"widget_id"`
	State    map[string]any `json:"state"`
	// Reply receives the widget snapshot after a successful sync.
	Reply func(spinner.Snapshot) `json:"-"`
}

// Type implements command.Message.
func (SyncStateCommand) Type() string { return syncStateMessageType }

// Validate ensures the target widget is named.
func (m SyncStateCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.WidgetID) == "" {
		errs["widget_id"] = validation.NewError("spinners.state.sync.widget_id_required", "widget_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateWidgetCommand creates a live widget of the named variant.
type CreateWidgetCommand struct {
	Variant string         `json:"variant"`
	State   map[string]any `json:"state,omitempty"`
	// Reply receives the new widget snapshot, including its id.
	Reply func(spinner.Snapshot) `json:"-"`
}

// Type implements command.Message.
func (CreateWidgetCommand) Type() string { return createWidgetMessageType }

// Validate ensures a variant is requested.
func (m CreateWidgetCommand) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Variant,
			validation.Required.Error("variant is required"),
			validation.By(func(value any) error {
				name, _ := value.(string)
				if spinner.CanonicalName(name) == "" {
					return validation.NewError("spinners.widget.create.variant_invalid", "variant must contain letters or digits")
				}
				return nil
			}),
		),
	)
}

// CloseWidgetCommand removes a live widget.
type CloseWidgetCommand struct {
	WidgetID string `json:"widget_id"`
}

// Type implements command.Message.
func (CloseWidgetCommand) Type() string { return closeWidgetMessageType }

// Validate ensures the target widget is named.
func (m CloseWidgetCommand) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.WidgetID, validation.Required.Error("widget_id is required")),
	)
}
