package spinner

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-loading/internal/params"
)

// Snapshot is the host-facing view of a widget. Border and Margin are the
// requested inputs ("auto", "3px", "50%"); Params holds computed values.
type Snapshot struct {
	ID      string     `json:"id"`
	Variant string     `json:"variant"`
	Value   string     `json:"value"`
	Params  params.Bag `json:"params"`
	Border  string     `json:"border"`
	Margin  string     `json:"margin"`
	Renders int        `json:"renders"`
}

// Snapshot returns the current state for the host front-end.
func (w *Widget) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Snapshot{
		ID:      w.id,
		Variant: w.variant.Name(),
		Value:   w.value,
		Params:  w.bag.Clone(),
		Border:  w.border.String(),
		Margin:  w.margin.String(),
		Renders: w.renders,
	}
}

// Border returns the border as last requested, before the variant rule.
func (w *Widget) Border() params.Dimension {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.border
}

// Margin returns the margin as last requested, before the variant rule.
func (w *Widget) Margin() params.Dimension {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.margin
}

// applyOrder mirrors the constructor so partial host updates resolve
// border and margin against the new size.
var applyOrder = []string{
	params.KeySize,
	params.KeyBorder,
	params.KeyMargin,
	params.KeyColor,
	params.KeyBackgroundColor,
}

// Apply sets every parameter present in state and renders once. Built-in
// keys go through their setters; other keys are custom parameters. The
// update is all or nothing.
func (w *Widget) Apply(state map[string]any) error {
	if len(state) == 0 {
		return w.Render()
	}
	return w.update(func() error {
		for _, key := range applyOrder {
			value, ok := state[key]
			if !ok {
				continue
			}
			if err := w.applyKeyLocked(key, value); err != nil {
				return err
			}
		}
		for _, key := range params.Bag(state).Keys() {
			if isReserved(key) {
				continue
			}
			if err := w.setExtraLocked(strings.TrimSpace(key), state[key]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (w *Widget) applyKeyLocked(key string, value any) error {
	switch key {
	case params.KeySize:
		size, ok := toFloat(value)
		if !ok {
			return validationError(ErrSizeInvalid, textCodeSizeInvalid, fmt.Sprintf("size must be numeric, got %T", value))
		}
		return w.setSizeLocked(size)
	case params.KeyBorder:
		w.setBorderLocked(params.DimensionFrom(normalizeNumber(value)))
		return nil
	case params.KeyMargin:
		return w.setMarginLocked(params.DimensionFrom(normalizeNumber(value)))
	case params.KeyColor, params.KeyBackgroundColor:
		color, ok := value.(string)
		if !ok && value != nil {
			return validationError(ErrValueType, textCodeValueType, key+" must be a string")
		}
		if key == params.KeyColor {
			return w.setColorLocked(color)
		}
		return w.setBackgroundColorLocked(color)
	}
	return nil
}

func normalizeNumber(value any) any {
	if n, ok := value.(json.Number); ok {
		if f, err := n.Float64(); err == nil {
			return f
		}
	}
	return value
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
