// Package params holds the parameter bag that drives spinner templates and
// the typed inputs accepted by the border and margin setters.
package params

import (
	"math"
	"sort"
	"strconv"
)

// Well-known bag keys.
const (
	KeySize            = "size"
	KeyColor           = "color"
	KeyBackgroundColor = "background_color"
	KeyBorder          = "border"
	KeyMargin          = "margin"
	KeyCSSClass        = "css_class"
	KeyWidth           = "width"
	KeyHeight          = "height"
	KeyInnerWidth      = "inner_width"
	KeyInnerHeight     = "inner_height"
)

// Bag maps parameter names to float64 or string values.
type Bag map[string]any

// Clone returns a shallow copy of b. A nil bag clones to an empty bag.
func (b Bag) Clone() Bag {
	out := make(Bag, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Merge copies every entry of other into b, overwriting existing keys.
func (b Bag) Merge(other Bag) {
	for k, v := range other {
		b[k] = v
	}
}

// Number returns the numeric value stored under key. Numeric strings are
// parsed; anything else reports ok=false.
func (b Bag) Number(key string) (float64, bool) {
	switch v := b[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// String returns the string value stored under key.
func (b Bag) String(key string) (string, bool) {
	v, ok := b[key].(string)
	return v, ok
}

// Lookup returns the template text for key. Numbers are formatted with
// FormatNumber; missing keys report ok=false.
func (b Bag) Lookup(key string) (string, bool) {
	v, ok := b[key]
	if !ok {
		return "", false
	}
	switch val := v.(type) {
	case string:
		return val, true
	case float64:
		return FormatNumber(val), true
	case float32:
		return FormatNumber(float64(val)), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case bool:
		return strconv.FormatBool(val), true
	case nil:
		return "", true
	default:
		return "", false
	}
}

// Keys returns the bag keys in sorted order.
func (b Bag) Keys() []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ReferenceDimension is the basis for percentage borders: inner_height
// when a variant computed one, size otherwise.
func (b Bag) ReferenceDimension() float64 {
	if inner, ok := b.Number(KeyInnerHeight); ok {
		return inner
	}
	size, _ := b.Number(KeySize)
	return size
}

const precision = 1e4

// FormatNumber renders v as the shortest decimal string after rounding to
// four fractional digits, so 20*0.8 prints as "16" and not a float tail.
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	rounded := math.Round(v*precision) / precision
	if rounded == 0 {
		rounded = 0 // drop negative zero
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
