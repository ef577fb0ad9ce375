package params

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit identifies how a Dimension value is interpreted.
type Unit uint8

const (
	// Auto asks the variant for its default value.
	Auto Unit = iota
	// Pixels is an absolute value.
	Pixels
	// Percent is a percentage of the variant's reference dimension.
	Percent
)

func (u Unit) String() string {
	switch u {
	case Pixels:
		return "px"
	case Percent:
		return "%"
	default:
		return "auto"
	}
}

// Dimension is a border or margin input: auto, an absolute pixel value or a
// percentage. Malformed records that the input could not be parsed and was
// downgraded to Auto.
type Dimension struct {
	Unit      Unit
	Value     float64
	Raw       string
	Malformed bool
}

// AutoDimension returns the auto (falsy) dimension.
func AutoDimension() Dimension { return Dimension{Unit: Auto} }

// Px returns an absolute dimension. Zero is falsy and maps to Auto; NaN and
// infinities are Malformed.
func Px(v float64) Dimension {
	return numeric(Pixels, v)
}

// Pct returns a percentage dimension; 50 means half the reference.
func Pct(v float64) Dimension {
	return numeric(Percent, v)
}

func numeric(unit Unit, v float64) Dimension {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Dimension{Unit: Auto, Raw: strconv.FormatFloat(v, 'g', -1, 64), Malformed: true}
	}
	if v == 0 {
		return AutoDimension()
	}
	return Dimension{Unit: unit, Value: v}
}

// IsAuto reports whether the variant default should be used.
func (d Dimension) IsAuto() bool { return d.Unit == Auto }

// Resolve converts d into an absolute value against reference.
func (d Dimension) Resolve(reference float64) float64 {
	switch d.Unit {
	case Percent:
		return reference * d.Value / 100
	case Pixels:
		return d.Value
	default:
		return 0
	}
}

func (d Dimension) String() string {
	switch d.Unit {
	case Pixels:
		return FormatNumber(d.Value) + "px"
	case Percent:
		return FormatNumber(d.Value) + "%"
	default:
		return "auto"
	}
}

// ParseDimension reads "12px", "50%", "12" or "". Empty and "auto" are
// Auto. Unrecognised input yields an Auto dimension with Malformed set.
func ParseDimension(raw string) Dimension {
	value := strings.TrimSpace(raw)
	if value == "" || strings.EqualFold(value, "auto") {
		return AutoDimension()
	}

	unit := Pixels
	number := value
	switch {
	case strings.HasSuffix(value, "%"):
		unit = Percent
		number = strings.TrimSuffix(value, "%")
	case strings.HasSuffix(strings.ToLower(value), "px"):
		number = value[:len(value)-2]
	}

	parsed, err := strconv.ParseFloat(strings.TrimSpace(number), 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return Dimension{Unit: Auto, Raw: raw, Malformed: true}
	}
	if parsed == 0 {
		return AutoDimension()
	}
	return Dimension{Unit: unit, Value: parsed, Raw: raw}
}

// DimensionFrom converts a decoded host value (nil, number, string or
// Dimension) into a Dimension. Unsupported types are Malformed.
func DimensionFrom(value any) Dimension {
	switch v := value.(type) {
	case nil:
		return AutoDimension()
	case Dimension:
		return v
	case float64:
		return Px(v)
	case float32:
		return Px(float64(v))
	case int:
		return Px(float64(v))
	case int64:
		return Px(float64(v))
	case bool:
		if !v {
			return AutoDimension()
		}
	case string:
		return ParseDimension(v)
	}
	return Dimension{Unit: Auto, Raw: fmt.Sprint(value), Malformed: true}
}
