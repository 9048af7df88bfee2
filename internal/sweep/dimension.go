package sweep

import (
	"fmt"
	"math"
	"strconv"
)

// Spacing selects how a dimension is materialized into discrete values.
type Spacing int

const (
	// SpacingLinear walks from Start by Step, stopping before Stop (exclusive).
	SpacingLinear Spacing = iota
	// SpacingLinspace produces Count evenly spaced values from Start to Stop inclusive.
	SpacingLinspace
	// SpacingGeometric produces Count log-evenly spaced values from Start to Stop inclusive.
	SpacingGeometric
)

func (s Spacing) String() string {
	switch s {
	case SpacingLinear:
		return "linear"
	case SpacingLinspace:
		return "linspace"
	case SpacingGeometric:
		return "geometric"
	}
	return fmt.Sprintf("spacing(%d)", int(s))
}

// ParseSpacing maps a flag value to a Spacing.
func ParseSpacing(s string) (Spacing, error) {
	switch s {
	case "linear":
		return SpacingLinear, nil
	case "linspace":
		return SpacingLinspace, nil
	case "geometric":
		return SpacingGeometric, nil
	}
	return 0, &ConfigurationError{Field: "spacing", Value: s, Reason: "must be one of linear, linspace, geometric"}
}

// Unit is the suffix appended to a dimension value to turn it into a
// duration token the load client understands (e.g. "250us").
type Unit string

const (
	UnitNone        Unit = ""
	UnitNanosecond  Unit = "ns"
	UnitMicrosecond Unit = "us"
	UnitMillisecond Unit = "ms"
	UnitSecond      Unit = "s"
)

// ParseUnit validates a unit suffix string.
func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case UnitNone, UnitNanosecond, UnitMicrosecond, UnitMillisecond, UnitSecond:
		return Unit(s), nil
	}
	return UnitNone, &UnsupportedUnitError{Input: s}
}

// UnsupportedUnitError reports a unit suffix outside ns/us/ms/s.
type UnsupportedUnitError struct {
	Input string
}

func (e *UnsupportedUnitError) Error() string {
	return fmt.Sprintf("unsupported unit %q: want one of ns, us, ms, s", e.Input)
}

// ConfigurationError reports an invalid dimension or run setting.
type ConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Dimension describes one axis of the parameter sweep.
type Dimension struct {
	Name    string
	Start   float64
	Stop    float64
	Step    float64 // SpacingLinear only
	Count   int     // SpacingLinspace and SpacingGeometric
	Spacing Spacing
	Unit    Unit

	// DropFirst excludes the first materialized value. Used with a
	// linspace starting at zero so the sweep never contains a
	// zero-load point.
	DropFirst bool
}

// Values materializes the dimension into its ordered value sequence.
// Floating sweep values are quantized to integers by flooring, so the
// same dimension always yields the same sequence.
func (d Dimension) Values() ([]int64, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}

	var raw []float64
	switch d.Spacing {
	case SpacingLinear:
		for v := d.Start; v < d.Stop; v += d.Step {
			raw = append(raw, v)
		}
	case SpacingLinspace:
		if d.Count == 1 {
			raw = []float64{d.Start}
			break
		}
		span := d.Stop - d.Start
		for i := 0; i < d.Count; i++ {
			raw = append(raw, d.Start+span*float64(i)/float64(d.Count-1))
		}
	case SpacingGeometric:
		if d.Count == 1 {
			raw = []float64{d.Start}
			break
		}
		ratio := d.Stop / d.Start
		for i := 0; i < d.Count; i++ {
			raw = append(raw, d.Start*math.Pow(ratio, float64(i)/float64(d.Count-1)))
		}
	default:
		return nil, &ConfigurationError{Field: d.Name, Value: d.Spacing, Reason: "unknown spacing"}
	}

	values := make([]int64, 0, len(raw))
	for _, v := range raw {
		values = append(values, quantize(v))
	}
	if d.DropFirst && len(values) > 0 {
		values = values[1:]
	}
	if len(values) == 0 {
		return nil, &ConfigurationError{Field: d.Name, Value: d, Reason: "dimension materializes to no values"}
	}
	return values, nil
}

// Tokens returns the dimension values with the unit suffix applied.
func (d Dimension) Tokens() ([]string, error) {
	values, err := d.Values()
	if err != nil {
		return nil, err
	}
	tokens := make([]string, len(values))
	for i, v := range values {
		tokens[i] = strconv.FormatInt(v, 10) + string(d.Unit)
	}
	return tokens, nil
}

func (d Dimension) validate() error {
	if d.Start < 0 {
		return &ConfigurationError{Field: d.Name, Value: d.Start, Reason: "start must be non-negative"}
	}
	switch d.Spacing {
	case SpacingLinear:
		if d.Step <= 0 {
			return &ConfigurationError{Field: d.Name, Value: d.Step, Reason: "step must be positive"}
		}
		if d.Start >= d.Stop {
			return &ConfigurationError{Field: d.Name, Value: d.Start, Reason: "start must be below stop for a linear range"}
		}
	case SpacingLinspace:
		if d.Count < 1 {
			return &ConfigurationError{Field: d.Name, Value: d.Count, Reason: "count must be at least 1"}
		}
	case SpacingGeometric:
		if d.Count < 1 {
			return &ConfigurationError{Field: d.Name, Value: d.Count, Reason: "count must be at least 1"}
		}
		if d.Start <= 0 || d.Stop <= 0 {
			return &ConfigurationError{Field: d.Name, Value: d.Start, Reason: "geometric range endpoints must be positive"}
		}
	}
	return nil
}

// quantize is the explicit rounding policy for sweep values: floor.
// All sweep values are non-negative, so this matches truncation.
func quantize(v float64) int64 {
	return int64(math.Floor(v))
}
