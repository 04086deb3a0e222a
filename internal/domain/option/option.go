// Package option models the cluster's configuration option catalog: the
// compiled-in schema of every named option plus the per-section override
// values currently in effect.
package option

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jsamuelsen11/clusterconf/internal/domain"
)

// Value is an override of an option within one configuration section.
type Value struct {
	Section string
	Value   string
}

// Option is a single named, typed configuration key known to the cluster.
//
// Default, DaemonDefault, Min and Max hold typed scalars (string, bool, int,
// float64) decoded from the schema, or nil when the schema leaves them unset.
// Values and Source are populated only when the option has overrides.
type Option struct {
	Name          string
	Type          Type
	Level         Level
	Desc          string
	LongDesc      string
	Default       any
	DaemonDefault any
	Tags          []string
	Services      []string
	SeeAlso       []string
	Min           any
	Max           any
	EnumValues    []string

	Values []Value
	Source string
}

// IsEnum reports whether the option restricts its values to EnumValues.
func (o *Option) IsEnum() bool {
	return len(o.EnumValues) > 0
}

// HasOverrides reports whether any section overrides the option.
func (o *Option) HasOverrides() bool {
	return len(o.Values) > 0
}

// Validate checks schema invariants for a catalog entry.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (o *Option) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(o.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if !o.Type.IsValid() {
		fields["type"] = fmt.Sprintf("invalid: %q", o.Type)
	}
	if !o.Level.IsValid() {
		fields["level"] = fmt.Sprintf("invalid: %q", o.Level)
	}
	if o.IsEnum() && o.Type != TypeStr {
		fields["enum_values"] = fmt.Sprintf("only allowed on %s options, got %s", TypeStr, o.Type)
	}
	if (o.Min != nil || o.Max != nil) && !o.Type.IsNumeric() {
		fields["min"] = fmt.Sprintf("bounds not allowed on %s options", o.Type)
	}
	if lo, ok := toFloat(o.Min); ok {
		if hi, ok := toFloat(o.Max); ok && lo > hi {
			fields["max"] = fmt.Sprintf("must be >= min (%v), got %v", o.Min, o.Max)
		}
	}
	if o.HasOverrides() && o.Source == "" {
		fields["source"] = "is required when values are present"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// WithOverrides returns a copy of o carrying the given override values,
// ordered by section, and the provenance label of the store they came from.
// An empty values slice yields a copy without overrides.
func (o Option) WithOverrides(values []Value, source string) Option {
	if len(values) == 0 {
		o.Values = nil
		o.Source = ""
		return o
	}

	o.Values = slices.Clone(values)
	SortValues(o.Values)
	o.Source = source
	return o
}

// SortValues orders override values by section (global first, then daemon
// type, then instance id). Unparseable sections sort last by raw string.
func SortValues(values []Value) {
	slices.SortStableFunc(values, func(a, b Value) int {
		return CompareSectionStrings(a.Section, b.Section)
	})
}

// toFloat converts a decoded schema scalar to float64 for bound comparison.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
