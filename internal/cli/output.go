package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/jsamuelsen11/clusterconf/internal/adapters/http/dto"
	"github.com/jsamuelsen11/clusterconf/internal/domain/option"
	"github.com/jsamuelsen11/clusterconf/internal/domain/override"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

// writeJSON renders v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatUpper
	return t
}

// renderOptions writes one row per option. Records use the same JSON shape
// the service serves.
func renderOptions(w io.Writer, format string, opts []option.Option) error {
	if format == outputJSON {
		return writeJSON(w, dto.ToOptionListResponse(opts))
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"name", "type", "level", "default", "value"})
	for i := range opts {
		o := &opts[i]
		t.AppendRow(table.Row{o.Name, o.Type, o.Level, formatScalar(o.Default), formatValues(o.Values)})
	}
	t.AppendFooter(table.Row{"", "", "", "total", len(opts)})
	t.Render()
	return nil
}

// renderOption writes a single option as a key/value table.
func renderOption(w io.Writer, format string, o *option.Option) error {
	if format == outputJSON {
		return writeJSON(w, dto.ToOptionResponse(o))
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"field", "value"})
	t.AppendRows([]table.Row{
		{"name", o.Name},
		{"type", o.Type},
		{"level", o.Level},
		{"desc", o.Desc},
		{"default", formatScalar(o.Default)},
		{"daemon_default", formatScalar(o.DaemonDefault)},
		{"min", formatScalar(o.Min)},
		{"max", formatScalar(o.Max)},
		{"services", strings.Join(o.Services, ",")},
	})
	if o.IsEnum() {
		t.AppendRow(table.Row{"enum_values", strings.Join(o.EnumValues, ",")})
	}
	if o.HasOverrides() {
		t.AppendRow(table.Row{"value", formatValues(o.Values)})
		t.AppendRow(table.Row{"source", o.Source})
	}
	t.Render()
	return nil
}

// renderOverrides writes stored overrides.
func renderOverrides(w io.Writer, format string, list []override.Override) error {
	if format == outputJSON {
		return writeJSON(w, dto.ToOverrideListResponse(list))
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"section", "name", "value"})
	for i := range list {
		t.AppendRow(table.Row{list[i].Section, list[i].Name, list[i].Value})
	}
	t.Render()
	return nil
}

func formatScalar(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func formatValues(values []option.Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.Section + "=" + v.Value
	}
	return strings.Join(parts, " ")
}
