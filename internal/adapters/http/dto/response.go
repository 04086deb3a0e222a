// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/clusterconf/internal/domain/option"
	"github.com/jsamuelsen11/clusterconf/internal/domain/override"
	"github.com/jsamuelsen11/clusterconf/internal/ports"
)

// OptionResponse is one cluster_conf record.
//
// Schema fields are always present: unset scalars encode as "" and unset
// sets as []. enum_values appears only for enum options; value and source
// appear only when the option is overridden.
type OptionResponse struct {
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Level         string          `json:"level"`
	Desc          string          `json:"desc"`
	LongDesc      string          `json:"long_desc"`
	Default       any             `json:"default"`
	DaemonDefault any             `json:"daemon_default"`
	Tags          []string        `json:"tags"`
	Services      []string        `json:"services"`
	SeeAlso       []string        `json:"see_also"`
	Min           any             `json:"min"`
	Max           any             `json:"max"`
	EnumValues    []string        `json:"enum_values,omitempty"`
	Value         []ValueResponse `json:"value,omitempty"`
	Source        string          `json:"source,omitempty"`
}

// ValueResponse is one per-section override within an OptionResponse.
type ValueResponse struct {
	Section string `json:"section"`
	Value   string `json:"value"`
}

// ToOptionResponse converts a merged domain Option to its wire record.
func ToOptionResponse(o *option.Option) OptionResponse {
	resp := OptionResponse{
		Name:          o.Name,
		Type:          o.Type.String(),
		Level:         o.Level.String(),
		Desc:          o.Desc,
		LongDesc:      o.LongDesc,
		Default:       scalar(o.Default),
		DaemonDefault: scalar(o.DaemonDefault),
		Tags:          set(o.Tags),
		Services:      set(o.Services),
		SeeAlso:       set(o.SeeAlso),
		Min:           scalar(o.Min),
		Max:           scalar(o.Max),
	}

	if o.IsEnum() {
		resp.EnumValues = o.EnumValues
	}

	if o.HasOverrides() {
		resp.Value = make([]ValueResponse, len(o.Values))
		for i, v := range o.Values {
			resp.Value[i] = ValueResponse{Section: v.Section, Value: v.Value}
		}
		resp.Source = o.Source
	}

	return resp
}

// ToOptionListResponse converts options to a JSON array of records. An empty
// input encodes as [].
func ToOptionListResponse(opts []option.Option) []OptionResponse {
	items := make([]OptionResponse, len(opts))
	for i := range opts {
		items[i] = ToOptionResponse(&opts[i])
	}
	return items
}

func scalar(v any) any {
	if v == nil {
		return ""
	}
	return v
}

func set(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// OverrideResponse represents one stored override in admin responses.
type OverrideResponse struct {
	Section   string `json:"section"`
	Name      string `json:"name"`
	Value     string `json:"value"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// OverrideListResponse represents the admin dump.
type OverrideListResponse struct {
	Overrides []OverrideResponse `json:"overrides"`
	Count     int                `json:"count"`
}

// ToOverrideResponse converts a domain Override to an HTTP response DTO.
func ToOverrideResponse(o *override.Override) OverrideResponse {
	resp := OverrideResponse{
		Section: o.Section,
		Name:    o.Name,
		Value:   o.Value,
	}
	if !o.UpdatedAt.IsZero() {
		resp.UpdatedAt = o.UpdatedAt.UTC().Format(time.RFC3339Nano)
	}
	return resp
}

// ToOverrideListResponse converts overrides to the dump response.
func ToOverrideListResponse(list []override.Override) OverrideListResponse {
	items := make([]OverrideResponse, len(list))
	for i := range list {
		items[i] = ToOverrideResponse(&list[i])
	}
	return OverrideListResponse{
		Overrides: items,
		Count:     len(items),
	}
}

// BulkSetResponse represents the result of a bulk set. It includes both
// applied overrides and per-item errors.
type BulkSetResponse struct {
	Applied   []OverrideResponse `json:"applied"`
	Errors    []BulkSetErrorItem `json:"errors"`
	Total     int                `json:"total"`
	Succeeded int                `json:"succeeded"`
	Failed    int                `json:"failed"`
}

// BulkSetErrorItem represents a single failed item within a bulk set.
type BulkSetErrorItem struct {
	Section string `json:"section"`
	Name    string `json:"name"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ToBulkSetResponse converts a ports.BulkSetResult to an HTTP response DTO.
func ToBulkSetResponse(result *ports.BulkSetResult) BulkSetResponse {
	applied := make([]OverrideResponse, len(result.Applied))
	for i := range result.Applied {
		applied[i] = ToOverrideResponse(&result.Applied[i])
	}

	errs := make([]BulkSetErrorItem, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = BulkSetErrorItem{
			Section: e.Section,
			Name:    e.Name,
			Status:  StatusFor(e.Err),
			Message: e.Err.Error(),
		}
	}

	return BulkSetResponse{
		Applied:   applied,
		Errors:    errs,
		Total:     len(applied) + len(errs),
		Succeeded: len(applied),
		Failed:    len(errs),
	}
}
