package dto_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/jsamuelsen11/clusterconf/internal/adapters/http/dto"
	"github.com/jsamuelsen11/clusterconf/internal/domain"
	"github.com/jsamuelsen11/clusterconf/internal/domain/option"
	"github.com/jsamuelsen11/clusterconf/internal/domain/override"
	"github.com/jsamuelsen11/clusterconf/internal/ports"
)

var testTime = time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)

// requiredKeys are present on every option record.
var requiredKeys = []string{
	"name", "type", "level", "desc", "long_desc", "default", "daemon_default",
	"tags", "services", "see_also", "min", "max",
}

func marshalToMap(t *testing.T, v any) map[string]any {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	return m
}

func TestToOptionResponse_PlainOption(t *testing.T) {
	t.Parallel()

	m := marshalToMap(t, dto.ToOptionResponse(&option.Option{
		Name:    "osd_max_backfills",
		Type:    option.TypeUint,
		Level:   option.LevelAdvanced,
		Desc:    "Maximum number of concurrent local and remote backfills",
		Default: 1,
	}))

	for _, key := range requiredKeys {
		if _, ok := m[key]; !ok {
			t.Errorf("JSON missing key %q, got keys: %v", key, keys(m))
		}
	}
	for _, key := range []string{"enum_values", "value", "source"} {
		if _, ok := m[key]; ok {
			t.Errorf("JSON has key %q for plain option", key)
		}
	}

	if m["min"] != "" || m["max"] != "" || m["daemon_default"] != "" {
		t.Errorf("unset scalars = min %v max %v daemon_default %v, want \"\"", m["min"], m["max"], m["daemon_default"])
	}
	if m["default"] != float64(1) {
		t.Errorf("default = %v, want 1", m["default"])
	}
	for _, key := range []string{"tags", "services", "see_also"} {
		arr, ok := m[key].([]any)
		if !ok || len(arr) != 0 {
			t.Errorf("%s = %#v, want []", key, m[key])
		}
	}
}

func TestToOptionResponse_EnumAndOverridden(t *testing.T) {
	t.Parallel()

	m := marshalToMap(t, dto.ToOptionResponse(&option.Option{
		Name:       "ms_type",
		Type:       option.TypeStr,
		Level:      option.LevelAdvanced,
		Default:    "async+posix",
		EnumValues: []string{"async+posix", "async+rdma"},
		Values:     []option.Value{{Section: "global", Value: "async+rdma"}},
		Source:     "mon",
	}))

	enum, ok := m["enum_values"].([]any)
	if !ok || len(enum) != 2 {
		t.Errorf("enum_values = %#v, want 2 entries", m["enum_values"])
	}
	if m["source"] != "mon" {
		t.Errorf("source = %v, want mon", m["source"])
	}

	values, ok := m["value"].([]any)
	if !ok || len(values) != 1 {
		t.Fatalf("value = %#v, want one entry", m["value"])
	}
	entry, ok := values[0].(map[string]any)
	if !ok || len(entry) != 2 || entry["section"] != "global" || entry["value"] != "async+rdma" {
		t.Errorf("value[0] = %#v, want exactly section and value", values[0])
	}
}

func TestToOptionListResponse_EmptyIsArray(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(dto.ToOptionListResponse(nil))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("ToOptionListResponse(nil) = %s, want []", data)
	}
}

func TestToOverrideListResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToOverrideListResponse([]override.Override{
		{Name: "mon_allow_pool_delete", Section: "mon", Value: "true", UpdatedAt: testTime},
		{Name: "osd_max_backfills", Section: "osd", Value: "2"},
	})

	if got.Count != 2 {
		t.Errorf("Count = %d, want 2", got.Count)
	}
	if got.Overrides[0].UpdatedAt != "2026-01-15T10:30:00Z" {
		t.Errorf("UpdatedAt = %q", got.Overrides[0].UpdatedAt)
	}
	if got.Overrides[1].UpdatedAt != "" {
		t.Errorf("zero UpdatedAt = %q, want empty", got.Overrides[1].UpdatedAt)
	}
}

func TestToBulkSetResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToBulkSetResponse(&ports.BulkSetResult{
		Applied: []override.Override{{Name: "mon_allow_pool_delete", Section: "mon", Value: "true"}},
		Errors: []ports.BulkSetError{
			{Section: "global", Name: "fantasy_name", Err: fmt.Errorf("option: %w", domain.ErrNotFound)},
			{Section: "osd", Name: "osd_max_backfills", Err: errors.New("boom")},
		},
	})

	if got.Total != 3 || got.Succeeded != 1 || got.Failed != 2 {
		t.Errorf("counts = %d/%d/%d, want 3/1/2", got.Total, got.Succeeded, got.Failed)
	}
	if got.Errors[0].Status != http.StatusNotFound {
		t.Errorf("Errors[0].Status = %d, want 404", got.Errors[0].Status)
	}
	if got.Errors[1].Status != http.StatusInternalServerError {
		t.Errorf("Errors[1].Status = %d, want 500", got.Errors[1].Status)
	}
}

func keys(m map[string]any) []string {
	result := make([]string, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	return result
}
