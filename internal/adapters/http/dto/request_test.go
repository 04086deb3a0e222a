package dto_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/clusterconf/internal/adapters/http/dto"
	"github.com/jsamuelsen11/clusterconf/internal/domain"
	"github.com/jsamuelsen11/clusterconf/internal/domain/override"
)

func stringPtr(s string) *string { return &s }

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestSetOverrideRequest_Validate(t *testing.T) {
	t.Parallel()

	if err := (&dto.SetOverrideRequest{Value: stringPtr("true")}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	if err := (&dto.SetOverrideRequest{Value: stringPtr("")}).Validate(); err != nil {
		t.Errorf("Validate() with explicit empty value = %v, want nil", err)
	}
	requireValidationField(t, (&dto.SetOverrideRequest{}).Validate(), "value")
}

func TestBulkSetRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.BulkSetRequest
		wantField string
	}{
		{
			name: "valid request passes",
			req: dto.BulkSetRequest{Items: []dto.BulkSetItem{
				{Section: "mon", Name: "mon_allow_pool_delete", Value: "true"},
			}},
		},
		{
			name:      "empty items",
			req:       dto.BulkSetRequest{},
			wantField: "items",
		},
		{
			name:      "too many items",
			req:       dto.BulkSetRequest{Items: make([]dto.BulkSetItem, dto.MaxBatchItems+1)},
			wantField: "items",
		},
		{
			name: "missing section",
			req: dto.BulkSetRequest{Items: []dto.BulkSetItem{
				{Section: "mon", Name: "mon_allow_pool_delete"},
				{Name: "osd_max_backfills", Value: "2"},
			}},
			wantField: "items[1].section",
		},
		{
			name: "blank name",
			req: dto.BulkSetRequest{Items: []dto.BulkSetItem{
				{Section: "osd", Name: "  ", Value: "2"},
			}},
			wantField: "items[0].name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestBulkSetRequest_ToSetRequests(t *testing.T) {
	t.Parallel()

	req := dto.BulkSetRequest{Items: []dto.BulkSetItem{
		{Section: "osd.1", Name: "osd_max_backfills", Value: "4"},
	}}
	got := req.ToSetRequests()
	if len(got) != 1 || got[0].Section != "osd.1" || got[0].Name != "osd_max_backfills" || got[0].Value != "4" {
		t.Errorf("ToSetRequests() = %+v", got)
	}
}

func TestApplyRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := dto.ApplyRequest{Changes: []dto.ChangeItem{
		{Op: "set", Section: "mon", Name: "mon_allow_pool_delete", Value: "true"},
		{Op: "rm", Section: "osd", Name: "osd_max_backfills"},
	}}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	requireValidationField(t, (&dto.ApplyRequest{}).Validate(), "changes")

	bad := dto.ApplyRequest{Changes: []dto.ChangeItem{
		{Op: "put", Section: "mon", Name: "mon_allow_pool_delete"},
	}}
	requireValidationField(t, bad.Validate(), "changes[0].op")

	changes := valid.ToChanges()
	if changes[1].Op != override.OpRemove || changes[0].Value != "true" {
		t.Errorf("ToChanges() = %+v", changes)
	}
}
