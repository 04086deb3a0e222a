package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/clusterconf/internal/domain"
	"github.com/jsamuelsen11/clusterconf/internal/domain/override"
	"github.com/jsamuelsen11/clusterconf/internal/ports"
)

const (
	msgRequired = domain.MsgRequired
	msgEmpty    = "must not be empty"

	// MaxBatchItems caps bulk and apply request sizes.
	MaxBatchItems = 100
)

// SetOverrideRequest is the JSON body for PUT /api/admin/config/{section}/{name}.
// Value is a pointer so an explicit "" is distinguishable from a missing field.
type SetOverrideRequest struct {
	Value *string `json:"value"`
}

// Validate checks that the value is present.
func (r *SetOverrideRequest) Validate() error {
	if r.Value == nil {
		return domain.NewValidationError("value", msgRequired)
	}
	return nil
}

// BulkSetItem is one entry of a BulkSetRequest.
type BulkSetItem struct {
	Section string `json:"section"`
	Name    string `json:"name"`
	Value   string `json:"value"`
}

// BulkSetRequest is the JSON body for POST /api/admin/config/bulk.
type BulkSetRequest struct {
	Items []BulkSetItem `json:"items"`
}

// Validate checks batch size and that every item names a section and option.
func (r *BulkSetRequest) Validate() error {
	fields := make(map[string]string)

	switch {
	case len(r.Items) == 0:
		fields["items"] = msgEmpty
	case len(r.Items) > MaxBatchItems:
		fields["items"] = fmt.Sprintf("must have at most %d entries, got %d", MaxBatchItems, len(r.Items))
	}
	for i, it := range r.Items {
		if strings.TrimSpace(it.Section) == "" {
			fields[fmt.Sprintf("items[%d].section", i)] = msgRequired
		}
		if strings.TrimSpace(it.Name) == "" {
			fields[fmt.Sprintf("items[%d].name", i)] = msgRequired
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToSetRequests maps the body to service requests.
func (r *BulkSetRequest) ToSetRequests() []ports.SetRequest {
	out := make([]ports.SetRequest, len(r.Items))
	for i, it := range r.Items {
		out[i] = ports.SetRequest{Section: it.Section, Name: it.Name, Value: it.Value}
	}
	return out
}

// ChangeItem is one entry of an ApplyRequest.
type ChangeItem struct {
	Op      string `json:"op"`
	Section string `json:"section"`
	Name    string `json:"name"`
	Value   string `json:"value,omitempty"`
}

// ApplyRequest is the JSON body for POST /api/admin/config/apply.
type ApplyRequest struct {
	Changes []ChangeItem `json:"changes"`
}

// Validate checks batch size, ops, and required identifiers.
func (r *ApplyRequest) Validate() error {
	fields := make(map[string]string)

	switch {
	case len(r.Changes) == 0:
		fields["changes"] = msgEmpty
	case len(r.Changes) > MaxBatchItems:
		fields["changes"] = fmt.Sprintf("must have at most %d entries, got %d", MaxBatchItems, len(r.Changes))
	}
	for i, c := range r.Changes {
		if !override.Op(c.Op).IsValid() {
			fields[fmt.Sprintf("changes[%d].op", i)] = fmt.Sprintf("must be %s or %s, got %q", override.OpSet, override.OpRemove, c.Op)
		}
		if strings.TrimSpace(c.Section) == "" {
			fields[fmt.Sprintf("changes[%d].section", i)] = msgRequired
		}
		if strings.TrimSpace(c.Name) == "" {
			fields[fmt.Sprintf("changes[%d].name", i)] = msgRequired
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToChanges maps the body to domain changes.
func (r *ApplyRequest) ToChanges() []override.Change {
	out := make([]override.Change, len(r.Changes))
	for i, c := range r.Changes {
		out[i] = override.Change{Op: override.Op(c.Op), Section: c.Section, Name: c.Name, Value: c.Value}
	}
	return out
}
