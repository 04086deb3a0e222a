// Package override models explicit per-section option values held by the
// cluster's configuration store.
package override

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/clusterconf/internal/domain"
	"github.com/jsamuelsen11/clusterconf/internal/domain/option"
)

// Override is an explicit value for an option within one section. The pair
// (Section, Name) identifies it uniquely in the store.
type Override struct {
	Name      string
	Section   string
	Value     string
	UpdatedAt time.Time
}

// Key returns the store key "section/name".
func (o *Override) Key() string {
	return Key(o.Section, o.Name)
}

// Key builds the store key for a section and option name.
func Key(section, name string) string {
	return section + "/" + name
}

// SplitKey is the inverse of Key. ok is false when key has no separator.
func SplitKey(key string) (section, name string, ok bool) {
	return strings.Cut(key, "/")
}

// Validate checks that the override identifies an option and a section.
// Value semantics are checked against the option schema by the caller.
func (o *Override) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(o.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if strings.TrimSpace(o.Section) == "" {
		fields["section"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Sort orders overrides by option name, then by section.
func Sort(list []Override) {
	slices.SortFunc(list, func(a, b Override) int {
		return cmp.Or(
			strings.Compare(a.Name, b.Name),
			option.CompareSectionStrings(a.Section, b.Section),
		)
	})
}
