package option

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/clusterconf/internal/domain"
)

// SectionGlobal is the section that applies to every daemon.
const SectionGlobal = "global"

// daemonTypes lists the daemon types that may scope an override, in the
// order sections are presented.
var daemonTypes = []string{"mon", "mgr", "osd", "mds", "client"}

// Section is a configuration scope: global, a daemon type ("mon"), or a
// specific daemon instance ("osd.0", "client.rgw.a").
type Section struct {
	Type string
	ID   string
}

// ParseSection parses a section name. Returns a *domain.ValidationError for
// empty names, unknown daemon types, or malformed instance ids.
func ParseSection(raw string) (Section, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Section{}, domain.NewValidationError("section", domain.MsgRequired)
	}
	if raw == SectionGlobal {
		return Section{Type: SectionGlobal}, nil
	}

	typ, id, hasID := strings.Cut(raw, ".")
	if typeRank(typ) < 0 {
		return Section{}, domain.NewValidationError("section",
			fmt.Sprintf("unknown daemon type %q (want global, %s)", typ, strings.Join(daemonTypes, ", ")))
	}
	if hasID && !validID(id) {
		return Section{}, domain.NewValidationError("section", fmt.Sprintf("invalid instance id %q", id))
	}

	return Section{Type: typ, ID: id}, nil
}

// String returns the canonical section name.
func (s Section) String() string {
	if s.ID == "" {
		return s.Type
	}
	return s.Type + "." + s.ID
}

// IsGlobal reports whether the section applies to every daemon.
func (s Section) IsGlobal() bool {
	return s.Type == SectionGlobal
}

// Compare orders sections: global first, then by daemon type, then type-wide
// before instances, then instance ids (numerically when both are numeric).
func (s Section) Compare(other Section) int {
	if c := cmp.Compare(typeRank(s.Type), typeRank(other.Type)); c != 0 {
		return c
	}
	if s.ID == other.ID {
		return 0
	}
	if s.ID == "" {
		return -1
	}
	if other.ID == "" {
		return 1
	}

	a, aErr := strconv.Atoi(s.ID)
	b, bErr := strconv.Atoi(other.ID)
	if aErr == nil && bErr == nil {
		return cmp.Compare(a, b)
	}
	return strings.Compare(s.ID, other.ID)
}

// CompareSectionStrings compares two raw section names using Section.Compare.
// Names that fail to parse sort after valid ones, by raw string.
func CompareSectionStrings(a, b string) int {
	sa, aErr := ParseSection(a)
	sb, bErr := ParseSection(b)

	switch {
	case aErr == nil && bErr == nil:
		return sa.Compare(sb)
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

func typeRank(typ string) int {
	if typ == SectionGlobal {
		return 0
	}
	for i, t := range daemonTypes {
		if t == typ {
			return i + 1
		}
	}
	return -1
}

func validID(id string) bool {
	if id == "" || strings.HasPrefix(id, ".") || strings.HasSuffix(id, ".") {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_', r == '-', r == '.':
		default:
			return false
		}
	}
	return true
}
