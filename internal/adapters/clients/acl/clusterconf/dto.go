// Package clusterconf implements the Anti-Corruption Layer translators for
// a remote cluster_conf API's option and override records.
package clusterconf

// OptionDTO matches one record of GET /api/cluster_conf. Unset scalars
// arrive as "" and are decoded into any so numbers keep their JSON kind.
type OptionDTO struct {
	Name          string     `json:"name"`
	Type          string     `json:"type"`
	Level         string     `json:"level"`
	Desc          string     `json:"desc"`
	LongDesc      string     `json:"long_desc"`
	Default       any        `json:"default"`
	DaemonDefault any        `json:"daemon_default"`
	Tags          []string   `json:"tags"`
	Services      []string   `json:"services"`
	SeeAlso       []string   `json:"see_also"`
	Min           any        `json:"min"`
	Max           any        `json:"max"`
	EnumValues    []string   `json:"enum_values,omitempty"`
	Value         []ValueDTO `json:"value,omitempty"`
	Source        string     `json:"source,omitempty"`
}

// ValueDTO is one per-section override inside an OptionDTO.
type ValueDTO struct {
	Section string `json:"section"`
	Value   string `json:"value"`
}

// OverrideDTO matches one stored override in admin responses.
type OverrideDTO struct {
	Section   string `json:"section"`
	Name      string `json:"name"`
	Value     string `json:"value"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// OverrideListResponseDTO matches GET /api/admin/config.
type OverrideListResponseDTO struct {
	Overrides []OverrideDTO `json:"overrides"`
	Count     int64         `json:"count"`
}

// SetOverrideRequestDTO matches the body of PUT /api/admin/config/{section}/{name}.
type SetOverrideRequestDTO struct {
	Value string `json:"value"`
}
