// Package catalog loads the static option schema that the cluster_conf API
// serves. The schema is YAML; a default copy is embedded in the binary and
// may be replaced by a file at startup.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/clusterconf/internal/domain"
	"github.com/jsamuelsen11/clusterconf/internal/domain/option"
	"github.com/jsamuelsen11/clusterconf/internal/ports"
)

//go:embed schema.yaml
var embeddedSchema []byte

// Compile-time interface check.
var _ ports.Catalog = (*Catalog)(nil)

// Catalog is an immutable, name-ordered set of option schemas.
type Catalog struct {
	options []option.Option
	byName  map[string]int
}

type schemaFile struct {
	Options []schemaOption `yaml:"options"`
}

type schemaOption struct {
	Name          string   `yaml:"name"`
	Type          string   `yaml:"type"`
	Level         string   `yaml:"level"`
	Desc          string   `yaml:"desc"`
	LongDesc      string   `yaml:"long_desc"`
	Default       any      `yaml:"default"`
	DaemonDefault any      `yaml:"daemon_default"`
	Tags          []string `yaml:"tags"`
	Services      []string `yaml:"services"`
	SeeAlso       []string `yaml:"see_also"`
	Min           any      `yaml:"min"`
	Max           any      `yaml:"max"`
	EnumValues    []string `yaml:"enum_values"`
}

// Load returns the catalog at path, or the embedded catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(embeddedSchema)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML schema document. Unknown keys, duplicate names and
// options that fail option.Validate are rejected.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc schemaFile
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding schema: %w", err)
	}
	if len(doc.Options) == 0 {
		return nil, errors.New("schema declares no options")
	}

	c := &Catalog{
		options: make([]option.Option, 0, len(doc.Options)),
		byName:  make(map[string]int, len(doc.Options)),
	}

	seen := make(map[string]struct{}, len(doc.Options))
	for i, so := range doc.Options {
		opt := so.toOption()
		if err := opt.Validate(); err != nil {
			return nil, fmt.Errorf("option #%d %q: %w", i, opt.Name, err)
		}
		if _, dup := seen[opt.Name]; dup {
			return nil, fmt.Errorf("option %q declared twice: %w", opt.Name, domain.ErrConflict)
		}
		seen[opt.Name] = struct{}{}
		c.options = append(c.options, opt)
	}

	slices.SortFunc(c.options, func(a, b option.Option) int {
		return strings.Compare(a.Name, b.Name)
	})
	for i := range c.options {
		c.byName[c.options[i].Name] = i
	}

	return c, nil
}

// All returns every option in name order. The slice is a copy; the options'
// inner slices are shared and must not be modified.
func (c *Catalog) All() []option.Option {
	return slices.Clone(c.options)
}

// Lookup returns the option named name.
func (c *Catalog) Lookup(name string) (option.Option, bool) {
	i, ok := c.byName[name]
	if !ok {
		return option.Option{}, false
	}
	return c.options[i], true
}

// Len returns the number of options.
func (c *Catalog) Len() int {
	return len(c.options)
}

func (so schemaOption) toOption() option.Option {
	return option.Option{
		Name:          strings.TrimSpace(so.Name),
		Type:          option.Type(so.Type),
		Level:         option.Level(so.Level),
		Desc:          so.Desc,
		LongDesc:      so.LongDesc,
		Default:       so.Default,
		DaemonDefault: so.DaemonDefault,
		Tags:          so.Tags,
		Services:      so.Services,
		SeeAlso:       so.SeeAlso,
		Min:           so.Min,
		Max:           so.Max,
		EnumValues:    so.EnumValues,
	}
}
