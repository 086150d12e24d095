package schema

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest is the root of a YAML generation manifest. It names the groups
// to generate; field sets come from struct discovery, with manifest
// entries acting as per-field metadata overrides.
type Manifest struct {
	// Version of the manifest schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Groups lists the configuration groups to generate.
	Groups []GroupDef `yaml:"groups"`
}

// GroupDef declares one configuration group.
type GroupDef struct {
	// Name is the group identifier. Defaults to Type.
	Name string `yaml:"name,omitempty"`

	// Package is the generated file's package name. Defaults to the
	// lowercased Type.
	Package string `yaml:"package,omitempty"`

	// Source is the Go package pattern holding the backing struct
	// (e.g. "./settings").
	Source string `yaml:"source"`

	// Type is the backing struct type name within Source.
	Type string `yaml:"type"`

	// Prefix overrides the storage key prefix (default "rc_").
	Prefix string `yaml:"prefix,omitempty"`

	// Fields overrides per-field metadata by member name. Discovery
	// decides inclusion; overrides adjust keys, flags and defaults.
	Fields []FieldDef `yaml:"fields,omitempty"`
}

// FieldDef overrides metadata of one discovered field.
type FieldDef struct {
	Name    string `yaml:"name"`
	Key     string `yaml:"key,omitempty"`
	Persist *bool  `yaml:"persist,omitempty"`
	Sync    *bool  `yaml:"sync,omitempty"`
	Default string `yaml:"default,omitempty"`
}

// LoadManifest loads and parses a YAML manifest from the given path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	return ParseManifest(data)
}

// ParseManifest parses YAML data into a Manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest

	err := yaml.Unmarshal(data, &m)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	applyDefaults(&m)

	return &m, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(m *Manifest) {
	if m.Version == "" {
		m.Version = "1"
	}

	for i := range m.Groups {
		g := &m.Groups[i]
		if g.Name == "" {
			g.Name = g.Type
		}

		if g.Package == "" {
			g.Package = strings.ToLower(g.Type)
		}
	}
}
