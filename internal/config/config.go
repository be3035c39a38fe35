package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the layout file `unpack init` writes and `unpack` picks up
// from the base directory when --layout is not given.
const DefaultFile = ".unpack.yaml"

// Role maps namespaces containing Match to a base directory. Sub-roles are
// tried in order once the parent matched.
type Role struct {
	Match string `yaml:"match"`
	Dir   string `yaml:"dir"`
	Roles []Role `yaml:"roles,omitempty"`
}

// Layout drives path inference for auto-detected source files.
// An empty WrapperAttribute disables the wrapper override.
type Layout struct {
	Root             string `yaml:"root"`
	Extension        string `yaml:"extension"`
	WrapperAttribute string `yaml:"wrapper-attribute"`
	GeneratorSuffix  string `yaml:"generator-suffix"`
	Roles            []Role `yaml:"roles"`
}

// Options holds the per-run settings parsed by the CLI.
type Options struct {
	BaseDir string
	Force   bool
	Debug   bool
	DryRun  bool
	Include []string
	Exclude []string
}

// Default returns the built-in layout for HierarchicalMvvm artifacts.
func Default() *Layout {
	return &Layout{
		Root:             "src",
		Extension:        "cs",
		WrapperAttribute: "ModelWrapperAttribute",
		GeneratorSuffix:  "Generator",
		Roles: []Role{
			{Match: "Attributes", Dir: "src/HierarchicalMvvm.Attributes"},
			{Match: "Generator", Dir: "src/HierarchicalMvvm.Generator"},
			{Match: "Core", Dir: "src/HierarchicalMvvm.Core"},
			{Match: "Demo", Dir: "src/HierarchicalMvvm.Demo", Roles: []Role{
				{Match: "ViewModels", Dir: "src/HierarchicalMvvm.Demo/ViewModels"},
				{Match: "Models", Dir: "src/HierarchicalMvvm.Demo/Models"},
			}},
		},
	}
}

// Load reads a YAML layout file and returns a validated Layout.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := Validate(&l); err != nil {
		return nil, err
	}
	return &l, nil
}

// Marshal renders the layout as YAML.
func (l *Layout) Marshal() ([]byte, error) {
	return yaml.Marshal(l)
}
