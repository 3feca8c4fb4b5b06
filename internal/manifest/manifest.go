// Package manifest loads YAML selector manifests and builds them
// through the cssel facade.
//
// A manifest declares compound selectors as ordered fragment lists and
// combined selectors as references to earlier entries:
//
//	selectors:
//	  - name: primary-button
//	    fragments:
//	      - element: button
//	      - class: btn
//	      - class: btn--primary
//	combined:
//	  - name: menu-link
//	    left: site-nav
//	    combinator: ">"
//	    right: primary-button
//
// Fragment order is the author's order, so building a manifest
// exercises the library's duplicate and arrangement checks exactly as
// chained Go code would.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yacobolo/cssel"
)

// Fragment is one kind/value entry in a selector's fragment list.
// Source position is captured during decoding for diagnostics.
type Fragment struct {
	Kind   cssel.Kind
	Value  string
	Line   int
	Column int
}

// UnmarshalYAML decodes the `- kind: value` shorthand and records the
// key node's position.
func (f *Fragment) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("line %d: fragment must be a single `kind: value` pair", node.Line)
	}

	keyNode, valNode := node.Content[0], node.Content[1]
	kind, err := cssel.ParseKind(keyNode.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", keyNode.Line, err)
	}

	f.Kind = kind
	f.Value = valNode.Value
	f.Line = keyNode.Line
	f.Column = keyNode.Column
	return nil
}

// SelectorDef declares one compound selector.
type SelectorDef struct {
	Name      string     `yaml:"name"`
	Fragments []Fragment `yaml:"fragments"`
	Line      int        `yaml:"-"`
}

// UnmarshalYAML records the entry's position alongside the declared
// fields.
func (d *SelectorDef) UnmarshalYAML(node *yaml.Node) error {
	type plain SelectorDef
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*d = SelectorDef(p)
	d.Line = node.Line
	return nil
}

// CombinedDef joins two previously declared entries by name.
type CombinedDef struct {
	Name       string `yaml:"name"`
	Left       string `yaml:"left"`
	Combinator string `yaml:"combinator"`
	Right      string `yaml:"right"`
	Line       int    `yaml:"-"`
}

// UnmarshalYAML records the entry's position alongside the declared
// fields.
func (d *CombinedDef) UnmarshalYAML(node *yaml.Node) error {
	type plain CombinedDef
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*d = CombinedDef(p)
	d.Line = node.Line
	return nil
}

// File is one parsed manifest.
type File struct {
	Path      string        `yaml:"-"`
	Selectors []SelectorDef `yaml:"selectors"`
	Combined  []CombinedDef `yaml:"combined"`
}

// Load reads and parses the manifest at path.
func Load(path string) (*File, error) {
	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data, path)
}

// Parse parses manifest data. The path is recorded for diagnostics
// only.
func Parse(data []byte, path string) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	f.Path = path
	return &f, nil
}
