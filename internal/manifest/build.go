package manifest

import (
	"errors"
	"fmt"

	"github.com/yacobolo/cssel"
)

// Built pairs a manifest entry with its constructed tree and rendered
// text.
type Built struct {
	Name     string
	Node     cssel.Node
	Rendered string
}

// BuildError describes one manifest entry that failed to build.
type BuildError struct {
	Selector string
	Line     int
	Column   int
	Err      error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("selector %q: %v", e.Selector, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// Build constructs every declared selector through the cssel facade, in
// declaration order. All entries are attempted, so a single invalid
// selector does not hide failures in the rest of the manifest; the
// returned slice holds the entries that built successfully.
func (f *File) Build() ([]Built, []*BuildError) {
	var built []Built
	var errs []*BuildError

	byName := make(map[string]cssel.Node)

	for _, def := range f.Selectors {
		if be := checkName(def.Name, def.Line, byName); be != nil {
			errs = append(errs, be)
			continue
		}

		node, be := buildSelector(def)
		if be != nil {
			errs = append(errs, be)
			continue
		}

		byName[def.Name] = node
		built = append(built, Built{Name: def.Name, Node: node, Rendered: node.Render()})
	}

	for _, def := range f.Combined {
		if be := checkName(def.Name, def.Line, byName); be != nil {
			errs = append(errs, be)
			continue
		}

		left, ok := byName[def.Left]
		if !ok {
			errs = append(errs, &BuildError{
				Selector: def.Name,
				Line:     def.Line,
				Err:      fmt.Errorf("left side references unknown selector %q", def.Left),
			})
			continue
		}
		right, ok := byName[def.Right]
		if !ok {
			errs = append(errs, &BuildError{
				Selector: def.Name,
				Line:     def.Line,
				Err:      fmt.Errorf("right side references unknown selector %q", def.Right),
			})
			continue
		}

		node := cssel.Combine(left, def.Combinator, right)
		byName[def.Name] = node
		built = append(built, Built{Name: def.Name, Node: node, Rendered: node.Render()})
	}

	return built, errs
}

// checkName rejects unnamed entries and redeclared names.
func checkName(name string, line int, byName map[string]cssel.Node) *BuildError {
	if name == "" {
		return &BuildError{Selector: "(unnamed)", Line: line, Err: errors.New("entry has no name")}
	}
	if _, exists := byName[name]; exists {
		return &BuildError{Selector: name, Line: line, Err: errors.New("name declared more than once")}
	}
	return nil
}

// buildSelector chains the declared fragments in author order.
func buildSelector(def SelectorDef) (*cssel.Selector, *BuildError) {
	if len(def.Fragments) == 0 {
		return nil, &BuildError{Selector: def.Name, Line: def.Line, Err: errors.New("selector has no fragments")}
	}

	first := def.Fragments[0]
	node := cssel.Start(first.Kind, first.Value)

	for _, frag := range def.Fragments[1:] {
		next, err := node.Append(frag.Kind, frag.Value)
		if err != nil {
			return nil, &BuildError{
				Selector: def.Name,
				Line:     frag.Line,
				Column:   frag.Column,
				Err:      err,
			}
		}
		node = next
	}

	return node, nil
}
