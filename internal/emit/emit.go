// Package emit writes Go source files of selector constants from a
// built manifest.
package emit

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/yacobolo/cssel/internal/manifest"
)

// Config holds generation configuration.
type Config struct {
	PackageName string // Go package name for the generated file
	OutputDir   string // directory the file is written into
	FileName    string // defaults to selectors.gen.go
}

// DefaultFileName is used when Config.FileName is empty.
const DefaultFileName = "selectors.gen.go"

// WriteFile renders the constants file into OutputDir and returns the
// written path.
func WriteFile(entries []manifest.Built, cfg Config) (string, error) {
	name := cfg.FileName
	if name == "" {
		name = DefaultFileName
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, entries, cfg.PackageName); err != nil {
		return "", err
	}

	path := filepath.Join(cfg.OutputDir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	return path, nil
}

// Write emits the generated source to w, one constant per manifest
// entry in declaration order.
func Write(w io.Writer, entries []manifest.Built, pkg string) error {
	if pkg == "" {
		pkg = "selectors"
	}

	if _, err := fmt.Fprintf(w, "// Code generated by cssel. DO NOT EDIT.\n\npackage %s\n", pkg); err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	names := resolveGoNames(entries)

	if _, err := fmt.Fprintf(w, "\nconst (\n"); err != nil {
		return err
	}
	for i, entry := range entries {
		if _, err := fmt.Fprintf(w, "\t// %s\n\t%s = %q\n", entry.Name, names[i], entry.Rendered); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, ")\n")
	return err
}

// resolveGoNames converts manifest names to Go identifiers and
// disambiguates collisions with numeric suffixes, first occurrence
// keeping the bare name.
func resolveGoNames(entries []manifest.Built) []string {
	names := make([]string, len(entries))
	counts := make(map[string]int)

	for i, entry := range entries {
		name := toGoName(entry.Name)
		counts[name]++
		if n := counts[name]; n > 1 {
			name = fmt.Sprintf("%s%d", name, n)
		}
		names[i] = name
	}

	return names
}

// toGoName converts kebab-case and BEM manifest names to PascalCase.
func toGoName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || r == ' '
	})

	for i, part := range parts {
		if len(part) > 0 {
			runes := []rune(part)
			runes[0] = unicode.ToUpper(runes[0])
			parts[i] = string(runes)
		}
	}

	result := strings.Join(parts, "")
	if result == "" {
		result = "Selector"
	}
	return result
}
