package emit

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssel/internal/manifest"
)

func TestWrite(t *testing.T) {
	entries := []manifest.Built{
		{Name: "primary-button", Rendered: "button.btn.btn--primary:hover"},
		{Name: "png-link", Rendered: `a[href$=".png"]:focus`},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, entries, "ui"))
	out := buf.String()

	assert.Contains(t, out, "// Code generated by cssel. DO NOT EDIT.\n")
	assert.Contains(t, out, "package ui\n")
	assert.Contains(t, out, "\t// primary-button\n\tPrimaryButton = \"button.btn.btn--primary:hover\"\n")
	assert.Contains(t, out, "\tPngLink = \"a[href$=\\\".png\\\"]:focus\"\n")
}

func TestWriteEmptyManifest(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, "ui"))

	assert.Contains(t, buf.String(), "package ui\n")
	assert.NotContains(t, buf.String(), "const (")
}

func TestWriteDefaultPackageName(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, ""))
	assert.Contains(t, buf.String(), "package selectors\n")
}

func TestResolveGoNamesCollisions(t *testing.T) {
	entries := []manifest.Built{
		{Name: "nav-item"},
		{Name: "nav_item"},
		{Name: "nav.item"},
	}

	names := resolveGoNames(entries)
	assert.Equal(t, []string{"NavItem", "NavItem2", "NavItem3"}, names)
}

func TestToGoName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"btn", "Btn"},
		{"btn--primary", "BtnPrimary"},
		{"card__header", "CardHeader"},
		{"nav item", "NavItem"},
		{"", "Selector"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, toGoName(tt.input))
		})
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	entries := []manifest.Built{
		{Name: "badge", Rendered: "span.badge"},
	}

	path, err := WriteFile(entries, Config{
		PackageName: "ui",
		OutputDir:   filepath.Join(dir, "gen", "ui"),
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "gen", "ui", DefaultFileName), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Badge = \"span.badge\"")
}
