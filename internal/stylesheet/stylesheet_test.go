package stylesheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestScanIndexesClassesAndIDs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.css"), `
.btn { color: red; }
.btn--primary:hover { color: blue; }
#main { display: flex; }
div.card > #sidebar { width: 20rem; }
`)

	ix, err := Scan(dir, []string{"*.css"})
	require.NoError(t, err)

	assert.Equal(t, 1, ix.FilesScanned)
	assert.True(t, ix.HasClass("btn"))
	assert.True(t, ix.HasClass("btn--primary"))
	assert.True(t, ix.HasClass("card"))
	assert.True(t, ix.HasID("main"))
	assert.True(t, ix.HasID("sidebar"))
	assert.False(t, ix.HasClass("missing"))
	assert.False(t, ix.HasID("missing"))
}

func TestScanSkipsHexColors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "colors.css"), `
.panel { color: #fff; background: #1a2b3c; border-color: #AABBCCDD; }
#badge { color: red; }
`)

	ix, err := Scan(dir, []string{"*.css"})
	require.NoError(t, err)

	assert.True(t, ix.HasID("badge"))
	assert.False(t, ix.HasID("fff"))
	assert.False(t, ix.HasID("1a2b3c"))
	assert.False(t, ix.HasID("AABBCCDD"))
}

func TestScanDoublestarPatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "layers", "components", "button.css"), ".btn {}")
	writeFile(t, filepath.Join(dir, "layers", "utilities", "spacing.css"), ".m-0 {}")
	writeFile(t, filepath.Join(dir, "notes.txt"), ".not-css {}")

	ix, err := Scan(dir, []string{"**/*.css"})
	require.NoError(t, err)

	assert.Equal(t, 2, ix.FilesScanned)
	assert.True(t, ix.HasClass("btn"))
	assert.True(t, ix.HasClass("m-0"))
	assert.False(t, ix.HasClass("not-css"))
}

func TestScanDeduplicatesOverlappingPatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.css"), ".btn {}")

	ix, err := Scan(dir, []string{"*.css", "**/*.css"})
	require.NoError(t, err)
	assert.Equal(t, 1, ix.FilesScanned)
}

func TestScanMissingDirIsEmpty(t *testing.T) {
	ix, err := Scan(filepath.Join(t.TempDir(), "nope"), []string{"**/*.css"})
	require.NoError(t, err)
	assert.Equal(t, 0, ix.FilesScanned)
	assert.Empty(t, ix.Classes)
}

func TestIsHexColor(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"fff", true},
		{"FFF", true},
		{"1a2b3c", true},
		{"aabbccdd", true},
		{"main", false},
		{"badge", false},
		{"ff", false},
		{"cafe5", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, isHexColor(tt.input))
		})
	}
}
