// Package stylesheet scans authored CSS files and indexes the class
// names and ids they define. The check command uses the index to flag
// manifest selectors that reference nothing in the project's styles.
package stylesheet

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Index records the class names and ids defined across the scanned
// stylesheets.
type Index struct {
	Classes      map[string]bool
	IDs          map[string]bool
	FilesScanned int
}

// HasClass reports whether any scanned stylesheet defines the class.
func (ix *Index) HasClass(name string) bool { return ix.Classes[name] }

// HasID reports whether any scanned stylesheet defines the id.
func (ix *Index) HasID(name string) bool { return ix.IDs[name] }

var (
	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once (thread-safe).
// Gracefully degrades if .gitignore doesn't exist.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile excludes gitignored files. Only relative paths are
// checked; absolute paths (fixtures under /tmp and the like) are not
// subject to the project gitignore.
func shouldSkipFile(path string) bool {
	if filepath.IsAbs(path) {
		return false
	}
	gi := loadGitIgnore()
	return gi != nil && gi.MatchesPath(path)
}

// Scan globs the given patterns (doublestar ** syntax) under dir and
// indexes every class and id selector found in the matched files.
func Scan(dir string, patterns []string) (*Index, error) {
	ix := &Index{
		Classes: make(map[string]bool),
		IDs:     make(map[string]bool),
	}

	seen := make(map[string]bool)
	for _, pattern := range patterns {
		full := pattern
		if dir != "" {
			full = filepath.Join(dir, pattern)
		}

		matches, err := doublestar.FilepathGlob(full)
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() || shouldSkipFile(match) {
				continue
			}

			// #nosec G304 - path comes from trusted configuration
			content, err := os.ReadFile(match)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", match, err)
			}

			indexContent(ix, string(content))
			ix.FilesScanned++
		}
	}

	return ix, nil
}

// indexContent tokenizes one stylesheet and records its class and id
// selectors.
func indexContent(ix *Index, content string) {
	lexer := css.NewLexer(parse.NewInputString(content))

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal - just break
			break
		}

		switch tt {
		case css.DelimToken:
			if len(text) > 0 && text[0] == '.' {
				tt2, name := lexer.Next()
				if tt2 == css.IdentToken {
					ix.Classes[string(name)] = true
				}
			}
		case css.HashToken:
			name := strings.TrimPrefix(string(text), "#")
			// hex color values produce hash tokens too
			if !isHexColor(name) {
				ix.IDs[name] = true
			}
		}
	}
}

func isHexColor(s string) bool {
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
