// Package check validates selector manifests and reports issues in a
// golangci-lint style.
package check

import (
	"fmt"
	"os"
	"strings"

	"github.com/yacobolo/cssel"
	"github.com/yacobolo/cssel/internal/manifest"
	"github.com/yacobolo/cssel/internal/stylesheet"
)

// Issue represents a single violation in golangci-lint format.
type Issue struct {
	FromLinter  string   `json:"FromLinter"`
	Text        string   `json:"Text"`
	Severity    string   `json:"Severity"`
	SourceLines []string `json:"SourceLines"`
	Pos         IssuePos `json:"Pos"`
}

// IssuePos specifies the exact location of an issue.
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"`
}

// Issue severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

const linterName = "cssel"

// Config holds check configuration.
type Config struct {
	ManifestPath    string
	StylesheetDir   string   // scanned only when StylesheetGlobs is set
	StylesheetGlobs []string // doublestar patterns relative to StylesheetDir

	Verbose          bool
	PrintIssuedLines bool // show manifest lines with issues
	PrintLinterName  bool // show (cssel) suffix
	UseColors        bool
}

// Result contains check analysis results.
type Result struct {
	Issues []Issue

	SelectorsChecked int // entries declared in the manifest
	SelectorsBuilt   int // entries that built cleanly
	FilesScanned     int // stylesheets scanned

	ErrorCount   int
	WarningCount int
}

// Run loads the manifest, builds every declared selector and, when
// stylesheet patterns are configured, cross-references class and id
// fragments against the scanned stylesheets.
func Run(cfg Config) (*Result, error) {
	mf, err := manifest.Load(cfg.ManifestPath)
	if err != nil {
		return nil, err
	}

	built, buildErrs := mf.Build()

	result := &Result{
		SelectorsChecked: len(mf.Selectors) + len(mf.Combined),
		SelectorsBuilt:   len(built),
	}

	sourceLines := readSourceLines(cfg.ManifestPath)

	for _, be := range buildErrs {
		result.addIssue(Issue{
			FromLinter: linterName,
			Text:       fmt.Sprintf("selector %q: %v", be.Selector, be.Err),
			Severity:   SeverityError,
			Pos:        IssuePos{Filename: mf.Path, Line: be.Line, Column: be.Column},
		}, sourceLines)
	}

	if len(cfg.StylesheetGlobs) > 0 {
		ix, err := stylesheet.Scan(cfg.StylesheetDir, cfg.StylesheetGlobs)
		if err != nil {
			return nil, fmt.Errorf("scan stylesheets: %w", err)
		}
		result.FilesScanned = ix.FilesScanned

		if cfg.Verbose {
			fmt.Printf("Scanned %d stylesheet(s)\n", ix.FilesScanned)
		}

		crossReference(result, mf, ix, sourceLines)
	}

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}

	return result, nil
}

// crossReference flags class and id fragments that no scanned
// stylesheet defines.
func crossReference(result *Result, mf *manifest.File, ix *stylesheet.Index, sourceLines []string) {
	for _, def := range mf.Selectors {
		for _, frag := range def.Fragments {
			var text string
			switch frag.Kind {
			case cssel.KindClass:
				if !ix.HasClass(frag.Value) {
					text = fmt.Sprintf("selector %q: class %q not defined in any scanned stylesheet", def.Name, frag.Value)
				}
			case cssel.KindID:
				if !ix.HasID(frag.Value) {
					text = fmt.Sprintf("selector %q: id %q not defined in any scanned stylesheet", def.Name, frag.Value)
				}
			}
			if text == "" {
				continue
			}

			result.addIssue(Issue{
				FromLinter: linterName,
				Text:       text,
				Severity:   SeverityWarning,
				Pos:        IssuePos{Filename: mf.Path, Line: frag.Line, Column: frag.Column},
			}, sourceLines)
		}
	}
}

func (r *Result) addIssue(issue Issue, sourceLines []string) {
	if issue.Pos.Line > 0 && issue.Pos.Line <= len(sourceLines) {
		issue.SourceLines = []string{sourceLines[issue.Pos.Line-1]}
	}
	r.Issues = append(r.Issues, issue)
}

// readSourceLines returns the manifest's lines for issue context, or
// nil when the file cannot be re-read.
func readSourceLines(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
}
