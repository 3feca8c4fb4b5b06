package check

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	reporter := &Reporter{}

	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "      - element: button",
			column:     9,
			want:       "        ^", // 8 spaces + caret
		},
		{
			name:       "tabs preserved",
			sourceLine: "\t\t- id: other",
			column:     5,
			want:       "\t\t  ^",
		},
		{
			name:       "start of line",
			sourceLine: "selectors:",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^", // pads to line length only
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reporter.buildCaretIndicator(tt.sourceLine, tt.column)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPrintIssuesSortedWithSourceLines(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, Config{PrintIssuedLines: true, PrintLinterName: true})
	reporter.useColors = false

	issues := []Issue{
		{
			FromLinter:  "cssel",
			Text:        "second",
			Severity:    SeverityWarning,
			SourceLines: []string{"      - class: ghost"},
			Pos:         IssuePos{Filename: "selectors.yaml", Line: 12, Column: 9},
		},
		{
			FromLinter: "cssel",
			Text:       "first",
			Severity:   SeverityError,
			Pos:        IssuePos{Filename: "selectors.yaml", Line: 4, Column: 7},
		},
	}

	reporter.PrintIssues(issues)
	out := buf.String()

	assert.Contains(t, out, "selectors.yaml:4:7: first (cssel)\n")
	assert.Contains(t, out, "selectors.yaml:12:9: second (cssel)\n")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("first")), bytes.Index(buf.Bytes(), []byte("second")))
	assert.Contains(t, out, "\t      - class: ghost\n")
	assert.Contains(t, out, "\t        ^\n")
}

func TestPrintSummary(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   []string
	}{
		{
			name:   "no issues",
			result: Result{SelectorsChecked: 4},
			want:   []string{"No issues found", "4 selector(s) checked"},
		},
		{
			name: "mixed severities",
			result: Result{
				Issues:       make([]Issue, 3),
				ErrorCount:   1,
				WarningCount: 2,
			},
			want: []string{"3 issues (1 error, 2 warnings):", "* cssel: 3"},
		},
		{
			name: "single issue",
			result: Result{
				Issues:     make([]Issue, 1),
				ErrorCount: 1,
			},
			want: []string{"1 issue:", "* cssel: 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reporter := &Reporter{w: &buf}
			reporter.PrintSummary(&tt.result)
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestPrintLinterNameSuppressed(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf, printLinterName: false}

	reporter.PrintIssues([]Issue{{
		FromLinter: "cssel",
		Text:       "oops",
		Severity:   SeverityError,
		Pos:        IssuePos{Filename: "selectors.yaml", Line: 1, Column: 1},
	}})

	assert.Contains(t, buf.String(), "selectors.yaml:1:1: oops\n")
	assert.NotContains(t, buf.String(), "(cssel)")
}
