package check

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput is the structured export schema for check results.
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary contains high-level counts.
type JSONSummary struct {
	SelectorsChecked int `json:"selectors_checked"`
	SelectorsBuilt   int `json:"selectors_built"`
	FilesScanned     int `json:"files_scanned"`
	TotalIssues      int `json:"total_issues"`
	Errors           int `json:"errors"`
	Warnings         int `json:"warnings"`
}

// JSONIssue is a single issue in export form.
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"`
}

// WriteJSON writes the check result as indented JSON.
func WriteJSON(w io.Writer, result *Result) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts a Result to its export schema.
func buildJSONOutput(result *Result) JSONOutput {
	output := JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Summary: JSONSummary{
			SelectorsChecked: result.SelectorsChecked,
			SelectorsBuilt:   result.SelectorsBuilt,
			FilesScanned:     result.FilesScanned,
			TotalIssues:      len(result.Issues),
			Errors:           result.ErrorCount,
			Warnings:         result.WarningCount,
		},
		Issues: make([]JSONIssue, 0, len(result.Issues)),
	}

	for _, issue := range result.Issues {
		ji := JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
		}
		if len(issue.SourceLines) > 0 {
			ji.Source = issue.SourceLines[0]
		}
		output.Issues = append(output.Issues, ji)
	}

	return output
}
