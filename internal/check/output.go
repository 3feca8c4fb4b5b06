package check

import (
	"io"
	"os"
)

// OutputFormat selects how check results are written.
type OutputFormat string

const (
	// OutputIssues shows errors/warnings in golangci-lint format.
	OutputIssues OutputFormat = "issues"
	// OutputJSON exports structured data for tooling integration.
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat selects the output format from the flag value.
// Invalid or empty values fall back to the issues format, mirroring
// golangci-lint's clean default.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	if quiet {
		return OutputIssues // suppressed by the caller anyway
	}

	switch formatFlag {
	case "json":
		return OutputJSON
	default:
		return OutputIssues
	}
}

// WriteOutput writes the check result in the specified format.
func WriteOutput(w io.Writer, result *Result, format OutputFormat, cfg Config) {
	switch format {
	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}
	default:
		reporter := NewReporter(w, cfg)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result)
	}
}
