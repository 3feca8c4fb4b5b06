package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssel/internal/check"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a selector manifest and report issues",
	Long: `Build every selector declared in the manifest, reporting duplicate and
out-of-order fragments. With --include patterns, also cross-reference
class and id fragments against the classes and ids defined in the
scanned stylesheets.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runCheck()
	},
}

func init() {
	f := checkCmd.Flags()
	f.String("styles-dir", "", "Stylesheet directory to scan")
	f.StringSlice("include", nil, "Glob patterns for stylesheets to scan (relative to --styles-dir)")
	f.Bool("strict", false, "Exit 1 on any issue, warnings included (CI mode)")
	f.String("output-format", "", "Output format: issues|json")
	f.Bool("print-lines", true, "Show manifest lines with issues")
	f.Bool("print-linter-name", true, "Show (cssel) suffix on issues")
}

// runCheck is shared between `cssel check` and the bare `cssel`
// invocation.
func runCheck() error {
	cfg := buildCheckConfig()

	result, err := check.Run(cfg)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "check.output-format", "")
	format := check.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		check.WriteOutput(os.Stdout, result, format, cfg)
	}

	// Exit code logic - "Soft Gate" approach
	strict := getBoolWithFallback("strict", "check.strict", false)
	if strict {
		// Strict mode: any issue (error or warning) fails the build
		if len(result.Issues) > 0 {
			os.Exit(1)
		}
	} else if result.ErrorCount > 0 {
		// Default mode: only errors fail the build
		os.Exit(1)
	}

	return nil
}
