package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssel/internal/emit"
	"github.com/yacobolo/cssel/internal/manifest"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate Go constants from a selector manifest",
	Long: `Build every selector declared in the manifest and write a Go source
file with one constant per selector holding its rendered text.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("output-dir", "internal/ui", "Output directory for the generated file")
	f.String("file", emit.DefaultFileName, "Generated file name")
	f.Bool("check", false, "Run check after generation")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	manifestPath := getStringWithFallback("manifest", "manifest", "selectors.yaml")

	mf, err := manifest.Load(manifestPath)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	built, buildErrs := mf.Build()
	if len(buildErrs) > 0 {
		return fmt.Errorf("generation failed: manifest has %d invalid entr%s (run `cssel check` for details): first: %v",
			len(buildErrs), pluralSuffix(len(buildErrs)), buildErrs[0])
	}

	cfg := buildEmitConfig()
	path, err := emit.WriteFile(built, cfg)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		fmt.Printf("Generated %s\n", path)
		fmt.Printf("  Selectors: %d\n", len(built))
	}

	// Run check after generate if --check flag set
	runCheckAfter, _ := cmd.Flags().GetBool("check")
	if runCheckAfter {
		return runCheck()
	}

	return nil
}

func pluralSuffix(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
