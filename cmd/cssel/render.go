package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssel/internal/check"
	"github.com/yacobolo/cssel/internal/manifest"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render every manifest selector to stdout",
	Long: `Build the manifest and print each selector's name and rendered text,
one per line, in declaration order.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		manifestPath := getStringWithFallback("manifest", "manifest", "selectors.yaml")

		mf, err := manifest.Load(manifestPath)
		if err != nil {
			return fmt.Errorf("render failed: %w", err)
		}

		built, buildErrs := mf.Build()
		useColors := getBoolWithFallback("color", "color", false)

		for _, entry := range built {
			name := check.RenderStyle(check.StyleCyan, entry.Name, useColors)
			fmt.Printf("%s\t%s\n", name, entry.Rendered)
		}

		if len(buildErrs) > 0 {
			for _, be := range buildErrs {
				fmt.Fprintf(os.Stderr, "Error: %v\n", be)
			}
			os.Exit(1)
		}
		return nil
	},
}
