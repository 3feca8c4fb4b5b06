package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssel.yaml config file",
	Long:  `Create a .cssel.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".cssel.yaml"); err == nil && !force {
			return fmt.Errorf(".cssel.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".cssel.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .cssel.yaml")
		return nil
	},
}

const defaultConfig = `# cssel configuration
# Docs: https://github.com/yacobolo/cssel

# Shared settings
manifest: selectors.yaml
package: ui
verbose: false

# Check settings
check:
  styles-dir: web/styles
  include:
    - "**/*.css"
  strict: false
  output-format: issues    # issues | json
  print-lines: true
  print-linter-name: true

# Generation settings
generate:
  output-dir: internal/ui
  file: selectors.gen.go
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
