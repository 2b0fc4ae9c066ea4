package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/styleforge/styleforge/internal/tui"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Launch the interactive style browser",
	Long: `Launch the interactive style browser.

The browser provides a terminal interface for exploring styles, themes,
resolved variables, and derived palettes, and for generating outputs.

Views available:
  - Styles: Browse styles and their themes, generate outputs
  - Variables: Inspect the resolved variable set for a style and theme
  - Palette: Inspect the derived widget palette
  - Config: View configuration and change the browser theme

Keyboard shortcuts:
  - Tab/Shift+Tab: Navigate between views
  - 1-4: Jump to specific view
  - j/k or arrows: Navigate within lists
  - ?: Show help
  - q: Quit`,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

// runTUI initializes and runs the style browser
func runTUI() {
	services, ok := getServices()
	if !ok {
		return
	}

	if err := tui.Run(services); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error running browser: %v\n", err)
		deps.Exit(1)
	}
}

// CheckTUIFlag checks if the --tui flag is set and runs the browser if so.
// Returns true if the browser was launched, false otherwise.
func CheckTUIFlag(cmd *cobra.Command) bool {
	tuiFlag, _ := cmd.Root().PersistentFlags().GetBool("tui")
	if tuiFlag {
		runTUI()
		return true
	}
	return false
}
