package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <style>",
	Short: "Check style health",
	Long: `Validate a style and report on its health, including definition
problems, unparseable themes, undefined variables referenced by resource
states, and missing template or icon files.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		validateStyle(args[0])
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// validateStyle checks a style and reports its health status
func validateStyle(styleName string) {
	services, ok := getServices()
	if !ok {
		return
	}

	health, err := services.Style.Health(styleName)
	if err != nil {
		printError(fmt.Sprintf("Failed to validate style '%s'", styleName), err,
			"List available styles with 'styleforge styles'")
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Style: %s\n", health.Style)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Themes:    %d\n", health.ThemeCount)
	_, _ = fmt.Fprintf(deps.Stdout, "Resources: %d\n", health.ResourceCount)
	_, _ = fmt.Fprintf(deps.Stdout, "Fonts:     %d\n", health.FontCount)

	if len(health.Problems) > 0 {
		_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
		_, _ = fmt.Fprintln(deps.Stdout, "Problems:")
		for _, problem := range health.Problems {
			_, _ = fmt.Fprintf(deps.Stdout, "  - %s\n", problem)
		}
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	if health.Healthy() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: ✓ Style is healthy")
	} else {
		_, _ = fmt.Fprintf(deps.Stderr, "Status: ⚠ Style has %d problem(s)\n", len(health.Problems))
		deps.Exit(1)
	}
}
