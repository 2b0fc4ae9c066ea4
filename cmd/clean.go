package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// cleanCmd represents the clean command
var cleanCmd = &cobra.Command{
	Use:   "clean [style]",
	Short: "Remove generated outputs",
	Long: `Remove generated stylesheets, resources, and cache manifests.

With a style argument only that style's output directory is removed;
without one the outputs of every known style are removed. Asks for
confirmation unless --yes is given.

Examples:
  styleforge clean material      Remove outputs of the 'material' style
  styleforge clean --yes         Remove all outputs without asking`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		styleName := ""
		if len(args) > 0 {
			styleName = args[0]
		}
		yes, _ := cmd.Flags().GetBool("yes")
		cleanOutputs(styleName, yes)
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

// cleanOutputs removes generated output directories after confirmation
func cleanOutputs(styleName string, yes bool) {
	services, ok := getServices()
	if !ok {
		return
	}

	if !yes {
		target := "all generated outputs"
		if styleName != "" {
			target = fmt.Sprintf("the generated outputs of '%s'", styleName)
		}
		_, _ = fmt.Fprintf(deps.Stdout, "Remove %s under %s? [y/N] ",
			target, services.Generate.OutputDir())

		scanner := bufio.NewScanner(deps.Stdin)
		if !scanner.Scan() || !strings.EqualFold(strings.TrimSpace(scanner.Text()), "y") {
			_, _ = fmt.Fprintln(deps.Stdout, "Aborted")
			return
		}
	}

	removed, err := services.Generate.Clean(styleName)
	if err != nil {
		printError("Failed to remove generated outputs", err, "")
		deps.Exit(1)
		return
	}

	if len(removed) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "Nothing to remove")
		return
	}
	for _, dir := range removed {
		_, _ = fmt.Fprintf(deps.Stdout, "Removed %s\n", dir)
	}
}
