package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// themesCmd represents the themes command
var themesCmd = &cobra.Command{
	Use:   "themes <style>",
	Short: "List themes of a style",
	Long: `List all themes available for a style.

The default theme is marked with an asterisk; dark themes are flagged.

Examples:
  styleforge themes material     List themes of the 'material' style`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		listThemes(args[0])
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

// listThemes displays every theme of the given style
func listThemes(styleName string) {
	services, ok := getServices()
	if !ok {
		return
	}

	infos, err := services.Theme.List(styleName)
	if err != nil {
		printError(fmt.Sprintf("Failed to load style '%s'", styleName), err,
			"List available styles with 'styleforge styles'")
		deps.Exit(1)
		return
	}

	if len(infos) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "Style %s has no themes\n", styleName)
		return
	}

	for _, info := range infos {
		marker := " "
		if info.Default {
			marker = "*"
		}
		variant := "light"
		if info.Dark {
			variant = "dark"
		}

		if info.Problem != "" {
			_, _ = fmt.Fprintf(deps.Stdout, "%s %s  (broken)\n", marker, info.Name)
			_, _ = fmt.Fprintf(deps.Stderr, "Warning: theme %s: %s\n", info.Name, info.Problem)
			continue
		}
		_, _ = fmt.Fprintf(deps.Stdout, "%s %-20s %-5s  %d colors\n", marker, info.Name, variant, info.Colors)
	}
}
