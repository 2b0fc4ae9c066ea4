package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// varsCmd represents the vars command
var varsCmd = &cobra.Command{
	Use:   "vars <style> [theme]",
	Short: "Show the resolved variable set for a style and theme",
	Long: `Show every template variable with its resolved value.

Theme colors overlay style variables; --var overrides overlay both.
Without a theme argument the style's default theme is used. Color values
are shown with a swatch when the terminal supports color.

Examples:
  styleforge vars material                      Variables of the default theme
  styleforge vars material dark_teal            Variables of a specific theme
  styleforge vars material --var primaryColor=#ff0000`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		themeName := ""
		if len(args) > 1 {
			themeName = args[1]
		}
		overrides, err := parseOverrides(cmd)
		if err != nil {
			printError("Invalid --var flag", err, "Use --var name=value")
			deps.Exit(1)
			return
		}
		showVariables(args[0], themeName, overrides)
	},
}

func init() {
	rootCmd.AddCommand(varsCmd)
	varsCmd.Flags().StringArray("var", nil, "Override a variable (name=value, repeatable)")
}

// parseOverrides parses repeated --var name=value flags into a map
func parseOverrides(cmd *cobra.Command) (map[string]string, error) {
	raw, _ := cmd.Flags().GetStringArray("var")
	if len(raw) == 0 {
		return nil, nil
	}

	overrides := make(map[string]string, len(raw))
	for _, pair := range raw {
		name, value, found := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, fmt.Errorf("malformed override %q", pair)
		}
		overrides[name] = strings.TrimSpace(value)
	}
	return overrides, nil
}

// showVariables displays the resolved variable set
func showVariables(styleName, themeName string, overrides map[string]string) {
	services, ok := getServices()
	if !ok {
		return
	}

	result, err := services.Theme.Variables(styleName, themeName, overrides)
	if err != nil {
		printError(fmt.Sprintf("Failed to resolve variables for style '%s'", styleName), err,
			"List styles and themes with 'styleforge styles' and 'styleforge themes'")
		deps.Exit(1)
		return
	}

	variant := "light"
	if result.Dark {
		variant = "dark"
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Variables for %s / %s (%s):\n", result.Style, result.Theme, variant)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))

	nameWidth := 0
	for _, v := range result.Variables {
		if len(v.Name) > nameWidth {
			nameWidth = len(v.Name)
		}
	}

	for _, v := range result.Variables {
		origin := ""
		switch {
		case v.Override:
			origin = "  (override)"
		case v.FromTheme:
			origin = "  (theme)"
		}

		swatch := ""
		if v.IsColor {
			swatch = lipgloss.NewStyle().
				Background(lipgloss.Color(v.Value)).
				Render("  ") + " "
		}
		_, _ = fmt.Fprintf(deps.Stdout, "%-*s  %s%s%s\n", nameWidth, v.Name, swatch, v.Value, origin)
	}
}
