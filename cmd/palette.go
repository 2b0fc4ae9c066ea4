package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/styleforge/styleforge/internal/palette"
)

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette <style> [theme]",
	Short: "Show the palette derived for a style and theme",
	Long: `Show the widget palette derived from the style's palette spec and
the theme's color variables.

The palette spec maps color roles (Window, Text, Highlight, ...) per
group (active, disabled, inactive) to theme color variables; this command
prints every resolved color. Without a theme argument the style's
default theme is used.

Examples:
  styleforge palette material                   Palette of the default theme
  styleforge palette material dark_teal         Palette of a specific theme`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		themeName := ""
		if len(args) > 1 {
			themeName = args[1]
		}
		showPalette(args[0], themeName)
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)
}

// showPalette displays the derived palette per group and role
func showPalette(styleName, themeName string) {
	services, ok := getServices()
	if !ok {
		return
	}

	p, err := services.Generate.Palette(styleName, themeName, nil)
	if err != nil {
		printError(fmt.Sprintf("Failed to derive palette for style '%s'", styleName), err,
			"List styles and themes with 'styleforge styles' and 'styleforge themes'")
		deps.Exit(1)
		return
	}

	if p.IsZero() {
		_, _ = fmt.Fprintf(deps.Stdout, "Style %s defines no palette\n", styleName)
		return
	}

	if p.Base != "" {
		_, _ = fmt.Fprintf(deps.Stdout, "Base: %s %s\n", colorSwatch(p.Base), p.Base)
	}

	for _, group := range palette.Groups() {
		roles := p.Roles(group)
		if len(roles) == 0 {
			continue
		}
		_, _ = fmt.Fprintf(deps.Stdout, "%s:\n", group)
		_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 40))
		for _, role := range roles {
			color, _ := p.Color(group, role)
			_, _ = fmt.Fprintf(deps.Stdout, "  %-18s %s %s\n", role, colorSwatch(color), color)
		}
	}
}

// colorSwatch renders a two-cell background swatch for a hex color
func colorSwatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}
