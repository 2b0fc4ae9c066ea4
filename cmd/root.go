package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "styleforge",
	Short: "A stylesheet theming toolkit",
	Long: `styleforge generates themed stylesheets and resources from style
definitions.

A style is a directory containing a stylesheet template, theme files, and
SVG resource templates. Generation expands {{variable}} placeholders and
filter expressions in the template, recolors the SVG resources for every
resource state, and derives a widget palette, writing everything to the
output directory.

Usage:
  styleforge                                    Show configured styles
  styleforge styles                             List available styles
  styleforge themes <style>                     List themes of a style
  styleforge vars <style> [theme]               Show resolved variables
  styleforge generate <style> [theme]           Generate stylesheet and resources
  styleforge palette <style> [theme]            Show the derived palette
  styleforge validate <style>                   Check style health
  styleforge watch <style> [theme]              Regenerate on file changes
  styleforge browse                             Launch the interactive browser
  styleforge clean [style]                      Remove generated outputs`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if CheckTUIFlag(cmd) {
			return
		}
		showOverview()
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("tui", false, "Launch interactive style browser")
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"styleforge version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// printError writes the standard Error/Details/Hint triple to stderr.
func printError(msg string, err error, hint string) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", msg)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	}
	if hint != "" {
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: %s\n", hint)
	}
}

// showOverview summarizes the configured styles directory and defaults
func showOverview() {
	services, ok := getServices()
	if !ok {
		return
	}

	cfg := services.Config.Get()
	infos, err := services.Style.List()
	if err != nil {
		printError("Failed to read styles directory", err,
			fmt.Sprintf("Check that the directory exists and is readable: %s", services.Style.StylesDir()))
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Styles directory: %s\n", services.Style.StylesDir())
	_, _ = fmt.Fprintf(deps.Stdout, "Output directory: %s\n", services.Generate.OutputDir())
	if cfg.DefaultStyle != "" {
		theme := cfg.DefaultTheme
		if theme == "" {
			theme = "(style default)"
		}
		_, _ = fmt.Fprintf(deps.Stdout, "Default:          %s / %s\n", cfg.DefaultStyle, theme)
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))

	if len(infos) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No styles found")
		_, _ = fmt.Fprintln(deps.Stdout, "Hint: Point styles_dir in the config at a styles directory")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "%d style(s) available:\n", len(infos))
	for _, info := range infos {
		if info.Problem != "" {
			_, _ = fmt.Fprintf(deps.Stdout, "  %s  (broken: %s)\n", info.Name, info.Problem)
			continue
		}
		_, _ = fmt.Fprintf(deps.Stdout, "  %s  (%d themes, default %s)\n",
			info.Name, len(info.Themes), info.DefaultTheme)
	}
}
