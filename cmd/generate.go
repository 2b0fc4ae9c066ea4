package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/styleforge/styleforge/internal/service"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <style> [theme]",
	Short: "Generate the stylesheet and themed resources",
	Long: `Generate all artifacts for a style and theme.

Generation expands the stylesheet template, recolors every SVG resource
template once per resource state, and writes the results plus a cache
manifest to the output directory. Artifacts whose content is unchanged
since the previous run are skipped unless --force is given.

Without a theme argument the style's default theme is used.

Examples:
  styleforge generate material                  Generate with the default theme
  styleforge generate material dark_teal        Generate a specific theme
  styleforge generate material --force          Rewrite everything
  styleforge generate material --output ./out   Generate into a custom directory
  styleforge generate material --var primaryColor=#ff0000`,
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
		force, _ := cmd.Flags().GetBool("force")
		output, _ := cmd.Flags().GetString("output")
		runGenerate(args[0], themeName, force, output, overrides)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().Bool("force", false, "Rewrite artifacts even when unchanged")
	generateCmd.Flags().StringP("output", "o", "", "Output directory (overrides config)")
	generateCmd.Flags().StringArray("var", nil, "Override a variable (name=value, repeatable)")
}

// runGenerate runs a full generation and reports the outcome
func runGenerate(styleName, themeName string, force bool, output string, overrides map[string]string) {
	services, ok := getServices()
	if !ok {
		return
	}

	gen := services.Generate
	if output != "" {
		gen = service.NewGenerateService(services.Style.StylesDir(), output, services.Config.Get())
	}

	result, err := gen.Generate(service.GenerateOptions{
		Style:     styleName,
		Theme:     themeName,
		Force:     force,
		Overrides: overrides,
	})
	if err != nil {
		printError(fmt.Sprintf("Failed to generate style '%s'", styleName), err,
			"Check the style with 'styleforge validate'")
		deps.Exit(1)
		return
	}

	printGenerateResult(result)
}

// printGenerateResult displays a generation summary and its warnings
func printGenerateResult(result *service.GenerateResult) {
	for _, warning := range result.Warnings {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: %s\n", warning)
	}

	variant := "light"
	if result.Dark {
		variant = "dark"
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Generated %s / %s (%s)\n", result.Style, result.Theme, variant)
	if result.Stylesheet != "" {
		_, _ = fmt.Fprintf(deps.Stdout, "Stylesheet: %s\n", result.Stylesheet)
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Output: %s (%d written, %d unchanged)\n",
		result.OutputDir, result.Written, result.Skipped)
}
