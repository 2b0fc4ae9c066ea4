package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// stylesCmd represents the styles command
var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List available styles",
	Long: `List all styles found in the configured styles directory.

Each subdirectory of the styles directory is a style. A style needs a
single JSON definition file and a themes/ folder with at least one theme.

Examples:
  styleforge styles              List all styles
  styleforge styles --verbose    Include themes and template status`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		listStyles(verbose)
	},
}

func init() {
	rootCmd.AddCommand(stylesCmd)
	stylesCmd.Flags().BoolP("verbose", "v", false, "Show themes and template status per style")
}

// listStyles reads the styles directory and displays every style
func listStyles(verbose bool) {
	services, ok := getServices()
	if !ok {
		return
	}

	infos, err := services.Style.List()
	if err != nil {
		printError("Failed to read styles directory", err,
			fmt.Sprintf("Check that the directory exists and is readable: %s", services.Style.StylesDir()))
		deps.Exit(1)
		return
	}

	if len(infos) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No styles found in %s\n", services.Style.StylesDir())
		return
	}

	for _, info := range infos {
		if info.Problem != "" {
			_, _ = fmt.Fprintf(deps.Stdout, "%s  (broken)\n", info.Name)
			_, _ = fmt.Fprintf(deps.Stderr, "Warning: style %s: %s\n", info.Name, info.Problem)
			continue
		}

		if !verbose {
			_, _ = fmt.Fprintln(deps.Stdout, info.Name)
			continue
		}

		_, _ = fmt.Fprintf(deps.Stdout, "%s  %q\n", info.Name, info.Title)
		_, _ = fmt.Fprintf(deps.Stdout, "  themes:   %s\n", strings.Join(info.Themes, ", "))
		_, _ = fmt.Fprintf(deps.Stdout, "  default:  %s\n", info.DefaultTheme)
		if info.HasTemplate {
			_, _ = fmt.Fprintln(deps.Stdout, "  template: yes")
		} else {
			_, _ = fmt.Fprintln(deps.Stdout, "  template: no")
		}
	}
}
