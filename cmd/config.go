package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for styleforge.

Shows the configuration file location, whether it exists, and all current
settings. Configuration values are merged from the config file with
sensible defaults.

By default, styleforge works without any configuration file:
  - styles_dir: styles (relative to the working directory)
  - output_dir: (user cache directory)
  - default_style / default_theme: unset

Examples:
  styleforge config              Show all current settings
  styleforge config init         Create a commented sample config file

Configuration file location:
  ~/.config/styleforge/config.toml    Linux/macOS
  %APPDATA%\styleforge\config.toml    Windows`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show all current settings",
	Long:  `Display the current effective configuration settings.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config file",
	Long:  `Create a commented sample configuration file at the default location.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initConfig()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

// showConfig displays the current effective configuration
func showConfig() {
	services, ok := getServices()
	if !ok {
		return
	}

	cfg := services.Config.Get()
	configPath := services.Config.GetPath()
	fileExists := services.Config.Exists()

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for styleforge")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintf(deps.Stdout, "Config file:     %s\n", configPath)
	if fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          No config file (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintln(deps.Stdout, "Current Settings:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Styles Dir:      %s\n", cfg.StylesDir)
	if cfg.OutputDir == "" {
		_, _ = fmt.Fprintln(deps.Stdout, "Output Dir:      (user cache directory)")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Output Dir:      %s\n", cfg.OutputDir)
	}
	if cfg.DefaultStyle == "" {
		_, _ = fmt.Fprintln(deps.Stdout, "Default Style:   (unset)")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Default Style:   %s\n", cfg.DefaultStyle)
	}
	if cfg.DefaultTheme == "" {
		_, _ = fmt.Fprintln(deps.Stdout, "Default Theme:   (style default)")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Default Theme:   %s\n", cfg.DefaultTheme)
	}
	if cfg.TUITheme == "" {
		_, _ = fmt.Fprintln(deps.Stdout, "TUI Theme:       (default)")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "TUI Theme:       %s\n", cfg.TUITheme)
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	if !fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Tip: Run 'styleforge config init' to create a sample config file.")
		_, _ = fmt.Fprintln(deps.Stdout)
	}
}

// initConfig creates a sample configuration file
func initConfig() {
	services, ok := getServices()
	if !ok {
		return
	}

	if err := services.Config.Init(); err != nil {
		printError("Failed to create config file", err, "")
		deps.Exit(1)
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Created %s\n", services.Config.GetPath())
}
