package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for styleforge.

The completion command allows you to generate shell completion scripts for
bash, zsh, fish, and powershell. This enables tab-completion for commands,
flags, and arguments in your shell. Commands that take a style, such as
'generate' and 'themes', also complete style and theme names from your
styles directory.

Usage:
  styleforge completion bash       Generate bash completion script
  styleforge completion zsh        Generate zsh completion script
  styleforge completion fish       Generate fish completion script
  styleforge completion powershell Generate powershell completion script

Installation Instructions:

Bash:
  # Load completion temporarily (current session only):
  source <(styleforge completion bash)

  # Install completion permanently:
  # Linux:
  styleforge completion bash > ~/.local/share/bash-completion/completions/styleforge

  # macOS (requires bash-completion from Homebrew):
  styleforge completion bash > $(brew --prefix)/etc/bash_completion.d/styleforge

Zsh:
  # Load completion temporarily (current session only):
  source <(styleforge completion zsh)

  # Install completion permanently:
  # Add to ~/.zshrc:
  echo 'fpath=(~/.zsh/completion $fpath)' >> ~/.zshrc
  echo 'autoload -Uz compinit && compinit' >> ~/.zshrc

  # Generate completion file:
  mkdir -p ~/.zsh/completion
  styleforge completion zsh > ~/.zsh/completion/_styleforge

  # Then restart your shell

Fish:
  # Install completion permanently:
  styleforge completion fish > ~/.config/fish/completions/styleforge.fish

PowerShell:
  # Open your PowerShell profile:
  notepad $PROFILE

  # Add this line to your profile:
  styleforge completion powershell | Out-String | Invoke-Expression

  # Save and restart PowerShell`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		generateCompletion(args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)

	// Style-taking commands complete style names for the first argument
	// and, where applicable, theme names for the second
	for _, c := range []*cobra.Command{
		cleanCmd, generateCmd, paletteCmd, themesCmd,
		validateCmd, varsCmd, watchCmd,
	} {
		c.ValidArgsFunction = completeStyleThemeArgs
	}
}

// completeStyleThemeArgs provides shell completion for <style> [theme]
// arguments from the registry on disk
func completeStyleThemeArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	services, err := deps.Services()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	switch len(args) {
	case 0:
		infos, err := services.Style.List()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		var names []string
		for _, info := range infos {
			if info.Problem == "" {
				names = append(names, info.Name)
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	case 1:
		themes, err := services.Theme.List(args[0])
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		var names []string
		for _, info := range themes {
			names = append(names, info.Name)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

// generateCompletion generates the appropriate completion script based on shell type
func generateCompletion(shell string) {
	var err error

	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletion(deps.Stdout)
	case "zsh":
		err = rootCmd.GenZshCompletion(deps.Stdout)
	case "fish":
		err = rootCmd.GenFishCompletion(deps.Stdout, true)
	case "powershell":
		err = rootCmd.GenPowerShellCompletionWithDesc(deps.Stdout)
	default:
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Unsupported shell '%s'\n", shell)
		_, _ = fmt.Fprintln(deps.Stderr, "Supported shells: bash, zsh, fish, powershell")
		deps.Exit(1)
		return
	}

	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to generate %s completion: %v\n", shell, err)
		deps.Exit(1)
		return
	}
}
