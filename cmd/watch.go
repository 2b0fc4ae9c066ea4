package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/styleforge/styleforge/internal/service"
	"github.com/styleforge/styleforge/internal/watch"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <style> [theme]",
	Short: "Regenerate outputs when style files change",
	Long: `Watch a style directory and regenerate its outputs whenever the
stylesheet template, a theme file, or an SVG resource template changes.

File events are debounced, so an editor save that touches several files
triggers a single regeneration. Stop with Ctrl-C.

Examples:
  styleforge watch material                     Watch with the default theme
  styleforge watch material dark_teal           Watch a specific theme
  styleforge watch material --debounce 500ms    Use a longer settle delay`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		themeName := ""
		if len(args) > 1 {
			themeName = args[1]
		}
		debounce, _ := cmd.Flags().GetDuration("debounce")
		runWatch(cmd.Context(), args[0], themeName, debounce)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Duration("debounce", watch.DefaultDebounce, "Delay before regenerating after a change")
}

// runWatch regenerates once, then keeps regenerating on file changes
// until interrupted
func runWatch(ctx context.Context, styleName, themeName string, debounce time.Duration) {
	services, ok := getServices()
	if !ok {
		return
	}

	st, err := services.Style.Load(styleName)
	if err != nil {
		printError(fmt.Sprintf("Failed to load style '%s'", styleName), err,
			"List available styles with 'styleforge styles'")
		deps.Exit(1)
		return
	}

	regenerate := func() {
		result, err := services.Generate.Generate(service.GenerateOptions{
			Style: styleName,
			Theme: themeName,
		})
		if err != nil {
			printError("Regeneration failed", err, "")
			return
		}
		printGenerateResult(result)
	}

	regenerate()

	dirs, err := watch.Dirs(st.Dir)
	if err != nil {
		printError("Failed to enumerate watch directories", err, "")
		deps.Exit(1)
		return
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_, _ = fmt.Fprintf(deps.Stdout, "Watching %s (Ctrl-C to stop)\n", st.Dir)
	err = watch.Run(ctx, dirs, debounce, func() {
		_, _ = fmt.Fprintln(deps.Stdout, "Change detected, regenerating...")
		regenerate()
	})
	if err != nil && ctx.Err() == nil {
		printError("Watcher stopped unexpectedly", err, "")
		deps.Exit(1)
	}
}
