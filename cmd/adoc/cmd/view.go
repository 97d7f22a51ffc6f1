package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/adoc/internal/tui/viewer"
)

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Interactive document tree viewer",
	Long: `Shows the parsed tree of a document in a terminal UI and parses it
again whenever the file changes.

Keys:
  m           Switch between tree, json and yaml
  r           Parse again
  g / G       Jump to top / bottom
  Up/Down     Scroll
  PgUp/PgDn   Scroll by page
  q / Esc     Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	// log lines would corrupt the alternate screen
	quiet := logger.WithOutput(io.Discard)
	engine, err := newEngine(quiet)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return viewer.Run(ctx, viewer.Config{
		Path:     args[0],
		Parser:   engine,
		Color:    !appConfig.Output.NoColor,
		Debounce: appConfig.Watch.Debounce.Duration,
		Logger:   quiet,
	})
}
