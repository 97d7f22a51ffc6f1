package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	adocerror "github.com/msto63/adoc/foundation/core/error"
	"github.com/msto63/adoc/foundation/markup"
	adocast "github.com/msto63/adoc/foundation/markup/ast"
	"github.com/msto63/adoc/internal/dump"
	"github.com/msto63/adoc/internal/watch"
)

var (
	parseFormat string
	parseStats  bool
	parseWatch  bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file|-]",
	Short: "Parse a document and dump its tree",
	Long: `Parses a document and writes the resulting tree to stdout.

Without a file, or with "-", the document is read from stdin.

Formats:
  tree  - Indented tree, one node per line
  json  - Tagged JSON, every node carries a "type" key
  yaml  - Same structure as json
  pp    - Go value dump

Examples:
  adoc parse guide.adoc
  adoc parse --format json guide.adoc
  adoc sample | adoc parse --stats
  adoc parse --watch guide.adoc`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "", "Output format (tree, json, yaml, pp; default from config)")
	parseCmd.Flags().BoolVarP(&parseStats, "stats", "s", false, "Print document statistics to stderr")
	parseCmd.Flags().BoolVarP(&parseWatch, "watch", "w", false, "Parse again whenever the file changes")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(parseFormat)
	if err != nil {
		return err
	}

	engine, err := newEngine(logger)
	if err != nil {
		return err
	}

	path := "-"
	if len(args) > 0 {
		path = args[0]
	}

	if parseWatch {
		if path == "-" {
			return adocerror.New("--watch needs a file").
				WithCode(adocerror.CodeInvalidInput)
		}
		return watchDocument(cmd, engine, path, format)
	}

	doc, err := parseInput(cmd, engine, path)
	if err != nil {
		return err
	}
	return writeDocument(cmd, doc, format)
}

// outputFormat resolves the --format flag against the configured default
func outputFormat(name string) (dump.Format, error) {
	if name == "" {
		name = appConfig.Output.Format
	}
	format, err := dump.ParseFormat(name)
	if err != nil {
		return "", adocerror.Wrap(err, "invalid output format").
			WithCode(adocerror.CodeInvalidInput).
			WithDetail("format", name)
	}
	return format, nil
}

func parseInput(cmd *cobra.Command, engine *markup.Engine, path string) (*adocast.Document, error) {
	if path == "-" {
		return engine.ParseReader(cmd.InOrStdin())
	}
	return engine.ParseFile(path)
}

func writeDocument(cmd *cobra.Command, doc *adocast.Document, format dump.Format) error {
	out := cmd.OutOrStdout()
	if err := dump.Write(out, doc, format, colorEnabled(out)); err != nil {
		return adocerror.Wrap(err, "failed to write document").
			WithCode(adocerror.CodeIOError)
	}
	if parseStats {
		printStats(cmd.ErrOrStderr(), markup.CollectStats(doc))
	}
	return nil
}

func watchDocument(cmd *cobra.Command, engine *markup.Engine, path string, format dump.Format) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := watch.New(path, engine, func(doc *adocast.Document, err error) {
		if err != nil {
			printError(cmd.ErrOrStderr(), err)
			return
		}
		if err := writeDocument(cmd, doc, format); err != nil {
			printError(cmd.ErrOrStderr(), err)
		}
	}, watch.Options{
		Debounce: appConfig.Watch.Debounce.Duration,
		Logger:   logger,
	})
	if err != nil {
		return adocerror.Wrap(err, "failed to create watcher").
			WithCode(adocerror.CodeInvalidInput)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (Ctrl+C to stop)\n", w.Path())
	if err := w.Run(ctx); err != nil {
		return adocerror.Wrap(err, "watch failed").
			WithCode(adocerror.CodeIOError).
			WithDetail("file", path)
	}
	return nil
}

func printStats(w io.Writer, stats markup.Stats) {
	fmt.Fprintf(w, "Blocks:      %s\n", humanize.Comma(int64(stats.Blocks)))
	fmt.Fprintf(w, "Paragraphs:  %s\n", humanize.Comma(int64(stats.Paragraphs)))
	fmt.Fprintf(w, "Headings:    %s\n", humanize.Comma(int64(stats.Headings)))
	fmt.Fprintf(w, "Lists:       %s (%s items)\n",
		humanize.Comma(int64(stats.Lists)), humanize.Comma(int64(stats.ListItems)))
	fmt.Fprintf(w, "Inlines:     %s\n", humanize.Comma(int64(stats.Inlines)))
	fmt.Fprintf(w, "Max depth:   %d\n", stats.MaxDepth)

	kinds := make([]string, 0, len(stats.ByKind))
	for kind := range stats.ByKind {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Fprintf(w, "  %-16s %s\n", kind, humanize.Comma(int64(stats.ByKind[kind])))
	}
}
