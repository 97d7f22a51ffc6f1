package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	adocerror "github.com/msto63/adoc/foundation/core/error"
	adoclog "github.com/msto63/adoc/foundation/core/log"
	"github.com/msto63/adoc/foundation/markup"
	"github.com/msto63/adoc/pkg/core/config"
	"github.com/msto63/adoc/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool
	noColor bool

	appConfig *config.Config
	logger    *adoclog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "adoc",
	Short: "adoc - AsciiDoc-like markup toolkit",
	Long: `adoc parses documents written in a small AsciiDoc-like markup
into a typed document tree and shows that tree.

Commands:
  parse    - Parse a document and dump its tree
  attrs    - Parse a bracketed attribute list
  view     - Interactive tree viewer that follows file changes
  sample   - Print a sample document
  version  - Show version information`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and reports a failure on stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// ExitCode maps an error returned by Execute to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return adocerror.GetCode(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: $ADOC_CONFIG or ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// setup loads the configuration and creates the logger for every command
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if noColor || os.Getenv("NO_COLOR") != "" {
		cfg.Output.NoColor = true
	}
	appConfig = cfg

	level := cfg.General.LogLevel
	if verbose {
		level = "debug"
	}
	logger = logging.NewLogger(logging.LoggerConfig{
		ServiceName:   "adoc",
		Level:         level,
		Format:        cfg.General.LogFormat,
		Output:        cmd.ErrOrStderr(),
		DisableColors: !colorEnabled(cmd.ErrOrStderr()),
	})
	adoclog.SetDefault(logger)

	logger.Debug("Configuration loaded", adoclog.Fields{
		"format":          cfg.Output.Format,
		"maxInputLength":  cfg.Parser.MaxInputLength,
		"maxNestingDepth": cfg.Parser.MaxNestingDepth,
	})
	return nil
}

// loadConfig reads --config, $ADOC_CONFIG or a default location. Without
// any config file the built-in defaults apply.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	cfg, err := config.LoadFromEnv()
	if err != nil {
		if adocerror.HasCode(err, adocerror.CodeMissingConfig) && os.Getenv(config.EnvConfigPath) == "" {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// newEngine creates a markup engine from the loaded configuration
func newEngine(log *adoclog.Logger) (*markup.Engine, error) {
	return markup.NewEngine(markup.Options{
		Logger:          log,
		MaxInputLength:  appConfig.Parser.MaxInputLength,
		MaxNestingDepth: appConfig.Parser.MaxNestingDepth,
	})
}

// colorEnabled reports whether styled output should be written to w
func colorEnabled(w io.Writer) bool {
	if appConfig != nil && appConfig.Output.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func printError(w io.Writer, err error) {
	var adocErr *adocerror.Error
	if errors.As(err, &adocErr) {
		if file, ok := adocErr.Detail("file"); ok {
			fmt.Fprintf(w, "Error: %s: %v\n", file, err)
			return
		}
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
