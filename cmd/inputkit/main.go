package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vango-dev/inputkit/internal/config"
	"github.com/vango-dev/inputkit/internal/errors"
	"github.com/vango-dev/inputkit/internal/logging"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	logLevel   string
	logPretty  bool
	noColor    bool

	logger zerolog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{logger: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "inputkit",
		Short: "Render HTML <input> elements with layered defaults",
		Long: `inputkit renders HTML <input> elements.

Attribute values are merged from global defaults, themes and the
attributes you pass, as configured in inputkit.yaml.

  • 22 input kinds, from hidden to image
  • Automatic ids and aria-describedby wiring
  • A live preview server with reload on config change`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.noColor {
				errors.DisableColors()
			}
			logger, err := logging.New(logging.Options{
				Level:  opts.logLevel,
				Pretty: opts.logPretty,
				Writer: cmd.ErrOrStderr(),
			})
			if err != nil {
				return errors.Newf(errors.CategoryCLI, "invalid --log-level %q", opts.logLevel).Wrap(err)
			}
			opts.logger = logger
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to inputkit.yaml (default: search upwards from the working directory)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	flags.BoolVar(&opts.logPretty, "log-pretty", false, "Human readable logs")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored error output")

	rootCmd.AddCommand(
		renderCmd(opts),
		kindsCmd(),
		initCmd(),
		previewCmd(opts),
		versionCmd(),
	)
	return rootCmd
}

// loadConfig loads --config, or the project config when the flag is empty.
// Without --config a missing project config yields the defaults.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	if o.configPath != "" {
		return config.LoadFile(o.configPath)
	}
	cfg, err := config.LoadFromWorkingDir()
	if errors.HasCode(err, errors.CodeConfigMissing) {
		o.logger.Debug().Msg("no inputkit.yaml found, using defaults")
		return config.New(), nil
	}
	return cfg, err
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
