package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/reoring/jsonutil"
	"github.com/reoring/jsonutil/i18n"
	zaplog "github.com/reoring/jsonutil/log/zap"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	ConfigPath string
	NaiveTime  string // overrides the config file when set

	normalizer *jsonutil.Normalizer
}

// NewRootCommand creates the root command for the jsonutil CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "jsonutil",
		Short: "Normalize message payloads and timestamps",
		Long: `jsonutil converts JSON or YAML documents into normalized message payloads
and recovers timestamps in the YYYY-MM-DDTHH:MM:SS[.ffffff]Z wire form.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			n, err := opts.build(cmd.ErrOrStderr())
			if err != nil {
				return WrapExitError(ExitCommandError, "load configuration", err)
			}
			opts.normalizer = n
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&opts.NaiveTime, "naive-time", "", "report naive timestamps (ignore|warn|error)")

	cmd.AddCommand(NewNormalizeCommand(opts))
	cmd.AddCommand(NewExtractCommand(opts))
	cmd.AddCommand(NewParseTimeCommand(opts))
	cmd.AddCommand(NewFormatTimeCommand(opts))

	return cmd
}

// build loads the configuration and assembles the Normalizer shared by all
// subcommands. Diagnostics are logged to w through zap.
func (o *RootOptions) build(w io.Writer) (*jsonutil.Normalizer, error) {
	cfg := jsonutil.DefaultConfig()
	if o.ConfigPath != "" {
		f, err := os.Open(o.ConfigPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if cfg, err = jsonutil.LoadConfig(f); err != nil {
			return nil, err
		}
	}
	if o.NaiveTime != "" {
		sev, err := jsonutil.ParseSeverity(o.NaiveTime)
		if err != nil {
			return nil, err
		}
		cfg.NaiveTime = sev
	}
	i18n.SetLanguage(cfg.Language)

	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	opts = append(opts, jsonutil.WithLogger(zaplog.New(newLogger(w, o.Verbose))))
	return jsonutil.New(opts...), nil
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core)
}

// Execute runs the CLI and returns the process exit code.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "jsonutil: %v\n", err)
		return GetExitCode(err)
	}
	return ExitSuccess
}
