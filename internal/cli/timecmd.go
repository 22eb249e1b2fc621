package cli

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"
)

// NewParseTimeCommand creates the parse-time command.
func NewParseTimeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse-time <timestamp>",
		Short: "Parse a timestamp and print its canonical UTC form and offset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tc := rootOpts.normalizer.TimeCodec()
			t, err := tc.Parse(args[0])
			if err != nil {
				return WrapExitError(ExitFailure, "parse-time", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", tc.Format(t), t.Format("-07:00"))
			return err
		},
	}
}

// NewFormatTimeCommand creates the format-time command.
func NewFormatTimeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "format-time <wall-clock>",
		Short: "Format a wall-clock time (no zone) in the canonical UTC form",
		Long: `Interpret YYYY-MM-DDTHH:MM:SS[.fffffffff] in the local zone (or the zone
from the configuration file) and print the canonical UTC form. Input with a
zone suffix is parsed as a timestamp instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tc := rootOpts.normalizer.TimeCodec()
			var out string
			if dt, err := civil.ParseDateTime(args[0]); err == nil {
				if out, err = tc.FormatNaive(dt); err != nil {
					return WrapExitError(ExitFailure, "format-time", err)
				}
			} else {
				t, err := tc.Parse(args[0])
				if err != nil {
					return WrapExitError(ExitFailure, "format-time", err)
				}
				out = tc.Format(t)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}
