package cli

import (
	"github.com/spf13/cobra"

	"github.com/reoring/jsonutil/codec"
)

// NormalizeOptions holds flags for the normalize command.
type NormalizeOptions struct {
	Input  string // auto | json | yaml
	Output string // json | canonical | cbor | msgpack
	Dates  bool   // canonicalize timestamp strings before encoding
}

// NewNormalizeCommand creates the normalize command.
func NewNormalizeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &NormalizeOptions{}

	cmd := &cobra.Command{
		Use:   "normalize [file]",
		Short: "Convert a JSON or YAML document into a message payload",
		Long: `Decode a JSON or YAML document, normalize it and encode it as a payload.

YAML mappings with non-string keys are emitted with stringified keys. With
--dates, strings that parse as timestamps are rewritten in the canonical UTC
form. Binary outputs (cbor, msgpack) are written as raw bytes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNormalize(rootOpts, opts, cmd, args)
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "auto", "input format (auto|json|yaml)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "json", "output codec (json|canonical|cbor|msgpack)")
	cmd.Flags().BoolVar(&opts.Dates, "dates", false, "canonicalize timestamp strings")

	return cmd
}

func runNormalize(rootOpts *RootOptions, opts *NormalizeOptions, cmd *cobra.Command, args []string) error {
	n := rootOpts.normalizer
	c, ok := codec.ByName(opts.Output, n)
	if !ok {
		return &ExitError{Code: ExitCommandError, Message: "unknown output codec " + opts.Output}
	}

	data, name, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return WrapExitError(ExitCommandError, "read input", err)
	}
	v, err := decodeDocument(n, data, name, opts.Input)
	if err != nil {
		return WrapExitError(ExitFailure, "decode "+name, err)
	}
	if opts.Dates {
		v = n.Extract(v)
	}

	out, err := c.Encode(v)
	if err != nil {
		return WrapExitError(ExitFailure, "normalize "+name, err)
	}
	w := cmd.OutOrStdout()
	if _, err := w.Write(out); err != nil {
		return err
	}
	if opts.Output == "json" || opts.Output == "canonical" {
		_, err = w.Write([]byte("\n"))
	}
	return err
}
