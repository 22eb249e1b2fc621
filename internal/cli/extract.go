package cli

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/reoring/jsonutil/codec"
)

// NewExtractCommand creates the extract command.
func NewExtractCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "List the timestamps found in a JSON document",
		Long: `Decode a JSON document and report every string that parses as a
timestamp, keyed by JSON Pointer, with its canonical UTC form and original
offset. Output is canonical JSON.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(rootOpts, cmd, args)
		},
	}
	return cmd
}

func runExtract(rootOpts *RootOptions, cmd *cobra.Command, args []string) error {
	n := rootOpts.normalizer
	data, name, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return WrapExitError(ExitCommandError, "read input", err)
	}
	v, err := n.Unmarshal(data)
	if err != nil {
		return WrapExitError(ExitFailure, "decode "+name, err)
	}

	report := map[string]any{}
	collectTimestamps(v, "", func(path string, t time.Time) {
		report[path] = map[string]any{
			"utc":    n.TimeCodec().Format(t),
			"offset": t.Format("-07:00"),
		}
	})

	out, err := codec.Canonical{N: n}.Encode(report)
	if err != nil {
		return WrapExitError(ExitFailure, "encode report", err)
	}
	out = append(out, '\n')
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func collectTimestamps(v any, path string, visit func(string, time.Time)) {
	switch x := v.(type) {
	case time.Time:
		if path == "" {
			path = "/"
		}
		visit(path, x)
	case []any:
		for i, e := range x {
			collectTimestamps(e, path+"/"+strconv.Itoa(i), visit)
		}
	case map[string]any:
		for k, e := range x {
			collectTimestamps(e, path+"/"+escapePointer(k), visit)
		}
	}
}

func escapePointer(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1")
}
