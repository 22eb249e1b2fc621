// Package jsonutil prepares values for JSON message payloads and recovers
// timestamps from decoded payloads.
//
// It provides:
//
// - Normalize: converts arbitrary Go values (maps with any key type, sets,
// slices, arrays, range-over-func iterators, byte slices, numeric-like values,
// times and dates) into a value built only from JSON primitives
// - Extract: the inverse for timestamps, replacing strings that parse as
// timestamps with time.Time
// - A TimeCodec for the wire form YYYY-MM-DDTHH:MM:SS[.ffffff]Z
// - A diagnostics channel for timestamps that lack zone information
// - FindDuplicateMembers and WithDuplicateMembers for JSON documents that
// repeat an object member name
//
// Design policy:
// - Keep only public APIs in the root package; codecs live under codec/,
// logger adapters under log/, and the CLI under cmd/jsonutil.
// - Never guess silently: a value with no JSON mapping is an error, and a
// zone assumption is a Diagnostic.
// - Depth limits are the caller's decision (WithMaxDepth).
//
// Typical usage:
//
//	n := jsonutil.New(jsonutil.WithDiagnosticHandler(rec.Handle))
//	payload, err := n.Marshal(content)
//	decoded, err := n.Unmarshal(payload)
//
//	ts := jsonutil.FormatTimestamp(time.Now())
//	t, err := jsonutil.ParseTimestamp(ts)
package jsonutil
