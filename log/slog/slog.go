// Package slog adapts a *log/slog.Logger to jsonutil.Logger.
package slog

import (
	"context"
	stdslog "log/slog"
	"maps"
	"slices"

	"github.com/reoring/jsonutil"
)

var _ jsonutil.Logger = Logger{}

type Logger struct{ L *stdslog.Logger }

// New returns an adapter that tags every record with component=jsonutil.
func New(l *stdslog.Logger) Logger { return Logger{L: l.With("component", "jsonutil")} }

func (s Logger) Debug(msg string, f jsonutil.Fields) { s.log(stdslog.LevelDebug, msg, f) }
func (s Logger) Info(msg string, f jsonutil.Fields)  { s.log(stdslog.LevelInfo, msg, f) }
func (s Logger) Warn(msg string, f jsonutil.Fields)  { s.log(stdslog.LevelWarn, msg, f) }
func (s Logger) Error(msg string, f jsonutil.Fields) { s.log(stdslog.LevelError, msg, f) }

func (s Logger) log(level stdslog.Level, msg string, f jsonutil.Fields) {
	ctx := context.Background()
	if !s.L.Enabled(ctx, level) {
		return
	}
	s.L.LogAttrs(ctx, level, msg, attrs(f)...)
}

// attrs sorts by key so records are stable.
func attrs(f jsonutil.Fields) []stdslog.Attr {
	if len(f) == 0 {
		return nil
	}
	out := make([]stdslog.Attr, 0, len(f))
	for _, k := range slices.Sorted(maps.Keys(f)) {
		if s, ok := f[k].(string); ok {
			out = append(out, stdslog.String(k, s))
			continue
		}
		out = append(out, stdslog.Any(k, f[k]))
	}
	return out
}
