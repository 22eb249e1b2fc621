// Package zap adapts a *zap.Logger to jsonutil.Logger.
package zap

import (
	"maps"
	"slices"

	"github.com/reoring/jsonutil"
	"go.uber.org/zap"
)

var _ jsonutil.Logger = ZapLogger{}

// Name is the logger name New attaches.
const Name = "jsonutil"

type ZapLogger struct{ L *zap.Logger }

// New returns an adapter whose entries are logged under the "jsonutil" name.
func New(l *zap.Logger) ZapLogger { return ZapLogger{L: l.Named(Name)} }

func (z ZapLogger) Debug(msg string, f jsonutil.Fields) { z.L.Debug(msg, zf(f)...) }
func (z ZapLogger) Info(msg string, f jsonutil.Fields)  { z.L.Info(msg, zf(f)...) }
func (z ZapLogger) Warn(msg string, f jsonutil.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z ZapLogger) Error(msg string, f jsonutil.Fields) { z.L.Error(msg, zf(f)...) }

// zf emits fields sorted by key so diagnostic lines are stable; string
// values (code, input) stay typed strings.
func zf(f jsonutil.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for _, k := range slices.Sorted(maps.Keys(f)) {
		if s, ok := f[k].(string); ok {
			out = append(out, zap.String(k, s))
			continue
		}
		out = append(out, zap.Any(k, f[k]))
	}
	return out
}
