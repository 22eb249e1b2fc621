// Package logrus adapts a *logrus.Entry to jsonutil.Logger.
package logrus

import (
	"github.com/reoring/jsonutil"
	"github.com/sirupsen/logrus"
)

var _ jsonutil.Logger = LogrusLogger{}

type LogrusLogger struct{ E *logrus.Entry }

// New returns an adapter that tags every entry with component=jsonutil.
func New(l *logrus.Logger) LogrusLogger {
	return LogrusLogger{E: l.WithField("component", "jsonutil")}
}

func (l LogrusLogger) Debug(msg string, f jsonutil.Fields) { l.with(f).Debug(msg) }
func (l LogrusLogger) Info(msg string, f jsonutil.Fields)  { l.with(f).Info(msg) }
func (l LogrusLogger) Warn(msg string, f jsonutil.Fields)  { l.with(f).Warn(msg) }
func (l LogrusLogger) Error(msg string, f jsonutil.Fields) { l.with(f).Error(msg) }

func (l LogrusLogger) with(f jsonutil.Fields) *logrus.Entry {
	if len(f) == 0 {
		return l.E
	}
	return l.E.WithFields(logrus.Fields(f))
}
