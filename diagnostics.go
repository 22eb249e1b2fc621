package jsonutil

import "github.com/reoring/jsonutil/i18n"

// Fields is a minimal structured field map for logs.
type Fields map[string]any

// Logger is a tiny leveled logger. Provide an adapter around your logging
// stack (see log/zap, log/logrus and log/slog). NopLogger is the default.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

type NopLogger struct{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}

// Diagnostic is a non-fatal signal: a timestamp without zone information was
// interpreted as local time, or a decoded document repeated an object member.
// It is never an error by itself; see Severity.
type Diagnostic struct {
	Code    string // CodeNaiveTimestamp, CodeMissingTimezone or CodeDuplicateMember.
	Message string
	Input   string // The offending text, the formatted wall clock, or a JSON Pointer.
}

// DiagnosticHandler observes diagnostics. It is called synchronously on the
// goroutine that triggered the diagnostic.
type DiagnosticHandler func(Diagnostic)

// Recorder collects diagnostics; handy in tests and batch jobs.
type Recorder struct {
	Diagnostics []Diagnostic
}

// Handle appends d. Recorder is not safe for concurrent use.
func (r *Recorder) Handle(d Diagnostic) { r.Diagnostics = append(r.Diagnostics, d) }

// Codes returns the recorded diagnostic codes in order.
func (r *Recorder) Codes() []string {
	out := make([]string, len(r.Diagnostics))
	for i, d := range r.Diagnostics {
		out[i] = d.Code
	}
	return out
}

func (o *options) emit(code, input string) {
	d := Diagnostic{Code: code, Message: i18n.T(code, nil), Input: input}
	o.logger.Warn(d.Message, Fields{"code": d.Code, "input": d.Input})
	if o.onDiagnostic != nil {
		o.onDiagnostic(d)
	}
}
