package jsonutil

import "time"

type options struct {
	location     func() *time.Location
	logger       Logger
	onDiagnostic DiagnosticHandler
	naive        Severity
	dupMembers   Severity
	maxDepth     int
}

// Option configures a Normalizer or a TimeCodec.
type Option func(*options)

func defaultOptions() options {
	return options{
		location: func() *time.Location { return time.Local },
		logger:   NopLogger{},
		naive:    Warn,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// local reads the ambient zone. It is called on every conversion and never
// cached, since the provider may change its answer over a process lifetime.
func (o *options) local() *time.Location {
	if o.location != nil {
		if loc := o.location(); loc != nil {
			return loc
		}
	}
	return time.Local
}

// WithLocation injects the provider consulted whenever a naive timestamp must
// be interpreted as local time. nil restores time.Local.
func WithLocation(fn func() *time.Location) Option {
	return func(o *options) { o.location = fn }
}

// WithFixedLocation is WithLocation for a constant zone.
func WithFixedLocation(loc *time.Location) Option {
	return WithLocation(func() *time.Location { return loc })
}

// WithLogger routes diagnostics to l at Warn level. nil disables logging.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NopLogger{}
		}
		o.logger = l
	}
}

// WithDiagnosticHandler registers a callback for diagnostics.
func WithDiagnosticHandler(h DiagnosticHandler) Option {
	return func(o *options) { o.onDiagnostic = h }
}

// WithNaiveTime selects how timestamps lacking zone information are reported.
func WithNaiveTime(s Severity) Option {
	return func(o *options) { o.naive = s }
}

// WithDuplicateMembers selects how Unmarshal and Decode treat JSON objects
// that repeat a member name. The default is Ignore.
func WithDuplicateMembers(s Severity) Option {
	return func(o *options) { o.dupMembers = s }
}

// WithMaxDepth bounds the nesting depth accepted by Normalize. Zero means no
// limit; callers handling untrusted input should set one.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.maxDepth = n
	}
}
