package jsonutil

import "fmt"

// Severity expresses how an ambiguous-timezone interpretation is reported.
type Severity int

const (
	Ignore Severity = iota // Interpret silently.
	Warn                   // Emit a Diagnostic and continue (default).
	Error                  // Fail the operation.
)

func (s Severity) String() string {
	switch s {
	case Ignore:
		return "ignore"
	case Warn:
		return "warn"
	case Error:
		return "error"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// ParseSeverity maps "ignore", "warn" and "error" to a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "ignore":
		return Ignore, nil
	case "warn", "":
		return Warn, nil
	case "error":
		return Error, nil
	}
	return Warn, fmt.Errorf("jsonutil: unknown severity %q (want ignore|warn|error)", s)
}

// UnmarshalText lets Severity appear in YAML configuration as text.
func (s *Severity) UnmarshalText(b []byte) error {
	v, err := ParseSeverity(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
