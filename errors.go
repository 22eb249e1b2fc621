package jsonutil

import (
	"errors"
	"fmt"

	"github.com/reoring/jsonutil/i18n"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	// Timestamp parsing
	CodeInvalidFormat  = "invalid_format"
	CodeInvalidDate    = "invalid_date"
	CodeInvalidOffset  = "invalid_offset"
	CodeNaiveTimestamp = "naive_timestamp"
	// Normalization
	CodeUnsupportedType = "unsupported_type"
	CodeNonFinite       = "non_finite"
	CodeDuplicateKey    = "duplicate_key"
	CodeConversion      = "conversion_failed"
	CodeTooDeep         = "too_deep"
	// Decoding
	CodeDuplicateMember = "duplicate_member"
	// Diagnostics only (never returned as errors unless escalated)
	CodeMissingTimezone = "missing_timezone"
)

var (
	// ErrInvalidTimestamp matches every *ParseError via errors.Is.
	ErrInvalidTimestamp = errors.New("jsonutil: invalid timestamp")
	// ErrUnsupportedType matches a *NormalizeError whose code is CodeUnsupportedType.
	ErrUnsupportedType = errors.New("jsonutil: unsupported type")
)

// ParseError reports that a string does not match the accepted timestamp
// grammar.
type ParseError struct {
	Input   string
	Code    string
	Message string
}

func (e *ParseError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = i18n.T(e.Code, nil)
	}
	return fmt.Sprintf("jsonutil: parse timestamp %q: %s", e.Input, msg)
}

func (e *ParseError) Is(target error) bool { return target == ErrInvalidTimestamp }

// NormalizeError reports a value that has no JSON representation.
type NormalizeError struct {
	Path    string // JSON Pointer of the offending element (for example: /items/2).
	Code    string
	Type    string // Go type of the offending value, as printed by %T.
	Message string
	Cause   error // Optional: underlying error.
}

func (e *NormalizeError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = i18n.T(e.Code, map[string]string{"type": e.Type})
	}
	if e.Cause != nil {
		return fmt.Sprintf("jsonutil: normalize %s at %s: %s: %v", e.Type, e.Path, msg, e.Cause)
	}
	return fmt.Sprintf("jsonutil: normalize %s at %s: %s", e.Type, e.Path, msg)
}

func (e *NormalizeError) Unwrap() error { return e.Cause }

func (e *NormalizeError) Is(target error) bool {
	return target == ErrUnsupportedType && e.Code == CodeUnsupportedType
}

// AsParseError extracts a *ParseError from an error using errors.As internally.
func AsParseError(err error) (*ParseError, bool) {
	if err == nil {
		return nil, false
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// AsNormalizeError extracts a *NormalizeError from an error using errors.As
// internally.
func AsNormalizeError(err error) (*NormalizeError, bool) {
	if err == nil {
		return nil, false
	}
	var ne *NormalizeError
	if errors.As(err, &ne) {
		return ne, true
	}
	return nil, false
}
