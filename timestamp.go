package jsonutil

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// timestampPattern accepts YYYY-MM-DDTHH:MM:SS with an optional 1-6 digit
// fraction and an optional Z, ±HH:MM or ±HHMM suffix. A bare "." or seven
// fractional digits do not match.
var timestampPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2}):(\d{2})(?:\.(\d{1,6}))?(Z|[+-]\d{2}:?\d{2})?$`)

const (
	// CanonicalLayout is the wire form of an instant: UTC, microsecond
	// fraction with trailing zeros trimmed (omitted when zero), literal Z.
	CanonicalLayout = "2006-01-02T15:04:05.999999Z"
	// DateLayout is the wire form of a date without time of day.
	DateLayout = "2006-01-02"
)

// TimeCodec converts between timestamp strings and time.Time.
//
// The zone used for naive input is obtained from the configured location
// provider on every call. A TimeCodec is safe for concurrent use as long as
// the injected provider, logger and handler are.
type TimeCodec struct {
	o options
}

// NewTimeCodec returns a TimeCodec configured by opts.
func NewTimeCodec(opts ...Option) *TimeCodec {
	return &TimeCodec{o: buildOptions(opts)}
}

// Parse converts text into a zone-aware instant at microsecond precision.
// Text without a zone suffix is interpreted in the local zone and reported
// through the diagnostics channel. Any mismatch yields a *ParseError.
func (c *TimeCodec) Parse(text string) (time.Time, error) {
	m := timestampPattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, &ParseError{Input: text, Code: CodeInvalidFormat}
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])
	second, _ := strconv.Atoi(m[6])
	if !validCalendar(year, month, day) || hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, &ParseError{Input: text, Code: CodeInvalidDate}
	}
	usec := 0
	if frac := m[7]; frac != "" {
		usec, _ = strconv.Atoi(frac + strings.Repeat("0", 6-len(frac)))
	}

	var loc *time.Location
	switch zone := m[8]; zone {
	case "":
		if c.o.naive == Error {
			return time.Time{}, &ParseError{Input: text, Code: CodeNaiveTimestamp}
		}
		loc = c.o.local()
		if c.o.naive == Warn {
			c.o.emit(CodeNaiveTimestamp, text)
		}
	case "Z":
		loc = time.UTC
	default:
		hh, _ := strconv.Atoi(zone[1:3])
		mm, _ := strconv.Atoi(zone[len(zone)-2:])
		if hh > 23 || mm > 59 {
			return time.Time{}, &ParseError{Input: text, Code: CodeInvalidOffset}
		}
		offset := hh*3600 + mm*60
		if zone[0] == '-' {
			offset = -offset
		}
		loc = time.FixedZone("", offset)
	}
	return time.Date(year, time.Month(month), day, hour, minute, second, usec*int(time.Microsecond), loc), nil
}

// Format renders t in the canonical form: converted to UTC, truncated to
// microseconds, always ending in Z. Instants outside years 1-9999 UTC have no
// canonical form; Normalize rejects them with CodeInvalidDate.
func (c *TimeCodec) Format(t time.Time) string {
	return t.UTC().Truncate(time.Microsecond).Format(CanonicalLayout)
}

// FormatNaive attaches the local zone to a wall-clock value and formats it.
// The zone assumption is reported as CodeMissingTimezone; with severity Error
// it fails instead.
func (c *TimeCodec) FormatNaive(dt civil.DateTime) (string, error) {
	if !dt.IsValid() {
		return "", &NormalizeError{Path: "/", Code: CodeInvalidDate, Type: "civil.DateTime"}
	}
	if c.o.naive == Error {
		return "", &NormalizeError{Path: "/", Code: CodeMissingTimezone, Type: "civil.DateTime"}
	}
	t := dt.In(c.o.local())
	if !inCanonicalRange(t) {
		return "", &NormalizeError{Path: "/", Code: CodeInvalidDate, Type: "civil.DateTime"}
	}
	if c.o.naive == Warn {
		c.o.emit(CodeMissingTimezone, dt.String())
	}
	return c.Format(t), nil
}

// FormatDate renders a date without time of day as YYYY-MM-DD. No zone logic
// applies.
func (c *TimeCodec) FormatDate(d civil.Date) string {
	return d.String()
}

// inCanonicalRange reports whether t falls in years 1-9999 once converted to
// UTC, the range CanonicalLayout can express and Parse accepts.
func inCanonicalRange(t time.Time) bool {
	y := t.UTC().Year()
	return y >= 1 && y <= 9999
}

func validCalendar(year, month, day int) bool {
	if year < 1 || month < 1 || month > 12 || day < 1 {
		return false
	}
	// Day 0 of the following month is the last day of this one.
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return day <= last
}
