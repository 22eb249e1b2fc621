package jsonutil

import "time"

// std is the Normalizer behind the package-level functions: local zone from
// time.Local (read on every call), Warn severity, no logger, no depth limit.
var std = New()

// Default returns the Normalizer used by the package-level functions.
func Default() *Normalizer { return std }

// Normalize converts v into JSON-serializable form using the default
// Normalizer.
func Normalize(v any) (any, error) { return std.Normalize(v) }

// Extract replaces timestamp strings inside v with time.Time values using
// the default Normalizer.
func Extract(v any) any { return std.Extract(v) }

// Marshal normalizes v and encodes it as JSON.
func Marshal(v any) ([]byte, error) { return std.Marshal(v) }

// Unmarshal decodes JSON and extracts timestamps.
func Unmarshal(data []byte) (any, error) { return std.Unmarshal(data) }

// ParseTimestamp parses text with the default TimeCodec.
func ParseTimestamp(text string) (time.Time, error) { return std.codec.Parse(text) }

// FormatTimestamp renders t in the canonical UTC form.
func FormatTimestamp(t time.Time) string { return std.codec.Format(t) }
