package jsonutil

import (
	"bytes"
	"errors"
	"io"
	"sync"

	gojson "github.com/goccy/go-json"
)

// JSONDriver encodes normalized values and decodes JSON documents. The
// default implementation is based on goccy/go-json and may be swapped with
// SetJSONDriver.
type JSONDriver interface {
	Marshal(v any) ([]byte, error)
	// Unmarshal decodes data into nil, bool, json.Number, string, []any and
	// map[string]any. Anything but whitespace after the first value is an
	// error.
	Unmarshal(data []byte) (any, error)
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = defaultJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the default go-json-backed driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = defaultJSONDriver{}
	jsonDriverMu.Unlock()
}

// CurrentJSONDriver returns the driver used by Marshal and Unmarshal.
func CurrentJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

// defaultJSONDriver wraps goccy/go-json.
type defaultJSONDriver struct{}

func (defaultJSONDriver) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }

func (defaultJSONDriver) Unmarshal(data []byte) (any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}
	return v, nil
}

var errTrailingData = errors.New("jsonutil: unexpected data after top-level JSON value")

func (defaultJSONDriver) Name() string { return "go-json" }

// Marshal normalizes v and encodes it with the current JSON driver. A
// NormalizeError aborts the whole payload; no partial output is produced.
func (n *Normalizer) Marshal(v any) ([]byte, error) {
	nv, err := n.Normalize(v)
	if err != nil {
		return nil, err
	}
	return CurrentJSONDriver().Marshal(nv)
}

// Decode decodes a JSON document with the current driver, applying the
// duplicate member policy. Timestamps are left as strings.
func (n *Normalizer) Decode(data []byte) (any, error) {
	v, err := CurrentJSONDriver().Unmarshal(data)
	if err != nil {
		return nil, err
	}
	if err := n.checkDuplicateMembers(data); err != nil {
		return nil, err
	}
	return v, nil
}

// Unmarshal is Decode followed by Extract.
func (n *Normalizer) Unmarshal(data []byte) (any, error) {
	v, err := n.Decode(data)
	if err != nil {
		return nil, err
	}
	return n.Extract(v), nil
}
