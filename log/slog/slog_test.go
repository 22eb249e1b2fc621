package slog

import (
	"bytes"
	"encoding/json"
	stdslog "log/slog"
	"strings"
	"testing"
	"time"

	"github.com/reoring/jsonutil"
)

func TestSlogLoggerWritesStructuredWarning(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{L: stdslog.New(stdslog.NewJSONHandler(&buf, nil))}
	n := jsonutil.New(jsonutil.WithFixedLocation(time.UTC), jsonutil.WithLogger(l))

	if _, err := n.TimeCodec().Parse("2013-07-03T16:34:52"); err != nil {
		t.Fatal(err)
	}

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if rec["level"] != "WARN" {
		t.Errorf("level = %v", rec["level"])
	}
	if rec["code"] != jsonutil.CodeNaiveTimestamp {
		t.Errorf("code = %v", rec["code"])
	}
}

func TestSlogLoggerDebugFilteredByHandler(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{L: stdslog.New(stdslog.NewJSONHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelInfo}))}
	l.Debug("hidden", nil)
	if buf.Len() != 0 {
		t.Errorf("debug line written: %s", buf.String())
	}
	l.Error("shown", jsonutil.Fields{"k": "v"})
	if !bytes.Contains(buf.Bytes(), []byte(`"k":"v"`)) {
		t.Errorf("missing field: %s", buf.String())
	}
}

func TestNewTagsComponentAndSortsAttrs(t *testing.T) {
	var buf bytes.Buffer
	l := New(stdslog.New(stdslog.NewJSONHandler(&buf, nil)))
	l.Warn("w", jsonutil.Fields{"input": "x", "code": "c"})

	line := buf.String()
	if !strings.Contains(line, `"component":"jsonutil"`) {
		t.Errorf("missing component: %s", line)
	}
	if ci, ii := strings.Index(line, `"code"`), strings.Index(line, `"input"`); ci < 0 || ii < ci {
		t.Errorf("attrs out of order: %s", line)
	}
}
