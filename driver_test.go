package jsonutil_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/jsonutil"
)

type stdlibDriver struct{}

func (stdlibDriver) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (stdlibDriver) Unmarshal(data []byte) (any, error) {
	var v any
	err := json.Unmarshal(data, &v)
	return v, err
}

func (stdlibDriver) Name() string { return "encoding/json" }

func TestDriver_Default(t *testing.T) {
	assert.Equal(t, "go-json", jsonutil.CurrentJSONDriver().Name())

	v, err := jsonutil.CurrentJSONDriver().Unmarshal([]byte(`{"n":12345678901234567890}`))
	require.NoError(t, err)
	assert.Equal(t, json.Number("12345678901234567890"), v.(map[string]any)["n"])
}

func TestDriver_Swap(t *testing.T) {
	t.Cleanup(jsonutil.UseDefaultJSONDriver)

	jsonutil.SetJSONDriver(stdlibDriver{})
	assert.Equal(t, "encoding/json", jsonutil.CurrentJSONDriver().Name())

	jsonutil.SetJSONDriver(nil)
	assert.Equal(t, "encoding/json", jsonutil.CurrentJSONDriver().Name())

	out, err := newNormalizer().Marshal(map[string]any{"a": []int{1, 2}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":[1,2]}`, string(out))

	jsonutil.UseDefaultJSONDriver()
	assert.Equal(t, "go-json", jsonutil.CurrentJSONDriver().Name())
}

func TestMarshal_NoPartialOutput(t *testing.T) {
	out, err := newNormalizer().Marshal(map[string]any{"ok": 1, "bad": make(chan int)})
	require.Error(t, err)
	assert.Nil(t, out)
}

func TestMarshalUnmarshal_Roundtrip(t *testing.T) {
	n := newNormalizer()
	at := time.Date(2013, 7, 3, 16, 34, 52, 249482000, time.FixedZone("", -7*3600))
	out, err := n.Marshal(map[string]any{"at": at, "n": 1, "tags": []string{"x"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"2013-07-03T23:34:52.249482Z","n":1,"tags":["x"]}`, string(out))

	back, err := n.Unmarshal(out)
	require.NoError(t, err)
	m := back.(map[string]any)
	assert.True(t, m["at"].(time.Time).Equal(at))
	assert.Equal(t, json.Number("1"), m["n"])
	assert.Equal(t, []any{"x"}, m["tags"])

	_, err = n.Unmarshal([]byte(`{"broken"`))
	assert.Error(t, err)
}

func TestDriver_RejectsTrailingData(t *testing.T) {
	for _, doc := range []string{
		`{"a":1} {"b":2} garbage`,
		`{"a":1} {"b":2}`,
		`[1] x`,
		`"s" 1`,
	} {
		v, err := jsonutil.Unmarshal([]byte(doc))
		assert.Error(t, err, doc)
		assert.Nil(t, v, doc)
	}

	v, err := jsonutil.Unmarshal([]byte("{\"a\":1}\n\t "))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": json.Number("1")}, v)
}
