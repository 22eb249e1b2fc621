package codec

import "github.com/reoring/jsonutil"

// JSON is a Codec backed by the jsonutil JSON driver (goccy/go-json by
// default). The zero value uses jsonutil.Default().
type JSON struct {
	N *jsonutil.Normalizer
}

func (c JSON) Encode(v any) ([]byte, error) { return normalizerOr(c.N).Marshal(v) }
func (c JSON) Decode(b []byte) (any, error) { return normalizerOr(c.N).Unmarshal(b) }
func (JSON) Name() string                   { return "json" }
