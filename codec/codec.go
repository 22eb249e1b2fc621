// Package codec encodes message payloads. Every codec normalizes the value
// first, so an unsupported value aborts the payload before any byte is
// produced, and extracts timestamps after decoding.
package codec

import "github.com/reoring/jsonutil"

// Codec encodes/decodes payload values to []byte.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(b []byte) (any, error)
	Name() string
}

var (
	_ Codec = JSON{}
	_ Codec = Canonical{}
	_ Codec = CBOR{}
	_ Codec = Msgpack{}
)

func normalizerOr(n *jsonutil.Normalizer) *jsonutil.Normalizer {
	if n == nil {
		return jsonutil.Default()
	}
	return n
}

// ByName returns the codec registered under name ("json", "canonical",
// "cbor" or "msgpack") bound to n.
func ByName(name string, n *jsonutil.Normalizer) (Codec, bool) {
	switch name {
	case "json":
		return JSON{N: n}, true
	case "canonical":
		return Canonical{N: n}, true
	case "cbor":
		c, err := NewCBOR(n, true)
		if err != nil {
			return nil, false
		}
		return c, true
	case "msgpack":
		return Msgpack{N: n}, true
	}
	return nil, false
}
