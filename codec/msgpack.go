package codec

import (
	"bytes"

	"github.com/reoring/jsonutil"
	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack is a Codec that serializes normalized payloads using
// vmihailenco/msgpack/v5. The zero value is ready to use.
//
// Integers wider than 64 bits have no msgpack form and fail to encode.
type Msgpack struct {
	N *jsonutil.Normalizer
}

func (c Msgpack) Encode(v any) ([]byte, error) {
	nv, err := normalizerOr(c.N).Normalize(v)
	if err != nil {
		return nil, err
	}
	nv, err = nativeNumbers(nv, false)
	if err != nil {
		return nil, err
	}
	return msgpack.Marshal(nv)
}

func (c Msgpack) Decode(b []byte) (any, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(b))
	dec.UseLooseInterfaceDecoding(true)
	v, err := dec.DecodeInterfaceLoose()
	if err != nil {
		return nil, err
	}
	return normalizerOr(c.N).Extract(v), nil
}

func (Msgpack) Name() string { return "msgpack" }
