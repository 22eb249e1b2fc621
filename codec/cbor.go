package codec

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"
	"github.com/reoring/jsonutil"
)

// CBOR is a Codec that serializes normalized payloads using fxamacker/cbor.
// The zero value is NOT ready to use. Construct with NewCBOR or MustCBOR.
//
// Use deterministic=true for canonical encoding (RFC 8949 Core Deterministic)
// when you need byte-for-byte stable outputs (e.g., signing payloads).
// Otherwise PreferredUnsortedEncOptions are used.
type CBOR struct {
	N   *jsonutil.Normalizer
	enc cbor.EncMode
	dec cbor.DecMode
}

// NewCBOR constructs a CBOR codec bound to n (nil means jsonutil.Default()).
func NewCBOR(n *jsonutil.Normalizer, deterministic bool) (CBOR, error) {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}
	em, err := eo.EncMode()
	if err != nil {
		return CBOR{}, err
	}
	dm, err := cbor.DecOptions{
		// Normalized payloads only have string keys; decode maps the way
		// encoding/json would so Extract sees map[string]any.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
		IntDec:         cbor.IntDecConvertSigned,
		BigIntDec:      cbor.BigIntDecodePointer,
	}.DecMode()
	if err != nil {
		return CBOR{}, err
	}
	return CBOR{N: n, enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error.
// Should not use for prod just handy for package-level variables in tests/examples.
func MustCBOR(n *jsonutil.Normalizer, deterministic bool) CBOR {
	c, err := NewCBOR(n, deterministic)
	if err != nil {
		panic(err)
	}
	return c
}

// Encode normalizes v and encodes it as CBOR using the configured EncMode.
func (c CBOR) Encode(v any) ([]byte, error) {
	nv, err := normalizerOr(c.N).Normalize(v)
	if err != nil {
		return nil, err
	}
	nv, err = nativeNumbers(nv, true)
	if err != nil {
		return nil, err
	}
	return c.enc.Marshal(nv)
}

// Decode decodes b using the configured DecMode and extracts timestamps.
func (c CBOR) Decode(b []byte) (any, error) {
	var v any
	if err := c.dec.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return normalizerOr(c.N).Extract(v), nil
}

func (CBOR) Name() string { return "cbor" }
