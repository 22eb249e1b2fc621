package codec

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// nativeNumbers rewrites json.Number leaves of a normalized value into
// int64, uint64 or float64 so binary codecs emit numbers rather than text.
// Integers wider than 64 bits become *big.Int when allowBig is set and are
// rejected otherwise.
func nativeNumbers(v any, allowBig bool) (any, error) {
	switch x := v.(type) {
	case json.Number:
		return nativeNumber(x, allowBig)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			ne, err := nativeNumbers(e, allowBig)
			if err != nil {
				return nil, err
			}
			out[i] = ne
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			ne, err := nativeNumbers(e, allowBig)
			if err != nil {
				return nil, err
			}
			out[k] = ne
		}
		return out, nil
	}
	return v, nil
}

func nativeNumber(num json.Number, allowBig bool) (any, error) {
	s := string(num)
	if strings.ContainsAny(s, ".eE") {
		return num.Float64()
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return u, nil
	}
	if !allowBig {
		return nil, fmt.Errorf("codec: integer %s does not fit in 64 bits", s)
	}
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("codec: invalid integer %q", s)
	}
	return b, nil
}
