package jsonutil

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"

	gojson "github.com/goccy/go-json"
)

// Integral is implemented by values that declare themselves convertible to an
// integer. Normalize emits the converted int64.
type Integral interface {
	AsInt64() (int64, error)
}

// Real is implemented by values that declare themselves convertible to a real
// number. Normalize emits the converted float64. When a value implements both
// Integral and Real, Integral wins.
type Real interface {
	AsFloat64() (float64, error)
}

func (n *Normalizer) primitive(rv reflect.Value, p *pathRef) (any, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.String:
		if num, ok := rv.Interface().(json.Number); ok {
			return checkNumber(num, p)
		}
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), nil
	case reflect.Float32:
		// Keep the shortest float32 representation (1.1, not 1.100000023841858).
		f, _ := strconv.ParseFloat(strconv.FormatFloat(rv.Float(), 'g', -1, 32), 64)
		return finite(f, rv, p)
	default:
		return finite(rv.Float(), rv, p)
	}
}

func (n *Normalizer) coerce(rv reflect.Value, p *pathRef) (any, error) {
	switch x := rv.Interface().(type) {
	case *big.Int:
		// Lossless: the decimal text is a valid JSON number of any magnitude.
		return json.Number(x.String()), nil
	case *big.Float:
		if x.IsInf() {
			return nil, &NormalizeError{Path: p.Pointer(), Code: CodeNonFinite, Type: typeName(rv)}
		}
		f, _ := x.Float64()
		return finite(f, rv, p)
	case *big.Rat:
		f, _ := x.Float64()
		return finite(f, rv, p)
	case Integral:
		i, err := x.AsInt64()
		if err != nil {
			return nil, &NormalizeError{Path: p.Pointer(), Code: CodeConversion, Type: typeName(rv), Cause: err}
		}
		return i, nil
	case Real:
		f, err := x.AsFloat64()
		if err != nil {
			return nil, &NormalizeError{Path: p.Pointer(), Code: CodeConversion, Type: typeName(rv), Cause: err}
		}
		return finite(f, rv, p)
	}
	return nil, &NormalizeError{Path: p.Pointer(), Code: CodeUnsupportedType, Type: typeName(rv)}
}

func finite(f float64, rv reflect.Value, p *pathRef) (any, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, &NormalizeError{Path: p.Pointer(), Code: CodeNonFinite, Type: typeName(rv)}
	}
	return f, nil
}

// checkNumber rejects json.Number values that a JSON encoder would refuse.
func checkNumber(num json.Number, p *pathRef) (any, error) {
	s := string(num)
	if s == "" || !(s[0] == '-' || (s[0] >= '0' && s[0] <= '9')) || !gojson.Valid([]byte(s)) {
		return nil, &NormalizeError{
			Path:    p.Pointer(),
			Code:    CodeConversion,
			Type:    "json.Number",
			Message: fmt.Sprintf("%q is not a JSON number", s),
		}
	}
	return num, nil
}

func typeName(rv reflect.Value) string {
	if !rv.IsValid() {
		return "nil"
	}
	return rv.Type().String()
}
