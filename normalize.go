package jsonutil

import (
	"cmp"
	"encoding"
	"encoding/base64"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// Normalizer converts arbitrary Go values into JSON-serializable form and
// recovers timestamps from decoded payloads.
//
// The output of Normalize is built only from nil, bool, int64, uint64,
// float64, json.Number, string, []any and map[string]any.
//
// A Normalizer holds no mutable state and is safe for concurrent use.
// Recursion depth follows the nesting of the input; set WithMaxDepth when the
// input is untrusted.
type Normalizer struct {
	o     options
	codec *TimeCodec
}

// New returns a Normalizer configured by opts.
func New(opts ...Option) *Normalizer {
	o := buildOptions(opts)
	return &Normalizer{o: o, codec: &TimeCodec{o: o}}
}

// TimeCodec returns the codec used for temporal leaves.
func (n *Normalizer) TimeCodec() *TimeCodec { return n.codec }

// Normalize returns a JSON-serializable equivalent of v. Values with no JSON
// mapping fail with a *NormalizeError naming the offending path.
func (n *Normalizer) Normalize(v any) (any, error) {
	return n.normalize(v, rootPath, 0)
}

func (n *Normalizer) normalize(v any, p *pathRef, depth int) (any, error) {
	if n.o.maxDepth > 0 && depth > n.o.maxDepth {
		return nil, &NormalizeError{Path: p.Pointer(), Code: CodeTooDeep, Type: fmt.Sprintf("%T", v)}
	}
	kind, rv := classify(v)
	switch kind {
	case KindNull:
		return nil, nil
	case KindPrimitive:
		return n.primitive(rv, p)
	case KindBinary:
		return base64.StdEncoding.EncodeToString(rv.Bytes()), nil
	case KindTemporal:
		return n.temporal(rv, p)
	case KindCoercible:
		return n.coerce(rv, p)
	case KindMapping:
		return n.mapping(rv, p, depth)
	case KindSet:
		return n.set(rv, p, depth)
	case KindSequence:
		if rv.Kind() == reflect.Func {
			return n.drain(rv, p, depth)
		}
		return n.sequence(rv, p, depth)
	}
	return nil, &NormalizeError{Path: p.Pointer(), Code: CodeUnsupportedType, Type: fmt.Sprintf("%T", v)}
}

func (n *Normalizer) temporal(rv reflect.Value, p *pathRef) (any, error) {
	switch x := rv.Interface().(type) {
	case time.Time:
		return orNil(n.formatTime(x, p))
	case civil.DateTime:
		return orNil(n.formatNaive(x, p))
	case civil.Date:
		if !x.IsValid() {
			return nil, &NormalizeError{Path: p.Pointer(), Code: CodeInvalidDate, Type: "civil.Date"}
		}
		return n.codec.FormatDate(x), nil
	}
	return nil, &NormalizeError{Path: p.Pointer(), Code: CodeUnsupportedType, Type: typeName(rv)}
}

func orNil(s string, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

// formatTime rejects instants whose UTC year has no four-digit form, since
// Parse could not read the result back.
func (n *Normalizer) formatTime(t time.Time, p *pathRef) (string, error) {
	if !inCanonicalRange(t) {
		return "", &NormalizeError{Path: p.Pointer(), Code: CodeInvalidDate, Type: "time.Time"}
	}
	return n.codec.Format(t), nil
}

func (n *Normalizer) formatNaive(dt civil.DateTime, p *pathRef) (string, error) {
	s, err := n.codec.FormatNaive(dt)
	if err != nil {
		if ne, ok := AsNormalizeError(err); ok {
			ne.Path = p.Pointer()
		}
		return "", err
	}
	return s, nil
}

func (n *Normalizer) mapping(rv reflect.Value, p *pathRef, depth int) (any, error) {
	out := make(map[string]any, rv.Len())
	it := rv.MapRange()
	for it.Next() {
		key, err := n.keyString(it.Key(), p)
		if err != nil {
			return nil, err
		}
		if _, dup := out[key]; dup {
			return nil, &NormalizeError{
				Path:    p.Pointer(),
				Code:    CodeDuplicateKey,
				Type:    typeName(rv),
				Message: fmt.Sprintf("stringified map key %q appears more than once", key),
			}
		}
		val, err := n.normalize(it.Value().Interface(), p.Field(key), depth+1)
		if err != nil {
			return nil, err
		}
		out[key] = val
	}
	return out, nil
}

// set emits the keys of a map[T]struct{} as a sequence. Go maps have no
// order, so keys are sorted to keep the output stable.
func (n *Normalizer) set(rv reflect.Value, p *pathRef, depth int) (any, error) {
	keys := rv.MapKeys()
	slices.SortFunc(keys, compareKeys)
	out := make([]any, len(keys))
	for i, k := range keys {
		val, err := n.normalize(k.Interface(), p.Index(i), depth+1)
		if err != nil {
			return nil, err
		}
		out[i] = val
	}
	return out, nil
}

func (n *Normalizer) sequence(rv reflect.Value, p *pathRef, depth int) (any, error) {
	out := make([]any, rv.Len())
	for i := range out {
		val, err := n.normalize(rv.Index(i).Interface(), p.Index(i), depth+1)
		if err != nil {
			return nil, err
		}
		out[i] = val
	}
	return out, nil
}

// drain consumes a range-over-func iterator exactly once.
func (n *Normalizer) drain(rv reflect.Value, p *pathRef, depth int) (any, error) {
	yieldType := rv.Type().In(0)
	more := reflect.ValueOf(true).Convert(yieldType.Out(0))
	stop := reflect.ValueOf(false).Convert(yieldType.Out(0))

	out := []any{}
	var failed error
	yield := reflect.MakeFunc(yieldType, func(args []reflect.Value) []reflect.Value {
		val, err := n.normalize(args[0].Interface(), p.Index(len(out)), depth+1)
		if err != nil {
			failed = err
			return []reflect.Value{stop}
		}
		out = append(out, val)
		return []reflect.Value{more}
	})
	rv.Call([]reflect.Value{yield})
	if failed != nil {
		return nil, failed
	}
	return out, nil
}

// keyString renders a map key as its string representation. Temporal keys
// follow the same rules as temporal values; p is the path of the map.
func (n *Normalizer) keyString(k reflect.Value, p *pathRef) (string, error) {
	if k.Kind() == reflect.Interface {
		if k.IsNil() {
			return "null", nil
		}
		k = k.Elem()
	}
	if k.Kind() == reflect.String {
		return k.String(), nil
	}
	if k.CanInterface() {
		switch x := k.Interface().(type) {
		case time.Time:
			return n.formatTime(x, p)
		case civil.DateTime:
			return n.formatNaive(x, p)
		case encoding.TextMarshaler:
			if b, err := x.MarshalText(); err == nil {
				return string(b), nil
			}
		case fmt.Stringer:
			return x.String(), nil
		}
	}
	switch k.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(k.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(k.Float(), 'g', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(k.Float(), 'g', -1, 64), nil
	case reflect.Bool:
		return strconv.FormatBool(k.Bool()), nil
	}
	return fmt.Sprint(k), nil
}

func compareKeys(a, b reflect.Value) int {
	if a.Kind() == reflect.Interface {
		a = a.Elem()
	}
	if b.Kind() == reflect.Interface {
		b = b.Elem()
	}
	if a.IsValid() && b.IsValid() && a.Kind() == b.Kind() {
		switch a.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(a.Int(), b.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return cmp.Compare(a.Uint(), b.Uint())
		case reflect.Float32, reflect.Float64:
			return cmp.Compare(a.Float(), b.Float())
		case reflect.String:
			return strings.Compare(a.String(), b.String())
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
