package jsonutil

import (
	"encoding/json"
	"math/big"
	"reflect"
	"time"

	"cloud.google.com/go/civil"
)

// Kind is the closed classification of a raw value. Normalize inspects every
// value exactly once and dispatches on its Kind.
type Kind int

const (
	KindUnsupported Kind = iota
	KindNull
	KindPrimitive  // bool, integer, float, string, json.Number (named types included)
	KindBinary     // byte slices; emitted as base64
	KindTemporal   // time.Time, civil.DateTime, civil.Date
	KindCoercible  // Integral, Real, *big.Int, *big.Float, *big.Rat
	KindMapping    // maps; keys are stringified
	KindSet        // maps with zero-size elements, e.g. map[T]struct{}
	KindSequence   // slices, arrays and range-over-func iterators
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindPrimitive:
		return "primitive"
	case KindBinary:
		return "binary"
	case KindTemporal:
		return "temporal"
	case KindCoercible:
		return "coercible"
	case KindMapping:
		return "mapping"
	case KindSet:
		return "set"
	case KindSequence:
		return "sequence"
	}
	return "unsupported"
}

// Classify reports how Normalize treats v.
func Classify(v any) Kind {
	k, _ := classify(v)
	return k
}

// classify returns the Kind of v together with the reflect.Value the handler
// for that Kind operates on (pointers dereferenced, except where a pointer
// receiver supplies the capability).
func classify(v any) (Kind, reflect.Value) {
	switch v.(type) {
	case nil:
		return KindNull, reflect.Value{}
	case bool, string, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return KindPrimitive, reflect.ValueOf(v)
	case []byte:
		if v.([]byte) == nil {
			return KindNull, reflect.Value{}
		}
		return KindBinary, reflect.ValueOf(v)
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return KindNull, rv
		}
		if rv.Kind() == reflect.Pointer {
			if k := capabilityKind(rv); k != KindUnsupported {
				return k, rv
			}
		}
		rv = rv.Elem()
	}
	return classifyElem(rv)
}

func classifyElem(rv reflect.Value) (Kind, reflect.Value) {
	switch rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindPrimitive, rv
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			if rv.IsNil() {
				return KindNull, rv
			}
			return KindBinary, rv
		}
	}

	if k := capabilityKind(rv); k != KindUnsupported {
		return k, rv
	}
	// Methods declared on the pointer receiver: probe through a copy.
	if rv.Kind() == reflect.Struct && rv.CanInterface() {
		p := reflect.New(rv.Type())
		p.Elem().Set(rv)
		if k := capabilityKind(p); k != KindUnsupported {
			return k, p
		}
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return KindNull, rv
		}
		if rv.Type().Elem().Size() == 0 {
			return KindSet, rv
		}
		return KindMapping, rv
	case reflect.Slice:
		if rv.IsNil() {
			return KindNull, rv
		}
		return KindSequence, rv
	case reflect.Array:
		return KindSequence, rv
	case reflect.Func:
		if !isSeqFunc(rv.Type()) {
			break
		}
		if rv.IsNil() {
			return KindNull, rv
		}
		return KindSequence, rv
	}
	return KindUnsupported, rv
}

func capabilityKind(rv reflect.Value) Kind {
	if !rv.IsValid() || !rv.CanInterface() {
		return KindUnsupported
	}
	switch rv.Interface().(type) {
	case time.Time, civil.DateTime, civil.Date:
		return KindTemporal
	case *big.Int, *big.Float, *big.Rat, Integral, Real:
		return KindCoercible
	}
	return KindUnsupported
}

// isSeqFunc matches func(yield func(T) bool), the shape of iter.Seq[T].
func isSeqFunc(t reflect.Type) bool {
	if t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 {
		return false
	}
	y := t.In(0)
	return y.Kind() == reflect.Func && y.NumIn() == 1 && y.NumOut() == 1 && y.Out(0).Kind() == reflect.Bool
}
