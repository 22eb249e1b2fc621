package jsonutil

import "reflect"

var anyType = reflect.TypeFor[any]()

// Extract replaces every string in v that parses as a timestamp with the
// parsed time.Time. Slices and arrays come back as []any, maps as map[K]any
// with the original key type. Values that cannot hold strings are returned
// unchanged. Extract never fails: strings that do not parse stay as they are.
func (n *Normalizer) Extract(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		return n.extractString(x)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = n.Extract(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = n.Extract(e)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	if !mayHoldString(rv.Type()) {
		return v
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return v
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = n.Extract(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(reflect.MapOf(rv.Type().Key(), anyType), rv.Len())
		it := rv.MapRange()
		for it.Next() {
			e := n.Extract(it.Value().Interface())
			if e == nil {
				out.SetMapIndex(it.Key(), reflect.Zero(anyType))
				continue
			}
			out.SetMapIndex(it.Key(), reflect.ValueOf(e))
		}
		return out.Interface()
	}
	return v
}

func (n *Normalizer) extractString(s string) any {
	if s == "" {
		return s
	}
	t, err := n.codec.Parse(s)
	if err != nil {
		return s
	}
	return t
}

// mayHoldString reports whether Extract needs to rebuild a container of type
// t. Named string types are already-typed data and are left alone.
func mayHoldString(t reflect.Type) bool {
	return holdsString(t, map[reflect.Type]bool{})
}

func holdsString(t reflect.Type, seen map[reflect.Type]bool) bool {
	if seen[t] {
		return false
	}
	seen[t] = true
	switch t.Kind() {
	case reflect.Interface:
		return true
	case reflect.String:
		return t == reflect.TypeFor[string]()
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return false
		}
		return holdsString(t.Elem(), seen)
	case reflect.Array, reflect.Map:
		return holdsString(t.Elem(), seen)
	}
	return false
}
