package jsonutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

type dupFrame struct {
	path      *pathRef
	object    bool
	keys      map[string]struct{}
	key       string // member being read (objects)
	index     int    // next element index (arrays)
	expectKey bool
}

// FindDuplicateMembers scans a JSON document and returns the JSON Pointer of
// every member whose name repeats within the same object, in document order.
// Decoders keep the last value silently, so callers that sign or compare
// payloads should reject such documents.
func FindDuplicateMembers(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var (
		dups  []string
		stack []*dupFrame
	)
	// next returns the path of the value about to be read and advances the
	// enclosing container.
	next := func() *pathRef {
		if len(stack) == 0 {
			return rootPath
		}
		top := stack[len(stack)-1]
		if top.object {
			top.expectKey = true
			return top.path.Field(top.key)
		}
		p := top.path.Index(top.index)
		top.index++
		return p
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			if len(stack) > 0 {
				return dups, io.ErrUnexpectedEOF
			}
			break
		}
		if err != nil {
			return dups, err
		}
		if s, ok := tok.(string); ok && len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.object && top.expectKey {
				if _, seen := top.keys[s]; seen {
					dups = append(dups, top.path.Field(s).Pointer())
				}
				top.keys[s] = struct{}{}
				top.key = s
				top.expectKey = false
				continue
			}
		}
		switch tok {
		case json.Delim('{'):
			stack = append(stack, &dupFrame{path: next(), object: true, keys: map[string]struct{}{}, expectKey: true})
		case json.Delim('['):
			stack = append(stack, &dupFrame{path: next()})
		case json.Delim('}'), json.Delim(']'):
			stack = stack[:len(stack)-1]
		default:
			next()
		}
	}
	return dups, nil
}

func (n *Normalizer) checkDuplicateMembers(data []byte) error {
	if n.o.dupMembers == Ignore {
		return nil
	}
	dups, err := FindDuplicateMembers(data)
	if err != nil {
		return err
	}
	for _, p := range dups {
		if n.o.dupMembers == Error {
			return &NormalizeError{Path: p, Code: CodeDuplicateMember, Type: "object"}
		}
		n.o.emit(CodeDuplicateMember, p)
	}
	return nil
}
