package jsonutil

import (
	"strconv"
	"strings"
)

// pathRef builds JSON Pointer paths in a chain-safe way. Paths are only
// rendered when an error is reported.
type pathRef struct {
	parent *pathRef
	part   string
}

var rootPath = &pathRef{}

func (p *pathRef) Field(name string) *pathRef {
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return &pathRef{parent: p, part: esc}
}

func (p *pathRef) Index(i int) *pathRef {
	return &pathRef{parent: p, part: strconv.Itoa(i)}
}

func (p *pathRef) Pointer() string {
	if p == nil || p.parent == nil {
		return "/"
	}
	var parts []string
	for q := p; q.parent != nil; q = q.parent {
		parts = append(parts, q.part)
	}
	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(parts[i])
	}
	return b.String()
}
