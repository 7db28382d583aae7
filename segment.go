package jsearch

import (
	"strconv"
	"strings"
)

// SegmentKind identifies the variant of a Segment.
type SegmentKind uint8

const (
	// SegmentKey matches an object member by name.
	SegmentKey SegmentKind = iota
	// SegmentOptionalKey matches an object member that may be absent.
	SegmentOptionalKey
	// SegmentIndex matches an array element by position.
	SegmentIndex
	// SegmentOptionalIndex matches an array element that may be out of range.
	SegmentOptionalIndex
	// SegmentWildcard matches every member of an object or every element of
	// an array.
	SegmentWildcard
)

// Segment is one step of a search-path expression. A segment carries either
// key or index semantics, never both; whether it applies to the node it
// meets is decided during resolution, not at parse time. Segments are
// immutable.
type Segment struct {
	kind  SegmentKind
	key   string
	index int
}

// Key returns a segment matching the object member name. The name must be
// non-empty; an empty name has no textual form and never matches.
func Key(name string) Segment {
	return Segment{kind: SegmentKey, key: name}
}

// OptionalKey returns a segment matching the object member name, where the
// member is allowed to be absent.
func OptionalKey(name string) Segment {
	return Segment{kind: SegmentOptionalKey, key: name}
}

// Index returns a segment matching the array element at i.
func Index(i int) Segment {
	return Segment{kind: SegmentIndex, index: i}
}

// OptionalIndex returns a segment matching the array element at i, where i
// is allowed to be out of range.
func OptionalIndex(i int) Segment {
	return Segment{kind: SegmentOptionalIndex, index: i}
}

// Wildcard returns a segment matching every member of an object or every
// element of an array.
func Wildcard() Segment {
	return Segment{kind: SegmentWildcard}
}

// Kind returns the segment variant.
func (s Segment) Kind() SegmentKind { return s.kind }

// Key returns the member name for key segments and "" otherwise.
func (s Segment) Key() string { return s.key }

// Index returns the element position for index segments and 0 otherwise.
func (s Segment) Index() int { return s.index }

// Optional reports whether an unmatched segment is expected rather than
// exceptional. Resolution treats optional and required segments alike; the
// marker expresses caller intent and survives serialization.
func (s Segment) Optional() bool {
	return s.kind == SegmentOptionalKey || s.kind == SegmentOptionalIndex
}

// String returns the canonical text form of the segment in isolation, e.g.
// "name?", "[3]" or "[*]".
func (s Segment) String() string {
	var b strings.Builder
	s.appendTo(&b, true)
	return b.String()
}

func (s Segment) appendTo(b *strings.Builder, first bool) {
	switch s.kind {
	case SegmentKey, SegmentOptionalKey:
		if !first {
			b.WriteByte('.')
		}
		b.WriteString(EscapeKey(s.key))
		if s.kind == SegmentOptionalKey {
			b.WriteByte('?')
		}
	case SegmentIndex, SegmentOptionalIndex:
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(s.index))
		b.WriteByte(']')
		if s.kind == SegmentOptionalIndex {
			b.WriteByte('?')
		}
	case SegmentWildcard:
		b.WriteString("[*]")
	}
}

// Path is a parsed search-path expression: an immutable ordered sequence of
// segments. The zero value is the empty path, which addresses the root
// value itself.
type Path struct {
	segs []Segment
}

// NewPath builds a path from segments. The segments are copied.
func NewPath(segs ...Segment) Path {
	if len(segs) == 0 {
		return Path{}
	}
	cp := make([]Segment, len(segs))
	copy(cp, segs)
	return Path{segs: cp}
}

// Len returns the number of segments.
func (p Path) Len() int { return len(p.segs) }

// Segments returns a copy of the segment sequence.
func (p Path) Segments() []Segment {
	if len(p.segs) == 0 {
		return nil
	}
	cp := make([]Segment, len(p.segs))
	copy(cp, p.segs)
	return cp
}

// Equal reports whether two paths have identical segment sequences.
func (p Path) Equal(other Path) bool {
	if len(p.segs) != len(other.segs) {
		return false
	}
	for i, s := range p.segs {
		if s != other.segs[i] {
			return false
		}
	}
	return true
}

// String returns the canonical text form of the path. The result parses
// back to an equal path; the empty path serializes to "".
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p.segs {
		s.appendTo(&b, i == 0)
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler so path expressions embed
// as plain strings in JSON and YAML documents.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Path) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
