package jsearch

import (
	"fmt"
	"strconv"
	"strings"
)

// Step is one concrete step of a ResolvedPath: either an object member name
// or an array index, never a wildcard or an optional marker.
type Step struct {
	key     string
	index   int
	isIndex bool
}

// KeyStep returns a concrete object-member step.
func KeyStep(name string) Step {
	return Step{key: name}
}

// IndexStep returns a concrete array-element step.
func IndexStep(i int) Step {
	return Step{index: i, isIndex: true}
}

// IsIndex reports whether the step addresses an array element.
func (s Step) IsIndex() bool { return s.isIndex }

// Key returns the member name for key steps and "" otherwise.
func (s Step) Key() string { return s.key }

// Index returns the element position for index steps and 0 otherwise.
func (s Step) Index() int { return s.index }

// String returns the canonical text form of the step in isolation, e.g.
// "name" or "[3]".
func (s Step) String() string {
	if s.isIndex {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return EscapeKey(s.key)
}

// ResolvedPath addresses exactly one location in a specific tree. It is a
// plain sequence of owned steps with no live reference into the tree, so it
// survives mutation of the tree; whether it still addresses anything after
// a mutation is decided by the next Get, Set or Delete call.
type ResolvedPath struct {
	steps []Step
}

// NewResolvedPath builds a resolved path from steps. The steps are copied.
// The empty path addresses the root value.
func NewResolvedPath(steps ...Step) ResolvedPath {
	if len(steps) == 0 {
		return ResolvedPath{}
	}
	cp := make([]Step, len(steps))
	copy(cp, steps)
	return ResolvedPath{steps: cp}
}

// ParseResolved parses text in the Parse grammar restricted to concrete
// steps. Wildcard and optional segments are rejected.
func ParseResolved(text string) (ResolvedPath, error) {
	p, err := Parse(text)
	if err != nil {
		return ResolvedPath{}, err
	}
	steps := make([]Step, len(p.segs))
	for i, seg := range p.segs {
		switch seg.kind {
		case SegmentKey:
			steps[i] = KeyStep(seg.key)
		case SegmentIndex:
			steps[i] = IndexStep(seg.index)
		default:
			return ResolvedPath{}, fmt.Errorf("resolved path step %q must be a concrete key or index: %w", seg.String(), ErrInvalidPath)
		}
	}
	return ResolvedPath{steps: steps}, nil
}

// Len returns the number of steps.
func (p ResolvedPath) Len() int { return len(p.steps) }

// Steps returns a copy of the step sequence.
func (p ResolvedPath) Steps() []Step {
	if len(p.steps) == 0 {
		return nil
	}
	cp := make([]Step, len(p.steps))
	copy(cp, p.steps)
	return cp
}

// Parent returns the path with the last step removed. The second return is
// false when the path is empty, which has no parent.
func (p ResolvedPath) Parent() (ResolvedPath, bool) {
	if len(p.steps) == 0 {
		return ResolvedPath{}, false
	}
	return NewResolvedPath(p.steps[:len(p.steps)-1]...), true
}

// Equal reports whether two resolved paths have identical step sequences.
func (p ResolvedPath) Equal(other ResolvedPath) bool {
	if len(p.steps) != len(other.steps) {
		return false
	}
	for i, s := range p.steps {
		if s != other.steps[i] {
			return false
		}
	}
	return true
}

// String returns the canonical text form of the path, e.g. "users[0].name".
// The result parses back through ParseResolved to an equal path; the empty
// path serializes to "".
func (p ResolvedPath) String() string {
	var b strings.Builder
	for i, s := range p.steps {
		if !s.isIndex && i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (p ResolvedPath) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *ResolvedPath) UnmarshalText(text []byte) error {
	parsed, err := ParseResolved(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// child returns a new path extended by one step. The backing array is never
// shared, so sibling branches produced during resolution cannot clobber
// each other.
func (p ResolvedPath) child(s Step) ResolvedPath {
	steps := make([]Step, len(p.steps)+1)
	copy(steps, p.steps)
	steps[len(p.steps)] = s
	return ResolvedPath{steps: steps}
}
