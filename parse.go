package jsearch

import (
	"fmt"
	"strconv"
	"strings"
)

// SyntaxError describes malformed path expression text. It carries the byte
// offset of the offending character (len(text) when input ended early) and
// a description of what was expected there. SyntaxError wraps
// ErrInvalidPath.
type SyntaxError struct {
	Offset   int
	Expected string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: expected %s", e.Offset, e.Expected)
}

func (e *SyntaxError) Unwrap() error { return ErrInvalidPath }

// Parse turns a path expression into a Path.
//
// A path is a sequence of steps. Key steps are separated by dots; bracket
// steps attach directly: "users[0].name", "a.b[*]", "tags[2]?". A step is
// one of:
//
//	ident     exact object member
//	ident?    object member that may be absent
//	[n]       exact array element, n a non-negative integer
//	[n]?      array element that may be out of range
//	[*] or *  every member of an object / every element of an array
//
// Identifiers may contain any byte; '.', '[', ']', '*', '?' and '\' must be
// backslash-escaped (see EscapeKey). The empty string parses to the empty
// path, which addresses the root value.
//
// Parse is pure: it never touches a document. All failures return a
// *SyntaxError wrapping ErrInvalidPath.
func Parse(text string) (Path, error) {
	if text == "" {
		return Path{}, nil
	}

	var segs []Segment
	i := 0
	for i < len(text) {
		if len(segs) > 0 {
			// Between steps: a dot introduces a key, wildcard or bracket
			// step; a bracket step may also attach directly.
			switch text[i] {
			case '.':
				i++
				if i == len(text) {
					return Path{}, &SyntaxError{Offset: i, Expected: "path step after '.'"}
				}
			case '[':
			default:
				return Path{}, &SyntaxError{Offset: i, Expected: "'.' or '['"}
			}
		}

		seg, next, err := parseStep(text, i)
		if err != nil {
			return Path{}, err
		}
		segs = append(segs, seg)
		i = next
	}
	return Path{segs: segs}, nil
}

// MustParse is like Parse but panics on malformed text. Intended for
// expressions fixed at compile time.
func MustParse(text string) Path {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}

func parseStep(text string, i int) (Segment, int, error) {
	switch text[i] {
	case '[':
		return parseBracketStep(text, i)
	case '*':
		// Bare wildcard. Anything glued to it is malformed.
		i++
		if i < len(text) && text[i] != '.' && text[i] != '[' {
			return Segment{}, 0, &SyntaxError{Offset: i, Expected: "'.' or '['"}
		}
		return Wildcard(), i, nil
	default:
		return parseKeyStep(text, i)
	}
}

// parseBracketStep parses "[n]", "[n]?" and "[*]" with i at the '['.
func parseBracketStep(text string, i int) (Segment, int, error) {
	i++ // consume '['
	if i == len(text) {
		return Segment{}, 0, &SyntaxError{Offset: i, Expected: "array index or '*'"}
	}

	if text[i] == '*' {
		i++
		if i == len(text) || text[i] != ']' {
			return Segment{}, 0, &SyntaxError{Offset: i, Expected: "']'"}
		}
		// The optional marker is meaningless on a wildcard; a trailing '?'
		// is rejected by the between-steps check in Parse.
		return Wildcard(), i + 1, nil
	}

	start := i
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		i++
	}
	if i == start {
		return Segment{}, 0, &SyntaxError{Offset: i, Expected: "array index or '*'"}
	}
	if i == len(text) || text[i] != ']' {
		return Segment{}, 0, &SyntaxError{Offset: i, Expected: "']'"}
	}
	idx, err := strconv.Atoi(text[start:i])
	if err != nil {
		return Segment{}, 0, &SyntaxError{Offset: start, Expected: "array index in range"}
	}
	i++ // consume ']'

	if i < len(text) && text[i] == '?' {
		return OptionalIndex(idx), i + 1, nil
	}
	return Index(idx), i, nil
}

// parseKeyStep parses "ident" and "ident?" with i at the first identifier
// byte.
func parseKeyStep(text string, i int) (Segment, int, error) {
	var key strings.Builder
scan:
	for i < len(text) {
		switch c := text[i]; c {
		case '\\':
			i++
			if i == len(text) {
				return Segment{}, 0, &SyntaxError{Offset: i, Expected: "escaped character"}
			}
			key.WriteByte(text[i])
			i++
		case '.', '[', '?':
			break scan
		case ']', '*':
			return Segment{}, 0, &SyntaxError{Offset: i, Expected: fmt.Sprintf("'.', '[', '?' or end of path (escape '%c' to use it in a key)", c)}
		default:
			key.WriteByte(c)
			i++
		}
	}
	if key.Len() == 0 {
		return Segment{}, 0, &SyntaxError{Offset: i, Expected: "path step"}
	}

	if i < len(text) && text[i] == '?' {
		return OptionalKey(key.String()), i + 1, nil
	}
	return Key(key.String()), i, nil
}
