package jsearch

import (
	"fmt"
	"strconv"

	"github.com/valyala/fastjson"
)

// JSONValue is the bundled Value implementation, backed by fastjson. It is
// the default document type because fastjson keeps object members in
// insertion order and compacts arrays on delete, which the Value contract
// requires.
type JSONValue struct {
	v *fastjson.Value
}

// ParseDocument parses JSON text into a mutable document tree.
func ParseDocument(data []byte) (*JSONValue, error) {
	v, err := fastjson.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &JSONValue{v: v}, nil
}

// MustParseDocument is like ParseDocument but panics on malformed JSON.
// Intended for fixtures and documents fixed at compile time.
func MustParseDocument(s string) *JSONValue {
	return &JSONValue{v: fastjson.MustParse(s)}
}

// FromFastJSON wraps an existing fastjson value. The value is shared, not
// copied; mutations through either handle are visible to both.
func FromFastJSON(v *fastjson.Value) *JSONValue {
	if v == nil {
		return nil
	}
	return &JSONValue{v: v}
}

// Fast returns the underlying fastjson value.
func (j *JSONValue) Fast() *fastjson.Value { return j.v }

// MarshalJSON implements json.Marshaler.
func (j *JSONValue) MarshalJSON() ([]byte, error) {
	return j.v.MarshalTo(nil), nil
}

// String returns the compact JSON text of the node.
func (j *JSONValue) String() string {
	return string(j.v.MarshalTo(nil))
}

// IsObject implements Value.
func (j *JSONValue) IsObject() bool { return j.v.Type() == fastjson.TypeObject }

// IsArray implements Value.
func (j *JSONValue) IsArray() bool { return j.v.Type() == fastjson.TypeArray }

// IsScalar implements Value.
func (j *JSONValue) IsScalar() bool {
	t := j.v.Type()
	return t != fastjson.TypeObject && t != fastjson.TypeArray
}

// Member implements Value.
func (j *JSONValue) Member(key string) (Value, bool) {
	o, err := j.v.Object()
	if err != nil {
		return nil, false
	}
	child := o.Get(key)
	if child == nil {
		return nil, false
	}
	return &JSONValue{v: child}, true
}

// Element implements Value.
func (j *JSONValue) Element(i int) (Value, bool) {
	a, err := j.v.Array()
	if err != nil || i < 0 || i >= len(a) {
		return nil, false
	}
	return &JSONValue{v: a[i]}, true
}

// Len implements Value.
func (j *JSONValue) Len() int {
	switch j.v.Type() {
	case fastjson.TypeObject:
		o, _ := j.v.Object()
		return o.Len()
	case fastjson.TypeArray:
		a, _ := j.v.Array()
		return len(a)
	}
	return 0
}

// Members implements Value. fastjson's Visit cannot stop early, so a
// stopped iteration still walks the remaining members without calling fn.
func (j *JSONValue) Members(fn func(key string, v Value) bool) {
	o, err := j.v.Object()
	if err != nil {
		return
	}
	stopped := false
	o.Visit(func(key []byte, v *fastjson.Value) {
		if stopped {
			return
		}
		if !fn(string(key), &JSONValue{v: v}) {
			stopped = true
		}
	})
}

// Elements implements Value.
func (j *JSONValue) Elements(fn func(i int, v Value) bool) {
	a, err := j.v.Array()
	if err != nil {
		return
	}
	for i, v := range a {
		if !fn(i, &JSONValue{v: v}) {
			return
		}
	}
}

// SetMember implements Value. The replacement must be a *JSONValue; values
// from a different Value implementation are rejected.
func (j *JSONValue) SetMember(key string, v Value) bool {
	jv, ok := v.(*JSONValue)
	if !ok {
		return false
	}
	o, err := j.v.Object()
	if err != nil || o.Get(key) == nil {
		return false
	}
	o.Set(key, jv.v)
	return true
}

// SetElement implements Value. The replacement must be a *JSONValue.
func (j *JSONValue) SetElement(i int, v Value) bool {
	jv, ok := v.(*JSONValue)
	if !ok {
		return false
	}
	a, err := j.v.Array()
	if err != nil || i < 0 || i >= len(a) {
		return false
	}
	j.v.SetArrayItem(i, jv.v)
	return true
}

// RemoveMember implements Value.
func (j *JSONValue) RemoveMember(key string) bool {
	o, err := j.v.Object()
	if err != nil || o.Get(key) == nil {
		return false
	}
	o.Del(key)
	return true
}

// RemoveElement implements Value.
func (j *JSONValue) RemoveElement(i int) bool {
	a, err := j.v.Array()
	if err != nil || i < 0 || i >= len(a) {
		return false
	}
	j.v.Del(strconv.Itoa(i))
	return true
}
