package jsearch

// Value is the minimal capability surface jsearch needs from a JSON-like
// tree. The package never owns a tree; it borrows one for the duration of a
// Resolve, Get, Set or Delete call. Any representation with ordered object
// members and indexable arrays can implement it; JSONValue is the bundled
// implementation.
//
// Accessors return false instead of an error when the node has the wrong
// kind or the key/index is absent. Mutators likewise report whether they
// applied; they must not create members or elements that do not already
// exist. Object implementations must iterate members in insertion order and
// preserve that order across RemoveMember; array implementations must
// compact on RemoveElement so no hole is left behind.
type Value interface {
	// IsObject reports whether the node is a JSON object.
	IsObject() bool
	// IsArray reports whether the node is a JSON array.
	IsArray() bool
	// IsScalar reports whether the node is neither object nor array.
	// Null counts as a scalar.
	IsScalar() bool

	// Member returns the named object member.
	Member(key string) (Value, bool)
	// Element returns the array element at i.
	Element(i int) (Value, bool)
	// Len returns the member or element count, and 0 for scalars.
	Len() int

	// Members calls fn for each object member in insertion order until fn
	// returns false. It is a no-op on non-objects.
	Members(fn func(key string, v Value) bool)
	// Elements calls fn for each array element in ascending index order
	// until fn returns false. It is a no-op on non-arrays.
	Elements(fn func(i int, v Value) bool)

	// SetMember replaces an existing object member.
	SetMember(key string, v Value) bool
	// SetElement replaces an existing array element.
	SetElement(i int, v Value) bool
	// RemoveMember deletes an object member, preserving the order of the
	// remaining members.
	RemoveMember(key string) bool
	// RemoveElement deletes an array element, shifting subsequent elements
	// down by one index.
	RemoveElement(i int) bool
}
