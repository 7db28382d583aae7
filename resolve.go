package jsearch

// Match pairs one concrete location with the value found there during
// resolution. The Value reference stays valid only until the tree is
// structurally mutated; the ResolvedPath survives mutation and can be
// re-checked with Get.
type Match struct {
	Path  ResolvedPath
	Value Value
}

// Resolve walks root according to the expression and returns every location
// it matches, in deterministic order: depth-first and left-to-right over
// the segments, with wildcards fanning out in insertion order for objects
// and ascending index order for arrays. The empty expression matches the
// root itself.
//
// Resolve never fails. A segment that cannot be satisfied - a missing key,
// an out-of-range index, a wildcard over a scalar, or a key/index applied
// to a node of the wrong kind - contributes no matches, whether the segment
// is optional or required. Callers branch on an empty result, never on an
// error.
func Resolve(root Value, expr Path) []Match {
	var out []Match
	resolveStep(root, expr.segs, ResolvedPath{}, &out)
	return out
}

func resolveStep(node Value, segs []Segment, prefix ResolvedPath, out *[]Match) {
	if len(segs) == 0 {
		*out = append(*out, Match{Path: prefix, Value: node})
		return
	}

	head, tail := segs[0], segs[1:]
	switch head.kind {
	case SegmentKey, SegmentOptionalKey:
		child, ok := node.Member(head.key)
		if !ok {
			return
		}
		resolveStep(child, tail, prefix.child(KeyStep(head.key)), out)

	case SegmentIndex, SegmentOptionalIndex:
		child, ok := node.Element(head.index)
		if !ok {
			return
		}
		resolveStep(child, tail, prefix.child(IndexStep(head.index)), out)

	case SegmentWildcard:
		switch {
		case node.IsObject():
			node.Members(func(key string, v Value) bool {
				resolveStep(v, tail, prefix.child(KeyStep(key)), out)
				return true
			})
		case node.IsArray():
			node.Elements(func(i int, v Value) bool {
				resolveStep(v, tail, prefix.child(IndexStep(i)), out)
				return true
			})
		}
		// Scalars fan out to nothing.
	}
}
