package jsearch

// Get returns the value addressed by path, re-walking the concrete steps
// from the root. It returns ErrPathNotFound when the path no longer exists,
// either because the tree was mutated after the path was resolved or
// because the path never was valid for this tree. The empty path returns
// root itself.
func Get(root Value, path ResolvedPath) (Value, error) {
	cur := root
	for _, step := range path.steps {
		var (
			next Value
			ok   bool
		)
		if step.isIndex {
			next, ok = cur.Element(step.index)
		} else {
			next, ok = cur.Member(step.key)
		}
		if !ok {
			return nil, ErrPathNotFound
		}
		cur = next
	}
	return cur, nil
}
