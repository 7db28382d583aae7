package jsearch

// Set replaces the value addressed by path with v. The path must already
// exist member-by-member: Set never creates missing intermediate containers
// and never appends, so a stale path fails with ErrPathNotFound instead of
// silently reshaping the document. The empty path is rejected with
// ErrPathNotFound as well, since the root has no parent to replace it
// through.
func Set(root Value, path ResolvedPath, v Value) error {
	parentPath, ok := path.Parent()
	if !ok {
		return ErrPathNotFound
	}
	parent, err := Get(root, parentPath)
	if err != nil {
		return err
	}

	last := path.steps[len(path.steps)-1]
	if last.isIndex {
		if !parent.SetElement(last.index, v) {
			return ErrPathNotFound
		}
		return nil
	}
	if !parent.SetMember(last.key, v) {
		return ErrPathNotFound
	}
	return nil
}
