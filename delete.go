package jsearch

// Delete removes the value addressed by path from its parent container.
// Deleting from an array compacts it - subsequent elements shift down by
// one index - and deleting from an object preserves the iteration order of
// the remaining members. A path that no longer exists fails with
// ErrPathNotFound, as does the empty path: the root cannot be deleted from
// anything.
//
// Deleting several matches of one Resolve call from the same array
// invalidates the higher indices; process such batches in descending index
// order or re-resolve between calls.
func Delete(root Value, path ResolvedPath) error {
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
		if !parent.RemoveElement(last.index) {
			return ErrPathNotFound
		}
		return nil
	}
	if !parent.RemoveMember(last.key) {
		return ErrPathNotFound
	}
	return nil
}
