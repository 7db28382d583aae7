// Package jsearch resolves declarative search-path expressions against
// in-memory JSON value trees.
//
// A search path such as "users[*].name?" is parsed once into a Path and can
// then be resolved against any number of documents. Resolution walks the
// tree depth-first and returns every concrete location the expression
// matches, each as a wildcard-free ResolvedPath paired with the value found
// there. Get, Set and Delete operate on a single ResolvedPath and re-walk
// the tree from the root on every call, so a path produced by Resolve stays
// usable until the tree is structurally mutated.
//
// Resolve never fails: an expression that matches nothing returns an empty
// result, whether the unmatched segment was optional or required. Only the
// parser (malformed path text) and the executors (stale or never-valid
// ResolvedPath) return errors.
//
// The package is synchronous and does no I/O. Concurrent resolution of the
// same tree is safe as long as nothing mutates it; results of Resolve are
// invalidated by any structural mutation of the tree they were produced
// from. When applying Delete to several matches inside the same array,
// process them in descending index order or re-resolve between calls.
package jsearch

import "errors"

// Common errors returned by parsing and path operations.
var (
	// ErrInvalidPath reports malformed path expression text. Errors returned
	// by Parse wrap it, so errors.Is(err, ErrInvalidPath) always holds.
	ErrInvalidPath = errors.New("invalid path syntax")

	// ErrPathNotFound reports that a ResolvedPath no longer addresses an
	// existing location, either because the tree was mutated after the path
	// was resolved or because the path never was valid for this tree.
	ErrPathNotFound = errors.New("path not found in document")
)
