// Package safepath confines file access to a single image root directory.
//
// A Root is established once at process startup and never changes. Resolve
// maps a caller-supplied file name (which must be treated as attacker
// controlled) to an absolute path proven to lie inside the root. Containment
// is checked on path segments, not string prefixes: a root of /img must
// reject /image2/x.
package safepath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsafe is returned by Resolve for any name whose canonical path
// escapes the root. Callers report it as-is and must not touch the
// filesystem for the rejected path.
var ErrUnsafe = errors.New("file path is outside the image root directory")

// Root is the single directory all tool operations are confined to.
// It is immutable for the process lifetime.
type Root struct {
	dir string // absolute, symlink-resolved
}

// New validates dir and returns a Root. The directory must exist and be a
// directory; its path is made absolute and symlink-resolved so later
// containment checks compare canonical forms.
func New(dir string) (*Root, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve image root: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("resolve image root: %w", err)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return nil, fmt.Errorf("stat image root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("image root %s is not a directory", dir)
	}
	return &Root{dir: resolved}, nil
}

// Dir returns the canonical root directory.
func (r *Root) Dir() string { return r.dir }

// Resolve joins name onto the root and returns the absolute path if its
// canonical form stays inside the root, or ErrUnsafe otherwise. The named
// file does not have to exist, but a symlink that exists and points outside
// the root is rejected.
//
// The lexical containment check runs before any filesystem access, so
// rejected names never cause file I/O.
func (r *Root) Resolve(name string) (string, error) {
	if name == "" {
		return "", ErrUnsafe
	}
	joined := name
	if !filepath.IsAbs(joined) {
		joined = filepath.Join(r.dir, joined)
	}
	joined = filepath.Clean(joined)
	if !r.contains(joined) {
		return "", ErrUnsafe
	}

	// A symlink inside the root can still point outside it.
	if resolved, err := filepath.EvalSymlinks(joined); err == nil && !r.contains(resolved) {
		return "", ErrUnsafe
	}
	return joined, nil
}

// contains reports whether path is the root itself or a descendant of it
// under a path-segment boundary.
func (r *Root) contains(path string) bool {
	rel, err := filepath.Rel(r.dir, path)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
