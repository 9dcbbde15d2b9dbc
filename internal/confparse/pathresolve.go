package confparse

import "path/filepath"

// ResolveIncludePath resolves an include pattern relative to the directory
// of the including file. Absolute patterns pass through unchanged; a
// relative pattern is joined against the including path's directory, which
// is "." (a no-op join) when that path has no directory component of its
// own.
func ResolveIncludePath(pattern, includingPath string) string {
	if filepath.IsAbs(pattern) {
		return pattern
	}
	return filepath.Join(filepath.Dir(includingPath), pattern)
}
