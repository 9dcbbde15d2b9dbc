package confparse

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// hasBrace reports whether pattern uses brace alternation ("{a,b}"), the
// one piece of glob(3)'s GLOB_BRACE that Go's stdlib filepath.Glob cannot
// express on its own.
func hasBrace(pattern string) bool {
	return strings.ContainsRune(pattern, '{') && strings.ContainsRune(pattern, '}')
}

// expandPattern expands an include pattern into a sorted list of concrete
// paths. Brace-alternated patterns are matched with gobwas/glob against a
// listing of the pattern's base directory (the one piece of glob(3)'s
// GLOB_BRACE stdlib's filepath.Glob cannot express); plain wildcard
// patterns use filepath.Glob directly, since a single stdlib call already
// walks the filesystem for that simpler, far more common case and pulling
// in the third-party matcher for it would just re-derive what Glob does.
// A pattern with no wildcard or brace metacharacters at all is treated as
// a literal path, matching spec.md §4.5 step 1's "otherwise treat pattern
// as a literal path".
func expandPattern(pattern string) ([]string, error) {
	if !hasBrace(pattern) {
		if !strings.ContainsAny(pattern, "*?[") {
			return []string{pattern}, nil
		}
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob() failed: %w", err)
		}
		sort.Strings(matches)
		return matches, nil
	}

	dir := filepath.Dir(pattern)
	base := filepath.Base(pattern)

	g, err := glob.Compile(base, '/')
	if err != nil {
		return nil, fmt.Errorf("glob() failed: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("glob() failed: %w", err)
	}

	var matches []string
	for _, entry := range entries {
		if g.Match(entry.Name()) {
			matches = append(matches, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(matches)
	return matches, nil
}

// includeFiles implements spec.md §4.5: expand pattern, and for each
// matched path (in expansion order) push an InputFrame onto stack. A
// tolerant include (!include_try) suppresses only "no file" and "no
// matches"; any other failure still aborts.
func includeFiles(stack *inputStack, pattern string, tolerant bool) error {
	matches, err := expandPattern(pattern)
	if err != nil {
		return err
	}

	if len(matches) == 0 {
		if tolerant {
			return nil
		}
		return fmt.Errorf("No matches")
	}

	for _, path := range matches {
		if stack.contains(path) {
			return fmt.Errorf("Recursive include file: %s", path)
		}
		if err := stack.push(path); err != nil {
			if tolerant && os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("Couldn't open include file %s: %w", path, err)
		}
	}
	return nil
}
