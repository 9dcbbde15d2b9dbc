package confparse

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("key = value\n"), 0o644); err != nil {
			t.Fatalf("WriteFile(%s): %v", n, err)
		}
	}
}

func TestExpandPatternLiteral(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.conf")
	path := filepath.Join(dir, "a.conf")

	matches, err := expandPattern(path)
	if err != nil {
		t.Fatalf("expandPattern: %v", err)
	}
	if len(matches) != 1 || matches[0] != path {
		t.Errorf("matches = %v, want [%s]", matches, path)
	}
}

func TestExpandPatternWildcard(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.conf", "b.conf", "c.txt")

	matches, err := expandPattern(filepath.Join(dir, "*.conf"))
	if err != nil {
		t.Fatalf("expandPattern: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("matches = %v, want 2 entries", matches)
	}
}

func TestExpandPatternBrace(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.conf", "b.conf", "c.conf")

	matches, err := expandPattern(filepath.Join(dir, "{a,b}.conf"))
	if err != nil {
		t.Fatalf("expandPattern: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("matches = %v, want 2 entries", matches)
	}
}

func TestExpandPatternNoMatches(t *testing.T) {
	dir := t.TempDir()
	matches, err := expandPattern(filepath.Join(dir, "*.conf"))
	if err != nil {
		t.Fatalf("expandPattern: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("matches = %v, want none", matches)
	}
}

func TestIncludeFilesTolerantNoMatches(t *testing.T) {
	dir := t.TempDir()
	stack := &inputStack{}
	defer stack.closeAll()

	if err := includeFiles(stack, filepath.Join(dir, "*.conf"), true); err != nil {
		t.Errorf("tolerant include with no matches should succeed, got %v", err)
	}
}

func TestIncludeFilesStrictNoMatches(t *testing.T) {
	dir := t.TempDir()
	stack := &inputStack{}
	defer stack.closeAll()

	if err := includeFiles(stack, filepath.Join(dir, "*.conf"), false); err == nil {
		t.Errorf("strict include with no matches should fail")
	}
}

func TestIncludeFilesRecursionDetected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.conf")
	writeFiles(t, dir, "a.conf")

	stack := &inputStack{}
	defer stack.closeAll()
	if err := stack.push(path); err != nil {
		t.Fatalf("push: %v", err)
	}

	if err := includeFiles(stack, path, false); err == nil {
		t.Errorf("expected recursive include error")
	}
}
