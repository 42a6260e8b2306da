package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteSource writes a source file into dir and returns its path.
func WriteSource(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// TempSource writes content to a fresh temp file and returns its path.
// The file lives in t.TempDir() and is cleaned up automatically.
func TempSource(t testing.TB, content string) string {
	t.Helper()
	return WriteSource(t, t.TempDir(), "input.dicta", content)
}
