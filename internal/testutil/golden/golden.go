// Package golden compares test output against checked-in golden files.
// Run tests with -update to rewrite them.
package golden

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var update = flag.Bool("update", false, "update golden files")

// Assert compares got against testdata/<name>.golden in the caller's
// package directory, rewriting the file when -update is set.
func Assert(t *testing.T, name, got string) {
	t.Helper()

	if strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		t.Fatalf("invalid golden name %q", name)
	}
	path := filepath.Join("testdata", name+".golden")

	if *update {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("mkdir testdata: %v", err)
		}
		if err := os.WriteFile(path, []byte(got), 0o600); err != nil {
			t.Fatalf("write golden %s: %v", path, err)
		}
		return
	}

	want, err := os.ReadFile(path) //nolint:gosec // testdata path controlled by test
	if err != nil {
		t.Fatalf("read golden %s (run with -update to create): %v", path, err)
	}
	if got != string(want) {
		t.Errorf("output does not match %s\ngot:\n%s\nwant:\n%s", path, got, want)
	}
}
