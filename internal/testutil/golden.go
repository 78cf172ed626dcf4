// Package testutil provides shared test helpers for golden file testing.
package testutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

// Update is a flag that, when set, regenerates golden files from current output.
// Usage: go test ./... -update
var Update = flag.Bool("update", false, "update golden files")

// RenderFunc is the signature for a function that diffs two texts and
// renders the result.
type RenderFunc func(t *testing.T, a, b string) string

// RunGolden runs a single golden file test in the given directory.
// It reads a.txt and b.txt, applies renderFn, and compares against expected.txt.
func RunGolden(t *testing.T, dir string, renderFn RenderFunc) {
	t.Helper()

	a := readFile(t, filepath.Join(dir, "a.txt"))
	b := readFile(t, filepath.Join(dir, "b.txt"))
	expectedPath := filepath.Join(dir, "expected.txt")

	actual := renderFn(t, a, b)

	if *Update {
		if err := os.WriteFile(expectedPath, []byte(actual), 0o644); err != nil {
			t.Fatalf("failed to update golden file %s: %v", expectedPath, err)
		}
		t.Logf("updated golden file: %s", expectedPath)
		return
	}

	expected := readFile(t, expectedPath)
	if actual != expected {
		t.Errorf("output mismatch for %s:\n--- expected\n%q\n--- actual\n%q", dir, expected, actual)
	}
}

// RunGoldenDir walks all subdirectories under testdataDir and runs
// RunGolden for each as a subtest.
func RunGoldenDir(t *testing.T, testdataDir string, renderFn RenderFunc) {
	t.Helper()

	entries, err := os.ReadDir(testdataDir)
	if err != nil {
		t.Fatalf("failed to read testdata dir %s: %v", testdataDir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		t.Run(entry.Name(), func(t *testing.T) {
			dir := filepath.Join(testdataDir, entry.Name())
			RunGolden(t, dir, renderFn)
		})
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
