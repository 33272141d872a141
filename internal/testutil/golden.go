// Package testutil holds helpers shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// AssertGolden compares a rendered frame with testdata/<goldenName> at the
// repository root. Set UPDATE_GOLDEN to rewrite the file from output.
func AssertGolden(t *testing.T, goldenName, output string) {
	t.Helper()
	path := filepath.Join(repoRoot(t), "testdata", goldenName)
	if os.Getenv("UPDATE_GOLDEN") != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create testdata: %v", err)
		}
		if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
			t.Fatalf("failed to update golden: %v", err)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden %s: %v", goldenName, err)
	}
	if string(data) != output {
		t.Fatalf("output mismatch for %s\nexpected:\n%s\nactual:\n%s", goldenName, string(data), output)
	}
}

// AssertLinesInOrder fails unless every want appears in frame, each on a
// later row than the one before.
func AssertLinesInOrder(t *testing.T, frame string, want ...string) {
	t.Helper()
	rows := strings.Split(frame, "\n")
	row := 0
	for _, w := range want {
		found := false
		for ; row < len(rows); row++ {
			if strings.Contains(rows[row], w) {
				found = true
				row++
				break
			}
		}
		if !found {
			t.Fatalf("expected %q below the previous match in frame:\n%s", w, frame)
		}
	}
}

func repoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
