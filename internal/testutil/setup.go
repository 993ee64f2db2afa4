package testutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

// ResolvePath finds a repository-relative test file from the current
// package directory. Calls t.Skip if the file is not found.
//
// Example:
//
//	path := testutil.ResolvePath(t, testutil.RosterCSV)
func ResolvePath(t *testing.T, relativePath string) string {
	t.Helper()

	// Try paths in order of likelihood
	candidates := []string{
		relativePath,                  // Direct path (from repo root)
		"../" + relativePath,          // From package one level deep (e.g., registry/)
		"../../" + relativePath,       // From package two levels deep (e.g., pkg/citizens/)
		"../../../" + relativePath,    // From package three levels deep
		"../../../../" + relativePath, // From package four levels deep
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	t.Skipf("Test roster not found at any candidate path starting from: %s", relativePath)
	return "" // unreachable
}

// CopyToTemp copies a repository-relative test file into t.TempDir() under
// tempName and returns the new path.
func CopyToTemp(t *testing.T, relativePath, tempName string) string {
	t.Helper()

	src, err := os.Open(ResolvePath(t, relativePath))
	if err != nil {
		t.Fatalf("Failed to open %s: %v", relativePath, err)
	}
	defer src.Close()

	dstPath := filepath.Join(t.TempDir(), tempName)
	dst, err := os.Create(dstPath)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", dstPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		t.Fatalf("Failed to copy %s: %v", relativePath, err)
	}
	return dstPath
}
