package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testAsOf pins ages in command tests: the reference roster is
// 34, 39, 29, 24 and 36 years old on this date.
const testAsOf = "2025-01-01"

// testRosterPath returns the path to a roster under the repository testdata
func testRosterPath(t *testing.T, name string) string {
	t.Helper()
	// Go up two directories from cmd/citizenctl to repo root
	root := filepath.Join("..", "..")
	path := filepath.Join(root, "testdata", name)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("test file not found: %s", path)
	}
	return path
}

// resetFlags restores global flags to their defaults, pinned to testAsOf
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	asOf = testAsOf
	rosterEncoding = "utf-8"
	rosterFormat = ""
	logLevel = ""
	logDir = ""
	listSort = "id"
	exportTo = ""
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	// Read captured output
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}

// assertOrder checks that the expected strings appear in output in order
func assertOrder(t *testing.T, output string, ordered []string) {
	t.Helper()
	last := -1
	for _, s := range ordered {
		i := strings.Index(output, s)
		if i < 0 {
			t.Errorf("output missing expected string %q\nGot: %s", s, output)
			return
		}
		if i < last {
			t.Errorf("%q appears out of order\nGot: %s", s, output)
			return
		}
		last = i
	}
}
