//go:build windows

// Package mmfile provides platform-specific helpers for memory-mapping roster files.
package mmfile

import (
	"os"
)

// Map reads the file at path into memory.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}
