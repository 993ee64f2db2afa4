// Package roster reads and writes citizen roster files.
//
// A roster is a flat list of person records in one of three formats:
//
//	csv   header row "id,first_name,last_name,birth_date", one person per row
//	json  array of {"id", "first_name", "last_name", "birth_date"} objects
//	yaml  sequence of mappings with the same keys
//
// Birth dates are always YYYY-MM-DD. Input may be UTF-8 or a legacy
// single-byte encoding (Windows-1252, ISO-8859-1); output is always UTF-8.
// Every record is validated before it is converted to a types.Person.
package roster

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrUnknownFormat indicates a format name or file extension that is not csv, json or yaml.
	ErrUnknownFormat = errors.New("roster: unknown format")

	// ErrUnknownEncoding indicates an unsupported character encoding name.
	ErrUnknownEncoding = errors.New("roster: unknown encoding")

	// ErrMissingColumn indicates a CSV header without a required column.
	ErrMissingColumn = errors.New("roster: missing column")

	// ErrInvalidRecord indicates a record that failed validation.
	ErrInvalidRecord = errors.New("roster: invalid record")
)

// Format is a roster file format.
type Format string

// Supported formats.
const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a user-supplied format name into a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Encoding is the character encoding of roster input.
type Encoding string

// Supported encodings.
const (
	EncodingUTF8        Encoding = "utf-8"
	EncodingWindows1252 Encoding = "windows-1252"
	EncodingLatin1      Encoding = "iso-8859-1"
)

// ParseEncoding converts a user-supplied encoding name into an Encoding.
// The empty string means UTF-8.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8, nil
	case "windows-1252", "cp1252":
		return EncodingWindows1252, nil
	case "iso-8859-1", "latin1", "latin-1":
		return EncodingLatin1, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}

// decoder returns a transformer that converts e into UTF-8. UTF-8 input
// may start with a byte order mark, which is dropped.
func (e Encoding) decoder() (transform.Transformer, error) {
	switch e {
	case "", EncodingUTF8:
		return unicode.BOMOverride(unicode.UTF8.NewDecoder()), nil
	case EncodingWindows1252:
		return charmap.Windows1252.NewDecoder(), nil
	case EncodingLatin1:
		return charmap.ISO8859_1.NewDecoder(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, string(e))
}

// Options controls roster decoding.
type Options struct {
	// Format selects the decoder. ReadFile infers it from the extension when empty.
	Format Format

	// Encoding is the input character encoding. Default: UTF-8.
	Encoding Encoding
}

// ParseError reports a record that could not be decoded or validated.
type ParseError struct {
	Record int    // 1-based record number (excluding the CSV header)
	Line   int    // 1-based source line for CSV input, 0 otherwise
	Field  string // Offending column, empty if not attributable
	Err    error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "roster: record %d", e.Record)
	if e.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", e.Line)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, ": %s", e.Field)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
