package roster

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/citizenkit/internal/mmfile"
	"github.com/joshuapare/citizenkit/pkg/types"
)

// ReadFile decodes the roster at path. The file is memory-mapped for the
// duration of the decode; the returned people do not reference it.
func ReadFile(path string, opts Options) ([]*types.Person, error) {
	if opts.Format == "" {
		format, err := FormatFromPath(path)
		if err != nil {
			return nil, err
		}
		opts.Format = format
	}

	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("roster: open %s: %w", path, err)
	}
	defer cleanup() //nolint:errcheck // read-only mapping

	people, err := Decode(bytes.NewReader(data), opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return people, nil
}

// Decode reads a roster from r. Records are returned in file order,
// including any repeated IDs; de-duplication is the registry's job.
func Decode(r io.Reader, opts Options) ([]*types.Person, error) {
	dec, err := opts.Encoding.decoder()
	if err != nil {
		return nil, err
	}
	// Convert to BOM-free UTF-8 before any parser sees the bytes.
	r = transform.NewReader(r, dec)

	switch opts.Format {
	case FormatCSV:
		return decodeCSV(r)
	case FormatJSON:
		return decodeJSON(r)
	case FormatYAML:
		return decodeYAML(r)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(opts.Format))
}

func decodeCSV(r io.Reader) ([]*types.Person, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []*types.Person{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("roster: reading header: %w", err)
	}
	cols, err := columnIndexes(header)
	if err != nil {
		return nil, err
	}

	people := make([]*types.Person, 0, InitialRecordCapacity)
	for n := 1; ; n++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var csvErr *csv.ParseError
			line := 0
			if errors.As(err, &csvErr) {
				line = csvErr.Line
			}
			return nil, &ParseError{Record: n, Line: line, Err: err}
		}
		line, _ := cr.FieldPos(0)

		rec := Record{
			LastName:  row[cols[ColumnLastName]],
			BirthDate: row[cols[ColumnBirthDate]],
		}
		if i, ok := cols[ColumnFirstName]; ok {
			rec.FirstName = row[i]
		}
		if raw := strings.TrimSpace(row[cols[ColumnID]]); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil {
				return nil, &ParseError{Record: n, Line: line, Field: ColumnID, Err: err}
			}
			rec.ID = &id
		}

		p, field, err := rec.Person()
		if err != nil {
			return nil, &ParseError{Record: n, Line: line, Field: field, Err: err}
		}
		people = append(people, p)
	}
	return people, nil
}

// columnIndexes maps header names to positions. Headers are matched
// case-insensitively; first_name is optional.
func columnIndexes(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, UTF8BOM)
		}
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{ColumnID, ColumnLastName, ColumnBirthDate} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}
	return cols, nil
}

func decodeJSON(r io.Reader) ([]*types.Person, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var records []Record
	if err := dec.Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return []*types.Person{}, nil
		}
		return nil, fmt.Errorf("roster: decoding json: %w", err)
	}
	return convert(records)
}

func decodeYAML(r io.Reader) ([]*types.Person, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var records []Record
	if err := dec.Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return []*types.Person{}, nil
		}
		return nil, fmt.Errorf("roster: decoding yaml: %w", err)
	}
	return convert(records)
}

func convert(records []Record) ([]*types.Person, error) {
	people := make([]*types.Person, 0, len(records))
	for i, rec := range records {
		p, field, err := rec.Person()
		if err != nil {
			return nil, &ParseError{Record: i + 1, Field: field, Err: err}
		}
		people = append(people, p)
	}
	return people, nil
}
