package roster

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/citizenkit/pkg/types"
)

// Write encodes people to w in the given format, in slice order, as UTF-8.
func Write(w io.Writer, people []*types.Person, format Format) error {
	switch format {
	case FormatCSV:
		return writeCSV(w, people)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records(people))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(YAMLIndent)
		if err := enc.Encode(records(people)); err != nil {
			return fmt.Errorf("roster: encoding yaml: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
}

func writeCSV(w io.Writer, people []*types.Person) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	row := make([]string, len(Header))
	for _, p := range people {
		row[0] = strconv.Itoa(p.ID)
		row[1] = p.FirstName
		row[2] = p.LastName
		row[3] = p.BirthDate.String()
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func records(people []*types.Person) []Record {
	out := make([]Record, len(people))
	for i, p := range people {
		out[i] = NewRecord(p)
	}
	return out
}
