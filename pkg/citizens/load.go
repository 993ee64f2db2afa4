package citizens

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/joshuapare/citizenkit/pkg/roster"
	"github.com/joshuapare/citizenkit/pkg/types"
)

// LoadOptions configures Load and LoadReader.
type LoadOptions struct {
	// Format of the roster. Load infers it from the file extension when empty;
	// LoadReader requires it.
	Format roster.Format

	// Encoding of the roster. Default: UTF-8.
	Encoding roster.Encoding

	// Now supplies the current time for FindByAge. Default: time.Now.
	Now func() time.Time

	// Logger for the returned Directory. Default: discard.
	Logger *slog.Logger
}

// LoadReport summarizes a load.
type LoadReport struct {
	Read    int // Records decoded from the roster
	Added   int // Records registered
	Skipped int // Records rejected because their ID was already registered
}

// Load reads the roster at path into a new Directory.
// A record whose ID repeats an earlier record is skipped and counted in
// LoadReport.Skipped; the first occurrence wins.
func Load(path string, opts LoadOptions) (*Directory, LoadReport, error) {
	people, err := roster.ReadFile(path, roster.Options{Format: opts.Format, Encoding: opts.Encoding})
	if err != nil {
		return nil, LoadReport{}, err
	}
	d, rep := load(people, opts, path)
	return d, rep, nil
}

// LoadReader reads a roster from r into a new Directory. opts.Format must be set.
func LoadReader(r io.Reader, opts LoadOptions) (*Directory, LoadReport, error) {
	if opts.Format == "" {
		return nil, LoadReport{}, fmt.Errorf("%w: format is required when reading a stream", roster.ErrUnknownFormat)
	}
	people, err := roster.Decode(r, roster.Options{Format: opts.Format, Encoding: opts.Encoding})
	if err != nil {
		return nil, LoadReport{}, err
	}
	d, rep := load(people, opts, "stream")
	return d, rep, nil
}

func load(people []*types.Person, opts LoadOptions, source string) (*Directory, LoadReport) {
	d := New(Options{Capacity: len(people), Now: opts.Now, Logger: opts.Logger})
	rep := LoadReport{Read: len(people)}
	for _, p := range people {
		if d.Add(p) {
			rep.Added++
		} else {
			rep.Skipped++
		}
	}
	d.log.Info("roster loaded", "source", source,
		"read", rep.Read, "added", rep.Added, "skipped", rep.Skipped)
	return d, rep
}
