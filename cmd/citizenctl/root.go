package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"

	"github.com/joshuapare/citizenkit/cmd/citizenctl/logger"
	"github.com/joshuapare/citizenkit/pkg/citizens"
	"github.com/joshuapare/citizenkit/pkg/roster"
	"github.com/joshuapare/citizenkit/pkg/types"
)

var (
	// Global flags
	verbose        bool
	quiet          bool
	jsonOut        bool
	asOf           string
	rosterEncoding string
	rosterFormat   string
	logLevel       string
	logDir         string
)

// closeLog releases the log file opened by PersistentPreRunE.
var closeLog = func() error { return nil }

var rootCmd = &cobra.Command{
	Use:   "citizenctl",
	Short: "Query citizen rosters by ID, age and last name",
	Long: `citizenctl loads a roster file (CSV, JSON or YAML) into an indexed
registry and answers lookups by ID, age range and last name.

Ages are computed against today's date unless --as-of is given.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&asOf, "as-of", "", "Reference date for ages (YYYY-MM-DD, default today)")
	rootCmd.PersistentFlags().
		StringVar(&rosterEncoding, "encoding", "utf-8", "Roster encoding (utf-8, windows-1252, latin1)")
	rootCmd.PersistentFlags().
		StringVar(&rosterFormat, "format", "", "Roster format (csv, json, yaml; default from extension)")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "", "Enable logging to stderr at level (debug, info, warn, error)")
	rootCmd.PersistentFlags().
		StringVar(&logDir, "log-dir", "", "Write logs to a dated file in this directory")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

func initLogging() error {
	if logLevel == "" && logDir == "" {
		_, err := logger.Init(logger.Options{})
		return err
	}
	level := slog.LevelInfo
	if logLevel != "" {
		if err := level.UnmarshalText([]byte(logLevel)); err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
		}
	}
	closer, err := logger.Init(logger.Options{
		Enabled: true,
		Output:  os.Stderr,
		LogDir:  logDir,
		Level:   level,
		JSON:    jsonOut,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	closeLog = closer
	return nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// loadRoster opens the roster at path using the global --format and
// --encoding flags.
func loadRoster(path string) (*citizens.Directory, citizens.LoadReport, error) {
	printVerbose("Loading roster: %s\n", path)

	opts := citizens.LoadOptions{Logger: logger.L}
	if rosterFormat != "" {
		f, err := roster.ParseFormat(rosterFormat)
		if err != nil {
			return nil, citizens.LoadReport{}, err
		}
		opts.Format = f
	}
	enc, err := roster.ParseEncoding(rosterEncoding)
	if err != nil {
		return nil, citizens.LoadReport{}, err
	}
	opts.Encoding = enc

	dir, report, err := citizens.Load(path, opts)
	if err != nil {
		return nil, citizens.LoadReport{}, fmt.Errorf("failed to load roster: %w", err)
	}
	printVerbose("Loaded %d people (%d duplicates skipped)\n", report.Added, report.Skipped)
	return dir, report, nil
}

// referenceDate returns the --as-of date, or today in local time.
func referenceDate() (civil.Date, error) {
	if asOf == "" {
		return types.Today(time.Now()), nil
	}
	d, err := civil.ParseDate(asOf)
	if err != nil {
		return civil.Date{}, fmt.Errorf("invalid --as-of %q: %w", asOf, err)
	}
	return d, nil
}

// personView is the JSON shape of a person in command output.
type personView struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	BirthDate string `json:"birth_date"`
	Age       int    `json:"age"`
}

func newPersonView(p *types.Person, on civil.Date) personView {
	return personView{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		BirthDate: p.BirthDate.String(),
		Age:       p.Age(on),
	}
}

// printPeople writes people as a table, or as a JSON array with --json.
func printPeople(people []*types.Person, on civil.Date) error {
	if jsonOut {
		views := make([]personView, len(people))
		for i, p := range people {
			views[i] = newPersonView(p, on)
		}
		return printJSON(views)
	}

	if len(people) == 0 {
		printInfo("No matches\n")
		return nil
	}
	for _, p := range people {
		printInfo("%6d  %-30s  %s  %3d\n", p.ID, fullName(p), p.BirthDate, p.Age(on))
	}
	printVerbose("\n%d match(es) as of %s\n", len(people), on)
	return nil
}

func fullName(p *types.Person) string {
	if p.FirstName == "" {
		return p.LastName
	}
	return p.FirstName + " " + p.LastName
}
