package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <roster>",
		Short: "Show registry statistics",
		Long: `The stats command loads a roster and reports how many records were
read and registered, index statistics, and the result of an index
consistency check.

Example:
  citizenctl stats people.csv
  citizenctl stats people.csv --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
	return cmd
}

// RosterStats is the stats command output.
type RosterStats struct {
	Path              string `json:"path"`
	Read              int    `json:"read"`
	Added             int    `json:"added"`
	Skipped           int    `json:"skipped"`
	Count             int    `json:"count"`
	DistinctLastNames int    `json:"distinct_last_names"`
	BytesApprox       int    `json:"bytes_approx"`
	Impl              string `json:"impl"`
	Valid             bool   `json:"valid"`
	Problem           string `json:"problem,omitempty"`
}

func runStats(args []string) error {
	dir, report, err := loadRoster(args[0])
	if err != nil {
		return err
	}

	st := dir.Stats()
	stats := RosterStats{
		Path:              args[0],
		Read:              report.Read,
		Added:             report.Added,
		Skipped:           report.Skipped,
		Count:             st.Count,
		DistinctLastNames: st.DistinctLastNames,
		BytesApprox:       st.BytesApprox,
		Impl:              st.Impl,
		Valid:             true,
	}
	if err := dir.Verify(); err != nil {
		stats.Valid = false
		stats.Problem = err.Error()
	}

	if jsonOut {
		return printJSON(stats)
	}

	printInfo("Roster: %s\n", stats.Path)
	printInfo("  Records read:        %d\n", stats.Read)
	printInfo("  Registered:          %d\n", stats.Added)
	printInfo("  Duplicates skipped:  %d\n", stats.Skipped)
	printInfo("\nRegistry (%s):\n", stats.Impl)
	printInfo("  People:              %d\n", stats.Count)
	printInfo("  Distinct last names: %d\n", stats.DistinctLastNames)
	printInfo("  Index memory:        ~%d bytes\n", stats.BytesApprox)
	if stats.Valid {
		printInfo("  Consistency:         ok\n")
	} else {
		printInfo("  Consistency:         FAILED (%s)\n", stats.Problem)
	}
	return nil
}
