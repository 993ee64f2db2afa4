package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/citizenkit/pkg/citizens"
	"github.com/joshuapare/citizenkit/pkg/roster"
)

var exportTo string

func init() {
	cmd := newExportCmd()
	cmd.Flags().StringVar(&exportTo, "to", "", "Output format (csv, json, yaml; default from output extension)")
	rootCmd.AddCommand(cmd)
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <roster> <output>",
		Short: "Convert a roster to another format",
		Long: `The export command loads a roster and writes the registered people, in
ID order, as UTF-8 CSV, JSON or YAML. Repeated IDs are dropped and legacy
encodings are converted. Use "-" as output to write to stdout.

Example:
  citizenctl export people.csv people.json
  citizenctl export legacy.csv clean.csv --encoding windows-1252
  citizenctl export people.csv - --to yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args)
		},
	}
	return cmd
}

func runExport(args []string) error {
	rosterPath, outputPath := args[0], args[1]

	var (
		to  roster.Format
		err error
	)
	switch {
	case exportTo != "":
		to, err = roster.ParseFormat(exportTo)
	case outputPath == "-":
		err = fmt.Errorf("--to is required when writing to stdout")
	default:
		to, err = roster.FormatFromPath(outputPath)
	}
	if err != nil {
		return err
	}

	dir, _, err := loadRoster(rosterPath)
	if err != nil {
		return err
	}

	if outputPath == "-" {
		return citizens.Export(os.Stdout, dir, to)
	}

	err = writeOutput(outputPath, func(w io.Writer) error {
		return citizens.Export(w, dir, to)
	})
	if err != nil {
		return err
	}

	printInfo("Exported %d people to %s (%s)\n", dir.Len(), outputPath, to)
	return nil
}

// writeOutput creates path and fills it with write. On any failure the
// partially written file is removed.
func writeOutput(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to export: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}
