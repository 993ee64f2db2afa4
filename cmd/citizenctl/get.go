package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <roster> <id>",
		Short: "Look up a person by ID",
		Long: `The get command prints the person with the given ID.

Example:
  citizenctl get people.csv 42
  citizenctl get people.csv 42 --as-of 2025-01-01 --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	id, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", args[1], err)
	}
	on, err := referenceDate()
	if err != nil {
		return err
	}

	dir, _, err := loadRoster(args[0])
	if err != nil {
		return err
	}

	p, ok := dir.Find(id)
	if !ok {
		return fmt.Errorf("person %d not found", id)
	}

	if jsonOut {
		return printJSON(newPersonView(p, on))
	}
	printInfo("ID:         %d\n", p.ID)
	printInfo("First name: %s\n", p.FirstName)
	printInfo("Last name:  %s\n", p.LastName)
	printInfo("Born:       %s\n", p.BirthDate)
	printInfo("Age:        %d (as of %s)\n", p.Age(on), on)
	return nil
}
