package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newAgeCmd())
}

func newAgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "age <roster> <min> <max>",
		Short: "Find people within an age range",
		Long: `The age command lists everyone whose age lies in [min, max], inclusive,
youngest first. People of equal age are ordered by ID.

Example:
  citizenctl age people.csv 18 65
  citizenctl age people.csv 30 30 --as-of 2025-01-01`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAge(args)
		},
	}
	return cmd
}

func runAge(args []string) error {
	minAge, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid min age %q: %w", args[1], err)
	}
	maxAge, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid max age %q: %w", args[2], err)
	}
	on, err := referenceDate()
	if err != nil {
		return err
	}

	dir, _, err := loadRoster(args[0])
	if err != nil {
		return err
	}
	return printPeople(dir.FindByAgeAsOf(minAge, maxAge, on), on)
}
