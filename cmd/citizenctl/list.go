package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/citizenkit/pkg/types"
)

var listSort string

func init() {
	cmd := newListCmd()
	cmd.Flags().StringVar(&listSort, "sort", "id", "Sort order (id, age, lastname)")
	rootCmd.AddCommand(cmd)
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <roster>",
		Short: "List everyone in a roster",
		Long: `The list command prints every registered person in one of the
registry's three orders. Repeated IDs in the roster are listed once.

Example:
  citizenctl list people.csv
  citizenctl list people.csv --sort age
  citizenctl list people.yaml --sort lastname --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args)
		},
	}
	return cmd
}

func runList(args []string) error {
	on, err := referenceDate()
	if err != nil {
		return err
	}
	dir, _, err := loadRoster(args[0])
	if err != nil {
		return err
	}

	var people []*types.Person
	switch listSort {
	case "id", "":
		people = dir.AllByID()
	case "age":
		people = dir.AllByAge()
	case "lastname", "last-name":
		people = dir.AllByLastName()
	default:
		return fmt.Errorf("invalid --sort %q (want id, age or lastname)", listSort)
	}
	return printPeople(people, on)
}
