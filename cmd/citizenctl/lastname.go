package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newLastNameCmd())
}

func newLastNameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lastname <roster> <name>",
		Short: "Find people by last name",
		Long: `The lastname command lists everyone with the given last name, ignoring
case, ordered by ID.

Example:
  citizenctl lastname people.csv smith
  citizenctl lastname people.csv "MÜLLER" --encoding windows-1252`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLastName(args)
		},
	}
	return cmd
}

func runLastName(args []string) error {
	on, err := referenceDate()
	if err != nil {
		return err
	}
	dir, _, err := loadRoster(args[0])
	if err != nil {
		return err
	}
	return printPeople(dir.FindByLastName(args[1]), on)
}
