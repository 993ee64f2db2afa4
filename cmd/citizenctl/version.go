package main

import (
	"github.com/spf13/cobra"
)

// Build metadata, set with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildInfo is the version command output.
type buildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Built   string `json:"built"`
}

func init() {
	// --version on the root command and the version subcommand share one source.
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("citizenctl {{.Version}}\n")
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion()
		},
	}
}

func runVersion() error {
	info := buildInfo{Version: rootCmd.Version, Commit: commit, Built: date}
	if jsonOut {
		return printJSON(info)
	}
	printInfo("citizenctl %s\n", info.Version)
	printInfo("  commit: %s\n", info.Commit)
	printInfo("  built:  %s\n", info.Built)
	return nil
}
