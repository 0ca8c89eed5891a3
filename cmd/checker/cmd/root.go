// Package cmd provides the checker CLI's command tree, grounded on
// Aman-CERP-amanmcp's cmd/amanmcp/cmd/root.go: a root command built by a
// constructor function, persistent flags shared by every subcommand, and
// subcommands wired in via AddCommand.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	dbPath  string
	csvPath string
)

// NewRootCmd builds the checker command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "checker",
		Short: "Validate OpenPowerlifting-style meet results data",
		Long: `checker validates one or more meet directories against the
entries-table rules: header presence, per-field legality, and
cross-field consistency (event/lift-data agreement, total math,
attempt monotonicity, equipment/division/weightclass consistency).

Each meet directory must contain a meet.csv metadata file and an
entries.csv results file. CONFIG.toml files anywhere between the
data root and a meet directory configure its division table,
weightclass groups, and check exemptions; the nearest one found
walking up from the meet directory wins.`,
	}

	root.PersistentFlags().StringVar(&dbPath, "db", "", "optional SQLite file to populate with accepted entries")
	root.PersistentFlags().StringVar(&csvPath, "csv", "", "optional flattened CSV file to write accepted entries to")

	root.AddCommand(newCheckCmd())
	root.AddCommand(newCheckAllCmd())

	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
