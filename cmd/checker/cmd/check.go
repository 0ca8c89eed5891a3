package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/openpowerlifting/checker/internal/store"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <meet-dir>...",
		Short: "Validate one or more meet directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var records []store.Record
			failed := 0

			for _, dir := range args {
				absDir, err := filepath.Abs(dir)
				if err != nil {
					return fmt.Errorf("resolving %s: %w", dir, err)
				}
				dataRoot := filepath.Dir(absDir)

				lifterData, err := loadLifterData(dataRoot)
				if err != nil {
					return fmt.Errorf("loading lifter data: %w", err)
				}

				report, entries, m, err := checkMeetDir(dataRoot, absDir, lifterData)
				if err != nil {
					return err
				}
				printReport(report)
				if report.HasErrors() {
					failed++
					continue
				}
				if dbPath != "" || csvPath != "" {
					for _, e := range entries {
						records = append(records, store.FromEntry(e, m))
					}
				}
			}

			if err := writeOutputs(records); err != nil {
				return err
			}

			if failed > 0 {
				return fmt.Errorf("%d meet director%s failed validation", failed, plural(failed))
			}
			return nil
		},
	}
	return cmd
}

func plural(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}

func populate(dbPath string, records []store.Record) error {
	db, err := store.CreateDatabase(dbPath, false)
	if err != nil {
		return fmt.Errorf("creating database: %w", err)
	}
	defer db.Close()
	return store.Populate(db, records)
}

// writeOutputs populates whichever of --db/--csv were requested from the
// accumulated records; a no-op when neither flag was set.
func writeOutputs(records []store.Record) error {
	if len(records) == 0 {
		return nil
	}
	if dbPath != "" {
		if err := populate(dbPath, records); err != nil {
			return err
		}
	}
	if csvPath != "" {
		if err := store.ExportCSV(csvPath, records); err != nil {
			return err
		}
	}
	return nil
}
