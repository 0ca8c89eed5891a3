package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/openpowerlifting/checker/internal/store"
)

func newCheckAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-all <data-root>",
		Short: "Validate every meet directory under a data root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataRoot, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving %s: %w", args[0], err)
			}

			meetDirs, err := findMeetDirs(dataRoot)
			if err != nil {
				return fmt.Errorf("walking %s: %w", dataRoot, err)
			}

			lifterData, err := loadLifterData(dataRoot)
			if err != nil {
				return fmt.Errorf("loading lifter data: %w", err)
			}

			bar := progressbar.NewOptions(len(meetDirs), progressbar.OptionSetPredictTime(false))

			var records []store.Record
			failed := 0
			for _, dir := range meetDirs {
				report, entries, m, err := checkMeetDir(dataRoot, dir, lifterData)
				if err != nil {
					return err
				}
				if report.HasMessages() {
					printReport(report)
				}
				if report.HasErrors() {
					failed++
				} else if dbPath != "" || csvPath != "" {
					for _, e := range entries {
						records = append(records, store.FromEntry(e, m))
					}
				}
				_ = bar.Add(1)
			}

			if err := writeOutputs(records); err != nil {
				return err
			}

			fmt.Printf("\nChecked %d meet director%s, %d failed\n", len(meetDirs), plural(len(meetDirs)), failed)
			if failed > 0 {
				return fmt.Errorf("%d meet director%s failed validation", failed, plural(failed))
			}
			return nil
		},
	}
	return cmd
}
