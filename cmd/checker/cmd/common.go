package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/openpowerlifting/checker/internal/checker"
	"github.com/openpowerlifting/checker/internal/config"
	"github.com/openpowerlifting/checker/internal/meet"
)

// loadConfigCascade walks upward from meetDir to dataRoot (inclusive),
// loading the nearest CONFIG.toml found; a meet directory's own
// CONFIG.toml takes precedence over one belonging to an ancestor. It
// returns a nil *config.Config (not an error) when no CONFIG.toml exists
// anywhere in that chain, since configuration is optional.
func loadConfigCascade(dataRoot, meetDir string) (*config.Config, error) {
	dir := meetDir
	for {
		candidate := filepath.Join(dir, "CONFIG.toml")
		if _, err := os.Stat(candidate); err == nil {
			return config.Load(candidate)
		}
		if dir == dataRoot || dir == filepath.Dir(dir) {
			break
		}
		dir = filepath.Dir(dir)
	}
	return nil, nil
}

// exemptionsFor resolves the exemption set a config grants to meetDir,
// keyed by the meet directory's own name (its last path element).
func exemptionsFor(cfg *config.Config, meetDir string) config.ExemptionSet {
	if cfg == nil {
		return 0
	}
	set, _ := cfg.ExemptionsFor(filepath.Base(meetDir))
	return set
}

// checkMeetDir loads meet.csv and entries.csv from meetDir and runs the
// full validator, threading in whatever CONFIG.toml cascade and
// lifter-data map apply.
func checkMeetDir(dataRoot, meetDir string, lifterData checker.LifterDataMap) (*checker.Report, []checker.Entry, meet.Meet, error) {
	metaPath := filepath.Join(meetDir, "meet.csv")
	metaFile, err := os.Open(metaPath)
	if err != nil {
		return nil, nil, meet.Meet{}, fmt.Errorf("opening %s: %w", metaPath, err)
	}
	defer metaFile.Close()

	m, err := meet.Load(metaFile, metaPath)
	if err != nil {
		return nil, nil, meet.Meet{}, err
	}

	entriesPath := filepath.Join(meetDir, "entries.csv")
	entriesFile, err := os.Open(entriesPath)
	if err != nil {
		return nil, nil, m, fmt.Errorf("opening %s: %w", entriesPath, err)
	}
	defer entriesFile.Close()

	cfg, err := loadConfigCascade(dataRoot, meetDir)
	if err != nil {
		return nil, nil, m, err
	}
	if cfg != nil {
		if validSince, ok := cfg.ValidSince(); ok && m.Date.Before(validSince) {
			cfg = nil
		}
	}
	exemptions := exemptionsFor(cfg, meetDir)

	report, entries, _ := checker.CheckEntries(entriesFile, entriesPath, m, cfg, exemptions, lifterData)
	return report, entries, m, nil
}

// loadLifterData reads the optional lifter-data.csv sidecar from
// dataRoot, returning an empty map when it does not exist.
func loadLifterData(dataRoot string) (checker.LifterDataMap, error) {
	path := filepath.Join(dataRoot, "lifter-data.csv")
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return checker.LifterDataMap{}, nil
		}
		return nil, err
	}
	defer f.Close()
	return checker.LoadLifterData(f, path)
}

// findMeetDirs walks root looking for directories containing both
// meet.csv and entries.csv.
func findMeetDirs(root string) ([]string, error) {
	var dirs []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if _, err := os.Stat(filepath.Join(path, "meet.csv")); err != nil {
			return nil
		}
		if _, err := os.Stat(filepath.Join(path, "entries.csv")); err != nil {
			return nil
		}
		dirs = append(dirs, path)
		return nil
	})
	return dirs, err
}

// printReport renders a Report's messages the way a CLI user expects:
// one line per message, file-relative where a line number is available.
func printReport(report *checker.Report) {
	for _, msg := range report.Messages() {
		sev := "WARNING"
		if msg.Severity == checker.SeverityError {
			sev = "ERROR"
		}
		if msg.HasLine {
			fmt.Printf("%s:%d: %s: %s\n", report.Path(), msg.Line, sev, msg.Text)
		} else {
			fmt.Printf("%s: %s: %s\n", report.Path(), sev, msg.Text)
		}
	}
}
