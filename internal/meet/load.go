package meet

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/openpowerlifting/checker/internal/federation"
	"github.com/openpowerlifting/checker/internal/opltypes"
)

// Load reads a companion meet-metadata file: a comma-separated header
// row naming a subset of {date, country, federation, ruleset, name},
// followed by exactly one data row. Like the entries table, the format
// carries no quoting and uses a plain newline terminator, so the same
// unquoted-split convention is used here rather than pulling in a CSV
// library whose quoting rules don't apply to this data.
func Load(r io.Reader, path string) (Meet, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return Meet{}, fmt.Errorf("meet: empty metadata file %s", path)
	}
	header := splitUnquoted(scanner.Text())

	if !scanner.Scan() {
		return Meet{}, fmt.Errorf("meet: missing data row in %s", path)
	}
	row := splitUnquoted(scanner.Text())

	if len(row) != len(header) {
		return Meet{}, fmt.Errorf("meet: row/header length mismatch in %s", path)
	}

	fields := make(map[string]string, len(header))
	for i, h := range header {
		fields[strings.ToLower(strings.TrimSpace(h))] = row[i]
	}

	date, err := opltypes.ParseDate(fields["date"])
	if err != nil {
		return Meet{}, fmt.Errorf("meet: %w", err)
	}
	country, err := opltypes.ParseCountry(fields["country"])
	if err != nil {
		return Meet{}, fmt.Errorf("meet: %w", err)
	}
	fed, err := federation.Parse(fields["federation"])
	if err != nil {
		return Meet{}, fmt.Errorf("meet: %w", err)
	}

	var rules Ruleset
	if fields["ruleset"] == "FourthAttemptsMayLower" {
		rules = rules.WithFlag(RuleFourthAttemptsMayLower)
	}

	return New(path, fields["name"], date, country, fed, rules)
}

// LoadDir locates and loads the "meet.csv" metadata file for a meet
// directory.
func LoadDir(dirPath string, open func(string) (io.ReadCloser, error)) (Meet, error) {
	metaPath := filepath.Join(dirPath, "meet.csv")
	f, err := open(metaPath)
	if err != nil {
		return Meet{}, fmt.Errorf("meet: opening %s: %w", metaPath, err)
	}
	defer f.Close()
	return Load(f, metaPath)
}

func splitUnquoted(line string) []string {
	line = strings.TrimRight(line, "\r")
	return strings.Split(line, ",")
}
