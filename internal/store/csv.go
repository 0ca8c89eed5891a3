package store

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// ExportCSV writes records to path using the csv struct tags on Record,
// via gocarina/gocsv, as a secondary, non-SQLite downstream format.
// Unlike entries.csv and meet.csv, this is the validator's OWN output,
// not raw wire data, so gocsv's quoting rules are exactly the right fit.
func ExportCSV(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("store: creating %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&records, f); err != nil {
		return fmt.Errorf("store: writing %s: %w", path, err)
	}
	return nil
}
