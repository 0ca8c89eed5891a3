package store

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/schollz/progressbar/v3"
)

// CreateDatabase opens (creating if necessary) a SQLite database at
// dbFilePath and ensures its schema exists.
func CreateDatabase(dbFilePath string, deleteExisting bool) (*sql.DB, error) {
	if deleteExisting {
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to remove existing database file: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// OpenDatabase opens an existing database file without touching its schema.
func OpenDatabase(dbPath string) (*sql.DB, error) {
	return sql.Open("sqlite3", dbPath)
}

func createTables(db *sql.DB) error {
	const createTableSQL = `
    CREATE TABLE IF NOT EXISTS records (
        ID TEXT PRIMARY KEY,
        Name TEXT,
        Sex TEXT,
        Event TEXT,
        Equipment TEXT,
        Age TEXT,
        BirthYearClass TEXT,
        Division TEXT,
        BodyweightKg REAL,
        WeightClassKg TEXT,
        Squat1Kg REAL,
        Squat2Kg REAL,
        Squat3Kg REAL,
        Squat4Kg REAL,
        Best3SquatKg REAL,
        Bench1Kg REAL,
        Bench2Kg REAL,
        Bench3Kg REAL,
        Bench4Kg REAL,
        Best3BenchKg REAL,
        Deadlift1Kg REAL,
        Deadlift2Kg REAL,
        Deadlift3Kg REAL,
        Deadlift4Kg REAL,
        Best3DeadliftKg REAL,
        TotalKg REAL,
        Place TEXT,
        Tested TEXT,
        Country TEXT,
        State TEXT,
        Federation TEXT,
        MeetCountry TEXT,
        MeetDate TEXT,
        MeetName TEXT
    );

    CREATE INDEX IF NOT EXISTS idx_records_name_date ON records(Name, MeetDate);
    `

	if _, err := db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

// Populate inserts records into db inside a single transaction, assigning
// each a fresh UUID primary key, and reports progress on a progress bar
// since a full data tree can carry hundreds of thousands of entries.
func Populate(db *sql.DB, records []Record) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
    INSERT INTO records (
        ID, Name, Sex, Event, Equipment, Age, BirthYearClass, Division, BodyweightKg, WeightClassKg,
        Squat1Kg, Squat2Kg, Squat3Kg, Squat4Kg, Best3SquatKg, Bench1Kg, Bench2Kg, Bench3Kg, Bench4Kg, Best3BenchKg,
        Deadlift1Kg, Deadlift2Kg, Deadlift3Kg, Deadlift4Kg, Best3DeadliftKg, TotalKg, Place, Tested,
        Country, State, Federation, MeetCountry, MeetDate, MeetName
    ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	defer stmt.Close()

	bar := progressbar.NewOptions(len(records), progressbar.OptionSetPredictTime(false))

	for i := range records {
		records[i].ID = uuid.New().String()
		r := records[i]
		if _, err := stmt.Exec(
			r.ID, r.Name, r.Sex, r.Event, r.Equipment, r.Age, r.BirthYearClass, r.Division,
			r.BodyweightKg, r.WeightClassKg,
			r.Squat1Kg, r.Squat2Kg, r.Squat3Kg, r.Squat4Kg, r.Best3SquatKg,
			r.Bench1Kg, r.Bench2Kg, r.Bench3Kg, r.Bench4Kg, r.Best3BenchKg,
			r.Deadlift1Kg, r.Deadlift2Kg, r.Deadlift3Kg, r.Deadlift4Kg, r.Best3DeadliftKg,
			r.TotalKg, r.Place, r.Tested,
			r.Country, r.State, r.Federation, r.MeetCountry, r.MeetDate, r.MeetName,
		); err != nil {
			return fmt.Errorf("failed to insert record: %w", err)
		}

		if err := bar.Add(1); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
