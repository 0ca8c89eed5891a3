package checker

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpowerlifting/checker/internal/config"
	"github.com/openpowerlifting/checker/internal/federation"
	"github.com/openpowerlifting/checker/internal/meet"
	"github.com/openpowerlifting/checker/internal/opltypes"
)

func mustMeet(t *testing.T, year, month, day int, country opltypes.Country, fed federation.Federation) meet.Meet {
	t.Helper()
	m, err := meet.New("test/meet.csv", "Test Meet", opltypes.NewDate(year, month, day), country, fed, 0)
	require.NoError(t, err)
	return m
}

func containsMessage(messages []Message, substr string) bool {
	for _, m := range messages {
		if strings.Contains(m.Text, substr) {
			return true
		}
	}
	return false
}

// TestCheckEntries_S1_LiftOrderViolation covers spec scenario S1: a
// lowered second squat attempt is flagged.
func TestCheckEntries_S1_LiftOrderViolation(t *testing.T) {
	m := mustMeet(t, 2019, 6, 1, opltypes.CountryUSA, federation.IPF)
	csv := "Name,Sex,Equipment,Place,Event,BodyweightKg,Squat1Kg,Squat2Kg,Squat3Kg,Best3SquatKg,TotalKg\n" +
		"Jane Doe,F,Raw,1,S,60,100,95,110,110,110\n"

	report, entries, ok := CheckEntries(strings.NewReader(csv), "meet.csv", m, nil, 0, nil)
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.True(t, containsMessage(report.Messages(), "Squat2Kg '95' lowered weight from '100'"))
}

// TestCheckEntries_S2_TotalMismatch covers spec scenario S2.
func TestCheckEntries_S2_TotalMismatch(t *testing.T) {
	m := mustMeet(t, 2019, 6, 1, opltypes.CountryUSA, federation.IPF)
	csv := "Name,Sex,Equipment,Place,Event,BodyweightKg,Best3SquatKg,Best3BenchKg,Best3DeadliftKg,TotalKg\n" +
		"Jane Doe,F,Raw,1,SBD,60,200,140,250,600\n"

	report, _, ok := CheckEntries(strings.NewReader(csv), "meet.csv", m, nil, 0, nil)
	require.True(t, ok)
	assert.True(t, containsMessage(report.Messages(), "Calculated TotalKg '590', but meet recorded '600'"))
}

// TestCheckEntries_S3_EquipmentAnachronism covers spec scenario S3: a
// squat suit can't appear before 1977.
func TestCheckEntries_S3_EquipmentAnachronism(t *testing.T) {
	m := mustMeet(t, 1975, 1, 1, opltypes.CountryUSA, federation.AAU)
	csv := "Name,Sex,Equipment,Place,Event,BodyweightKg,Best3SquatKg,Best3BenchKg,Best3DeadliftKg,TotalKg\n" +
		"Jane Doe,F,Single-ply,1,SBD,60,200,140,250,590\n"

	report, _, ok := CheckEntries(strings.NewReader(csv), "meet.csv", m, nil, 0, nil)
	require.True(t, ok)
	assert.True(t, containsMessage(report.Messages(), "Squat equipment wasn't invented until 1977"))
}

// TestCheckEntries_S4_WeightclassBodyweightDisagreement covers S4.
func TestCheckEntries_S4_WeightclassBodyweightDisagreement(t *testing.T) {
	m := mustMeet(t, 2019, 6, 1, opltypes.CountryUSA, federation.IPF)
	csv := "Name,Sex,Equipment,Place,Event,BodyweightKg,WeightClassKg,Best3SquatKg,Best3BenchKg,Best3DeadliftKg,TotalKg\n" +
		"John Doe,M,Raw,1,SBD,84.0,74,200,140,250,590\n"

	report, _, ok := CheckEntries(strings.NewReader(csv), "meet.csv", m, nil, 0, nil)
	require.True(t, ok)
	assert.True(t, containsMessage(report.Messages(), "not in WeightClassKg"))
}

// TestCheckEntries_S5_DivisionAgeMismatch covers S5: a division
// restricted to 18-19 rejects an entry recorded as Age=23.
func TestCheckEntries_S5_DivisionAgeMismatch(t *testing.T) {
	m := mustMeet(t, 2019, 6, 1, opltypes.CountryUSA, federation.IPF)
	dir := t.TempDir()
	toml := "[[divisions]]\nname = \"T3\"\nmin_age = 18\nmax_age = 19\n"
	cfgPath := filepath.Join(dir, "CONFIG.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(toml), 0o644))
	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)

	csv := "Name,Sex,Equipment,Place,Event,Division,Age,BodyweightKg,Best3SquatKg,Best3BenchKg,Best3DeadliftKg,TotalKg\n" +
		"Jane Doe,F,Raw,1,SBD,T3,23,60,200,140,250,590\n"

	report, _, ok := CheckEntries(strings.NewReader(csv), "meet.csv", m, cfg, 0, nil)
	require.True(t, ok)
	assert.True(t, containsMessage(report.Messages(), "Division 'T3' age range doesn't match computed age"))
}

// TestCheckEntries_DQForbidsTotal covers invariant 5/8: a DQ'd lifter
// cannot carry a nonzero TotalKg.
func TestCheckEntries_DQForbidsTotal(t *testing.T) {
	m := mustMeet(t, 2019, 6, 1, opltypes.CountryUSA, federation.IPF)
	csv := "Name,Sex,Equipment,Place,Event,BodyweightKg,Best3SquatKg,Best3BenchKg,Best3DeadliftKg,TotalKg\n" +
		"Jane Doe,F,Raw,DQ,SBD,60,200,140,250,590\n"

	report, _, ok := CheckEntries(strings.NewReader(csv), "meet.csv", m, nil, 0, nil)
	require.True(t, ok)
	assert.True(t, containsMessage(report.Messages(), "DQ'd entries cannot have a TotalKg"))
}

// TestCheckEntries_MissingHeaderIsFatal covers a header row missing a
// mandatory column: that's a structural failure, not a diagnostic that
// still yields entries.
func TestCheckEntries_MissingHeaderIsFatal(t *testing.T) {
	m := mustMeet(t, 2019, 6, 1, opltypes.CountryUSA, federation.IPF)
	csv := "Name,Sex,Equipment,Event,BodyweightKg,TotalKg\n" +
		"Jane Doe,F,Raw,SBD,60,590\n"

	report, entries, ok := CheckEntries(strings.NewReader(csv), "meet.csv", m, nil, 0, nil)
	assert.False(t, ok)
	assert.Nil(t, entries)
	assert.True(t, report.HasErrors())
}
