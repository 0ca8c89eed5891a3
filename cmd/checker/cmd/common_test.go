package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMeetDir(t *testing.T, configToml string) string {
	t.Helper()
	dir := t.TempDir()
	meetDir := filepath.Join(dir, "meet1")
	require.NoError(t, os.Mkdir(meetDir, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(meetDir, "meet.csv"),
		[]byte("date,country,federation\n2019-06-01,USA,IPF\n"), 0o644))

	entries := "Name,Sex,Equipment,Place,Event,Division,Age,BodyweightKg,Best3SquatKg,Best3BenchKg,Best3DeadliftKg,TotalKg\n" +
		"Jane Doe,F,Raw,1,SBD,T1,50,60,200,140,250,590\n"
	require.NoError(t, os.WriteFile(filepath.Join(meetDir, "entries.csv"), []byte(entries), 0o644))

	if configToml != "" {
		require.NoError(t, os.WriteFile(filepath.Join(meetDir, "CONFIG.toml"), []byte(configToml), 0o644))
	}

	return meetDir
}

func containsText(messages []string, substr string) bool {
	for _, m := range messages {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

// TestCheckMeetDir_ConfigIgnoredBeforeValidSince covers spec.md's
// "config is ignored when the meet predates valid_since" rule: a
// division table that would otherwise reject this entry's age must not
// be applied when the config's valid_since postdates the meet.
func TestCheckMeetDir_ConfigIgnoredBeforeValidSince(t *testing.T) {
	configToml := "valid_since = \"2030-01-01\"\n" +
		"[[divisions]]\nname = \"T1\"\nmin_age = 18\nmax_age = 19\n"
	meetDir := writeMeetDir(t, configToml)
	dataRoot := filepath.Dir(meetDir)

	report, _, _, err := checkMeetDir(dataRoot, meetDir, nil)
	require.NoError(t, err)

	var texts []string
	for _, m := range report.Messages() {
		texts = append(texts, m.Text)
	}
	assert.False(t, containsText(texts, "age range doesn't match"))
}

// TestCheckMeetDir_ConfigAppliedAfterValidSince is the control case: a
// config whose valid_since precedes the meet date is applied normally.
func TestCheckMeetDir_ConfigAppliedAfterValidSince(t *testing.T) {
	configToml := "valid_since = \"2000-01-01\"\n" +
		"[[divisions]]\nname = \"T1\"\nmin_age = 18\nmax_age = 19\n"
	meetDir := writeMeetDir(t, configToml)
	dataRoot := filepath.Dir(meetDir)

	report, _, _, err := checkMeetDir(dataRoot, meetDir, nil)
	require.NoError(t, err)

	var texts []string
	for _, m := range report.Messages() {
		texts = append(texts, m.Text)
	}
	assert.True(t, containsText(texts, "age range doesn't match"))
}
