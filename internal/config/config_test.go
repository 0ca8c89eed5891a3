package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
valid_since = "2015-01-01"
require_manual_disambiguation = true

[[divisions]]
name = "Open"
min_age = 0
max_age = 0

[[divisions]]
name = "Juniors"
min_age = 14
max_age = 23
sex = "M"
tested = true

[[weightclass_groups]]
name = "men-raw"
sex = "M"
classes = ["59", "66", "74", "83", "93", "105", "120", "120+"]

[exemptions]
"old-meets" = ["ExemptLiftOrder", "ExemptAge"]
`

func writeConfig(t *testing.T, contents string) *Config {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "CONFIG.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	return cfg
}

func TestLoad_ParsesDivisionsAndExemptions(t *testing.T) {
	cfg := writeConfig(t, sampleConfig)

	require.Len(t, cfg.Divisions(), 2)
	juniors, ok := cfg.DivisionByName("Juniors")
	require.True(t, ok)
	assert.Equal(t, uint8(14), juniors.MinAge)
	assert.Equal(t, uint8(23), juniors.MaxAge)
	assert.True(t, juniors.HasSex)
	assert.True(t, juniors.HasTested)
	assert.True(t, juniors.Tested)

	require.Len(t, cfg.WeightClassGroups(), 1)
	assert.Equal(t, "men-raw", cfg.WeightClassGroups()[0].Name)

	set, ok := cfg.ExemptionsFor("old-meets")
	require.True(t, ok)
	assert.True(t, set.Has(ExemptLiftOrder))
	assert.True(t, set.Has(ExemptAge))
	assert.False(t, set.Has(ExemptDivision))

	since, hasSince := cfg.ValidSince()
	require.True(t, hasSince)
	assert.Equal(t, 2015, since.Year())

	assert.True(t, cfg.DoesRequireManualDisambiguation())
}

func TestLoad_MissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestExemptionsFor_UnknownFolderReturnsFalse(t *testing.T) {
	cfg := writeConfig(t, sampleConfig)
	_, ok := cfg.ExemptionsFor("unrelated")
	assert.False(t, ok)
}
