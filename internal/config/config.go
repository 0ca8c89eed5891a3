// Package config implements the read-only per-directory configuration
// surface: division and weightclass-group tables, per-folder
// validation exemptions, and the two global toggles (valid_since,
// manual disambiguation). It is parsed from a per-directory CONFIG.toml
// with github.com/BurntSushi/toml.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/openpowerlifting/checker/internal/opltypes"
)

// rawConfig mirrors CONFIG.toml's on-disk shape for decoding; Config
// converts it into the typed, query-oriented view the checker consumes.
type rawConfig struct {
	ValidSince                string                       `toml:"valid_since"`
	RequireManualDisambiguation bool                        `toml:"require_manual_disambiguation"`
	Divisions                  []rawDivision                `toml:"divisions"`
	WeightClassGroups          []rawWeightClassGroup        `toml:"weightclass_groups"`
	Exemptions                 map[string][]string          `toml:"exemptions"`
}

type rawDivision struct {
	Name      string   `toml:"name"`
	MinAge    uint8    `toml:"min_age"`
	MaxAge    uint8    `toml:"max_age"`
	Sex       string   `toml:"sex"`
	Place     string   `toml:"place"`
	Equipment []string `toml:"equipment"`
	Tested    *bool    `toml:"tested"`
}

type rawWeightClassGroup struct {
	Name      string   `toml:"name"`
	DateMin   string   `toml:"date_min"`
	DateMax   string   `toml:"date_max"`
	Sex       string   `toml:"sex"`
	Divisions []string `toml:"divisions"`
	Classes   []string `toml:"classes"`
}

// Config is the parsed, read-only configuration view for one directory.
type Config struct {
	path       string
	validSince opltypes.Date
	hasValidSince bool
	requireManualDisambiguation bool
	divisions  []Division
	groups     []WeightClassGroup
	exemptions map[string]ExemptionSet
}

// Load parses a CONFIG.toml file at path.
func Load(path string) (*Config, error) {
	var raw rawConfig
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	return fromRaw(path, raw)
}

func fromRaw(path string, raw rawConfig) (*Config, error) {
	c := &Config{
		path:                         path,
		requireManualDisambiguation: raw.RequireManualDisambiguation,
		exemptions:                   make(map[string]ExemptionSet, len(raw.Exemptions)),
	}

	if raw.ValidSince != "" {
		d, err := opltypes.ParseDate(raw.ValidSince)
		if err != nil {
			return nil, fmt.Errorf("config: valid_since: %w", err)
		}
		c.validSince = d
		c.hasValidSince = true
	}

	for _, rd := range raw.Divisions {
		div := Division{Name: rd.Name, MinAge: rd.MinAge, MaxAge: rd.MaxAge}
		if rd.Sex != "" {
			sex, err := opltypes.ParseSex(rd.Sex)
			if err != nil {
				return nil, fmt.Errorf("config: division %s: %w", rd.Name, err)
			}
			div.HasSex = true
			div.Sex = sex
		}
		if rd.Place != "" {
			place, err := opltypes.ParsePlace(rd.Place)
			if err != nil {
				return nil, fmt.Errorf("config: division %s: %w", rd.Name, err)
			}
			div.HasPlace = true
			div.Place = place
		}
		if len(rd.Equipment) > 0 {
			div.HasEquipment = true
			for _, es := range rd.Equipment {
				eq, err := opltypes.ParseEquipment(es)
				if err != nil {
					return nil, fmt.Errorf("config: division %s: %w", rd.Name, err)
				}
				div.Equipment = append(div.Equipment, eq)
			}
		}
		if rd.Tested != nil {
			div.HasTested = true
			div.Tested = *rd.Tested
		}
		c.divisions = append(c.divisions, div)
	}

	for _, rg := range raw.WeightClassGroups {
		group := WeightClassGroup{Name: rg.Name, DivisionNames: rg.Divisions}
		if rg.Sex != "" {
			sex, err := opltypes.ParseSex(rg.Sex)
			if err != nil {
				return nil, fmt.Errorf("config: weightclass_group %s: %w", rg.Name, err)
			}
			group.Sex = sex
		}
		if rg.DateMin != "" {
			d, err := opltypes.ParseDate(rg.DateMin)
			if err != nil {
				return nil, fmt.Errorf("config: weightclass_group %s: %w", rg.Name, err)
			}
			group.DateMin = d
		}
		if rg.DateMax != "" {
			d, err := opltypes.ParseDate(rg.DateMax)
			if err != nil {
				return nil, fmt.Errorf("config: weightclass_group %s: %w", rg.Name, err)
			}
			group.DateMax = d
		}
		for _, cs := range rg.Classes {
			wc, err := opltypes.ParseWeightClassKg(cs)
			if err != nil {
				return nil, fmt.Errorf("config: weightclass_group %s: %w", rg.Name, err)
			}
			group.Classes = append(group.Classes, wc)
		}
		c.groups = append(c.groups, group)
	}

	for folder, names := range raw.Exemptions {
		c.exemptions[folder] = parseExemptionSet(names)
	}

	return c, nil
}

// Divisions returns the configured division table.
func (c *Config) Divisions() []Division { return c.divisions }

// WeightClassGroups returns the configured weightclass-group table.
func (c *Config) WeightClassGroups() []WeightClassGroup { return c.groups }

// ExemptionsFor returns the exemption set configured for folder, and
// whether any entry exists for it at all.
func (c *Config) ExemptionsFor(folder string) (ExemptionSet, bool) {
	folder = filepath.Clean(folder)
	s, ok := c.exemptions[folder]
	return s, ok
}

// ValidSince reports the date before which this config is ignored, and
// whether one was configured at all.
func (c *Config) ValidSince() (opltypes.Date, bool) {
	return c.validSince, c.hasValidSince
}

// DoesRequireManualDisambiguation reports whether ambiguous lifter
// names must be manually resolved before the entry sequence is
// accepted.
func (c *Config) DoesRequireManualDisambiguation() bool {
	return c.requireManualDisambiguation
}

// DivisionByName looks up a configured division by name.
func (c *Config) DivisionByName(name string) (Division, bool) {
	for _, d := range c.divisions {
		if d.Name == name {
			return d, true
		}
	}
	return Division{}, false
}
