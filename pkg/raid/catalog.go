package raid

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog holds the known raids, their difficulties, and per-gate gold
// rewards, loaded from a YAML file at startup.
type Catalog struct {
	Raids []RaidEntry `yaml:"raids"`
}

// RaidEntry is one raid with its available difficulties.
type RaidEntry struct {
	Name         string            `yaml:"name"`
	Difficulties []DifficultyEntry `yaml:"difficulties"`
}

// DifficultyEntry describes one difficulty of a raid.
type DifficultyEntry struct {
	Difficulty   string      `yaml:"difficulty"`
	MinItemLevel int         `yaml:"min_item_level"`
	Gates        []GateEntry `yaml:"gates"`
}

// GateEntry is one gate with its clear reward.
type GateEntry struct {
	Gate int `yaml:"gate"`
	Gold int `yaml:"gold"`
}

// LoadCatalog reads a raid catalog from a YAML file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read raid catalog: %w", err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse raid catalog: %w", err)
	}

	return &catalog, nil
}

// Find returns the difficulty entry for a raid name and difficulty, matching
// case-insensitively on both. Returns nil when unknown.
func (c *Catalog) Find(name, difficulty string) *DifficultyEntry {
	for _, raid := range c.Raids {
		if !strings.EqualFold(raid.Name, name) {
			continue
		}
		for i := range raid.Difficulties {
			if strings.EqualFold(raid.Difficulties[i].Difficulty, difficulty) {
				return &raid.Difficulties[i]
			}
		}
	}
	return nil
}

// TotalGold sums the gate rewards of a difficulty entry.
func (d *DifficultyEntry) TotalGold() int {
	total := 0
	for _, gate := range d.Gates {
		total += gate.Gold
	}
	return total
}

// Names lists the raid names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Raids))
	for _, raid := range c.Raids {
		names = append(names, raid.Name)
	}
	return names
}
