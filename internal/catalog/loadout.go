package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// LoadoutWeapon is one weapon entry in a YAML unit definition.
type LoadoutWeapon struct {
	Weapon   string `yaml:"weapon"`
	Location string `yaml:"location"`
	Artemis  bool   `yaml:"artemis,omitempty"`
	AmmoTons int    `yaml:"ammo_tons,omitempty"`
}

// Loadout is a YAML unit definition consumed by the skirmish runner.
type Loadout struct {
	Name     string          `yaml:"name"`
	Tonnage  int             `yaml:"tonnage"`
	WalkMP   int             `yaml:"walk_mp"`
	JumpMP   int             `yaml:"jump_mp,omitempty"`
	Gunnery  int             `yaml:"gunnery"`
	Piloting int             `yaml:"piloting"`
	Armor    map[string]int  `yaml:"armor"`
	Rear     map[string]int  `yaml:"rear_armor,omitempty"`
	Weapons  []LoadoutWeapon `yaml:"weapons"`
	AMS      bool            `yaml:"ams,omitempty"`
	ECM      bool            `yaml:"ecm,omitempty"`
	TSM      bool            `yaml:"tsm,omitempty"`
	XLEngine bool            `yaml:"xl_engine,omitempty"`
	Melee    string          `yaml:"melee,omitempty"` // hatchet, sword, mace
}

// LoadLoadout parses a YAML unit definition file.
func LoadLoadout(path string) (*Loadout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read loadout: %w", err)
	}
	var l Loadout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse loadout %s: %w", path, err)
	}
	if l.Tonnage < 20 || l.Tonnage > 100 {
		return nil, fmt.Errorf("loadout %s: tonnage %d outside 20-100", path, l.Tonnage)
	}
	return &l, nil
}
