package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/star-fighter/component"
	"github.com/lixenwraith/star-fighter/parameter"
)

// PlayerClass gates which missile kinds a loadout may fire
type PlayerClass string

const (
	// ClassVanguard fires normal and big missiles
	ClassVanguard PlayerClass = "vanguard"

	// ClassRaider fires normal missiles only
	ClassRaider PlayerClass = "raider"

	// ClassTitan fires all kinds including nukes
	ClassTitan PlayerClass = "titan"
)

// HasKind reports whether the class may fire the given missile kind
func (c PlayerClass) HasKind(kind component.MissileKind) bool {
	switch kind {
	case component.MissileNormal:
		return true
	case component.MissileBig:
		return c == ClassVanguard || c == ClassTitan
	case component.MissileNuke:
		return c == ClassTitan
	}
	return false
}

// UpgradeLevels are the per-kind upgrade counters bought between runs
type UpgradeLevels struct {
	Speed  int `yaml:"speed"`
	Radius int `yaml:"radius"`
	Damage int `yaml:"damage"`
	Crit   int `yaml:"crit"`
	Reload int `yaml:"reload"`
}

// AmmoMaxima are the per-kind magazine capacities
type AmmoMaxima struct {
	Normal int `yaml:"normal"`
	Big    int `yaml:"big"`
	Nuke   int `yaml:"nuke"`
}

// Loadout is the player build resolved at session start: the class,
// the upgrade levels per missile kind, and the ammo capacities.
type Loadout struct {
	Class  PlayerClass   `yaml:"class"`
	Normal UpgradeLevels `yaml:"normal"`
	Big    UpgradeLevels `yaml:"big"`
	Nuke   UpgradeLevels `yaml:"nuke"`
	Ammo   AmmoMaxima    `yaml:"ammo"`
}

// Levels returns the upgrade levels for a missile kind
func (l *Loadout) Levels(kind component.MissileKind) UpgradeLevels {
	switch kind {
	case component.MissileBig:
		return l.Big
	case component.MissileNuke:
		return l.Nuke
	default:
		return l.Normal
	}
}

// AmmoMax returns the magazine capacity for a missile kind
func (l *Loadout) AmmoMax(kind component.MissileKind) int {
	switch kind {
	case component.MissileBig:
		return l.Ammo.Big
	case component.MissileNuke:
		return l.Ammo.Nuke
	default:
		return l.Ammo.Normal
	}
}

// LoadLoadout reads and validates a YAML loadout file
func LoadLoadout(path string) (*Loadout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read loadout %s: %w", path, err)
	}
	return ParseLoadout(data)
}

// ParseLoadout parses YAML loadout data, fills defaults, and validates
func ParseLoadout(data []byte) (*Loadout, error) {
	var l Loadout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse loadout: %w", err)
	}
	l.applyDefaults()
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

func (l *Loadout) applyDefaults() {
	if l.Class == "" {
		l.Class = ClassVanguard
	}
	if l.Ammo.Normal <= 0 {
		l.Ammo.Normal = parameter.DefaultAmmoMaxNormal
	}
	if l.Ammo.Big <= 0 {
		l.Ammo.Big = parameter.DefaultAmmoMaxBig
	}
	if l.Ammo.Nuke <= 0 {
		l.Ammo.Nuke = parameter.DefaultAmmoMaxNuke
	}
}

// Validate rejects unknown classes and negative upgrade levels
func (l *Loadout) Validate() error {
	switch l.Class {
	case ClassVanguard, ClassRaider, ClassTitan:
	default:
		return fmt.Errorf("unknown player class %q", l.Class)
	}
	for _, u := range []UpgradeLevels{l.Normal, l.Big, l.Nuke} {
		if u.Speed < 0 || u.Radius < 0 || u.Damage < 0 || u.Crit < 0 || u.Reload < 0 {
			return fmt.Errorf("upgrade levels must not be negative")
		}
	}
	return nil
}

// DefaultLoadout is a fresh vanguard build with no upgrades
func DefaultLoadout() *Loadout {
	l := &Loadout{Class: ClassVanguard}
	l.applyDefaults()
	return l
}
