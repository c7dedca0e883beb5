package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/acego/internal/game/creature"
	"github.com/udisondev/acego/internal/model"
)

// Scenario describes a series of duels between two catalog creatures.
type Scenario struct {
	Seed      uint64 `yaml:"seed"`
	Duels     int    `yaml:"duels"`
	MaxRounds int    `yaml:"max_rounds"`
	DataDir   string `yaml:"data_dir"` // empty = built-in data
	Attacker  Side   `yaml:"attacker"`
	Defender  Side   `yaml:"defender"`
}

// Side is one duelist.
type Side struct {
	Creature   uint32  `yaml:"creature"`
	CombatMode string  `yaml:"combat_mode"` // melee | missile
	Height     string  `yaml:"height"`      // high | medium | low
	Power      float64 `yaml:"power"`       // power and accuracy bar, 0 = 0.5
}

const (
	defaultDuels     = 100
	defaultMaxRounds = 500
)

// LoadScenario reads a scenario file.
func LoadScenario(path string) (Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	var s Scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Scenario{}, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if err := s.normalize(); err != nil {
		return Scenario{}, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

func (s *Scenario) normalize() error {
	if s.Duels <= 0 {
		s.Duels = defaultDuels
	}
	if s.MaxRounds <= 0 {
		s.MaxRounds = defaultMaxRounds
	}
	if s.Attacker.Creature == 0 || s.Defender.Creature == 0 {
		return fmt.Errorf("attacker and defender creatures are required")
	}
	for _, side := range []Side{s.Attacker, s.Defender} {
		if _, err := side.attackContext(); err != nil {
			return err
		}
	}
	return nil
}

func (s Side) attackContext() (creature.AttackContext, error) {
	a := creature.AttackContext{
		Mode:          model.CombatModeMelee,
		Height:        model.AttackHeightMedium,
		PowerLevel:    0.5,
		AccuracyLevel: 0.5,
	}

	switch strings.ToLower(s.CombatMode) {
	case "", "melee":
	case "missile":
		a.Mode = model.CombatModeMissile
	default:
		return a, fmt.Errorf("unknown combat mode %q", s.CombatMode)
	}

	switch strings.ToLower(s.Height) {
	case "", "medium":
	case "high":
		a.Height = model.AttackHeightHigh
	case "low":
		a.Height = model.AttackHeightLow
	default:
		return a, fmt.Errorf("unknown attack height %q", s.Height)
	}

	if s.Power < 0 || s.Power > 1 {
		return a, fmt.Errorf("power %v out of [0, 1]", s.Power)
	}
	if s.Power > 0 {
		a.PowerLevel = s.Power
		a.AccuracyLevel = s.Power
	}
	return a, nil
}
