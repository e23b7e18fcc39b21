package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StageType selects the stage behavior
type StageType string

const (
	// StageWave spawns a quota of enemies on a fixed cadence
	StageWave StageType = "wave"

	// StageBoss spawns a single boss and bypasses the quota
	StageBoss StageType = "boss"
)

// Stage is one entry of the ordered campaign table. Wave stages use
// Count/Frequency; boss stages use HP. A stage may carry an optional
// side-path variant selected at session start.
type Stage struct {
	Type       StageType `yaml:"type"`
	Count      int       `yaml:"count,omitempty"`
	HP         float64   `yaml:"hp,omitempty"`
	Frequency  int       `yaml:"frequency,omitempty"`
	Difficulty int       `yaml:"difficulty"`
	Side       *Stage    `yaml:"side,omitempty"`
}

// StageTable is the campaign, selected by level index
type StageTable struct {
	Stages []Stage `yaml:"stages"`
}

// LoadStageTable reads and validates a YAML campaign file
func LoadStageTable(path string) (*StageTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage table %s: %w", path, err)
	}
	return ParseStageTable(data)
}

// ParseStageTable parses and validates YAML campaign data
func ParseStageTable(data []byte) (*StageTable, error) {
	var table StageTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse stage table: %w", err)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &table, nil
}

// Validate rejects malformed stage configs. A broken campaign is fatal
// at session start; the simulation cannot run without a valid stage.
func (t *StageTable) Validate() error {
	if len(t.Stages) == 0 {
		return fmt.Errorf("stage table is empty")
	}
	for i := range t.Stages {
		if err := validateStage(&t.Stages[i], i); err != nil {
			return err
		}
	}
	return nil
}

func validateStage(s *Stage, index int) error {
	switch s.Type {
	case StageWave:
		if s.Count <= 0 {
			return fmt.Errorf("stage %d: wave stage needs count > 0", index)
		}
		if s.Frequency <= 0 {
			return fmt.Errorf("stage %d: wave stage needs frequency > 0", index)
		}
	case StageBoss:
		if s.HP < 0 {
			return fmt.Errorf("stage %d: boss hp must not be negative", index)
		}
	default:
		return fmt.Errorf("stage %d: unknown stage type %q", index, s.Type)
	}
	if s.Difficulty < 0 {
		return fmt.Errorf("stage %d: difficulty must not be negative", index)
	}
	if s.Side != nil {
		if err := validateStage(s.Side, index); err != nil {
			return fmt.Errorf("side path of %w", err)
		}
	}
	return nil
}

// Select resolves a stage by level index, honoring the side-path flag.
// Requesting a side path on a stage without one falls back to the main
// stage; an out-of-range index is an error.
func (t *StageTable) Select(index int, sidePath bool) (*Stage, error) {
	if index < 0 || index >= len(t.Stages) {
		return nil, fmt.Errorf("stage index %d out of range (table has %d stages)", index, len(t.Stages))
	}
	stage := &t.Stages[index]
	if sidePath && stage.Side != nil {
		stage = stage.Side
	}
	return stage, nil
}

// DefaultCampaign is the built-in table used when no file is supplied
func DefaultCampaign() *StageTable {
	return &StageTable{Stages: []Stage{
		{Type: StageWave, Count: 8, Frequency: 120, Difficulty: 0},
		{Type: StageWave, Count: 12, Frequency: 100, Difficulty: 0,
			Side: &Stage{Type: StageWave, Count: 10, Frequency: 80, Difficulty: 1}},
		{Type: StageWave, Count: 16, Frequency: 90, Difficulty: 1},
		{Type: StageBoss, HP: 200, Difficulty: 1},
		{Type: StageWave, Count: 20, Frequency: 75, Difficulty: 2},
		{Type: StageWave, Count: 24, Frequency: 60, Difficulty: 2},
		{Type: StageBoss, HP: 400, Difficulty: 2},
	}}
}
