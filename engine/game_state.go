package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/star-fighter/component"
	"github.com/lixenwraith/star-fighter/config"
	"github.com/lixenwraith/star-fighter/core"
	"github.com/lixenwraith/star-fighter/vmath"
)

// GameMode is the top-level session mode
type GameMode int

const (
	ModeMenu GameMode = iota
	ModeStory
	ModeCasual
	ModeGameOver
)

// String returns the mode name for status metrics
func (m GameMode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeStory:
		return "story"
	case ModeCasual:
		return "casual"
	case ModeGameOver:
		return "gameover"
	}
	return "unknown"
}

// AmmoPool tracks one missile kind's magazine. Accumulator holds
// fractional reload progress in game seconds.
type AmmoPool struct {
	Count       int
	Max         int
	Accumulator float64
}

// GameState is the mutable session state shared by all systems
type GameState struct {
	Mode    GameMode
	Session uuid.UUID

	Health float64
	Money  int

	// Story progression
	Wave       int
	StageIndex int
	SidePath   bool
	Stage      *config.Stage
	Quota      int
	SpawnTick  int64

	// Boss tracking, valid while a boss stage is live
	BossEntity  core.Entity
	BossSpawned bool

	Ammo [component.MissileKindCount]AmmoPool

	// Player aim, updated by the front end between ticks
	Aim        vmath.Vec3
	AimMovedAt time.Time

	// Exactly-once guards
	GameOverSignaled bool
	WaveSignaled     bool
}

// NewGameState creates a menu-mode state with full health
func NewGameState() *GameState {
	return &GameState{
		Mode:   ModeMenu,
		Health: 0,
	}
}

// ResetSession prepares the state for a new run under the given loadout
func (gs *GameState) ResetSession(loadout *config.Loadout) {
	gs.Session = uuid.New()
	gs.Health = 0
	gs.Money = 0
	gs.Wave = 0
	gs.StageIndex = 0
	gs.SidePath = false
	gs.Stage = nil
	gs.Quota = 0
	gs.SpawnTick = 0
	gs.BossEntity = 0
	gs.BossSpawned = false
	gs.GameOverSignaled = false
	gs.WaveSignaled = false
	for kind := component.MissileKind(0); kind < component.MissileKindCount; kind++ {
		max := loadout.AmmoMax(kind)
		gs.Ammo[kind] = AmmoPool{Count: max, Max: max}
	}
}
