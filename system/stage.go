package system

import (
	"github.com/lixenwraith/star-fighter/component"
	"github.com/lixenwraith/star-fighter/config"
	"github.com/lixenwraith/star-fighter/engine"
	"github.com/lixenwraith/star-fighter/event"
	"github.com/lixenwraith/star-fighter/parameter"
)

// StageSystem drives stage progression: the spawn cadence and wave
// completion in story mode, the boss stage spawn, and the continuous
// auto-spawn of casual mode.
type StageSystem struct {
	world   *engine.World
	spawner *Spawner

	casualTick int64
}

// NewStageSystem creates the stage system
func NewStageSystem(world *engine.World, spawner *Spawner) *StageSystem {
	return &StageSystem{world: world, spawner: spawner}
}

func (s *StageSystem) Name() string  { return "stage" }
func (s *StageSystem) Priority() int { return parameter.PriorityStage }

func (s *StageSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

// HandleEvent drops the casual spawn counter on session reset
func (s *StageSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.casualTick = 0
	}
}

func (s *StageSystem) Update() {
	state := s.world.Resource.State

	switch state.Mode {
	case engine.ModeStory:
		s.updateStory(state)
	case engine.ModeCasual:
		s.updateCasual()
	}
}

func (s *StageSystem) updateStory(state *engine.GameState) {
	stage := state.Stage
	if stage == nil {
		return
	}

	if stage.Type == config.StageBoss {
		if !state.BossSpawned {
			state.BossEntity = s.spawner.SpawnBoss(stage.HP)
			state.BossSpawned = true
		}
		// Completion is signaled by the combat system on boss death
		return
	}

	if state.Quota > 0 {
		state.SpawnTick++
		if state.SpawnTick >= int64(stage.Frequency) {
			s.spawner.SpawnEnemy(state.Wave, stage.Difficulty)
			state.Quota--
			state.SpawnTick = 0
		}
		return
	}

	if !state.WaveSignaled && s.world.Component.Enemy.Count() == 0 {
		state.WaveSignaled = true
		s.world.PushEvent(event.EventWaveComplete, nil)
	}
}

func (s *StageSystem) updateCasual() {
	s.casualTick++
	if s.casualTick < parameter.CasualAutoSpawnTicks {
		return
	}
	s.casualTick = 0

	// Random kind; class-gated kinds come back rejected and are skipped
	kind := component.MissileKind(s.world.Resource.Rand.Intn(int(component.MissileKindCount)))
	s.spawner.SpawnMissile(kind)
}
