package system

import (
	"fmt"
	"math"

	"github.com/lixenwraith/star-fighter/component"
	"github.com/lixenwraith/star-fighter/config"
	"github.com/lixenwraith/star-fighter/engine"
	"github.com/lixenwraith/star-fighter/event"
	"github.com/lixenwraith/star-fighter/parameter"
	"github.com/lixenwraith/star-fighter/vmath"
)

// Director is the host-facing surface of the simulation. It wires the
// systems into the game, runs mode transitions, and owns the ammo
// decrement on fire: the spawner only enforces concurrency caps.
type Director struct {
	game    *engine.Game
	spawner *Spawner
	stages  *config.StageTable
}

// NewDirector creates a director, registering all simulation systems
// on the game. Nil stages or loadout fall back to the defaults.
func NewDirector(game *engine.Game, stages *config.StageTable, loadout *config.Loadout) *Director {
	if stages == nil {
		stages = config.DefaultCampaign()
	}
	if loadout != nil {
		game.World.Resource.Loadout = loadout
	}

	world := game.World
	spawner := NewSpawner(world)

	game.AddSystem(NewStageSystem(world, spawner))
	game.AddSystem(NewMissileSystem(world))
	game.AddSystem(NewBulletSystem(world))
	game.AddSystem(NewEnemySystem(world))
	game.AddSystem(NewBossSystem(world))
	game.AddSystem(NewEffectSystem(world))
	game.AddSystem(NewCombatSystem(world, spawner))
	game.AddSystem(NewAmmoSystem(world))
	game.AddSystem(NewAudioSystem(world))

	return &Director{
		game:    game,
		spawner: spawner,
		stages:  stages,
	}
}

// StartStory begins a story run at the given level. All transient
// entities clear first, so repeated calls never accumulate. An invalid
// level index is an error; the caller cannot start without a stage.
func (d *Director) StartStory(levelIndex int, sidePath bool) error {
	stage, err := d.stages.Select(levelIndex, sidePath)
	if err != nil {
		return fmt.Errorf("cannot start story: %w", err)
	}

	d.game.ClearTransient()
	d.game.World.PushEvent(event.EventGameReset, nil)

	res := d.game.World.Resource
	state := res.State
	state.ResetSession(res.Loadout)
	res.Status.Ints.Get("session.count").Add(1)
	state.Mode = engine.ModeStory
	state.StageIndex = levelIndex
	state.SidePath = sidePath
	state.Wave = levelIndex + 1
	state.Stage = stage
	state.Quota = stage.Count
	state.Health = parameter.PlayerMaxHealth

	res.Buffer.SetHealth(state.Health)
	res.Buffer.SetMoney(state.Money)
	for kind := component.MissileKind(0); kind < component.MissileKindCount; kind++ {
		res.Buffer.SetAmmo(kind, state.Ammo[kind].Count)
	}
	return nil
}

// StartCasual begins a casual session: no health, no ammo accounting,
// an ambient ember field, and periodic auto-fired missiles.
func (d *Director) StartCasual() {
	d.game.ClearTransient()
	d.game.World.PushEvent(event.EventGameReset, nil)

	res := d.game.World.Resource
	state := res.State
	state.ResetSession(res.Loadout)
	res.Status.Ints.Get("session.count").Add(1)
	state.Mode = engine.ModeCasual

	for i := 0; i < parameter.EmberCount; i++ {
		pos := vmath.Vec3{
			X: res.Rand.Range(-parameter.EmberBound, parameter.EmberBound),
			Y: res.Rand.Range(-parameter.EmberBound, parameter.EmberBound),
		}
		angle := res.Rand.Range(0, 2*math.Pi)
		vel := vmath.Vec3{
			X: math.Cos(angle) * parameter.EmberDriftSpeed,
			Y: math.Sin(angle) * parameter.EmberDriftSpeed,
		}
		d.spawner.SpawnEffect(component.EffectEmber, pos, parameter.EmberRadius, parameter.EffectEmberMaxAge, vel)
	}
}

// FireMissile launches one missile of the given kind at the aim point.
// In story mode an empty pool rejects the shot and a successful spawn
// consumes one round; casual mode fires freely.
func (d *Director) FireMissile(kind component.MissileKind) SpawnResult {
	if kind < 0 || kind >= component.MissileKindCount {
		return SpawnRejected
	}

	res := d.game.World.Resource
	state := res.State
	story := state.Mode == engine.ModeStory

	if story && state.Ammo[kind].Count <= 0 {
		return SpawnRejected
	}

	result := d.spawner.SpawnMissile(kind)
	if result == SpawnOK && story {
		state.Ammo[kind].Count--
		res.Buffer.SetAmmo(kind, state.Ammo[kind].Count)
	}
	return result
}

// DebugSpawn fires a test missile, casual mode only
func (d *Director) DebugSpawn(kind component.MissileKind) SpawnResult {
	if d.game.World.Resource.State.Mode != engine.ModeCasual {
		return SpawnRejected
	}
	return d.spawner.SpawnMissile(kind)
}

// SetAimPoint updates the live aim point from the pointer
func (d *Director) SetAimPoint(p vmath.Vec3) {
	res := d.game.World.Resource
	state := res.State
	if state.Aim != p {
		state.AimMovedAt = res.Time.GameTime
	}
	state.Aim = p
}

// SetPaused pauses or resumes the simulation
func (d *Director) SetPaused(paused bool) {
	d.game.SetPaused(paused)
}

// Reset discards the session and returns to the menu
func (d *Director) Reset() {
	d.game.ClearTransient()
	d.game.World.PushEvent(event.EventGameReset, nil)
	res := d.game.World.Resource
	res.State.ResetSession(res.Loadout)
	res.State.Mode = engine.ModeMenu
}

// Step advances the simulation by one tick. Hosts without their own
// frame loop (tests, headless runs) drive the game through this.
func (d *Director) Step() {
	d.game.Tick()
}

// Game exposes the underlying game for presentation wiring
func (d *Director) Game() *engine.Game {
	return d.game
}
