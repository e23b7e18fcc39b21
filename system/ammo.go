package system

import (
	"math"

	"github.com/lixenwraith/star-fighter/component"
	"github.com/lixenwraith/star-fighter/engine"
	"github.com/lixenwraith/star-fighter/parameter"
)

// AmmoSystem regenerates ammo pools on elapsed game time and reports
// reload progress every tick. Story mode only; big and nuke pools
// regenerate only for classes that can fire them.
type AmmoSystem struct {
	engine.SystemBase
	world *engine.World
}

// NewAmmoSystem creates the ammo system
func NewAmmoSystem(world *engine.World) *AmmoSystem {
	return &AmmoSystem{world: world}
}

func (s *AmmoSystem) Name() string  { return "ammo" }
func (s *AmmoSystem) Priority() int { return parameter.PriorityAmmo }

func (s *AmmoSystem) Update() {
	res := s.world.Resource
	state := res.State
	if state.Mode != engine.ModeStory {
		return
	}
	dt := res.Time.DeltaTime

	for kind := component.MissileKind(0); kind < component.MissileKindCount; kind++ {
		pool := &state.Ammo[kind]
		duration := reloadDuration(kind, res.Loadout.Levels(kind).Reload)

		if res.Loadout.Class.HasKind(kind) && pool.Count < pool.Max {
			pool.Accumulator += dt
			if pool.Accumulator >= duration {
				pool.Count++
				pool.Accumulator = 0
				res.Buffer.SetAmmo(kind, pool.Count)
			}
		}

		// Progress publishes every tick so the HUD bar stays live
		progress := math.Min(1, pool.Accumulator/duration)
		timeLeft := int(math.Round(math.Max(0, duration-pool.Accumulator)))
		res.Buffer.SetReload(kind, progress, timeLeft)
	}
}

// reloadDuration returns the reload time in game seconds for a kind at
// the given reload upgrade level, floored so upgrades cannot make it
// instant.
func reloadDuration(kind component.MissileKind, reloadLevel int) float64 {
	lvl := float64(reloadLevel)
	switch kind {
	case component.MissileBig:
		return math.Max(parameter.ReloadBigFloor, parameter.ReloadBigBase-lvl*parameter.ReloadBigStep)
	case component.MissileNuke:
		return math.Max(parameter.ReloadNukeFloor, parameter.ReloadNukeBase-lvl*parameter.ReloadNukeStep)
	default:
		return math.Max(parameter.ReloadNormalFloor, parameter.ReloadNormalBase-lvl*parameter.ReloadNormalStep)
	}
}
