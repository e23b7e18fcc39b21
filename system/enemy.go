package system

import (
	"time"

	"github.com/lixenwraith/star-fighter/core"
	"github.com/lixenwraith/star-fighter/engine"
	"github.com/lixenwraith/star-fighter/event"
	"github.com/lixenwraith/star-fighter/parameter"
	"github.com/lixenwraith/star-fighter/vmath"
)

// EnemySystem descends enemies by a fixed step per tick, spins the
// rotating archetypes, decays hit flashes, and resolves the lower
// boundary crossing.
type EnemySystem struct {
	engine.SystemBase
	world *engine.World
}

// NewEnemySystem creates the enemy system
func NewEnemySystem(world *engine.World) *EnemySystem {
	return &EnemySystem{world: world}
}

func (s *EnemySystem) Name() string  { return "enemy" }
func (s *EnemySystem) Priority() int { return parameter.PriorityEnemy }

func (s *EnemySystem) Update() {
	cs := s.world.Component
	dt := s.world.Resource.Time.DeltaTime

	enemies := append([]core.Entity(nil), cs.Enemy.All()...)
	for _, e := range enemies {
		en, ok := cs.Enemy.Get(e)
		if !ok {
			continue
		}
		kin, ok := cs.Kinetic.Get(e)
		if !ok {
			continue
		}

		kin.Pos = vmath.V3Add(kin.Pos, kin.Vel)

		if en.Rotates {
			en.Spin += parameter.EnemySpinRate * dt
		}
		if en.FlashRemaining > 0 {
			en.FlashRemaining -= time.Duration(dt * float64(time.Second))
			if en.FlashRemaining < 0 {
				en.FlashRemaining = 0
			}
		}

		// An enemy reaching the damage line hits the player for its
		// contact damage and grants no reward
		if kin.Pos.Y < parameter.DamageLineY {
			s.world.PushEvent(event.EventPlayerDamageRequest, event.PlayerDamageRequestPayload{
				Amount: en.ContactDamage,
			})
			s.world.PushEvent(event.EventSoundRequest, event.SoundRequestPayload{Sound: core.SoundPlayerHit})
			s.world.DestroyEntity(e)
			continue
		}

		cs.Enemy.Set(e, en)
		cs.Kinetic.Set(e, kin)
	}
}
