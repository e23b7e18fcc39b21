package system

import (
	"math"

	"github.com/lixenwraith/star-fighter/core"
	"github.com/lixenwraith/star-fighter/engine"
	"github.com/lixenwraith/star-fighter/event"
	"github.com/lixenwraith/star-fighter/parameter"
	"github.com/lixenwraith/star-fighter/vmath"
)

// BulletSystem advances enemy bullets on elapsed time, bounces them
// off the side barriers, lets damage fields absorb them, and resolves
// the lower boundary crossing.
type BulletSystem struct {
	engine.SystemBase
	world *engine.World
}

// NewBulletSystem creates the bullet system
func NewBulletSystem(world *engine.World) *BulletSystem {
	return &BulletSystem{world: world}
}

func (s *BulletSystem) Name() string  { return "bullet" }
func (s *BulletSystem) Priority() int { return parameter.PriorityBullet }

func (s *BulletSystem) Update() {
	cs := s.world.Component
	dt := s.world.Resource.Time.DeltaTime
	bound := parameter.ArenaHalfWidth - parameter.BulletBounceMargin

	bullets := append([]core.Entity(nil), cs.Bullet.All()...)
	for _, e := range bullets {
		kin, ok := cs.Kinetic.Get(e)
		if !ok {
			continue
		}

		kin.Pos = vmath.V3Add(kin.Pos, vmath.V3Scale(kin.Vel, dt))

		// Side barriers: flip and clamp
		if math.Abs(kin.Pos.X) > bound {
			kin.Vel.X = -kin.Vel.X
			if kin.Pos.X > 0 {
				kin.Pos.X = bound
			} else {
				kin.Pos.X = -bound
			}
		}

		if s.absorbed(kin.Pos) {
			s.world.DestroyEntity(e)
			continue
		}

		if kin.Pos.Y < parameter.BulletDropY {
			s.world.DestroyEntity(e)
			continue
		}
		if kin.Pos.Y < parameter.DamageLineY {
			s.world.PushEvent(event.EventPlayerDamageRequest, event.PlayerDamageRequestPayload{
				Amount: parameter.BulletPlayerDamage,
			})
			s.world.DestroyEntity(e)
			continue
		}

		cs.Kinetic.Set(e, kin)
	}
}

// absorbed reports whether a bullet sits inside an active damage field
func (s *BulletSystem) absorbed(pos vmath.Vec3) bool {
	cs := s.world.Component
	for _, e := range cs.Effect.All() {
		fx, ok := cs.Effect.Get(e)
		if !ok || !fx.FieldActive() {
			continue
		}
		fkin, ok := cs.Kinetic.Get(e)
		if !ok {
			continue
		}
		if vmath.V3DistSq(pos, fkin.Pos) <= fx.Radius*fx.Radius {
			return true
		}
	}
	return false
}
