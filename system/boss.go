package system

import (
	"math"

	"github.com/lixenwraith/star-fighter/component"
	"github.com/lixenwraith/star-fighter/core"
	"github.com/lixenwraith/star-fighter/engine"
	"github.com/lixenwraith/star-fighter/parameter"
	"github.com/lixenwraith/star-fighter/vmath"
)

// BossSystem runs the boss lifecycle: the entry descent, the cyclic
// strafe/centering/holding movement with vertical bobbing, and the
// periodic bullet-fan firing.
type BossSystem struct {
	engine.SystemBase
	world *engine.World
}

// NewBossSystem creates the boss system
func NewBossSystem(world *engine.World) *BossSystem {
	return &BossSystem{world: world}
}

func (s *BossSystem) Name() string  { return "boss" }
func (s *BossSystem) Priority() int { return parameter.PriorityBoss }

func (s *BossSystem) Update() {
	cs := s.world.Component
	res := s.world.Resource
	dt := res.Time.DeltaTime

	bosses := append([]core.Entity(nil), cs.Boss.All()...)
	for _, e := range bosses {
		b, ok := cs.Boss.Get(e)
		if !ok {
			continue
		}
		kin, ok := cs.Kinetic.Get(e)
		if !ok {
			continue
		}

		switch b.Lifecycle {
		case component.BossEntering:
			kin.Pos.Y -= parameter.BossDescendRate
			if kin.Pos.Y <= parameter.BossHoldY {
				kin.Pos.Y = parameter.BossHoldY
				b.Lifecycle = component.BossFighting
				b.Move = component.BossStrafe
				b.MoveTimer = parameter.BossStrafeDuration
			}

		case component.BossFighting:
			s.move(&b, &kin, dt)
			b.BobPhase += parameter.BossBobRate * dt
			kin.Pos.Y = parameter.BossHoldY + math.Sin(b.BobPhase)*parameter.BossBobAmplitude

			b.NextShot -= dt
			if b.NextShot <= 0 {
				s.fireFan(kin.Pos)
				b.NextShot += parameter.BossFireInterval
			}
		}

		cs.Boss.Set(e, b)
		cs.Kinetic.Set(e, kin)
	}
}

func (s *BossSystem) move(b *component.BossComponent, kin *component.KineticComponent, dt float64) {
	b.MoveTimer -= dt

	switch b.Move {
	case component.BossStrafe:
		kin.Pos.X += b.StrafeDir * parameter.BossStrafeSpeed
		if math.Abs(kin.Pos.X) > parameter.BossStrafeBound {
			kin.Pos.X = math.Copysign(parameter.BossStrafeBound, kin.Pos.X)
			b.StrafeDir = -b.StrafeDir
		}
		if b.MoveTimer <= 0 {
			b.Move = component.BossCentering
			b.MoveTimer = parameter.BossCenteringDuration
		}

	case component.BossCentering:
		if kin.Pos.X > parameter.BossCenteringSnap {
			kin.Pos.X -= parameter.BossStrafeSpeed
		} else if kin.Pos.X < -parameter.BossCenteringSnap {
			kin.Pos.X += parameter.BossStrafeSpeed
		} else {
			kin.Pos.X = 0
		}
		if b.MoveTimer <= 0 {
			b.Move = component.BossHolding
			b.MoveTimer = parameter.BossHoldDuration
		}

	case component.BossHolding:
		if b.MoveTimer <= 0 {
			b.Move = component.BossStrafe
			b.MoveTimer = parameter.BossStrafeDuration
			if s.world.Resource.Rand.Float64() < 0.5 {
				b.StrafeDir = -1
			} else {
				b.StrafeDir = 1
			}
		}
	}
}

// fireFan spawns a spread of bullets fanned around straight down
func (s *BossSystem) fireFan(from vmath.Vec3) {
	cs := s.world.Component
	half := float64(parameter.BossFanCount-1) / 2

	for i := 0; i < parameter.BossFanCount; i++ {
		theta := (float64(i) - half) / half * (parameter.BossFanSpread / 2)
		dir := vmath.Vec3{X: math.Sin(theta), Y: -math.Cos(theta)}

		e := s.world.CreateEntity()
		cs.Kinetic.Set(e, component.KineticComponent{
			Pos: from,
			Vel: vmath.V3Scale(dir, parameter.BossBulletSpeed),
		})
		cs.Bullet.Set(e, component.BulletComponent{})
	}
}
