package system

import (
	"github.com/lixenwraith/star-fighter/component"
	"github.com/lixenwraith/star-fighter/core"
	"github.com/lixenwraith/star-fighter/engine"
	"github.com/lixenwraith/star-fighter/event"
	"github.com/lixenwraith/star-fighter/parameter"
	"github.com/lixenwraith/star-fighter/vmath"
)

// MissileSystem advances player missiles: bullet interception, the
// nuke launch phase, homing and integration, range culling, and the
// story-mode collision checks against enemies and the boss.
type MissileSystem struct {
	engine.SystemBase
	world *engine.World
}

// NewMissileSystem creates the missile system
func NewMissileSystem(world *engine.World) *MissileSystem {
	return &MissileSystem{world: world}
}

func (s *MissileSystem) Name() string  { return "missile" }
func (s *MissileSystem) Priority() int { return parameter.PriorityMissile }

func (s *MissileSystem) Update() {
	s.interceptBullets()
	s.advance()
	s.collide()
}

// interceptBullets destroys any missile passing close to an enemy
// bullet, detonating the missile where they met. Runs before movement
// so a bullet cannot pass through a missile within one tick.
func (s *MissileSystem) interceptBullets() {
	cs := s.world.Component
	if cs.Bullet.Count() == 0 || cs.Missile.Count() == 0 {
		return
	}

	missiles := append([]core.Entity(nil), cs.Missile.All()...)
	const r2 = parameter.InterceptRadius * parameter.InterceptRadius

	for _, me := range missiles {
		kin, ok := cs.Kinetic.Get(me)
		if !ok {
			continue
		}
		m, _ := cs.Missile.Get(me)

		for _, be := range cs.Bullet.All() {
			bkin, ok := cs.Kinetic.Get(be)
			if !ok {
				continue
			}
			if vmath.V3DistSq(kin.Pos, bkin.Pos) > r2 {
				continue
			}
			s.world.PushEvent(event.EventExplosionRequest, event.ExplosionRequestPayload{
				Center: kin.Pos,
				Kind:   m.Kind,
			})
			s.world.PushEvent(event.EventSoundRequest, event.SoundRequestPayload{Sound: core.SoundIntercept})
			s.world.DestroyEntity(be)
			s.world.DestroyEntity(me)
			break
		}
	}
}

// advance moves every missile one step and culls those out of range.
// Launching nukes interpolate along their pad trajectory on elapsed
// time; flying missiles step by a fixed per-tick velocity.
func (s *MissileSystem) advance() {
	cs := s.world.Component
	res := s.world.Resource
	state := res.State
	dt := res.Time.DeltaTime

	casual := state.Mode == engine.ModeCasual
	rehome := casual && res.Time.GameTime.Sub(state.AimMovedAt).Seconds() <= parameter.CasualRehomeWindow

	missiles := append([]core.Entity(nil), cs.Missile.All()...)
	for _, e := range missiles {
		m, ok := cs.Missile.Get(e)
		if !ok {
			continue
		}
		kin, ok := cs.Kinetic.Get(e)
		if !ok {
			continue
		}

		if m.Phase == component.MissilePhaseLaunching {
			m.LaunchElapsed += dt
			t := m.LaunchElapsed / parameter.NukeLaunchDuration
			kin.Pos = vmath.V3Lerp(m.LaunchFrom, m.LaunchTo, t)
			if t >= 1 {
				m.Phase = component.MissilePhaseFlying
				kin.Vel = vmath.V3Toward(kin.Pos, m.Target, kin.Speed)
			}
			cs.Missile.Set(e, m)
			cs.Kinetic.Set(e, kin)
			continue
		}

		// While the aim point is moving in casual mode, every missile
		// continuously re-homes; once it stops, they coast.
		if rehome {
			kin.Vel = vmath.V3Toward(kin.Pos, state.Aim, kin.Speed)
		}
		kin.Pos = vmath.V3Add(kin.Pos, kin.Vel)

		if vmath.V3Mag(kin.Pos) > parameter.ViewerMaxRange {
			s.world.DestroyEntity(e)
			continue
		}
		cs.Kinetic.Set(e, kin)
	}
}

// collide detonates missiles against enemies and the boss. Story mode
// only; launching missiles are still on the pad and cannot hit.
func (s *MissileSystem) collide() {
	res := s.world.Resource
	if res.State.Mode != engine.ModeStory {
		return
	}
	cs := s.world.Component

	missiles := append([]core.Entity(nil), cs.Missile.All()...)
	for _, e := range missiles {
		m, ok := cs.Missile.Get(e)
		if !ok || m.Phase == component.MissilePhaseLaunching {
			continue
		}
		kin, ok := cs.Kinetic.Get(e)
		if !ok {
			continue
		}

		radius := hitRadius(m.Kind)
		hit := false

		for _, ee := range cs.Enemy.All() {
			ekin, ok := cs.Kinetic.Get(ee)
			if !ok {
				continue
			}
			if vmath.V3DistSq(kin.Pos, ekin.Pos) <= radius*radius {
				hit = true
				break
			}
		}

		if !hit {
			bossRadius := radius + parameter.BossHitRadiusBonus
			for _, be := range cs.Boss.All() {
				bkin, ok := cs.Kinetic.Get(be)
				if !ok {
					continue
				}
				if vmath.V3DistSq(kin.Pos, bkin.Pos) <= bossRadius*bossRadius {
					hit = true
					break
				}
			}
		}

		if hit {
			s.world.PushEvent(event.EventExplosionRequest, event.ExplosionRequestPayload{
				Center: kin.Pos,
				Kind:   m.Kind,
			})
			s.world.DestroyEntity(e)
		}
	}
}

func hitRadius(kind component.MissileKind) float64 {
	switch kind {
	case component.MissileBig:
		return parameter.MissileHitRadiusBig
	case component.MissileNuke:
		return parameter.MissileHitRadiusNuke
	default:
		return parameter.MissileHitRadiusNormal
	}
}
