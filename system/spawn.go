package system

import (
	"math"

	"github.com/lixenwraith/star-fighter/component"
	"github.com/lixenwraith/star-fighter/core"
	"github.com/lixenwraith/star-fighter/engine"
	"github.com/lixenwraith/star-fighter/event"
	"github.com/lixenwraith/star-fighter/parameter"
	"github.com/lixenwraith/star-fighter/vmath"
)

// SpawnResult reports the outcome of a missile fire request
type SpawnResult int

const (
	// SpawnOK means the missile was created
	SpawnOK SpawnResult = iota

	// SpawnLimit means the per-kind concurrency cap was hit
	SpawnLimit

	// SpawnRejected means the loadout class cannot fire this kind
	SpawnRejected
)

// String returns the result name
func (r SpawnResult) String() string {
	switch r {
	case SpawnOK:
		return "ok"
	case SpawnLimit:
		return "limit"
	case SpawnRejected:
		return "rejected"
	}
	return "unknown"
}

// Spawner creates simulation entities with archetype stat tables.
// It is a helper shared by the stage system and the director, not a
// ticked system itself.
type Spawner struct {
	world *engine.World
}

// NewSpawner creates a spawner bound to the world
func NewSpawner(world *engine.World) *Spawner {
	return &Spawner{world: world}
}

// pickArchetype rolls the archetype for a new enemy. Checks run in
// fixed order and later matches override earlier ones, so dread wins
// over fighter over drone over scout. The roll source is injected so
// tests can force each branch.
func pickArchetype(wave, difficulty int, roll func() float64) component.EnemyArchetype {
	arch := component.EnemyScout
	if wave > 1 && roll() > parameter.DroneRollThreshold {
		arch = component.EnemyDrone
	}
	if difficulty >= 1 && roll() > parameter.FighterRollThreshold {
		arch = component.EnemyFighter
	}
	if difficulty >= 2 && roll() > parameter.DreadRollThreshold {
		arch = component.EnemyDread
	}
	return arch
}

// statsFor returns the archetype base stats scaled for the wave.
// Waves past the scale base grow hp and speed multiplicatively;
// contact damage stays fixed.
func statsFor(arch component.EnemyArchetype, wave int) (hp, speed, damage float64) {
	switch arch {
	case component.EnemyFighter:
		hp, speed, damage = parameter.FighterHP, parameter.FighterSpeed, parameter.FighterDamage
	case component.EnemyDrone:
		hp, speed, damage = parameter.DroneHP, parameter.DroneSpeed, parameter.DroneDamage
	case component.EnemyDread:
		hp, speed, damage = parameter.DreadHP, parameter.DreadSpeed, parameter.DreadDamage
	default:
		hp, speed, damage = parameter.ScoutHP, parameter.ScoutSpeed, parameter.ScoutDamage
	}
	if wave > parameter.EnemyScaleBaseWave {
		over := float64(wave - parameter.EnemyScaleBaseWave)
		hp *= 1 + over*parameter.EnemyHPScalePerWave
		speed *= 1 + over*parameter.EnemySpeedScalePerWave
	}
	return hp, speed, damage
}

// SpawnEnemy creates one enemy above the arena, descending straight
// down at its archetype speed.
func (s *Spawner) SpawnEnemy(wave, difficulty int) core.Entity {
	res := s.world.Resource
	arch := pickArchetype(wave, difficulty, res.Rand.Float64)
	hp, speed, damage := statsFor(arch, wave)

	e := s.world.CreateEntity()
	s.world.Component.Kinetic.Set(e, component.KineticComponent{
		Pos: vmath.Vec3{
			X: res.Rand.Range(-parameter.ArenaHalfWidth, parameter.ArenaHalfWidth),
			Y: parameter.EnemySpawnY,
		},
		Vel:   vmath.Vec3{Y: -speed},
		Speed: speed,
	})
	s.world.Component.Enemy.Set(e, component.EnemyComponent{
		Archetype:     arch,
		HP:            hp,
		MaxHP:         hp,
		ContactDamage: damage,
		Rotates:       arch == component.EnemyDrone || arch == component.EnemyDread,
	})
	return e
}

// SpawnBoss creates the boss above the arena in the entering state and
// publishes its status to the HUD.
func (s *Spawner) SpawnBoss(hp float64) core.Entity {
	if hp <= 0 {
		hp = parameter.DefaultBossHP
	}

	e := s.world.CreateEntity()
	s.world.Component.Kinetic.Set(e, component.KineticComponent{
		Pos: vmath.Vec3{Y: parameter.BossEnterY},
	})
	s.world.Component.Boss.Set(e, component.BossComponent{
		Name:      parameter.BossName,
		HP:        hp,
		MaxHP:     hp,
		Lifecycle: component.BossEntering,
		Move:      component.BossStrafe,
		MoveTimer: parameter.BossStrafeDuration,
		NextShot:  parameter.BossFireInterval,
		StrafeDir: 1,
	})

	s.world.Resource.Buffer.SetBoss(engine.BossStatus{
		Name:  parameter.BossName,
		HP:    hp,
		MaxHP: hp,
	})
	return e
}

// SpawnMissile creates a missile of the given kind aimed at the live
// aim point. Concurrency caps apply outside casual mode; the loadout
// class gates big and nuke kinds. Ammo accounting belongs to the
// caller.
func (s *Spawner) SpawnMissile(kind component.MissileKind) SpawnResult {
	res := s.world.Resource
	state := res.State

	if !res.Loadout.Class.HasKind(kind) {
		return SpawnRejected
	}

	casual := state.Mode == engine.ModeCasual
	if !casual {
		switch kind {
		case component.MissileBig:
			if s.countMissiles(component.MissileBig) >= parameter.MissileBigCap {
				return SpawnLimit
			}
		case component.MissileNuke:
			if s.countMissiles(component.MissileNuke) >= parameter.MissileNukeCap {
				return SpawnLimit
			}
		}
	}

	levels := res.Loadout.Levels(kind)
	speed := baseSpeed(kind) + float64(levels.Speed)*parameter.MissileSpeedUpgradeStep
	if casual {
		speed *= parameter.CasualSpeedFactor
	}

	target := state.Aim
	e := s.world.CreateEntity()

	if !casual && kind == component.MissileNuke {
		// Story nukes rise vertically off the pad before homing
		from := vmath.Vec3{Y: parameter.NukePadY}
		s.world.Component.Kinetic.Set(e, component.KineticComponent{
			Pos:   from,
			Speed: speed,
		})
		s.world.Component.Missile.Set(e, component.MissileComponent{
			Kind:       kind,
			Phase:      component.MissilePhaseLaunching,
			Target:     target,
			LaunchFrom: from,
			LaunchTo:   vmath.Vec3{X: from.X, Y: from.Y + parameter.NukeLaunchRise},
		})
		s.world.PushEvent(event.EventSoundRequest, event.SoundRequestPayload{Sound: core.SoundLaunch})
		return SpawnOK
	}

	var pos vmath.Vec3
	if casual {
		// Spawn on a ring around the origin so casual missiles
		// converge from all sides
		angle := res.Rand.Range(0, 2*math.Pi)
		radius := res.Rand.Range(parameter.CasualSpawnRingMin, parameter.CasualSpawnRingMax)
		pos = vmath.Vec3{X: math.Cos(angle) * radius, Y: math.Sin(angle) * radius}
	} else {
		pos = vmath.Vec3{Y: parameter.MissilePadY}
	}

	s.world.Component.Kinetic.Set(e, component.KineticComponent{
		Pos:   pos,
		Vel:   vmath.V3Toward(pos, target, speed),
		Speed: speed,
	})
	s.world.Component.Missile.Set(e, component.MissileComponent{
		Kind:   kind,
		Phase:  component.MissilePhaseFlying,
		Target: target,
	})

	s.world.PushEvent(event.EventSoundRequest, event.SoundRequestPayload{Sound: core.SoundLaunch})
	return SpawnOK
}

func baseSpeed(kind component.MissileKind) float64 {
	switch kind {
	case component.MissileBig:
		return parameter.MissileSpeedBig
	case component.MissileNuke:
		return parameter.MissileSpeedNuke
	default:
		return parameter.MissileSpeedNormal
	}
}

func (s *Spawner) countMissiles(kind component.MissileKind) int {
	n := 0
	for _, e := range s.world.Component.Missile.All() {
		if m, ok := s.world.Component.Missile.Get(e); ok && m.Kind == kind {
			n++
		}
	}
	return n
}

// SpawnEffect creates a particle effect at the given center
func (s *Spawner) SpawnEffect(kind component.EffectKind, center vmath.Vec3, radius, maxAge float64, vel vmath.Vec3) core.Entity {
	e := s.world.CreateEntity()
	s.world.Component.Kinetic.Set(e, component.KineticComponent{Pos: center, Vel: vel})
	s.world.Component.Effect.Set(e, component.EffectComponent{
		Kind:   kind,
		MaxAge: maxAge,
		Radius: radius,
	})
	return e
}
