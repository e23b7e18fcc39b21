package system

import (
	"sync/atomic"

	"github.com/lixenwraith/star-fighter/component"
	"github.com/lixenwraith/star-fighter/core"
	"github.com/lixenwraith/star-fighter/engine"
	"github.com/lixenwraith/star-fighter/event"
	"github.com/lixenwraith/star-fighter/parameter"
	"github.com/lixenwraith/star-fighter/vmath"
)

// CombatSystem resolves explosions and player damage. It is purely
// event-driven: explosion requests detonate synchronously in the same
// tick they are raised.
type CombatSystem struct {
	world   *engine.World
	spawner *Spawner

	kills      *atomic.Int64
	explosions *atomic.Int64
}

// NewCombatSystem creates the combat system
func NewCombatSystem(world *engine.World, spawner *Spawner) *CombatSystem {
	reg := world.Resource.Status
	return &CombatSystem{
		world:      world,
		spawner:    spawner,
		kills:      reg.Ints.Get("combat.kills"),
		explosions: reg.Ints.Get("combat.explosions"),
	}
}

func (s *CombatSystem) Name() string  { return "combat" }
func (s *CombatSystem) Priority() int { return parameter.PriorityCombat }
func (s *CombatSystem) Update()       {}

func (s *CombatSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventExplosionRequest,
		event.EventPlayerDamageRequest,
	}
}

func (s *CombatSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventExplosionRequest:
		if p, ok := ev.Payload.(event.ExplosionRequestPayload); ok {
			s.createExplosion(p.Center, p.Kind)
		}
	case event.EventPlayerDamageRequest:
		if p, ok := ev.Payload.(event.PlayerDamageRequestPayload); ok {
			s.damagePlayer(p.Amount)
		}
	}
}

// createExplosion detonates a missile kind at a point: the effect
// field spawns and the area damage applies immediately.
func (s *CombatSystem) createExplosion(center vmath.Vec3, kind component.MissileKind) {
	s.explosions.Add(1)
	levels := s.world.Resource.Loadout.Levels(kind)

	if kind == component.MissileNuke {
		radius := parameter.NukeRadius + float64(levels.Radius)*parameter.NukeRadiusStep
		damage := parameter.NukeDamage + float64(levels.Damage)*parameter.NukeDamageStep

		s.spawner.SpawnEffect(component.EffectFireball, center, radius*0.4, parameter.EffectFireballMaxAge, vmath.Vec3{})
		s.spawner.SpawnEffect(component.EffectNukeSphere, center, radius, parameter.EffectNukeSphereMaxAge, vmath.Vec3{})
		s.world.PushEvent(event.EventSoundRequest, event.SoundRequestPayload{Sound: core.SoundNuke})

		s.checkDamage(center, radius, damage)
		return
	}

	var radius, damage float64
	if kind == component.MissileBig {
		radius = parameter.ExplosionRadiusBig + float64(levels.Radius)*parameter.ExplosionRadiusStepBig
		damage = parameter.ExplosionDamageBig + float64(levels.Damage)*parameter.ExplosionDamageStepBig
	} else {
		radius = parameter.ExplosionRadiusNormal + float64(levels.Radius)*parameter.ExplosionRadiusStepNormal
		damage = parameter.ExplosionDamageNormal + float64(levels.Damage)*parameter.ExplosionDamageStepNormal
	}
	if s.world.Resource.Rand.Float64() < float64(levels.Crit)*parameter.CritChancePerLevel {
		damage *= 2
	}

	s.spawner.SpawnEffect(component.EffectBlast, center, radius, parameter.EffectBlastMaxAge, vmath.Vec3{})
	s.world.PushEvent(event.EventSoundRequest, event.SoundRequestPayload{Sound: core.SoundBlast})

	s.checkDamage(center, radius, damage)
}

// checkDamage applies area damage to enemies and the boss. Outside
// story mode explosions are visual only.
func (s *CombatSystem) checkDamage(center vmath.Vec3, radius, damage float64) {
	res := s.world.Resource
	state := res.State
	if state.Mode != engine.ModeStory {
		return
	}
	cs := s.world.Component
	r2 := radius * radius

	enemies := append([]core.Entity(nil), cs.Enemy.All()...)
	for _, e := range enemies {
		kin, ok := cs.Kinetic.Get(e)
		if !ok {
			continue
		}
		if vmath.V3DistSq(center, kin.Pos) > r2 {
			continue
		}
		en, ok := cs.Enemy.Get(e)
		if !ok {
			continue
		}
		en.HP -= damage
		en.FlashRemaining = parameter.EnemyFlashDuration
		if en.HP <= 0 {
			s.world.DestroyEntity(e)
			s.kills.Add(1)
			state.Money += parameter.EnemyReward
			res.Buffer.SetMoney(state.Money)
			continue
		}
		cs.Enemy.Set(e, en)
	}

	bossRadius := radius + parameter.BossDamageRadiusBonus
	br2 := bossRadius * bossRadius
	bosses := append([]core.Entity(nil), cs.Boss.All()...)
	for _, e := range bosses {
		kin, ok := cs.Kinetic.Get(e)
		if !ok {
			continue
		}
		if vmath.V3DistSq(center, kin.Pos) > br2 {
			continue
		}
		b, ok := cs.Boss.Get(e)
		if !ok {
			continue
		}
		b.HP -= damage
		res.Buffer.SetBoss(engine.BossStatus{Name: b.Name, HP: b.HP, MaxHP: b.MaxHP})

		if b.HP > 0 {
			cs.Boss.Set(e, b)
			continue
		}

		s.world.DestroyEntity(e)
		s.clearBullets()
		state.Money += parameter.BossReward
		res.Buffer.SetMoney(state.Money)
		res.Buffer.SetBossCleared()
		s.world.PushEvent(event.EventSoundRequest, event.SoundRequestPayload{Sound: core.SoundBossDown})
		if !state.WaveSignaled {
			state.WaveSignaled = true
			s.world.PushEvent(event.EventWaveComplete, nil)
		}
	}
}

func (s *CombatSystem) clearBullets() {
	cs := s.world.Component
	bullets := append([]core.Entity(nil), cs.Bullet.All()...)
	for _, e := range bullets {
		s.world.DestroyEntity(e)
	}
}

// damagePlayer subtracts player health, clamping at zero. Health does
// not apply in casual mode. Zero health ends the run: the field is
// discarded and exactly one game-over signal fires.
func (s *CombatSystem) damagePlayer(amount float64) {
	res := s.world.Resource
	state := res.State
	if state.Mode == engine.ModeCasual {
		return
	}

	state.Health -= amount
	if state.Health <= 0 {
		state.Health = 0
		res.Buffer.SetHealth(0)
		if !state.GameOverSignaled {
			state.GameOverSignaled = true
			state.Mode = engine.ModeGameOver
			// Stopping discards all transient entities; the renderer
			// learns of the removals through the presentation diff
			s.world.ClearEntities()
			s.world.PushEvent(event.EventGameOver, nil)
			s.world.PushEvent(event.EventSoundRequest, event.SoundRequestPayload{Sound: core.SoundGameOver})
		}
		return
	}
	res.Buffer.SetHealth(state.Health)
}
