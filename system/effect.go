package system

import (
	"github.com/lixenwraith/star-fighter/component"
	"github.com/lixenwraith/star-fighter/core"
	"github.com/lixenwraith/star-fighter/engine"
	"github.com/lixenwraith/star-fighter/parameter"
	"github.com/lixenwraith/star-fighter/vmath"
)

// EffectSystem ages particle effects by one per tick, damps and
// integrates their drift, and removes them at end of life. Embers are
// the exception: they wrap at the field bounds and loop their age.
type EffectSystem struct {
	engine.SystemBase
	world *engine.World
}

// NewEffectSystem creates the effect system
func NewEffectSystem(world *engine.World) *EffectSystem {
	return &EffectSystem{world: world}
}

func (s *EffectSystem) Name() string  { return "effect" }
func (s *EffectSystem) Priority() int { return parameter.PriorityEffect }

func (s *EffectSystem) Update() {
	cs := s.world.Component

	effects := append([]core.Entity(nil), cs.Effect.All()...)
	for _, e := range effects {
		fx, ok := cs.Effect.Get(e)
		if !ok {
			continue
		}
		kin, ok := cs.Kinetic.Get(e)
		if !ok {
			continue
		}

		fx.Age++

		if fx.Kind == component.EffectEmber {
			// Embers drift undamped and wrap at the field bounds
			kin.Pos = vmath.V3Add(kin.Pos, kin.Vel)
			wrap(&kin.Pos)
			if fx.Age >= fx.MaxAge {
				fx.Age = 0
			}
		} else {
			kin.Vel = vmath.V3Scale(kin.Vel, parameter.EffectVelocityDamping)
			kin.Pos = vmath.V3Add(kin.Pos, kin.Vel)
			if fx.Age >= fx.MaxAge {
				s.world.DestroyEntity(e)
				continue
			}
		}

		cs.Effect.Set(e, fx)
		cs.Kinetic.Set(e, kin)
	}
}

func wrap(pos *vmath.Vec3) {
	const bound = parameter.EmberBound
	if pos.X > bound {
		pos.X = -bound
	} else if pos.X < -bound {
		pos.X = bound
	}
	if pos.Y > bound {
		pos.Y = -bound
	} else if pos.Y < -bound {
		pos.Y = bound
	}
}
