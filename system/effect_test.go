package system

import (
	"testing"

	"github.com/lixenwraith/star-fighter/component"
	"github.com/lixenwraith/star-fighter/config"
	"github.com/lixenwraith/star-fighter/parameter"
	"github.com/lixenwraith/star-fighter/vmath"
)

func TestEffectAgesAndExpires(t *testing.T) {
	rig := newTestRig(config.ClassVanguard, nil)
	if err := rig.director.StartStory(0, false); err != nil {
		t.Fatal(err)
	}

	e := rig.director.spawner.SpawnEffect(component.EffectBlast, vmath.Vec3{}, 6, 3, vmath.Vec3{})

	rig.steps(2)
	fx, ok := rig.world().Component.Effect.Get(e)
	if !ok {
		t.Fatal("effect expired early")
	}
	if fx.Age != 2 {
		t.Fatalf("age = %v after 2 ticks, want 2", fx.Age)
	}

	rig.step()
	if rig.world().Component.Effect.Has(e) {
		t.Fatal("effect survived past max age")
	}
}

func TestEffectDampsVelocity(t *testing.T) {
	rig := newTestRig(config.ClassVanguard, nil)
	if err := rig.director.StartStory(0, false); err != nil {
		t.Fatal(err)
	}

	e := rig.director.spawner.SpawnEffect(component.EffectFireball, vmath.Vec3{}, 6, parameter.EffectFireballMaxAge, vmath.Vec3{X: 1})
	rig.step()

	kin, _ := rig.world().Component.Kinetic.Get(e)
	if kin.Vel.X != parameter.EffectVelocityDamping {
		t.Fatalf("vel = %v, want damped to %v", kin.Vel.X, parameter.EffectVelocityDamping)
	}
	if kin.Pos.X != parameter.EffectVelocityDamping {
		t.Fatalf("pos = %v, want integrated after damping", kin.Pos.X)
	}
}

func TestEmberWrapsAndLoops(t *testing.T) {
	rig := newTestRig(config.ClassTitan, nil)
	rig.director.StartCasual()

	e := rig.director.spawner.SpawnEffect(component.EffectEmber, vmath.Vec3{X: parameter.EmberBound - 0.1}, parameter.EmberRadius, parameter.EffectEmberMaxAge, vmath.Vec3{X: 0.4})
	rig.step()

	kin, _ := rig.world().Component.Kinetic.Get(e)
	if kin.Pos.X != -parameter.EmberBound {
		t.Fatalf("pos x = %v, want wrap to %v", kin.Pos.X, -parameter.EmberBound)
	}
	if kin.Vel.X != 0.4 {
		t.Fatalf("ember vel damped to %v, want constant drift", kin.Vel.X)
	}

	// Embers loop their age instead of expiring
	fx, _ := rig.world().Component.Effect.Get(e)
	fx.Age = parameter.EffectEmberMaxAge - 1
	rig.world().Component.Effect.Set(e, fx)
	rig.step()

	fx, ok := rig.world().Component.Effect.Get(e)
	if !ok {
		t.Fatal("ember expired")
	}
	if fx.Age != 0 {
		t.Fatalf("ember age = %v, want looped to 0", fx.Age)
	}
}
