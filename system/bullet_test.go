package system

import (
	"testing"

	"github.com/lixenwraith/star-fighter/component"
	"github.com/lixenwraith/star-fighter/config"
	"github.com/lixenwraith/star-fighter/core"
	"github.com/lixenwraith/star-fighter/parameter"
	"github.com/lixenwraith/star-fighter/vmath"
)

func spawnBullet(rig *testRig, pos, vel vmath.Vec3) core.Entity {
	e := rig.world().CreateEntity()
	rig.world().Component.Kinetic.Set(e, component.KineticComponent{Pos: pos, Vel: vel})
	rig.world().Component.Bullet.Set(e, component.BulletComponent{})
	return e
}

func TestBulletBouncesAtBarrier(t *testing.T) {
	rig := newTestRig(config.ClassVanguard, nil)
	if err := rig.director.StartStory(0, false); err != nil {
		t.Fatal(err)
	}

	// W-1 heading outward
	e := spawnBullet(rig, vmath.Vec3{X: parameter.ArenaHalfWidth - 1}, vmath.Vec3{X: 10})
	rig.step()

	kin, ok := rig.world().Component.Kinetic.Get(e)
	if !ok {
		t.Fatal("bullet destroyed by bounce")
	}
	if kin.Vel.X >= 0 {
		t.Fatalf("vel x = %v, want sign flip", kin.Vel.X)
	}
	want := parameter.ArenaHalfWidth - parameter.BulletBounceMargin
	if kin.Pos.X != want {
		t.Fatalf("pos x = %v, want clamp to %v", kin.Pos.X, want)
	}
}

func TestBulletCrossingDamageLineHurtsPlayer(t *testing.T) {
	rig := newTestRig(config.ClassVanguard, nil)
	if err := rig.director.StartStory(0, false); err != nil {
		t.Fatal(err)
	}

	e := spawnBullet(rig, vmath.Vec3{Y: parameter.DamageLineY + 1}, vmath.Vec3{Y: -8})
	rig.step()

	if rig.world().Component.Bullet.Has(e) {
		t.Fatal("bullet survived the damage line")
	}
	want := parameter.PlayerMaxHealth - parameter.BulletPlayerDamage
	if got := rig.state().Health; got != want {
		t.Fatalf("health = %v, want %v", got, want)
	}
}

func TestBulletBelowDropLineIsSilent(t *testing.T) {
	rig := newTestRig(config.ClassVanguard, nil)
	if err := rig.director.StartStory(0, false); err != nil {
		t.Fatal(err)
	}

	e := spawnBullet(rig, vmath.Vec3{Y: parameter.BulletDropY + 0.5}, vmath.Vec3{Y: -8})
	rig.step()

	if rig.world().Component.Bullet.Has(e) {
		t.Fatal("bullet survived below the drop line")
	}
	if got := rig.state().Health; got != parameter.PlayerMaxHealth {
		t.Fatalf("health = %v, silent drop must not damage", got)
	}
}

func TestDamageFieldAbsorbsBullet(t *testing.T) {
	rig := newTestRig(config.ClassVanguard, nil)
	if err := rig.director.StartStory(0, false); err != nil {
		t.Fatal(err)
	}

	center := vmath.Vec3{Y: 10}
	rig.director.spawner.SpawnEffect(component.EffectBlast, center, 5, parameter.EffectBlastMaxAge, vmath.Vec3{})
	e := spawnBullet(rig, center, vmath.Vec3{})

	rig.step()

	if rig.world().Component.Bullet.Has(e) {
		t.Fatal("bullet survived inside an active damage field")
	}
	if got := rig.state().Health; got != parameter.PlayerMaxHealth {
		t.Fatalf("health = %v, absorption must not damage", got)
	}
}

func TestExpiredFieldStopsAbsorbing(t *testing.T) {
	rig := newTestRig(config.ClassVanguard, nil)
	if err := rig.director.StartStory(0, false); err != nil {
		t.Fatal(err)
	}

	center := vmath.Vec3{Y: 10}
	fx := rig.director.spawner.SpawnEffect(component.EffectBlast, center, 5, parameter.EffectBlastMaxAge, vmath.Vec3{})

	// Age the effect past the damage window but short of expiry
	c, _ := rig.world().Component.Effect.Get(fx)
	c.Age = parameter.EffectBlastMaxAge * parameter.DamageFieldWindow
	rig.world().Component.Effect.Set(fx, c)

	e := spawnBullet(rig, center, vmath.Vec3{})
	rig.step()

	if !rig.world().Component.Bullet.Has(e) {
		t.Fatal("bullet absorbed by an expired damage field")
	}
}
