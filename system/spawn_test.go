package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/star-fighter/component"
	"github.com/lixenwraith/star-fighter/config"
	"github.com/lixenwraith/star-fighter/parameter"
	"github.com/lixenwraith/star-fighter/vmath"
)

func TestStatsForBaseScout(t *testing.T) {
	hp, speed, damage := statsFor(component.EnemyScout, 1)
	if hp != 3.5 || speed != 0.15 || damage != 1.0 {
		t.Fatalf("scout wave 1 = %v/%v/%v, want 3.5/0.15/1", hp, speed, damage)
	}
}

func TestStatsForScaledDread(t *testing.T) {
	hp, speed, damage := statsFor(component.EnemyDread, 10)
	if math.Abs(hp-67.5) > 1e-9 {
		t.Fatalf("dread hp at wave 10 = %v, want 67.5", hp)
	}
	if math.Abs(speed-0.0575) > 1e-9 {
		t.Fatalf("dread speed at wave 10 = %v, want 0.0575", speed)
	}
	if damage != 10.0 {
		t.Fatalf("dread damage = %v, want 10 (contact damage never scales)", damage)
	}
}

// scriptedRoll feeds a fixed sequence to pickArchetype; missing values
// default to low rolls that fail every threshold
func scriptedRoll(vals ...float64) func() float64 {
	i := 0
	return func() float64 {
		if i >= len(vals) {
			return 0
		}
		v := vals[i]
		i++
		return v
	}
}

func TestPickArchetypePrecedence(t *testing.T) {
	tests := []struct {
		name       string
		wave, diff int
		rolls      []float64
		want       component.EnemyArchetype
	}{
		{"wave 1 never rolls drone", 1, 0, []float64{0.99}, component.EnemyScout},
		{"drone on high roll", 2, 0, []float64{0.8}, component.EnemyDrone},
		{"fighter overrides drone", 2, 1, []float64{0.8, 0.9}, component.EnemyFighter},
		{"dread overrides fighter", 2, 2, []float64{0.8, 0.9, 0.9}, component.EnemyDread},
		{"failed dread roll keeps fighter", 2, 2, []float64{0.8, 0.9, 0.5}, component.EnemyFighter},
		{"all low rolls stay scout", 5, 2, []float64{0.1, 0.1, 0.1}, component.EnemyScout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pickArchetype(tt.wave, tt.diff, scriptedRoll(tt.rolls...))
			if got != tt.want {
				t.Fatalf("pickArchetype(%d, %d) = %v, want %v", tt.wave, tt.diff, got, tt.want)
			}
		})
	}
}

func TestSpawnEnemyDescends(t *testing.T) {
	rig := newTestRig(config.ClassVanguard, nil)
	if err := rig.director.StartStory(0, false); err != nil {
		t.Fatal(err)
	}

	e := rig.director.spawner.SpawnEnemy(1, 0)
	kin, ok := rig.world().Component.Kinetic.Get(e)
	if !ok {
		t.Fatal("spawned enemy has no kinetics")
	}
	if kin.Pos.Y != parameter.EnemySpawnY {
		t.Fatalf("spawn y = %v, want %v", kin.Pos.Y, parameter.EnemySpawnY)
	}
	if kin.Vel.Y >= 0 {
		t.Fatalf("vel y = %v, want negative (descending)", kin.Vel.Y)
	}
	if math.Abs(kin.Pos.X) > parameter.ArenaHalfWidth {
		t.Fatalf("spawn x = %v, outside the arena band", kin.Pos.X)
	}
}

func TestBigMissileCap(t *testing.T) {
	rig := newTestRig(config.ClassTitan, nil)
	if err := rig.director.StartStory(0, false); err != nil {
		t.Fatal(err)
	}
	sp := rig.director.spawner

	for i := 0; i < 2; i++ {
		if got := sp.SpawnMissile(component.MissileBig); got != SpawnOK {
			t.Fatalf("spawn %d = %v, want ok", i+1, got)
		}
	}
	// Third spawn fits under the cap of five
	if got := sp.SpawnMissile(component.MissileBig); got != SpawnOK {
		t.Fatalf("third spawn = %v, want ok", got)
	}
	sp.SpawnMissile(component.MissileBig)
	sp.SpawnMissile(component.MissileBig)

	if got := sp.SpawnMissile(component.MissileBig); got != SpawnLimit {
		t.Fatalf("sixth spawn = %v, want limit", got)
	}
}

func TestNukeCap(t *testing.T) {
	rig := newTestRig(config.ClassTitan, nil)
	if err := rig.director.StartStory(0, false); err != nil {
		t.Fatal(err)
	}
	sp := rig.director.spawner

	if got := sp.SpawnMissile(component.MissileNuke); got != SpawnOK {
		t.Fatalf("first nuke = %v, want ok", got)
	}
	if got := sp.SpawnMissile(component.MissileNuke); got != SpawnLimit {
		t.Fatalf("second nuke = %v, want limit", got)
	}
}

func TestCapsSkippedInCasual(t *testing.T) {
	rig := newTestRig(config.ClassTitan, nil)
	rig.director.StartCasual()
	sp := rig.director.spawner

	for i := 0; i < parameter.MissileBigCap+2; i++ {
		if got := sp.SpawnMissile(component.MissileBig); got != SpawnOK {
			t.Fatalf("casual spawn %d = %v, want ok", i+1, got)
		}
	}
}

func TestClassGating(t *testing.T) {
	rig := newTestRig(config.ClassRaider, nil)
	if err := rig.director.StartStory(0, false); err != nil {
		t.Fatal(err)
	}
	sp := rig.director.spawner

	if got := sp.SpawnMissile(component.MissileBig); got != SpawnRejected {
		t.Fatalf("raider big = %v, want rejected", got)
	}
	if got := sp.SpawnMissile(component.MissileNuke); got != SpawnRejected {
		t.Fatalf("raider nuke = %v, want rejected", got)
	}
	if got := sp.SpawnMissile(component.MissileNormal); got != SpawnOK {
		t.Fatalf("raider normal = %v, want ok", got)
	}
}

func TestFireMissileConsumesAmmo(t *testing.T) {
	rig := newTestRig(config.ClassVanguard, nil)
	if err := rig.director.StartStory(0, false); err != nil {
		t.Fatal(err)
	}
	state := rig.state()
	before := state.Ammo[component.MissileNormal].Count

	if got := rig.director.FireMissile(component.MissileNormal); got != SpawnOK {
		t.Fatalf("fire = %v, want ok", got)
	}
	if got := state.Ammo[component.MissileNormal].Count; got != before-1 {
		t.Fatalf("ammo = %d, want %d", got, before-1)
	}

	state.Ammo[component.MissileNormal].Count = 0
	if got := rig.director.FireMissile(component.MissileNormal); got != SpawnRejected {
		t.Fatalf("fire on empty pool = %v, want rejected", got)
	}
	if got := state.Ammo[component.MissileNormal].Count; got != 0 {
		t.Fatalf("ammo went negative: %d", got)
	}
}

func TestStoryNukeStartsLaunching(t *testing.T) {
	rig := newTestRig(config.ClassTitan, nil)
	if err := rig.director.StartStory(0, false); err != nil {
		t.Fatal(err)
	}

	if got := rig.director.spawner.SpawnMissile(component.MissileNuke); got != SpawnOK {
		t.Fatalf("nuke spawn = %v, want ok", got)
	}

	cs := rig.world().Component
	if cs.Missile.Count() != 1 {
		t.Fatalf("missile count = %d, want 1", cs.Missile.Count())
	}
	e := cs.Missile.All()[0]
	m, _ := cs.Missile.Get(e)
	if m.Phase != component.MissilePhaseLaunching {
		t.Fatalf("phase = %v, want launching", m.Phase)
	}
	kin, _ := cs.Kinetic.Get(e)
	if kin.Vel != (vmath.Vec3{}) {
		t.Fatalf("launching nuke has velocity %v, want none", kin.Vel)
	}
	if kin.Pos.Y != parameter.NukePadY {
		t.Fatalf("nuke pad y = %v, want %v", kin.Pos.Y, parameter.NukePadY)
	}
}
