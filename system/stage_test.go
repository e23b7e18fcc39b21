package system

import (
	"testing"

	"github.com/lixenwraith/star-fighter/component"
	"github.com/lixenwraith/star-fighter/config"
	"github.com/lixenwraith/star-fighter/core"
	"github.com/lixenwraith/star-fighter/parameter"
)

func TestStartStoryInvalidLevel(t *testing.T) {
	rig := newTestRig(config.ClassVanguard, waveTable(3, 2, 0))
	if err := rig.director.StartStory(5, false); err == nil {
		t.Fatal("out-of-range level accepted")
	}
}

func TestSpawnCadence(t *testing.T) {
	rig := newTestRig(config.ClassVanguard, waveTable(3, 2, 0))
	if err := rig.director.StartStory(0, false); err != nil {
		t.Fatal(err)
	}

	counts := []int{}
	for i := 0; i < 6; i++ {
		rig.step()
		counts = append(counts, rig.world().Component.Enemy.Count())
	}
	t.Logf("enemy counts per tick: %v", counts)

	// One enemy every two ticks until the quota of three drains
	want := []int{0, 1, 1, 2, 2, 3}
	for i := range want {
		if counts[i] != want[i] {
			t.Fatalf("tick %d: %d enemies, want %d", i+1, counts[i], want[i])
		}
	}
	if rig.state().Quota != 0 {
		t.Fatalf("quota = %d, want 0", rig.state().Quota)
	}
}

func TestStartStoryIdempotent(t *testing.T) {
	rig := newTestRig(config.ClassVanguard, waveTable(3, 2, 0))
	if err := rig.director.StartStory(0, false); err != nil {
		t.Fatal(err)
	}
	rig.steps(4)
	if rig.world().Component.Enemy.Count() == 0 {
		t.Fatal("no enemies spawned before restart")
	}

	if err := rig.director.StartStory(0, false); err != nil {
		t.Fatal(err)
	}

	if got := rig.world().Component.Enemy.Count(); got != 0 {
		t.Fatalf("%d enemies survived restart, want 0", got)
	}
	if got := rig.state().Quota; got != 3 {
		t.Fatalf("quota after restart = %d, want 3", got)
	}
	if got := rig.state().Health; got != parameter.PlayerMaxHealth {
		t.Fatalf("health after restart = %v, want full", got)
	}
}

func TestWaveCompleteAfterQuotaCleared(t *testing.T) {
	rig := newTestRig(config.ClassVanguard, waveTable(2, 2, 0))
	if err := rig.director.StartStory(0, false); err != nil {
		t.Fatal(err)
	}

	rig.steps(4) // quota drained, two enemies alive
	if rig.state().Quota != 0 {
		t.Fatalf("quota = %d, want 0", rig.state().Quota)
	}
	if len(rig.signals) != 0 {
		t.Fatalf("signaled with enemies alive: %v", rig.signals)
	}

	for _, e := range append([]core.Entity(nil), rig.world().Component.Enemy.All()...) {
		rig.world().DestroyEntity(e)
	}
	rig.steps(3)

	waves := 0
	for _, sig := range rig.signals {
		if sig == core.SignalWaveComplete {
			waves++
		}
	}
	if waves != 1 {
		t.Fatalf("wave complete signaled %d times, want exactly once", waves)
	}
}

func TestBossStageSpawnsSingleBoss(t *testing.T) {
	rig := newTestRig(config.ClassVanguard, waveTable(3, 2, 1))
	if err := rig.director.StartStory(1, false); err != nil {
		t.Fatal(err)
	}

	rig.steps(5)

	if got := rig.world().Component.Boss.Count(); got != 1 {
		t.Fatalf("boss count = %d, want exactly 1", got)
	}
	if got := rig.world().Component.Enemy.Count(); got != 0 {
		t.Fatalf("boss stage spawned %d quota enemies", got)
	}

	boss := rig.world().Component.Boss.All()[0]
	b, _ := rig.world().Component.Boss.Get(boss)
	if b.MaxHP != 50 {
		t.Fatalf("boss hp = %v, want 50 from stage config", b.MaxHP)
	}
}

func TestBossDescendsThenFights(t *testing.T) {
	rig := newTestRig(config.ClassVanguard, waveTable(3, 2, 1))
	if err := rig.director.StartStory(1, false); err != nil {
		t.Fatal(err)
	}
	rig.step() // spawn

	boss := rig.world().Component.Boss.All()[0]

	// Descent covers (60-30)/0.2 = 150 ticks
	rig.steps(160)

	b, _ := rig.world().Component.Boss.Get(boss)
	if b.Lifecycle != component.BossFighting {
		t.Fatalf("lifecycle = %v after descent, want fighting", b.Lifecycle)
	}
	if rig.world().Component.Bullet.Count() == 0 {
		t.Fatal("fighting boss never fired")
	}
}

func TestCasualAutoSpawn(t *testing.T) {
	rig := newTestRig(config.ClassTitan, nil)
	rig.director.StartCasual()

	if got := rig.world().Component.Effect.Count(); got != parameter.EmberCount {
		t.Fatalf("ember count = %d, want %d", got, parameter.EmberCount)
	}

	rig.steps(parameter.CasualAutoSpawnTicks + 1)

	if rig.world().Component.Missile.Count() == 0 {
		t.Fatal("no missile auto-spawned in casual mode")
	}
}
