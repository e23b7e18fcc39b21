package system

import (
	"time"

	"github.com/lixenwraith/star-fighter/config"
	"github.com/lixenwraith/star-fighter/core"
	"github.com/lixenwraith/star-fighter/engine"
	"github.com/lixenwraith/star-fighter/vmath"
)

// testStep is chosen exactly representable in binary so accumulated
// delta times stay exact across ticks.
const testStep = 250 * time.Millisecond

type testRig struct {
	game     *engine.Game
	director *Director
	mock     *engine.MockTimeProvider
	signals  []core.Signal
}

func newTestRig(class config.PlayerClass, stages *config.StageTable) *testRig {
	mock := engine.NewMockTimeProvider(time.Unix(0, 0))
	game := engine.NewGame(mock)

	loadout := config.DefaultLoadout()
	loadout.Class = class

	rig := &testRig{
		game: game,
		mock: mock,
	}
	rig.director = NewDirector(game, stages, loadout)
	game.World.Resource.Rand = vmath.NewFastRand(12345)
	game.SetSignalHandler(func(sig core.Signal) {
		rig.signals = append(rig.signals, sig)
	})
	return rig
}

// step advances game time by one test step and runs one tick
func (r *testRig) step() {
	r.mock.Advance(testStep)
	r.game.Tick()
}

func (r *testRig) steps(n int) {
	for i := 0; i < n; i++ {
		r.step()
	}
}

func (r *testRig) state() *engine.GameState {
	return r.game.World.Resource.State
}

func (r *testRig) world() *engine.World {
	return r.game.World
}

// waveTable is a minimal campaign used by the spawn-cadence tests
func waveTable(count, frequency, difficulty int) *config.StageTable {
	return &config.StageTable{Stages: []config.Stage{
		{Type: config.StageWave, Count: count, Frequency: frequency, Difficulty: difficulty},
		{Type: config.StageBoss, HP: 50, Difficulty: difficulty},
	}}
}

// recordingSink captures every state delta
type recordingSink struct {
	deltas []engine.StateDelta
}

func (s *recordingSink) StateChanged(delta engine.StateDelta) {
	s.deltas = append(s.deltas, delta)
}
