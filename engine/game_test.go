package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/star-fighter/component"
	"github.com/lixenwraith/star-fighter/core"
	"github.com/lixenwraith/star-fighter/event"
	"github.com/lixenwraith/star-fighter/vmath"
)

type recordingRenderer struct {
	created   []core.Entity
	updated   []core.Entity
	destroyed []core.Entity
}

func (r *recordingRenderer) EntityCreated(p EntityPose)  { r.created = append(r.created, p.Entity) }
func (r *recordingRenderer) EntityUpdated(p EntityPose)  { r.updated = append(r.updated, p.Entity) }
func (r *recordingRenderer) EntityDestroyed(id core.Entity) {
	r.destroyed = append(r.destroyed, id)
}

func newTickedGame() (*Game, *MockTimeProvider) {
	mock := NewMockTimeProvider(time.Unix(0, 0))
	return NewGame(mock), mock
}

func TestTickPausedShortCircuits(t *testing.T) {
	g, mock := newTickedGame()

	mock.Advance(time.Second / 60)
	g.Tick()
	frame := g.World.FrameNumber()
	if frame != 1 {
		t.Fatalf("frame = %d, want 1", frame)
	}

	g.SetPaused(true)
	mock.Advance(time.Second)
	g.Tick()
	g.Tick()

	if got := g.World.FrameNumber(); got != frame {
		t.Fatalf("frame advanced to %d while paused", got)
	}

	g.SetPaused(false)
	mock.Advance(time.Second / 60)
	g.Tick()
	if got := g.World.FrameNumber(); got != frame+1 {
		t.Fatalf("frame after resume = %d, want %d", got, frame+1)
	}
	// The pause gap must not leak into the delta
	if dt := g.World.Resource.Time.DeltaTime; dt > 0.02 {
		t.Fatalf("delta after resume = %v, want one tick", dt)
	}
}

func TestPresentationDiff(t *testing.T) {
	g, mock := newTickedGame()
	rec := &recordingRenderer{}
	g.SetRenderer(rec)

	e := g.World.CreateEntity()
	g.World.Component.Kinetic.Set(e, component.KineticComponent{Pos: vmath.Vec3{X: 1}})
	g.World.Component.Missile.Set(e, component.MissileComponent{Kind: component.MissileNormal, Phase: component.MissilePhaseFlying})

	mock.Advance(time.Second / 60)
	g.Tick()
	if len(rec.created) != 1 || rec.created[0] != e {
		t.Fatalf("created = %v, want [%d]", rec.created, e)
	}

	// Unchanged entity produces no update
	mock.Advance(time.Second / 60)
	g.Tick()
	if len(rec.updated) != 0 {
		t.Fatalf("updated = %v, want none for static entity", rec.updated)
	}

	// Moving it produces exactly one update
	kin, _ := g.World.Component.Kinetic.Get(e)
	kin.Pos.X = 2
	g.World.Component.Kinetic.Set(e, kin)
	mock.Advance(time.Second / 60)
	g.Tick()
	if len(rec.updated) != 1 {
		t.Fatalf("updated = %v, want one", rec.updated)
	}

	g.World.DestroyEntity(e)
	mock.Advance(time.Second / 60)
	g.Tick()
	if len(rec.destroyed) != 1 || rec.destroyed[0] != e {
		t.Fatalf("destroyed = %v, want [%d]", rec.destroyed, e)
	}
}

func TestSignalForwarding(t *testing.T) {
	g, mock := newTickedGame()

	var signals []core.Signal
	g.SetSignalHandler(func(sig core.Signal) { signals = append(signals, sig) })

	g.World.PushEvent(event.EventWaveComplete, nil)
	mock.Advance(time.Second / 60)
	g.Tick()

	if len(signals) != 1 || signals[0] != core.SignalWaveComplete {
		t.Fatalf("signals = %v, want [wave complete]", signals)
	}
}
