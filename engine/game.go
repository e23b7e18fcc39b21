package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/star-fighter/core"
	"github.com/lixenwraith/star-fighter/event"
	"github.com/lixenwraith/star-fighter/parameter"
)

// Game owns the world, the tick loop, and the presentation edges.
// Simulation semantics live in the systems; Game only advances time,
// dispatches events around the system pass, and publishes snapshots.
type Game struct {
	World *World

	queue  *event.EventQueue
	router *event.Router
	frame  atomic.Int64

	clock *PausableClock

	renderer      Renderer
	sink          StateSink
	signalHandler func(sig core.Signal)

	// Presentation snapshot from the previous tick, diffed to produce
	// created/updated/destroyed notifications.
	presented map[core.Entity]EntityPose

	lastGameTime time.Time
}

// NewGame creates a game with the given time provider and default
// null presentation edges.
func NewGame(provider TimeProvider) *Game {
	queue := event.NewEventQueue()
	g := &Game{
		World:     NewWorld(NewResource()),
		queue:     queue,
		router:    event.NewRouter(queue),
		clock:     NewPausableClock(provider),
		renderer:  NullRenderer{},
		sink:      NullSink{},
		presented: make(map[core.Entity]EntityPose, 256),
	}
	g.World.SetEventMetadata(queue, &g.frame)
	g.router.Register(g)
	g.lastGameTime = g.clock.Now()
	return g
}

// SetRenderer installs the entity notification receiver
func (g *Game) SetRenderer(r Renderer) {
	if r == nil {
		r = NullRenderer{}
	}
	g.renderer = r
}

// SetStateSink installs the session state receiver
func (g *Game) SetStateSink(s StateSink) {
	if s == nil {
		s = NullSink{}
	}
	g.sink = s
}

// SetSignalHandler installs the callback for simulation signals
func (g *Game) SetSignalHandler(fn func(sig core.Signal)) {
	g.signalHandler = fn
}

// SetSoundPlayer installs the sound effect player
func (g *Game) SetSoundPlayer(p SoundPlayer) {
	if p == nil {
		p = NullSoundPlayer{}
	}
	g.World.Resource.Sound = p
}

// AddSystem registers a system for the tick pass and any event
// subscriptions it declares.
func (g *Game) AddSystem(s System) {
	g.World.AddSystem(s)
	if len(s.EventTypes()) > 0 {
		g.router.Register(s)
	}
}

// Name implements event.Handler
func (g *Game) Name() string { return "game" }

// EventTypes implements event.Handler
func (g *Game) EventTypes() []event.EventType {
	return []event.EventType{event.EventWaveComplete, event.EventGameOver}
}

// HandleEvent forwards completion events to the host as signals
func (g *Game) HandleEvent(ev event.GameEvent) {
	if g.signalHandler == nil {
		return
	}
	switch ev.Type {
	case event.EventWaveComplete:
		g.signalHandler(core.SignalWaveComplete)
	case event.EventGameOver:
		g.signalHandler(core.SignalGameOver)
	}
}

// SetPaused pauses or resumes game time. A paused tick short-circuits
// before any system runs, so no entity moves and no timer accumulates.
func (g *Game) SetPaused(paused bool) {
	if paused {
		g.clock.Pause()
	} else {
		g.clock.Resume()
		// Restart delta tracking so the pause gap is not integrated
		g.lastGameTime = g.clock.Now()
	}
}

// IsPaused reports the pause state
func (g *Game) IsPaused() bool {
	return g.clock.IsPaused()
}

// Tick advances the simulation by one step. Events queued since the
// previous tick dispatch before the system pass; events the pass
// produces (explosions, damage, sounds) dispatch after it, inside the
// same tick.
func (g *Game) Tick() {
	if g.clock.IsPaused() {
		return
	}

	g.frame.Add(1)

	res := g.World.Resource
	now := g.clock.Now()
	res.Time.GameTime = now
	res.Time.RealTime = g.clock.RealTime()
	res.Time.DeltaTime = now.Sub(g.lastGameTime).Seconds()
	res.Time.FrameNumber = g.frame.Load()
	g.lastGameTime = now

	g.router.Dispatch()
	g.World.Update()
	g.router.Dispatch()

	g.syncPresentation()
	res.Buffer.Flush(g.sink)
}

// Run drives the tick loop at the fixed rate until the context ends
func (g *Game) Run(ctx context.Context) {
	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.Tick()
		}
	}
}

// Dispatch drains pending events outside the tick loop. Used when the
// host mutates state between ticks and needs handlers to observe it.
func (g *Game) Dispatch() {
	g.router.Dispatch()
}

// ClearTransient destroys all entities. The next tick's presentation
// sync notifies the renderer of every removal.
func (g *Game) ClearTransient() {
	g.World.ClearEntities()
}

// syncPresentation diffs the live world against the previous snapshot
// and notifies the renderer of creations, updates, and removals.
func (g *Game) syncPresentation() {
	current := g.collectPoses()

	for id, pose := range current {
		prev, seen := g.presented[id]
		if !seen {
			g.renderer.EntityCreated(pose)
		} else if prev != pose {
			g.renderer.EntityUpdated(pose)
		}
	}
	for id := range g.presented {
		if _, live := current[id]; !live {
			g.renderer.EntityDestroyed(id)
		}
	}

	g.presented = current
}

func (g *Game) collectPoses() map[core.Entity]EntityPose {
	cs := g.World.Component
	poses := make(map[core.Entity]EntityPose, cs.Kinetic.Count())

	for _, e := range cs.Missile.All() {
		m, _ := cs.Missile.Get(e)
		kin, ok := cs.Kinetic.Get(e)
		if !ok {
			continue
		}
		poses[e] = EntityPose{
			Entity: e, Class: PoseMissile, Kind: int(m.Kind),
			Pos: kin.Pos, Opacity: 1,
		}
	}
	for _, e := range cs.Enemy.All() {
		en, _ := cs.Enemy.Get(e)
		kin, ok := cs.Kinetic.Get(e)
		if !ok {
			continue
		}
		poses[e] = EntityPose{
			Entity: e, Class: PoseEnemy, Kind: int(en.Archetype),
			Pos: kin.Pos, Spin: en.Spin,
			HealthScale: en.HealthScale(),
			Flash:       en.FlashRemaining > 0,
			Opacity:     1,
		}
	}
	for _, e := range cs.Bullet.All() {
		kin, ok := cs.Kinetic.Get(e)
		if !ok {
			continue
		}
		poses[e] = EntityPose{
			Entity: e, Class: PoseBullet,
			Pos: kin.Pos, Opacity: 1,
		}
	}
	for _, e := range cs.Boss.All() {
		b, _ := cs.Boss.Get(e)
		kin, ok := cs.Kinetic.Get(e)
		if !ok {
			continue
		}
		poses[e] = EntityPose{
			Entity: e, Class: PoseBoss,
			Pos:         kin.Pos,
			HealthScale: b.HealthScale(),
			Opacity:     1,
		}
	}
	for _, e := range cs.Effect.All() {
		fx, _ := cs.Effect.Get(e)
		kin, ok := cs.Kinetic.Get(e)
		if !ok {
			continue
		}
		poses[e] = EntityPose{
			Entity: e, Class: PoseEffect, Kind: int(fx.Kind),
			Pos:     kin.Pos,
			Opacity: 1 - fx.Fade(),
			Radius:  fx.Radius,
		}
	}

	return poses
}
